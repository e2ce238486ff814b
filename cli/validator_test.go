/*
Copyright © 2025 Jayson Grace <jayson.e.grace@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	answers := filepath.Join(dir, "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte("name: acme-api\n"), 0644))

	tests := []struct {
		name    string
		opts    CreateCLIOptions
		wantErr string
	}{
		{name: "empty options", opts: CreateCLIOptions{}},
		{name: "answers file", opts: CreateCLIOptions{AnswersFile: answers}},
		{name: "missing answers file", opts: CreateCLIOptions{AnswersFile: filepath.Join(dir, "nope.yaml")}, wantErr: "answers file not accessible"},
		{name: "answers file is a directory", opts: CreateCLIOptions{AnswersFile: dir}, wantErr: "is a directory"},
		{name: "https template", opts: CreateCLIOptions{TemplateURL: "https://github.com/acme/template.git"}},
		{name: "scp-like template", opts: CreateCLIOptions{TemplateURL: "git@github.com:acme/template.git"}},
		{name: "file template", opts: CreateCLIOptions{TemplateURL: "file:///srv/git/template.git"}},
		{name: "template ref", opts: CreateCLIOptions{TemplateRef: "v2.0.0"}},
		{name: "template ref with space", opts: CreateCLIOptions{TemplateRef: "v2 beta"}, wantErr: "must not contain whitespace"},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := v.ValidateCreateOptions(tt.opts)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
