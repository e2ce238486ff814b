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

package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	baseErr := errors.New("permission denied")

	tests := []struct {
		name           string
		action         string
		detail         string
		err            error
		expectedPrefix string
		shouldContain  []string
	}{
		{
			name:           "wrap with action only",
			action:         "update manifest",
			err:            baseErr,
			expectedPrefix: "failed to update manifest:",
			shouldContain:  []string{"failed to update manifest:", "permission denied"},
		},
		{
			name:           "wrap with action and detail",
			action:         "create project directory",
			detail:         "acme-api",
			err:            baseErr,
			expectedPrefix: "failed to create project directory (acme-api):",
			shouldContain:  []string{"create project directory", "acme-api", "permission denied"},
		},
		{
			name:   "wrap nil error returns nil",
			action: "read readme",
			detail: "README.md",
			err:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := Wrap(tt.action, tt.detail, tt.err)
			if tt.err == nil {
				assert.NoError(t, result)
				return
			}

			require.Error(t, result)
			assert.True(t, len(result.Error()) >= len(tt.expectedPrefix))
			assert.Equal(t, tt.expectedPrefix, result.Error()[:len(tt.expectedPrefix)])
			for _, want := range tt.shouldContain {
				assert.Contains(t, result.Error(), want)
			}
			assert.ErrorIs(t, result, tt.err)
		})
	}
}

func TestWrap_PreservesSentinel(t *testing.T) {
	t.Parallel()

	err := Wrap("read readme", "README.md", fs.ErrNotExist)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
