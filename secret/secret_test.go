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

package secret

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var alphanumeric = regexp.MustCompile(`^[A-Za-z0-9]*$`)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"zero length", 0, 0},
		{"negative length", -5, 0},
		{"single char", 1, 1},
		{"jwt secret", 40, 40},
		{"long", 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Generate(tt.length)
			assert.Len(t, got, tt.want)
			assert.Regexp(t, alphanumeric, got)
		})
	}
}

func TestGenerate_Distinct(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, Generate(40), Generate(40))
}

func TestGenerate_UsesWholeAlphabet(t *testing.T) {
	t.Parallel()

	seen := make(map[rune]bool)
	for _, r := range Generate(20000) {
		seen[r] = true
	}
	assert.Len(t, seen, len(alphabet))
}
