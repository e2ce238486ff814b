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

package readme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleReadme = `<!-- intro -->
# Node Express Boilerplate

A boilerplate for building APIs with Express.
<!-- introstop -->

## Getting Started

Run npm install.
`

func TestReplaceTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		body string
		want string
	}{
		{
			name: "replaces existing body",
			text: sampleReadme,
			body: "# acme-api\n\nAcme API",
			want: "<!-- intro -->\n# acme-api\n\nAcme API\n<!-- introstop -->\n\n## Getting Started\n\nRun npm install.\n",
		},
		{
			name: "no markers leaves text untouched",
			text: "# Plain readme\n",
			body: "ignored",
			want: "# Plain readme\n",
		},
		{
			name: "open marker without close gains one",
			text: "before\n<!-- intro -->\nafter\n",
			body: "BODY",
			want: "before\n<!-- intro -->\nBODY\n<!-- introstop -->\nafter\n",
		},
		{
			name: "close marker alone is not an open marker",
			text: "<!-- introstop -->\n",
			body: "BODY",
			want: "<!-- introstop -->\n",
		},
		{
			name: "empty region",
			text: "<!-- intro --><!-- introstop -->",
			body: "x",
			want: "<!-- intro -->\nx\n<!-- introstop -->",
		},
		{
			name: "body with regex metacharacters is literal",
			text: "<!-- intro -->old<!-- introstop -->",
			body: "$1 (.*) ${name}",
			want: "<!-- intro -->\n$1 (.*) ${name}\n<!-- introstop -->",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ReplaceTag(tt.text, IntroTag, tt.body))
		})
	}
}

func TestReplaceTag_Idempotent(t *testing.T) {
	t.Parallel()

	body := IntroText("acme-api", "Acme API")
	once := ReplaceTag(sampleReadme, IntroTag, body)
	twice := ReplaceTag(once, IntroTag, body)

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, strings.Count(twice, OpenMarker(IntroTag)))
	assert.Equal(t, 1, strings.Count(twice, CloseMarker(IntroTag)))
}

func TestReplaceTag_SecondBodyWins(t *testing.T) {
	t.Parallel()

	first := ReplaceTag(sampleReadme, IntroTag, "first-body")
	second := ReplaceTag(first, IntroTag, "second-body")

	assert.Contains(t, second, "second-body")
	assert.NotContains(t, second, "first-body")
	assert.NotContains(t, second, "Node Express Boilerplate")
}

func TestReplaceTag_OtherTagUntouched(t *testing.T) {
	t.Parallel()

	text := "<!-- badges -->\nold\n<!-- badgesstop -->\n" + sampleReadme
	got := ReplaceTag(text, IntroTag, "new")

	assert.Contains(t, got, "<!-- badges -->\nold\n<!-- badgesstop -->")
	assert.Contains(t, got, "<!-- intro -->\nnew\n<!-- introstop -->")
}

func TestIntroText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "# acme-api\n\nAn API for Acme.", IntroText("acme-api", "An API for Acme."))
	assert.Equal(t, "# acme-api", IntroText("acme-api", ""))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "text\n", Normalize("text"))
	assert.Equal(t, "text\n", Normalize("text\n\n\n  \t"))
	assert.Equal(t, "\n", Normalize(""))
}
