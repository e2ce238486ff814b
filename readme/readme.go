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

// Package readme rewrites marker-delimited regions of a project README.
//
// A region looks like:
//
//	<!-- intro -->
//	# acme-api
//
//	An API for Acme.
//	<!-- introstop -->
//
// Rewriting a region always drops the previous body first, so repeated
// runs never stack bodies.
package readme

import (
	"regexp"
	"strings"
)

// IntroTag is the region rewritten with the project name and description.
const IntroTag = "intro"

// OpenMarker returns the opening marker for tag.
func OpenMarker(tag string) string {
	return "<!-- " + tag + " -->"
}

// CloseMarker returns the closing marker for tag.
func CloseMarker(tag string) string {
	return "<!-- " + tag + "stop -->"
}

// ReplaceTag replaces the body of the tag region in text with body.
// Text without the open marker is returned unchanged. An open marker with
// no close marker gains one.
func ReplaceTag(text, tag, body string) string {
	open, stop := OpenMarker(tag), CloseMarker(tag)
	if !strings.Contains(text, open) {
		return text
	}

	if strings.Contains(text, stop) {
		region := regexp.MustCompile(`(?s)` + regexp.QuoteMeta(open) + `.*` + regexp.QuoteMeta(stop))
		text = region.ReplaceAllLiteralString(text, open)
	}

	return strings.Replace(text, open, open+"\n"+body+"\n"+stop, 1)
}

// IntroText builds the intro body: a level-one heading with the project
// name followed by the description.
func IntroText(name, description string) string {
	return strings.TrimSpace("# " + name + "\n\n" + description)
}

// Normalize trims trailing whitespace and ends text with a single newline.
func Normalize(text string) string {
	return strings.TrimRight(text, " \t\r\n") + "\n"
}
