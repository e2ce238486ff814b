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
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Status glyphs written in front of each step title.
const (
	GlyphStarted   = "-"
	GlyphSucceeded = "✔"
	GlyphFailed    = "✕"
	GlyphSkipped   = "↓"
	GlyphCaret     = ">"
)

// StatusReporter prints one line per pipeline event.
type StatusReporter struct {
	out io.Writer

	brand   *color.Color
	started *color.Color
	success *color.Color
	failure *color.Color
	skipped *color.Color
	caret   *color.Color
	accent  *color.Color
}

// NewStatusReporter creates a reporter writing to out. With noColor set,
// the output is plain text.
func NewStatusReporter(out io.Writer, noColor bool) *StatusReporter {
	r := &StatusReporter{
		out:     out,
		brand:   color.RGB(0xff, 0xc6, 0x02).Add(color.Bold),
		started: color.New(color.FgBlue),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed, color.Bold),
		skipped: color.New(color.FgYellow),
		caret:   color.New(color.FgHiBlack),
		accent:  color.New(color.FgBlue, color.Bold),
	}
	for _, c := range []*color.Color{r.brand, r.started, r.success, r.failure, r.skipped, r.caret, r.accent} {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	return r
}

// Started implements generator.Reporter.
func (r *StatusReporter) Started(title string) {
	r.printf("%s %s\n", r.started.Sprint(GlyphStarted), title)
}

// Succeeded implements generator.Reporter.
func (r *StatusReporter) Succeeded(title string) {
	r.printf("%s %s\n", r.success.Sprint(GlyphSucceeded), title)
}

// Failed implements generator.Reporter.
func (r *StatusReporter) Failed(title, reason string) {
	r.printf("%s %s: %s\n", r.failure.Sprint(GlyphFailed), title, reason)
}

// Skipped implements generator.Reporter.
func (r *StatusReporter) Skipped(title, reason string) {
	r.printf("%s %s [skipped: %s]\n", r.skipped.Sprint(GlyphSkipped), title, reason)
}

// Banner prints the message shown before the pipeline starts.
func (r *StatusReporter) Banner() {
	r.printf("\n%s\n\n", r.brand.Sprint("Hang tight while we set up your new Express app!"))
}

// Summary prints the next steps for the generated project.
func (r *StatusReporter) Summary(name string) {
	r.printf("\n%s\n\n", r.brand.Sprint("Your new Express app is ready! Next steps:"))
	r.printf("- Go inside your project folder\n")
	r.printf("%s %s\n", r.caret.Sprint(GlyphCaret), r.accent.Sprintf("cd %s", name))
	r.printf("- Open %s file and follow the %s guide.\n", r.accent.Sprint("README.md"), r.accent.Sprint("Getting Started"))
}

func (r *StatusReporter) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}
