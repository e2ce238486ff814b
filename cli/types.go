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

// Package cli holds the interactive and presentation layer of expresso:
// prompts, status output, and validation of command-line input.
package cli

// CreateCLIOptions captures the flags and arguments of the create command
// before they are validated.
type CreateCLIOptions struct {
	// Name is the optional positional project name. It becomes the default
	// for the name prompt, or overrides the answers file.
	Name string

	// AnswersFile is a YAML file with prompt answers. When set, no prompts
	// are shown.
	AnswersFile string

	// TemplateURL overrides the configured template repository.
	TemplateURL string

	// TemplateRef selects a tag or branch of the template repository.
	TemplateRef string

	// NoColor disables colored status output.
	NoColor bool
}
