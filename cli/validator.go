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
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/transport"
)

// Validator validates CLI input before it reaches the generator.
type Validator struct{}

// NewValidator creates a new CLI validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateOptions checks create command options for correctness.
func (v *Validator) ValidateCreateOptions(opts CreateCLIOptions) error {
	if err := v.validateAnswersFile(opts.AnswersFile); err != nil {
		return err
	}
	if err := v.validateTemplateURL(opts.TemplateURL); err != nil {
		return err
	}
	if strings.ContainsAny(opts.TemplateRef, " \t\n") {
		return fmt.Errorf("invalid template ref %q: must not contain whitespace", opts.TemplateRef)
	}
	return nil
}

func (v *Validator) validateAnswersFile(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("answers file not accessible: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("answers file %s is a directory", path)
	}
	return nil
}

// validateTemplateURL accepts anything go-git can build an endpoint from:
// http(s), ssh, git, file URLs, scp-like addresses and local paths.
func (v *Validator) validateTemplateURL(url string) error {
	if url == "" {
		return nil
	}
	if _, err := transport.NewEndpoint(url); err != nil {
		return fmt.Errorf("invalid template url: %w", err)
	}
	return nil
}
