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

// Package project turns raw prompt answers into validated generation options.
package project

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Answer values accepted for the install question.
const (
	AnswerYes = "yes"
	AnswerNo  = "no"
)

// ErrNameRequired is returned when the project name is empty.
var ErrNameRequired = stderrors.New("project name is required")

// ErrInvalidName is returned for names that would not create a new directory.
var ErrInvalidName = stderrors.New("project name must name a new directory")

// Answers holds the prompt answers exactly as collected.
type Answers struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Author      string `yaml:"author"`
	Repository  string `yaml:"repository"`
	SkipInstall string `yaml:"skip_install"`
}

// LoadAnswers reads answers from a YAML file.
func LoadAnswers(path string) (Answers, error) {
	var answers Answers

	data, err := os.ReadFile(path)
	if err != nil {
		return answers, fmt.Errorf("failed to read answers file: %w", err)
	}
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return answers, fmt.Errorf("failed to parse answers file %s: %w", path, err)
	}
	return answers, nil
}

// Options is the validated configuration for one generated project.
// The destination directory is always derived from Name.
type Options struct {
	Name        string
	Description string
	Author      string
	Repository  string
	SkipInstall bool
}

// NewOptions validates answers and builds Options. SkipInstall is true
// only for the exact answer "yes".
func NewOptions(answers Answers) (*Options, error) {
	opts := &Options{
		Description: answers.Description,
		Author:      answers.Author,
		Repository:  answers.Repository,
		SkipInstall: answers.SkipInstall == AnswerYes,
	}
	if err := opts.SetName(answers.Name); err != nil {
		return nil, err
	}
	return opts, nil
}

// SetName validates and stores a new project name.
func (o *Options) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	switch filepath.Clean(name) {
	case ".", "..", string(filepath.Separator):
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	o.Name = name
	return nil
}

// DestinationRoot returns the project directory, relative to the
// directory expresso runs in.
func (o *Options) DestinationRoot() string {
	return filepath.Clean(o.Name)
}
