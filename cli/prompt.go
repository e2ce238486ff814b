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
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/cowdogmoo/expresso/project"
)

// ErrPromptInterrupted is returned when the user aborts the prompts.
var ErrPromptInterrupted = errors.New("prompt interrupted")

// Prompter collects project answers from the user.
type Prompter interface {
	Prompt(ctx context.Context, defaults project.Answers) (project.Answers, error)
}

// SurveyPrompter asks the project questions on a terminal.
type SurveyPrompter struct {
	In  terminal.FileReader
	Out terminal.FileWriter
	Err io.Writer
}

// NewSurveyPrompter creates a prompter bound to the process's standard streams.
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Questions returns the project questions. Non-empty fields of defaults
// are offered as default answers.
func Questions(defaults project.Answers) []*survey.Question {
	// The first choice is preselected unless defaults say otherwise.
	skipDefault := project.AnswerYes
	if defaults.SkipInstall == project.AnswerNo {
		skipDefault = project.AnswerNo
	}

	return []*survey.Question{
		{
			Name: "name",
			Prompt: &survey.Input{
				Message: "Enter your project name",
				Default: defaults.Name,
			},
			Validate: validateName,
		},
		{
			Name: "description",
			Prompt: &survey.Input{
				Message: "Enter your project description",
				Default: defaults.Description,
			},
		},
		{
			Name: "author",
			Prompt: &survey.Input{
				Message: "Enter your project author",
				Default: defaults.Author,
			},
		},
		{
			Name: "repository",
			Prompt: &survey.Input{
				Message: "Enter your project repository",
				Default: defaults.Repository,
			},
		},
		{
			Name: "skipInstall",
			Prompt: &survey.Select{
				Message: "Skip package installation?",
				Options: []string{project.AnswerYes, project.AnswerNo},
				Default: skipDefault,
			},
		},
	}
}

// validateName rejects names project.NewOptions would reject, so the user
// is asked again instead of failing after the prompts.
func validateName(ans interface{}) error {
	name, ok := ans.(string)
	if !ok {
		return fmt.Errorf("unexpected answer type %T", ans)
	}
	var opts project.Options
	return opts.SetName(name)
}

// Prompt implements Prompter.
func (p *SurveyPrompter) Prompt(ctx context.Context, defaults project.Answers) (project.Answers, error) {
	var answers project.Answers

	if err := ctx.Err(); err != nil {
		return answers, err
	}

	err := survey.Ask(Questions(defaults), &answers, survey.WithStdio(p.In, p.Out, p.Err))
	if errors.Is(err, terminal.InterruptErr) {
		return answers, ErrPromptInterrupted
	}
	if err != nil {
		return answers, fmt.Errorf("failed to collect project answers: %w", err)
	}
	return answers, nil
}

// StaticPrompter returns fixed answers. It backs the non-interactive
// answers file mode; a positional name overrides the file's name.
type StaticPrompter struct {
	Answers project.Answers
}

// Prompt implements Prompter.
func (p StaticPrompter) Prompt(_ context.Context, defaults project.Answers) (project.Answers, error) {
	answers := p.Answers
	if defaults.Name != "" {
		answers.Name = defaults.Name
	}
	if answers.Author == "" {
		answers.Author = defaults.Author
	}
	return answers, nil
}
