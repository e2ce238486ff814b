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

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/cowdogmoo/expresso/cli"
	"github.com/cowdogmoo/expresso/config"
	"github.com/cowdogmoo/expresso/generator"
	"github.com/cowdogmoo/expresso/git"
	"github.com/cowdogmoo/expresso/logging"
	"github.com/cowdogmoo/expresso/project"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createOpts cli.CreateCLIOptions

// newPrompter picks how answers are collected. Tests replace it.
var newPrompter = func(opts cli.CreateCLIOptions) (cli.Prompter, error) {
	if opts.AnswersFile == "" {
		return cli.NewSurveyPrompter(), nil
	}
	answers, err := project.LoadAnswers(opts.AnswersFile)
	if err != nil {
		return nil, err
	}
	return cli.StaticPrompter{Answers: answers}, nil
}

var createCmd = &cobra.Command{
	Use:     "create [name]",
	Aliases: []string{"c"},
	Short:   "Create a new Express project",
	Long: `Create a new Express project in a directory named after the project.

The boilerplate repository is cloned, package.json, README.md and .env are
rewritten for the new project, dependencies are installed unless skipped,
and everything is committed to a fresh git repository.`,
	Example: `  # Answer the questions interactively
  expresso create

  # Pre-fill the project name
  expresso create acme-api

  # Non-interactive, answers from a YAML file
  expresso create --answers answers.yaml

  # Use another template tag
  expresso create acme-api --template-ref v2.0.0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringVar(&createOpts.AnswersFile, "answers", "", "YAML file with answers (name, description, author, repository, skip_install)")
	createCmd.Flags().StringVar(&createOpts.TemplateURL, "template-url", "", "Template repository URL (default from config)")
	createCmd.Flags().StringVar(&createOpts.TemplateRef, "template-ref", "", "Template tag or branch (default branch when empty)")
	createCmd.Flags().BoolVar(&createOpts.NoColor, "no-color", false, "Disable colored status output")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := configFromContext(cmd)

	opts := createOpts
	if len(args) > 0 {
		opts.Name = args[0]
	}

	if err := cli.NewValidator().ValidateCreateOptions(opts); err != nil {
		return err
	}

	prompter, err := newPrompter(opts)
	if err != nil {
		return err
	}

	defaults := project.Answers{
		Name:   opts.Name,
		Author: git.NewConfigReader().GetAuthor(ctx),
	}
	answers, err := prompter.Prompt(ctx, defaults)
	if err != nil {
		if errors.Is(err, cli.ErrPromptInterrupted) {
			logging.WarnContext(ctx, "Project creation cancelled")
		}
		return err
	}

	projectOpts, err := project.NewOptions(answers)
	if err != nil {
		return fmt.Errorf("invalid answers: %w", err)
	}

	logger := logging.FromContext(ctx)
	out := cmd.OutOrStdout()
	if logger.IsQuiet() {
		out = io.Discard
	}
	reporter := cli.NewStatusReporter(out, noColor(cfg, opts))

	runner := &generator.ExecRunner{}
	if logger.IsVerbose() {
		runner.Stdout = cmd.ErrOrStderr()
		runner.Stderr = cmd.ErrOrStderr()
	}

	gen := generator.New(projectOpts,
		generator.WithSettings(generator.SettingsFromConfig(cfg)),
		generator.WithReporter(reporter),
		generator.WithRunner(runner),
	)

	reporter.Banner()
	result, err := gen.Run(ctx)
	if err != nil {
		return fmt.Errorf("failed to create project %s: %w", projectOpts.Name, err)
	}

	for _, step := range result.Steps {
		if step.Outcome.Status == generator.StatusFailed {
			logging.DebugContext(ctx, "Step %q failed: %v", step.Title, step.Outcome.Err)
		}
	}

	reporter.Summary(projectOpts.Name)
	return nil
}

func noColor(cfg *config.Config, opts cli.CreateCLIOptions) bool {
	return opts.NoColor || color.NoColor || cfg.Log.Format != "color"
}
