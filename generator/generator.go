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

// Package generator runs the ordered steps that turn a project name and a
// few answers into a ready-to-run Express project.
//
// Every step receives the project directory explicitly; the process working
// directory is never changed. Each step returns an Outcome and a fixed
// policy table decides whether a failure stops the pipeline.
package generator

import (
	"context"
	"path/filepath"

	"github.com/cowdogmoo/expresso/config"
	"github.com/cowdogmoo/expresso/git"
	"github.com/cowdogmoo/expresso/logging"
	"github.com/cowdogmoo/expresso/project"
)

// Step titles, in pipeline order.
const (
	StepCreateDirectory = "Creating project directory"
	StepCloneTemplate   = "Cloning template"
	StepInitGit         = "Initializing git repository"
	StepUpdateManifest  = "Updating package.json"
	StepUpdateReadme    = "Updating README.md"
	StepUpdateEnv       = "Updating env variables"
	StepInstall         = "Installing dependencies"
	StepCommit          = "Committing changes"
)

// Cloner fetches the template repository into dir.
type Cloner interface {
	Clone(ctx context.Context, url, ref, dir string) error
}

// Reporter receives step status events.
type Reporter interface {
	Started(title string)
	Succeeded(title string)
	Failed(title, reason string)
	Skipped(title, reason string)
}

// Settings are the configurable parts of the pipeline.
type Settings struct {
	TemplateURL    string
	TemplateRef    string
	GitBinary      string
	CommitMessage  string
	InstallCommand []string
	EnvExample     string
	EnvTarget      string
	NodeEnv        string
	SecretLength   int
	TokenExpire    string
}

// SettingsFromConfig copies the pipeline settings out of cfg.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		TemplateURL:    cfg.Template.URL,
		TemplateRef:    cfg.Template.Ref,
		GitBinary:      cfg.Git.Binary,
		CommitMessage:  cfg.Git.CommitMessage,
		InstallCommand: cfg.Install.Command,
		EnvExample:     cfg.Env.Example,
		EnvTarget:      cfg.Env.Target,
		NodeEnv:        cfg.Env.NodeEnv,
		SecretLength:   cfg.Env.SecretLength,
		TokenExpire:    cfg.Env.TokenExpire,
	}
}

// DefaultSettings returns the settings produced by an empty configuration.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Title   string
	Outcome Outcome
}

// Result describes a pipeline run.
type Result struct {
	ProjectDir string
	Steps      []StepResult
}

// Outcome returns the outcome recorded for the step with title.
func (r *Result) Outcome(title string) (Outcome, bool) {
	for _, s := range r.Steps {
		if s.Title == title {
			return s.Outcome, true
		}
	}
	return Outcome{}, false
}

// Generator creates one project.
type Generator struct {
	opts     *project.Options
	settings Settings
	baseDir  string
	runner   Runner
	cloner   Cloner
	reporter Reporter
}

// Option configures a Generator.
type Option func(*Generator)

// WithSettings replaces the default settings.
func WithSettings(s Settings) Option {
	return func(g *Generator) { g.settings = s }
}

// WithBaseDir sets the directory the project directory is created in.
func WithBaseDir(dir string) Option {
	return func(g *Generator) { g.baseDir = dir }
}

// WithRunner sets the external command runner.
func WithRunner(r Runner) Option {
	return func(g *Generator) { g.runner = r }
}

// WithCloner sets the template cloner.
func WithCloner(c Cloner) Option {
	return func(g *Generator) { g.cloner = c }
}

// WithReporter sets the status reporter.
func WithReporter(r Reporter) Option {
	return func(g *Generator) { g.reporter = r }
}

// New creates a Generator for opts. Without options it clones with go-git,
// runs commands with os/exec and reports nothing.
func New(opts *project.Options, options ...Option) *Generator {
	g := &Generator{
		opts:     opts,
		settings: DefaultSettings(),
		baseDir:  ".",
		runner:   &ExecRunner{},
		cloner:   git.NewCloner(),
		reporter: nopReporter{},
	}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// ProjectDir returns the directory the project is generated in.
func (g *Generator) ProjectDir() string {
	return filepath.Join(g.baseDir, g.opts.DestinationRoot())
}

// step is one entry of the pipeline policy table.
type step struct {
	title  string
	policy Policy
	run    func(ctx context.Context, rs *runState) Outcome
}

// runState is shared between the steps of a single run.
type runState struct {
	dir      string
	gitReady bool
}

// steps returns the pipeline in execution order.
func (g *Generator) steps() []step {
	return []step{
		{StepCreateDirectory, Fatal, g.createDirectory},
		{StepCloneTemplate, Recoverable, g.cloneTemplate},
		{StepInitGit, Recoverable, g.initGit},
		{StepUpdateManifest, Recoverable, g.updateManifest},
		{StepUpdateReadme, Fatal, g.updateReadme},
		{StepUpdateEnv, Recoverable, g.updateEnv},
		{StepInstall, Recoverable, g.installDependencies},
		{StepCommit, Recoverable, g.commitChanges},
	}
}

// Run executes every step in order. It returns a *FatalError when a Fatal
// step fails; recoverable failures are only recorded in the Result.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	rs := &runState{dir: g.ProjectDir()}
	result := &Result{ProjectDir: rs.dir}

	logging.DebugContext(ctx, "Generating project %q in %s", g.opts.Name, rs.dir)

	for _, s := range g.steps() {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		g.reporter.Started(s.title)
		outcome := s.run(ctx, rs)
		result.Steps = append(result.Steps, StepResult{Title: s.title, Outcome: outcome})

		switch outcome.Status {
		case StatusSucceeded:
			g.reporter.Succeeded(s.title)
		case StatusSkipped:
			g.reporter.Skipped(s.title, outcome.Reason)
		case StatusFailed:
			g.reporter.Failed(s.title, outcome.Reason)
			if s.policy == Fatal {
				return result, &FatalError{Step: s.title, Err: outcome.Err}
			}
			logging.DebugContext(ctx, "Continuing after failed step %q: %v", s.title, outcome.Err)
		}
	}

	return result, nil
}

type nopReporter struct{}

func (nopReporter) Started(string)         {}
func (nopReporter) Succeeded(string)       {}
func (nopReporter) Failed(string, string)  {}
func (nopReporter) Skipped(string, string) {}
