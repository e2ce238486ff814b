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

package generator

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cowdogmoo/expresso/config"
	"github.com/cowdogmoo/expresso/envfile"
	"github.com/cowdogmoo/expresso/errors"
	"github.com/cowdogmoo/expresso/logging"
	"github.com/cowdogmoo/expresso/manifest"
	"github.com/cowdogmoo/expresso/readme"
	"github.com/cowdogmoo/expresso/secret"
)

// Env keys written into the generated project's env file.
const (
	EnvAppName     = "APP_NAME"
	EnvNodeEnv     = "NODE_ENV"
	EnvTokenSecret = "JSON_WEB_TOKEN_SECRET"
	EnvTokenExpire = "JSON_WEB_TOKEN_EXPIRE"
)

// ReadmeFile is the readme rewritten with the project intro.
const ReadmeFile = "README.md"

const gitDownloadURL = "https://git-scm.com/downloads"

// ErrDirectoryNotEmpty is reported when the project directory already
// holds files. Nothing is cloned and nothing already there is removed.
var ErrDirectoryNotEmpty = stderrors.New("project directory is not empty")

func (g *Generator) createDirectory(ctx context.Context, rs *runState) Outcome {
	if err := os.MkdirAll(rs.dir, config.DirPermReadWriteExec); err != nil {
		return Failed(errors.Wrap("create project directory", rs.dir, err))
	}
	logging.DebugContext(ctx, "Project directory ready at %s", rs.dir)
	return Succeeded()
}

// cloneTemplate fetches the boilerplate and strips its history. A failed
// clone is not fatal; later steps that need template files report their
// own failures.
func (g *Generator) cloneTemplate(ctx context.Context, rs *runState) Outcome {
	entries, err := os.ReadDir(rs.dir)
	if err != nil {
		return Failed(errors.Wrap("read project directory", rs.dir, err))
	}
	if len(entries) > 0 {
		return Failed(fmt.Errorf("%w: %s", ErrDirectoryNotEmpty, rs.dir))
	}

	logging.DebugContext(ctx, "Cloning %s into %s", logging.RedactURL(g.settings.TemplateURL), rs.dir)

	cloneErr := g.cloner.Clone(ctx, g.settings.TemplateURL, g.settings.TemplateRef, rs.dir)

	if err := os.RemoveAll(filepath.Join(rs.dir, ".git")); err != nil && cloneErr == nil {
		return Failed(errors.Wrap("remove template history", "", err))
	}
	if cloneErr != nil {
		return Failed(errors.Wrap("clone template", logging.RedactURL(g.settings.TemplateURL), cloneErr))
	}
	return Succeeded()
}

func (g *Generator) initGit(ctx context.Context, rs *runState) Outcome {
	code, err := g.runner.Run(ctx, rs.dir, g.settings.GitBinary, "init")
	if err == nil && code == 0 {
		rs.gitReady = true
		return Succeeded()
	}

	logging.WarnContext(ctx, "Failed to run git init.")
	logging.WarnContext(ctx, "Find out more about how to install git here: %s", gitDownloadURL)
	if err != nil {
		return Failed(errors.Wrap("run git init", "", err))
	}
	return Failed(fmt.Errorf("failed to run git init: exit status %d", code))
}

func (g *Generator) updateManifest(_ context.Context, rs *runState) Outcome {
	err := manifest.Update(filepath.Join(rs.dir, manifest.FileName), manifest.Fields{
		Name:        g.opts.Name,
		Description: g.opts.Description,
		Author:      g.opts.Author,
		Repository:  g.opts.Repository,
	})
	if err != nil {
		return Failed(err)
	}
	return Succeeded()
}

func (g *Generator) updateReadme(_ context.Context, rs *runState) Outcome {
	path := filepath.Join(rs.dir, ReadmeFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return Failed(errors.Wrap("read readme", path, err))
	}

	text := readme.ReplaceTag(string(data), readme.IntroTag, readme.IntroText(g.opts.Name, g.opts.Description))
	if err := os.WriteFile(path, []byte(readme.Normalize(text)), config.FilePermReadWrite); err != nil {
		return Failed(errors.Wrap("write readme", path, err))
	}
	return Succeeded()
}

func (g *Generator) updateEnv(ctx context.Context, rs *runState) Outcome {
	example := filepath.Join(rs.dir, g.settings.EnvExample)
	target := filepath.Join(rs.dir, g.settings.EnvTarget)

	copied, err := envfile.Materialize(example, target, config.FilePermReadWrite)
	if err != nil {
		return Failed(errors.Wrap("create env file", g.settings.EnvTarget, err))
	}
	if copied {
		logging.DebugContext(ctx, "Copied %s to %s", g.settings.EnvExample, g.settings.EnvTarget)
	}

	env, err := envfile.Load(target)
	if err != nil {
		return Failed(err)
	}

	values := []struct{ key, value string }{
		{EnvAppName, g.opts.Name},
		{EnvNodeEnv, g.settings.NodeEnv},
		{EnvTokenSecret, secret.Generate(g.settings.SecretLength)},
		{EnvTokenExpire, g.settings.TokenExpire},
	}
	for _, kv := range values {
		env.Set(kv.key, kv.value)
		logging.DebugContext(ctx, "Set %s=%s", kv.key, logging.RedactSensitiveValue(kv.key, kv.value))
	}

	if err := env.Save(target, config.FilePermReadWrite); err != nil {
		return Failed(err)
	}
	return Succeeded()
}

func (g *Generator) installDependencies(ctx context.Context, rs *runState) Outcome {
	if g.opts.SkipInstall {
		return Skipped("Skipped dependency installation")
	}
	if len(g.settings.InstallCommand) == 0 {
		return Skipped("No install command configured")
	}

	name, args := g.settings.InstallCommand[0], g.settings.InstallCommand[1:]
	code, err := g.runner.Run(ctx, rs.dir, name, args...)
	if err == nil && code == 0 {
		return Succeeded()
	}

	if err != nil {
		logging.DebugContext(ctx, "Install command could not start: %v", err)
	}
	return Failed(fmt.Errorf(
		"We had some trouble connecting to the network. We'll skip installing dependencies now. "+
			"Make sure to run `%s` once you're connected again.",
		strings.Join(g.settings.InstallCommand, " ")))
}

// commitChanges stages and commits everything. The sequence stops at the
// first command that fails.
func (g *Generator) commitChanges(ctx context.Context, rs *runState) Outcome {
	if !rs.gitReady {
		return Skipped("git repository was not initialized")
	}

	commands := [][]string{
		{"add", "."},
		{"commit", "-m", g.settings.CommitMessage},
	}
	for _, args := range commands {
		code, err := g.runner.Run(ctx, rs.dir, g.settings.GitBinary, args...)
		if err != nil || code != 0 {
			cmdErr := fmt.Errorf("failed to run command %s with %s options", g.settings.GitBinary, strings.Join(args, " "))
			if err != nil {
				cmdErr = fmt.Errorf("%w: %w", cmdErr, err)
			}
			return Failed(cmdErr)
		}
	}
	return Succeeded()
}
