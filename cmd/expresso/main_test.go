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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cowdogmoo/expresso/envfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	tests := []struct {
		name            string
		args            []string
		wantErr         bool
		wantErrContains string
		wantContains    string
	}{
		{
			name:         "help output",
			args:         []string{"--help"},
			wantContains: "Expresso creates a new Express project",
		},
		{
			name:            "unknown flag",
			args:            []string{"--unknown"},
			wantErr:         true,
			wantErrContains: "unknown flag",
		},
		{
			name:         "version",
			args:         []string{"version"},
			wantContains: "expresso version dev",
		},
		{
			name:         "create help lists the alias",
			args:         []string{"create", "--help"},
			wantContains: "Aliases:",
		},
		{
			name:            "create rejects extra args",
			args:            []string{"create", "one", "two"},
			wantErr:         true,
			wantErrContains: "accepts at most 1 arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateHome(t)

			out, err := executeCommand(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrContains != "" {
					assert.Contains(t, err.Error(), tt.wantErrContains)
				}
				return
			}
			require.NoError(t, err)
			if tt.wantContains != "" {
				assert.Contains(t, out, tt.wantContains)
			}
		})
	}
}

func TestConfigShow(t *testing.T) {
	isolateHome(t)
	t.Setenv("EXPRESSO_ENV_NODE_ENV", "staging")

	out, err := executeCommand(t, "config", "show", "--log-level", "debug")
	require.NoError(t, err)

	assert.Contains(t, out, "# Current Expresso Configuration")
	assert.Contains(t, out, "node_env: staging")
	assert.Contains(t, out, "level: debug")
	assert.Contains(t, out, "danielcoker/node-express-boilerplate.git")
	assert.Contains(t, out, "# No config file found (using defaults)")
}

func TestConfigShow_ExplicitFile(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "expresso.yaml")
	require.NoError(t, os.WriteFile(path, []byte("git:\n  commit_message: Scaffold project\n"), 0644))

	out, err := executeCommand(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "commit_message: Scaffold project")
	assert.Contains(t, out, "# Config file: "+path)
}

func TestConfigShow_MissingExplicitFile(t *testing.T) {
	isolateHome(t)

	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config file")
}

func TestConfigInitAndPath(t *testing.T) {
	home := isolateHome(t)
	want := filepath.Join(home, ".config", "expresso", "config.yaml")

	out, err := executeCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Contains(t, out, want+" (not created yet)")

	_, err = executeCommand(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, want)

	_, err = executeCommand(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCommand(t, "config", "init", "--force")
	require.NoError(t, err)

	out, err = executeCommand(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(out))
}

func TestCreate_AnswersFileWithoutName(t *testing.T) {
	isolateHome(t)

	answers := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte("description: no name\nskip_install: \"yes\"\n"), 0644))

	_, err := executeCommand(t, "create", "--answers", answers)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "project name is required")
}

func TestCreate_MissingAnswersFile(t *testing.T) {
	isolateHome(t)

	_, err := executeCommand(t, "create", "--answers", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answers file not accessible")
}

func TestCreate_FromAnswersFile(t *testing.T) {
	isolateHome(t)
	url := createTemplateRepo(t)

	work := t.TempDir()
	t.Chdir(work)

	answers := filepath.Join(t.TempDir(), "answers.yaml")
	content := `name: acme-api
description: Acme REST API
author: Ada Lovelace
repository: https://github.com/acme/acme-api
skip_install: "yes"
`
	require.NoError(t, os.WriteFile(answers, []byte(content), 0644))

	out, err := executeCommand(t, "c", "--answers", answers, "--template-url", url, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Hang tight while we set up your new Express app!")
	assert.Contains(t, out, "✔ Cloning template")
	assert.Contains(t, out, "↓ Installing dependencies [skipped: Skipped dependency installation]")
	assert.Contains(t, out, "> cd acme-api")

	dir := filepath.Join(work, "acme-api")

	manifest, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Contains(t, string(manifest), `"name": "acme-api"`)
	assert.Contains(t, string(manifest), `"url": "https://github.com/acme/acme-api"`)
	assert.NotContains(t, string(manifest), "homepage")

	readme, err := os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "# acme-api\n\nAcme REST API\n<!-- introstop -->")

	env, err := envfile.Load(filepath.Join(dir, ".env"))
	require.NoError(t, err)
	appName, _ := env.Get("APP_NAME")
	assert.Equal(t, "acme-api", appName)
}

func TestCreate_PositionalNameOverridesAnswersFile(t *testing.T) {
	isolateHome(t)
	url := createTemplateRepo(t)

	work := t.TempDir()
	t.Chdir(work)

	answers := filepath.Join(t.TempDir(), "answers.yaml")
	require.NoError(t, os.WriteFile(answers, []byte("name: from-file\nskip_install: \"yes\"\n"), 0644))

	_, err := executeCommand(t, "create", "from-arg", "--answers", answers, "--template-url", url, "-q")
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(work, "from-arg"))
	assert.NoDirExists(t, filepath.Join(work, "from-file"))
}

func TestGetCommandPath(t *testing.T) {
	assert.Equal(t, "", getCommandPath(rootCmd))
	assert.Equal(t, "create", getCommandPath(createCmd))
	assert.Equal(t, "config.show", getCommandPath(configShowCmd))
}
