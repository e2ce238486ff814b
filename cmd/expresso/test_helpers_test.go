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
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cowdogmoo/expresso/cli"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the root command with args and returns everything
// written to stdout and stderr. Flag state is reset afterwards.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(os.Stderr)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
		createOpts = cli.CreateCLIOptions{}
		cfgFile = ""
		configForce = false
	})

	err := Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// isolateHome points HOME at an empty directory so no user config or
// .gitconfig leaks into the test.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// createTemplateRepo creates a bare repository with a minimal Express
// template and returns its file:// URL.
func createTemplateRepo(t *testing.T) string {
	t.Helper()

	bareDir := filepath.Join(t.TempDir(), "template.git")
	workDir := filepath.Join(t.TempDir(), "work")

	_, err := git.PlainInit(bareDir, true)
	require.NoError(t, err)

	repo, err := git.PlainInit(workDir, false)
	require.NoError(t, err)

	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{"file://" + bareDir},
	})
	require.NoError(t, err)

	w, err := repo.Worktree()
	require.NoError(t, err)

	files := map[string]string{
		"package.json": "{\n  \"name\": \"boilerplate\",\n  \"repository\": {\"type\": \"git\", \"url\": \"x\"},\n  \"homepage\": \"x\"\n}\n",
		"README.md":    "<!-- intro -->\n# Boilerplate\n<!-- introstop -->\n\n## Getting Started\n",
		".env.example": "APP_NAME=\nNODE_ENV=\nJSON_WEB_TOKEN_SECRET=\nJSON_WEB_TOKEN_EXPIRE=\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(workDir, name), []byte(content), 0644))
		_, err = w.Add(name)
		require.NoError(t, err)
	}

	_, err = w.Commit("initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Push(&git.PushOptions{
		RemoteName: "origin",
		RefSpecs:   []gitconfig.RefSpec{"refs/heads/*:refs/heads/*"},
	}))

	return "file://" + bareDir
}
