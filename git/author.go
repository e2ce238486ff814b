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

// Package git clones project templates and reads the user's git identity.
package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cowdogmoo/expresso/logging"
	"gopkg.in/ini.v1"
)

// ConfigReader reads author information from the user's .gitconfig.
type ConfigReader struct {
	home string
}

// NewConfigReader creates a reader for the current user's home directory.
func NewConfigReader() *ConfigReader {
	return &ConfigReader{}
}

// NewConfigReaderForHome creates a reader rooted at home instead of the
// current user's home directory.
func NewConfigReaderForHome(home string) *ConfigReader {
	return &ConfigReader{home: home}
}

// GetAuthor returns "Name <email>", "Name", "email" or "" depending on what
// the git config defines. Lookup failures yield an empty string.
func (r *ConfigReader) GetAuthor(ctx context.Context) string {
	home := r.home
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			logging.DebugContext(ctx, "Failed to get home directory: %v", err)
			return ""
		}
	}

	cfg := r.loadGitConfig(ctx, home)
	if cfg == nil {
		return ""
	}

	name, email := r.extractUserInfo(cfg)
	if name == "" || email == "" {
		name, email = r.tryIncludedConfig(ctx, cfg, home, name, email)
	}

	return formatAuthor(name, email)
}

func (r *ConfigReader) loadGitConfig(ctx context.Context, home string) *ini.File {
	path := filepath.Join(home, ".gitconfig")
	cfg, err := ini.Load(path)
	if err != nil {
		logging.DebugContext(ctx, "Failed to load .gitconfig: %v", err)
		return nil
	}
	return cfg
}

func (r *ConfigReader) extractUserInfo(cfg *ini.File) (name, email string) {
	user := cfg.Section("user")
	return strings.TrimSpace(user.Key("name").String()), strings.TrimSpace(user.Key("email").String())
}

// tryIncludedConfig fills in missing values from an [include] path.
// Values already found in the main file win.
func (r *ConfigReader) tryIncludedConfig(ctx context.Context, cfg *ini.File, home, currentName, currentEmail string) (name, email string) {
	name, email = currentName, currentEmail

	includePath := cfg.Section("include").Key("path").String()
	if includePath == "" {
		return name, email
	}
	includePath = expandPath(includePath, home)

	included, err := ini.Load(includePath)
	if err != nil {
		logging.DebugContext(ctx, "Failed to load included config from %s: %v", includePath, err)
		return name, email
	}

	incName, incEmail := r.extractUserInfo(included)
	if name == "" {
		name = incName
	}
	if email == "" {
		email = incEmail
	}
	return name, email
}

// expandPath resolves ~, environment variables and paths relative to home.
func expandPath(path, home string) string {
	path = os.ExpandEnv(path)
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	case !filepath.IsAbs(path):
		return filepath.Join(home, path)
	}
	return path
}

func formatAuthor(name, email string) string {
	switch {
	case name != "" && email != "":
		return fmt.Sprintf("%s <%s>", name, email)
	case name != "":
		return name
	case email != "":
		return email
	default:
		return ""
	}
}
