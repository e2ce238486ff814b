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

package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cowdogmoo/expresso/logging"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Cloner clones template repositories with go-git. No git binary is needed.
type Cloner struct {
	// Progress receives clone progress. When nil, progress goes to stderr
	// in verbose mode and is discarded otherwise.
	Progress io.Writer
}

// NewCloner creates a Cloner with default progress handling.
func NewCloner() *Cloner {
	return &Cloner{}
}

// Clone clones url into dir. A non-empty ref other than main or master is
// tried as a tag first and then as a branch.
func (c *Cloner) Clone(ctx context.Context, url, ref, dir string) error {
	opts := &git.CloneOptions{
		URL:      url,
		Progress: c.progress(ctx),
	}

	if isSpecificVersion(ref) {
		opts.ReferenceName = plumbing.NewTagReferenceName(ref)
		opts.SingleBranch = true
	}

	_, err := git.PlainCloneContext(ctx, dir, false, opts)
	if err != nil && isSpecificVersion(ref) {
		logging.DebugContext(ctx, "Tag %s not found, retrying as a branch", ref)
		if rmErr := cleanPartialClone(dir); rmErr != nil {
			return fmt.Errorf("failed to clean up partial clone: %w", rmErr)
		}
		opts.ReferenceName = plumbing.NewBranchReferenceName(ref)
		_, err = git.PlainCloneContext(ctx, dir, false, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}
	return nil
}

func (c *Cloner) progress(ctx context.Context) io.Writer {
	if c.Progress != nil {
		return c.Progress
	}
	if logging.FromContext(ctx).IsVerbose() {
		return os.Stderr
	}
	return nil
}

// cleanPartialClone removes the .git directory left by a failed attempt so
// the directory can be cloned into again.
func cleanPartialClone(dir string) error {
	return os.RemoveAll(filepath.Join(dir, ".git"))
}

func isSpecificVersion(ref string) bool {
	return ref != "" && ref != "main" && ref != "master"
}
