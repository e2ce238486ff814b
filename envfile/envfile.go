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

// Package envfile reads and writes KEY=VALUE environment files while
// keeping the order keys appear in.
package envfile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// File is an ordered set of environment entries.
type File struct {
	entries *orderedmap.OrderedMap[string, string]
}

// New returns an empty File.
func New() *File {
	return &File{entries: orderedmap.New[string, string]()}
}

// Parse reads raw env file content. Blank lines, lines starting with '#'
// and lines without '=' are dropped. Keys are trimmed; values are kept as
// written. A repeated key keeps its first position and its last value.
func Parse(raw string) *File {
	f := New()
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		f.entries.Set(key, value)
	}
	return f
}

// Serialize renders f as KEY=VALUE lines in insertion order, each
// terminated by a newline.
func Serialize(f *File) string {
	var b strings.Builder
	for pair := f.entries.Oldest(); pair != nil; pair = pair.Next() {
		b.WriteString(pair.Key)
		b.WriteByte('=')
		b.WriteString(pair.Value)
		b.WriteByte('\n')
	}
	return b.String()
}

// String implements fmt.Stringer using Serialize.
func (f *File) String() string {
	return Serialize(f)
}

// Get returns the value stored for key.
func (f *File) Get(key string) (string, bool) {
	return f.entries.Get(key)
}

// Set stores value under key. New keys are appended; existing keys keep
// their position.
func (f *File) Set(key, value string) {
	f.entries.Set(key, value)
}

// Delete removes key and reports whether it was present.
func (f *File) Delete(key string) bool {
	_, present := f.entries.Delete(key)
	return present
}

// Keys returns the keys in file order.
func (f *File) Keys() []string {
	keys := make([]string, 0, f.entries.Len())
	for pair := f.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of entries.
func (f *File) Len() int {
	return f.entries.Len()
}

// Load parses the env file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return Parse(string(data)), nil
}

// Save writes f to path, replacing any existing content.
func (f *File) Save(path string, perm os.FileMode) error {
	if err := os.WriteFile(path, []byte(Serialize(f)), perm); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}
	return nil
}

// Materialize copies example to target byte for byte when target does not
// exist yet. It reports whether a copy was made.
func Materialize(example, target string, perm os.FileMode) (copied bool, err error) {
	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("failed to stat env file: %w", err)
	}

	if err := copyFile(example, target, perm); err != nil {
		return false, err
	}
	return true, nil
}

// copyFile copies src to dst, surfacing close errors.
func copyFile(src, dst string, perm os.FileMode) (retErr error) {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open env example: %w", err)
	}
	defer func() {
		if closeErr := srcFile.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close env example: %w", closeErr)
		}
	}()

	destFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create env file: %w", err)
	}
	defer func() {
		if closeErr := destFile.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("failed to close env file: %w", closeErr)
		}
	}()

	if _, err := io.Copy(destFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy env example: %w", err)
	}
	return nil
}
