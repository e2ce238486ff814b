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

// Package manifest edits the package.json of a freshly cloned project.
//
// Edits are applied to the raw JSON document rather than to a decoded
// struct so that every field the editor does not touch keeps its position
// and exact value.
package manifest

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"

	"github.com/buger/jsonparser"
	"github.com/cowdogmoo/expresso/errors"
)

// FileName is the manifest file at the project root.
const FileName = "package.json"

// ErrNotObject is returned when the manifest is valid JSON but not an object.
var ErrNotObject = stderrors.New("manifest is not a JSON object")

// ErrInvalidJSON is returned when the manifest cannot be parsed.
var ErrInvalidJSON = stderrors.New("manifest is not valid JSON")

// Fields are the values written into the manifest.
type Fields struct {
	Name        string
	Description string
	Author      string
	Repository  string
}

// clearedKeys are removed from the manifest; they point at the template's
// own issue tracker and homepage.
var clearedKeys = [][]string{
	{"repository", "type"},
	{"bugs"},
	{"homepage"},
}

// Update rewrites the manifest at path with fields. The file is only
// written when it could be read and parsed.
func Update(path string, fields Fields) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap("read manifest", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap("read manifest", path, err)
	}

	out, err := Apply(data, fields)
	if err != nil {
		return errors.Wrap("update manifest", path, err)
	}

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return errors.Wrap("write manifest", path, err)
	}
	return nil
}

// Apply returns data with fields applied, indented with two spaces and
// terminated by a newline.
func Apply(data []byte, fields Fields) ([]byte, error) {
	if !json.Valid(data) {
		return nil, ErrInvalidJSON
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, ErrNotObject
	}

	// jsonparser inserts new keys next to the closing brace and cannot
	// cope with whitespace around it, so edits run on the compact form.
	var compact bytes.Buffer
	if err := json.Compact(&compact, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	data = compact.Bytes()

	for _, path := range clearedKeys {
		data = jsonparser.Delete(data, path...)
	}

	var err error
	for _, kv := range []struct{ key, value string }{
		{"name", fields.Name},
		{"author", fields.Author},
		{"description", fields.Description},
	} {
		if data, err = setString(data, kv.value, kv.key); err != nil {
			return nil, err
		}
	}

	if data, err = setRepositoryURL(data, fields.Repository); err != nil {
		return nil, err
	}

	if !json.Valid(data) {
		return nil, fmt.Errorf("edited %w", ErrInvalidJSON)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, bytes.TrimSpace(data), "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent manifest: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// setRepositoryURL sets repository.url. A repository that is not an
// object (for example the "github:user/repo" shorthand) is replaced.
func setRepositoryURL(data []byte, url string) ([]byte, error) {
	_, dataType, _, err := jsonparser.Get(data, "repository")
	if err == nil && dataType != jsonparser.Object {
		obj := append(append([]byte(`{"url":`), encodeString(url)...), '}')
		return jsonparser.Set(data, obj, "repository")
	}
	return setString(data, url, "repository", "url")
}

func setString(data []byte, value string, keys ...string) ([]byte, error) {
	out, err := jsonparser.Set(data, encodeString(value), keys...)
	if err != nil {
		return nil, fmt.Errorf("failed to set %v: %w", keys, err)
	}
	return out, nil
}

// encodeString returns value as a JSON string literal without HTML
// escaping, so "Jane <jane@acme.io>" stays readable.
func encodeString(value string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(value)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
