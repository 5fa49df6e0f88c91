// Package manifest reads package.json manifests and legacy ESLint configs.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sofic/sofic/internal/cue"
)

// FileName is the manifest file name inside a package directory.
const FileName = "package.json"

// ErrInvalidManifest is wrapped when package.json parses but does not fit the schema.
var ErrInvalidManifest = errors.New("invalid manifest")

// Manifest is the subset of package.json the rules read.
//
// DevDependencies is nil when the field is absent and non-nil (possibly empty)
// when present. Use the accessors instead of indexing the map directly.
type Manifest struct {
	Name            string            `json:"name,omitempty"`
	Private         json.RawMessage   `json:"private,omitempty"`
	PackageManager  string            `json:"packageManager,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
	Scripts         map[string]string `json:"scripts,omitempty"`
}

// IsPrivate reports whether the manifest declares "private": true. Any other
// value, including the string "true", leaves the package public.
func (m *Manifest) IsPrivate() bool {
	return bytes.Equal(bytes.TrimSpace(m.Private), []byte("true"))
}

// HasDevDependencies reports whether the devDependencies field is present at all.
func (m *Manifest) HasDevDependencies() bool {
	return m.DevDependencies != nil
}

// HasDevDependency reports whether name is a key of devDependencies.
// An absent devDependencies field means no dependency is present.
func (m *Manifest) HasDevDependency(name string) bool {
	if !m.HasDevDependencies() {
		return false
	}
	_, ok := m.DevDependencies[name]
	return ok
}

// HasScript reports whether a script with the given name is declared.
func (m *Manifest) HasScript(name string) bool {
	_, ok := m.Scripts[name]
	return ok
}

// Read parses <dir>/package.json. A missing file, invalid JSON or a schema
// mismatch is returned as an error; callers that need graceful degradation
// must check existence first.
func Read(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates manifest bytes. path is only used in errors.
func Parse(path string, data []byte) (*Manifest, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	validator, err := cue.Default()
	if err != nil {
		return nil, fmt.Errorf("loading schemas: %w", err)
	}
	if err := validator.Validate(cue.SchemaManifest, raw); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalidManifest, path, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return &m, nil
}
