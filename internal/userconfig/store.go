// Package userconfig manages the per-user store of named config files
// kept under ~/.sofic/configs.
//
// The store is a JSON index (configs.json) mapping tool -> name -> relative
// path, plus one directory per saved file. Index documents are validated
// against the #UserConfig CUE schema on load.
package userconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/sofic/sofic/internal/cue"
)

const (
	// DirName is the store directory under the user's home.
	DirName = ".sofic"
	// FileName is the index file inside <home>/.sofic/configs.
	FileName = "configs.json"
)

// Tools are the config kinds the store keeps, in display order.
var Tools = []string{"eslint", "prettier", "editorconfig", "gitattributes"}

var (
	ErrUnknownTool    = errors.New("unknown tool")
	ErrConfigNotFound = errors.New("config not found")
	ErrConfigExists   = errors.New("config with this name already exists")
	ErrEmptyName      = errors.New("config name is required")
)

// Entry points at a saved config file relative to the tool directory.
type Entry struct {
	RelativePath string `json:"relative_path"`
}

// Index is the decoded configs.json document.
type Index struct {
	Version string                      `json:"version"`
	Configs map[string]map[string]Entry `json:"configs"`
}

// Names returns the config names saved for tool, sorted.
func (idx *Index) Names(tool string) []string {
	names := make([]string, 0, len(idx.Configs[tool]))
	for name := range idx.Configs[tool] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether tool has a config called name.
func (idx *Index) Has(tool, name string) bool {
	_, ok := idx.Configs[tool][name]
	return ok
}

// Store reads and writes the config store rooted at <home>/.sofic/configs.
type Store struct {
	root string
}

// New returns a Store for the given home directory. Nothing is touched on
// disk until Ensure or a mutating call.
func New(home string) *Store {
	return &Store{root: filepath.Join(home, DirName, "configs")}
}

// Root is the configs directory.
func (s *Store) Root() string {
	return s.root
}

// Path is the location of configs.json.
func (s *Store) Path() string {
	return filepath.Join(s.root, FileName)
}

// Ensure creates the per-tool directories and, when missing, an index with
// an empty map for every tool stamped with version.
func (s *Store) Ensure(version string) error {
	for _, tool := range Tools {
		if err := os.MkdirAll(filepath.Join(s.root, tool), 0755); err != nil {
			return fmt.Errorf("creating config directory for %s: %w", tool, err)
		}
	}

	if _, err := os.Stat(s.Path()); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", s.Path(), err)
	}

	idx := &Index{Version: version, Configs: make(map[string]map[string]Entry, len(Tools))}
	for _, tool := range Tools {
		idx.Configs[tool] = map[string]Entry{}
	}
	return s.Save(idx)
}

// Load reads and validates configs.json.
func (s *Store) Load() (*Index, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		return nil, fmt.Errorf("reading user configs: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path(), err)
	}

	validator, err := cue.Default()
	if err != nil {
		return nil, err
	}
	if err := validator.Validate(cue.SchemaUserConfig, raw); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path(), err)
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.Path(), err)
	}
	if idx.Configs == nil {
		idx.Configs = map[string]map[string]Entry{}
	}
	return &idx, nil
}

// Save writes idx to configs.json with two-space indentation.
func (s *Store) Save(idx *Index) error {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding user configs: %w", err)
	}
	if err := os.WriteFile(s.Path(), data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path(), err)
	}
	return nil
}

// ConfigPath resolves the absolute path of a saved config.
func (s *Store) ConfigPath(idx *Index, tool, name string) (string, error) {
	entry, ok := idx.Configs[tool][name]
	if !ok {
		return "", fmt.Errorf("%s config %q: %w", tool, name, ErrConfigNotFound)
	}
	return filepath.Join(s.root, tool, filepath.FromSlash(entry.RelativePath)), nil
}

// AddConfig copies src into <tool>/<uuid>/<basename> and records it under
// name. It returns the path of the stored copy.
func (s *Store) AddConfig(idx *Index, tool, name, src string) (string, error) {
	if err := checkTool(tool); err != nil {
		return "", err
	}
	if name == "" {
		return "", ErrEmptyName
	}
	if idx.Has(tool, name) {
		return "", fmt.Errorf("%s config %q: %w", tool, name, ErrConfigExists)
	}

	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("config file %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("config file %s is not a regular file", src)
	}

	dirName := uuid.NewString()
	baseName := filepath.Base(src)
	dst := filepath.Join(s.root, tool, dirName, baseName)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	if err := copyFile(src, dst); err != nil {
		return "", err
	}

	if idx.Configs[tool] == nil {
		idx.Configs[tool] = map[string]Entry{}
	}
	idx.Configs[tool][name] = Entry{RelativePath: path.Join(dirName, baseName)}
	if err := s.Save(idx); err != nil {
		return "", err
	}
	return dst, nil
}

// Rename moves the entry oldName to newName. The stored file stays put.
func (s *Store) Rename(idx *Index, tool, oldName, newName string) error {
	if newName == "" {
		return ErrEmptyName
	}
	entry, ok := idx.Configs[tool][oldName]
	if !ok {
		return fmt.Errorf("%s config %q: %w", tool, oldName, ErrConfigNotFound)
	}
	if idx.Has(tool, newName) {
		return fmt.Errorf("%s config %q: %w", tool, newName, ErrConfigExists)
	}

	idx.Configs[tool][newName] = entry
	delete(idx.Configs[tool], oldName)
	return s.Save(idx)
}

// Delete drops the entry and removes the directory holding its file.
func (s *Store) Delete(idx *Index, tool, name string) error {
	entry, ok := idx.Configs[tool][name]
	if !ok {
		return fmt.Errorf("%s config %q: %w", tool, name, ErrConfigNotFound)
	}

	delete(idx.Configs[tool], name)
	if err := s.Save(idx); err != nil {
		return err
	}

	// entries written by AddConfig are <uuid>/<file>; only remove that directory
	if dir := path.Dir(path.Clean(entry.RelativePath)); dir != "." && dir != ".." && !strings.ContainsAny(dir, `/\`) {
		if err := os.RemoveAll(filepath.Join(s.root, tool, filepath.FromSlash(dir))); err != nil {
			return fmt.Errorf("removing stored config: %w", err)
		}
	}
	return nil
}

func checkTool(tool string) error {
	for _, t := range Tools {
		if t == tool {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTool, tool)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}
