// Package snippets embeds the default config files offered by `sofic add`
// and the registry describing how each tool is installed.
package snippets

import (
	"embed"
	"fmt"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed registry.yaml
var registryData []byte

//go:embed all:files
var files embed.FS

// Script is a package.json script added alongside a config.
type Script struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
}

// Tool describes one addable config.
type Tool struct {
	Name string `yaml:"name"`
	// File is the bundled default snippet.
	File string `yaml:"file"`
	// Target is the name written into the project. Empty means the chosen
	// config's own base name.
	Target string `yaml:"target"`
	// Packages are always installed, before any discovered from the config.
	Packages []string `yaml:"packages"`
	Script   *Script  `yaml:"script"`
}

// TargetFor returns the destination file name for a config named source.
func (t Tool) TargetFor(source string) string {
	if t.Target != "" {
		return t.Target
	}
	return filepath.Base(source)
}

// Registry is the parsed registry.yaml.
type Registry struct {
	Tools []Tool `yaml:"tools"`
}

// Load parses the embedded registry.
func Load() (*Registry, error) {
	var r Registry
	if err := yaml.Unmarshal(registryData, &r); err != nil {
		return nil, fmt.Errorf("parsing snippet registry: %w", err)
	}
	for _, t := range r.Tools {
		if t.Name == "" || t.File == "" {
			return nil, fmt.Errorf("snippet registry: tool entry needs name and file")
		}
	}
	return &r, nil
}

// Names lists tools in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Tools))
	for i, t := range r.Tools {
		names[i] = t.Name
	}
	return names
}

// Tool looks up a tool by name.
func (r *Registry) Tool(name string) (Tool, bool) {
	for _, t := range r.Tools {
		if t.Name == name {
			return t, true
		}
	}
	return Tool{}, false
}

// Default returns the bundled snippet for t.
func Default(t Tool) ([]byte, error) {
	data, err := files.ReadFile(path.Join("files", t.File))
	if err != nil {
		return nil, fmt.Errorf("reading default %s config: %w", t.Name, err)
	}
	return data, nil
}
