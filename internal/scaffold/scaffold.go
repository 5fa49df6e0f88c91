// Package scaffold implements `sofic add` and `sofic init`: it writes a
// chosen config into a project, installs the packages the config needs and
// registers the matching package.json script.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/sofic/sofic/internal/fsprobe"
	"github.com/sofic/sofic/internal/manifest"
	"github.com/sofic/sofic/internal/pkgmanager"
	"github.com/sofic/sofic/internal/prompt"
	"github.com/sofic/sofic/internal/snippets"
	"github.com/sofic/sofic/internal/userconfig"
)

// ErrUnsupportedTool is returned for a tool name add or init does not know.
var ErrUnsupportedTool = errors.New("tool is not supported")

const (
	symbolSuccess = "✔"
	symbolInfo    = "ℹ"

	choiceDefault = "default"
	choiceNew     = "new"
	choiceRename  = "rename"
	choiceDelete  = "delete"
	userPrefix    = "user:"
)

// Scaffolder runs the add and init flows against one target directory.
type Scaffolder struct {
	dir      string
	store    *userconfig.Store
	registry *snippets.Registry
	prompter prompt.Prompter
	runner   pkgmanager.Runner
	out      io.Writer
	logger   *zap.Logger
	version  string
}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(s *Scaffolder) { s.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scaffolder) { s.logger = l }
}

// WithVersion sets the version stamped into a newly created user store.
func WithVersion(v string) Option {
	return func(s *Scaffolder) { s.version = v }
}

// New creates a Scaffolder for dir.
func New(dir string, store *userconfig.Store, prompter prompt.Prompter, runner pkgmanager.Runner, opts ...Option) (*Scaffolder, error) {
	registry, err := snippets.Load()
	if err != nil {
		return nil, err
	}
	s := &Scaffolder{
		dir:      dir,
		store:    store,
		registry: registry,
		prompter: prompter,
		runner:   runner,
		out:      io.Discard,
		logger:   zap.NewNop(),
		version:  "0.0.0",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Tools lists the tools add accepts.
func (s *Scaffolder) Tools() []string {
	return s.registry.Names()
}

// chosenConfig is the config the user picked, or nothing when the user
// renamed or deleted a saved config instead.
type chosenConfig struct {
	name string
	data []byte
}

// Add runs the add flow for tool.
func (s *Scaffolder) Add(ctx context.Context, tool string) error {
	t, ok := s.registry.Tool(tool)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedTool, tool)
	}

	if err := s.store.Ensure(s.version); err != nil {
		return err
	}

	chosen, err := s.chooseConfig(t)
	if err != nil {
		return err
	}
	if chosen == nil {
		return nil
	}

	packages := append([]string(nil), t.Packages...)
	switch t.Name {
	case "eslint":
		packages = appendUnique(packages, ReadESLintImports(string(chosen.data))...)
	case "prettier":
		packages = appendUnique(packages, ReadPrettierPlugins(string(chosen.data))...)
	}

	target := t.TargetFor(chosen.name)
	if err := os.WriteFile(filepath.Join(s.dir, target), chosen.data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	fmt.Fprintf(s.out, "%s Added %s\n", symbolSuccess, target)

	if len(packages) > 0 {
		agent := pkgmanager.Detect(s.dir, s.readManifest())
		s.logger.Debug("installing packages",
			zap.String("tool", t.Name),
			zap.String("agent", string(agent)),
			zap.Strings("packages", packages))
		if err := pkgmanager.Install(ctx, s.runner, s.dir, agent, packages); err != nil {
			return fmt.Errorf("installing %s packages: %w", t.Name, err)
		}
		fmt.Fprintf(s.out, "%s Installed %s\n", symbolSuccess, strings.Join(packages, ", "))
	}

	if t.Script != nil {
		added, err := manifest.AddScript(s.dir, t.Script.Name, t.Script.Command)
		if err != nil {
			return err
		}
		if added {
			fmt.Fprintf(s.out, "%s Added %s to scripts\n", symbolSuccess, t.Script.Name)
		} else {
			fmt.Fprintf(s.out, "%s `%s` already exists in `scripts` or no package.json was found\n", symbolInfo, t.Script.Name)
		}
	}

	return nil
}

// readManifest returns the project's manifest, or nil when there is none or
// it cannot be parsed. Detection then falls back to lockfiles.
func (s *Scaffolder) readManifest() *manifest.Manifest {
	if !fsprobe.FileExists(filepath.Join(s.dir, manifest.FileName)) {
		return nil
	}
	m, err := manifest.Read(s.dir)
	if err != nil {
		s.logger.Debug("ignoring unreadable manifest", zap.Error(err))
		return nil
	}
	return m
}

func (s *Scaffolder) chooseConfig(t snippets.Tool) (*chosenConfig, error) {
	idx, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	names := idx.Names(t.Name)

	options := []prompt.Option{{Label: "Default", Value: choiceDefault, Description: "Use the default config"}}
	for _, name := range names {
		options = append(options, prompt.Option{Label: name, Value: userPrefix + name, Description: fmt.Sprintf("Use the %s config", name)})
	}
	options = append(options, prompt.Option{Label: "New config", Value: choiceNew, Description: "Create a new config"})
	if len(names) > 0 {
		options = append(options,
			prompt.Option{Label: "Rename config", Value: choiceRename, Description: "Rename a config"},
			prompt.Option{Label: "Delete config", Value: choiceDelete, Description: "Delete a config"},
		)
	}

	answer, err := s.prompter.Select("Select a config", options)
	if err != nil {
		return nil, err
	}

	switch answer {
	case choiceDefault:
		data, err := snippets.Default(t)
		if err != nil {
			return nil, err
		}
		return &chosenConfig{name: t.File, data: data}, nil

	case choiceNew:
		return s.newConfig(idx, t.Name)

	case choiceRename:
		return nil, s.renameConfig(idx, t.Name, names)

	case choiceDelete:
		return nil, s.deleteConfig(idx, t.Name, names)

	default:
		name := strings.TrimPrefix(answer, userPrefix)
		path, err := s.store.ConfigPath(idx, t.Name, name)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s config %q: %w", t.Name, name, err)
		}
		return &chosenConfig{name: path, data: data}, nil
	}
}

func (s *Scaffolder) newConfig(idx *userconfig.Index, tool string) (*chosenConfig, error) {
	name, err := s.prompter.Input("Config name", uniqueName(idx, tool))
	if err != nil {
		return nil, err
	}

	src, err := s.prompter.Input("Config path", func(v string) error {
		if v == "" {
			return errors.New("config path is required")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !filepath.IsAbs(src) {
		src = filepath.Join(s.dir, src)
	}
	if !fsprobe.FileExists(src) {
		return nil, fmt.Errorf("config file %s does not exist", src)
	}

	stored, err := s.store.AddConfig(idx, tool, name, src)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "%s Saved config file '%s'\n", symbolSuccess, name)

	data, err := os.ReadFile(stored)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", stored, err)
	}
	return &chosenConfig{name: stored, data: data}, nil
}

func (s *Scaffolder) renameConfig(idx *userconfig.Index, tool string, names []string) error {
	old, err := s.prompter.Select("Select a config to rename", nameOptions(names))
	if err != nil {
		return err
	}
	newName, err := s.prompter.Input("New config name", uniqueName(idx, tool))
	if err != nil {
		return err
	}
	if err := s.store.Rename(idx, tool, old, newName); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s Renamed config '%s' to '%s'\n", symbolSuccess, old, newName)
	return nil
}

func (s *Scaffolder) deleteConfig(idx *userconfig.Index, tool string, names []string) error {
	name, err := s.prompter.Select("Select a config to delete", nameOptions(names))
	if err != nil {
		return err
	}
	if err := s.store.Delete(idx, tool, name); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s Deleted config '%s'\n", symbolSuccess, name)
	return nil
}

func uniqueName(idx *userconfig.Index, tool string) func(string) error {
	return func(v string) error {
		if v == "" {
			return userconfig.ErrEmptyName
		}
		if idx.Has(tool, v) {
			return userconfig.ErrConfigExists
		}
		return nil
	}
}

func nameOptions(names []string) []prompt.Option {
	options := make([]prompt.Option, len(names))
	for i, name := range names {
		options[i] = prompt.Option{Label: name, Value: name}
	}
	return options
}

func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, existing := range list {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
