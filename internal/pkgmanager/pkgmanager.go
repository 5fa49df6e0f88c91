// Package pkgmanager detects a project's JavaScript package manager and
// installs dev dependencies with it.
package pkgmanager

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sofic/sofic/internal/fsprobe"
	"github.com/sofic/sofic/internal/manifest"
)

// Agent is a package manager executable.
type Agent string

const (
	NPM  Agent = "npm"
	PNPM Agent = "pnpm"
	Yarn Agent = "yarn"
	Bun  Agent = "bun"
)

// lockfiles are checked in order after the packageManager field.
var lockfiles = []struct {
	name  string
	agent Agent
}{
	{"bun.lock", Bun},
	{"bun.lockb", Bun},
	{"pnpm-lock.yaml", PNPM},
	{"yarn.lock", Yarn},
	{"package-lock.json", NPM},
}

// Detect picks the agent for dir. The manifest's packageManager field wins
// (m may be nil), then lockfiles, then npm.
func Detect(dir string, m *manifest.Manifest) Agent {
	if m != nil && m.PackageManager != "" {
		name, _, _ := strings.Cut(m.PackageManager, "@")
		switch agent := Agent(name); agent {
		case NPM, PNPM, Yarn, Bun:
			return agent
		}
	}

	for _, lf := range lockfiles {
		if fsprobe.FileExists(filepath.Join(dir, lf.name)) {
			return lf.agent
		}
	}
	return NPM
}

// InstallCommand returns the argv that adds pkgs as dev dependencies.
func InstallCommand(agent Agent, pkgs []string) []string {
	var argv []string
	switch agent {
	case PNPM:
		argv = []string{"pnpm", "add", "-D"}
	case Yarn:
		argv = []string{"yarn", "add", "-D"}
	case Bun:
		argv = []string{"bun", "add", "-d"}
	default:
		argv = []string{"npm", "install", "-D"}
	}
	return append(argv, pkgs...)
}

// Runner executes a command in a directory.
type Runner interface {
	Run(ctx context.Context, dir string, argv ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r ExecRunner) Run(ctx context.Context, dir string, argv ...string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command")
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", strings.Join(argv, " "), err)
	}
	return nil
}

// Install adds pkgs as dev dependencies of the project in dir using the
// detected agent. An empty package list is a no-op.
func Install(ctx context.Context, runner Runner, dir string, agent Agent, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	return runner.Run(ctx, dir, InstallCommand(agent, pkgs)...)
}
