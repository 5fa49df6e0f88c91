package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readManifest(t *testing.T, dir string) *Manifest {
	t.Helper()
	m, err := Read(dir)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return m
}

func TestAddScript(t *testing.T) {
	t.Run("adds script and keeps existing ones", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{FileName: `{"name": "test-project", "scripts": {"build": "tsc"}}`})

		added, err := AddScript(dir, "lint", "eslint .")
		if err != nil {
			t.Fatalf("AddScript() error = %v", err)
		}
		if !added {
			t.Fatal("expected script to be added")
		}

		m := readManifest(t, dir)
		if m.Scripts["lint"] != "eslint ." {
			t.Errorf("lint = %q, want %q", m.Scripts["lint"], "eslint .")
		}
		if m.Scripts["build"] != "tsc" {
			t.Errorf("build = %q, want %q", m.Scripts["build"], "tsc")
		}
		if m.Name != "test-project" {
			t.Errorf("name = %q, want test-project", m.Name)
		}
	})

	t.Run("does not overwrite existing script", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{FileName: `{"scripts": {"format:check": "custom-formatter --check"}}`})

		added, err := AddScript(dir, "format:check", "prettier . --check")
		if err != nil {
			t.Fatalf("AddScript() error = %v", err)
		}
		if added {
			t.Error("expected script not to be added")
		}
		if got := readManifest(t, dir).Scripts["format:check"]; got != "custom-formatter --check" {
			t.Errorf("format:check = %q", got)
		}
	})

	t.Run("creates scripts object", func(t *testing.T) {
		dir := writeFiles(t, map[string]string{FileName: `{"name": "test-project"}`})

		added, err := AddScript(dir, "format:check", "prettier . --check")
		if err != nil {
			t.Fatalf("AddScript() error = %v", err)
		}
		if !added {
			t.Fatal("expected script to be added")
		}
		if got := readManifest(t, dir).Scripts["format:check"]; got != "prettier . --check" {
			t.Errorf("format:check = %q", got)
		}

		data, err := os.ReadFile(filepath.Join(dir, FileName))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasSuffix(string(data), "\n") {
			t.Error("expected trailing newline")
		}
		if strings.Index(string(data), `"name"`) > strings.Index(string(data), `"scripts"`) {
			t.Error("expected existing keys to keep their position")
		}
	})

	t.Run("no package.json", func(t *testing.T) {
		added, err := AddScript(t.TempDir(), "lint", "eslint .")
		if err != nil {
			t.Fatalf("AddScript() error = %v", err)
		}
		if added {
			t.Error("expected false without package.json")
		}
	})
}

func TestEscapePointer(t *testing.T) {
	if got := escapePointer("a/b~c"); got != "a~1b~0c" {
		t.Errorf("escapePointer() = %q", got)
	}
}
