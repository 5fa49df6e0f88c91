package lint

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sofic/sofic/internal/types"
)

func TestWalkRootQualifies(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"package.json": `{"private": true}`})
	// A qualifying child must be ignored when the root qualifies.
	makeGitRepo(t, filepath.Join(root, "packages", "child"), "")
	writeTree(t, root, map[string]string{"nested/package.json": `{}`})

	summary, err := NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(summary.Results) != 1 {
		t.Fatalf("expected only the root to be evaluated, got %d results", len(summary.Results))
	}
	if summary.Results[0].Dir != summary.Root {
		t.Errorf("evaluated %s, want %s", summary.Results[0].Dir, summary.Root)
	}
}

func TestWalkSubdirectories(t *testing.T) {
	root := t.TempDir()

	repo := filepath.Join(root, "repo")
	makeGitRepo(t, repo, "https://github.com/sofic/repo.git")
	writeTree(t, repo, map[string]string{
		".editorconfig":            "",
		".gitignore":               "",
		".gitattributes":           "",
		".github/workflows/ci.yml": "on: push",
	})

	pkg := filepath.Join(root, "pkg")
	writeTree(t, pkg, map[string]string{"package.json": `{"private": true}`})

	// Grandchildren of a non-qualifying child are never inspected.
	writeTree(t, root, map[string]string{
		"plain/deeper/package.json": `{`,
		"notes.txt":                 "",
	})

	summary, err := NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	var dirs []string
	for _, r := range summary.Results {
		if r.Err != nil {
			t.Errorf("unexpected error for %s: %v", r.Dir, r.Err)
		}
		dirs = append(dirs, filepath.Base(r.Dir))
	}
	if want := []string{"pkg", "plain", "repo"}; !reflect.DeepEqual(dirs, want) {
		t.Errorf("evaluated %v, want %v", dirs, want)
	}

	byName := map[string]DirectoryResult{}
	for _, r := range summary.Results {
		byName[filepath.Base(r.Dir)] = r
	}
	if got := byName["repo"].Findings; len(got) != 0 {
		t.Errorf("repo should be clean, got %v", types.Strings(got))
	}
	if got := types.Strings(byName["plain"].Findings); !reflect.DeepEqual(got, []string{"files: missing `.editorconfig`"}) {
		t.Errorf("plain findings = %q", got)
	}
	if len(byName["pkg"].Findings) != 7 {
		t.Errorf("pkg findings = %q", types.Strings(byName["pkg"].Findings))
	}
	if summary.TotalFindings != 8 {
		t.Errorf("TotalFindings = %d, want 8", summary.TotalFindings)
	}
}

func TestWalkIsolatesFailures(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"broken/package.json": `{"name": `,
		"good/package.json":   `{"private": true}`,
	})

	summary, err := NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(summary.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(summary.Results))
	}
	if summary.Results[0].Err == nil {
		t.Error("expected broken/ to fail")
	}
	if summary.Results[1].Err != nil || len(summary.Results[1].Findings) == 0 {
		t.Errorf("expected good/ to be evaluated, got %+v", summary.Results[1])
	}
	if !summary.HasFailures() || summary.FailedDirectories != 1 {
		t.Errorf("FailedDirectories = %d, want 1", summary.FailedDirectories)
	}
}

func TestWalkInvalidRoot(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "file.txt")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{file, filepath.Join(root, "missing")} {
		if _, err := NewWalker().Walk(context.Background(), path); !errors.Is(err, ErrNotDirectory) {
			t.Errorf("Walk(%s) error = %v, want ErrNotDirectory", path, err)
		}
	}
}

func TestWalkConcurrentKeepsOrder(t *testing.T) {
	root := t.TempDir()
	names := []string{"a", "b", "c", "d", "e", "f"}
	for _, name := range names {
		writeTree(t, filepath.Join(root, name), map[string]string{"package.json": `{"private": true}`})
	}

	sequential, err := NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	concurrent, err := NewWalker(WithConcurrency(4)).Walk(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}

	for i, name := range names {
		if filepath.Base(concurrent.Results[i].Dir) != name {
			t.Errorf("result %d is %s, want %s", i, concurrent.Results[i].Dir, name)
		}
		if !reflect.DeepEqual(sequential.Results[i].Findings, concurrent.Results[i].Findings) {
			t.Errorf("findings differ for %s", name)
		}
	}
}

func TestWalkCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "a"), map[string]string{"package.json": `{}`})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := NewWalker().Walk(ctx, root)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if !errors.Is(summary.Results[0].Err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", summary.Results[0].Err)
	}
}
