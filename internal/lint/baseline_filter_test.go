package lint

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sofic/sofic/internal/baseline"
)

func TestFilterResults(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "a"), map[string]string{"package.json": `{"private": true}`})
	writeTree(t, filepath.Join(root, "b"), map[string]string{"README.md": ""})

	summary, err := NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	before := summary.TotalFindings

	if got := FilterResults(summary, nil); got != 0 {
		t.Errorf("nil baseline ignored %d", got)
	}

	b := baseline.CreateBaseline(CollectAllIssues(summary))

	// Re-walk so the baseline is applied to a fresh summary.
	summary, err = NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	writeTree(t, filepath.Join(root, "b"), map[string]string{"package.json": `{"private": true}`})

	ignored := FilterResults(summary, b)
	if ignored != before {
		t.Errorf("ignored %d, want %d", ignored, before)
	}
	if summary.TotalFindings != 0 {
		t.Errorf("TotalFindings = %d after filtering, want 0", summary.TotalFindings)
	}
	if summary.BaselineIgnored != before {
		t.Errorf("BaselineIgnored = %d, want %d", summary.BaselineIgnored, before)
	}

	// New findings in b are not covered by the baseline.
	summary, err = NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	FilterResults(summary, b)
	if summary.TotalFindings == 0 {
		t.Error("expected new findings to survive filtering")
	}
}

func TestCollectAllIssuesUsesRelativeDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, filepath.Join(root, "web"), map[string]string{"README.md": ""})

	summary, err := NewWalker().Walk(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	issues := CollectAllIssues(summary)
	if len(issues) != 1 || issues[0].Dir != "web" {
		t.Errorf("issues = %+v", issues)
	}
}
