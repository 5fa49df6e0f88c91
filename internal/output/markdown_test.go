package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sofic/sofic/internal/lint"
)

func TestMarkdownFormatter_Format(t *testing.T) {
	var out bytes.Buffer
	if err := NewMarkdownFormatter(&out).Format(sampleSummary()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"# Sofic Report",
		"**Root:** `/work`",
		"| Directories Checked | 3 |",
		"| Flagged | 2 |",
		"| Failed | 1 |",
		"| Findings | 2 |",
		"### `/work/pkg`",
		"| files | missing-file | missing `.editorconfig` |",
		"### `/work/broken`",
		"**Error:** parse package.json",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, "### `/work/clean`") {
		t.Error("clean directory should not get a section")
	}
}

func TestMarkdownFormatter_NoFindings(t *testing.T) {
	var out bytes.Buffer
	summary := &lint.Summary{Root: "/work", Results: []lint.DirectoryResult{{Dir: "/work/a"}}}
	if err := NewMarkdownFormatter(&out).Format(summary); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(out.String(), "*No findings.*") {
		t.Errorf("output = %q", out.String())
	}
}

func TestEscapeTableCell(t *testing.T) {
	if got := escapeTableCell("a|b"); got != `a\|b` {
		t.Errorf("escapeTableCell() = %q", got)
	}
}
