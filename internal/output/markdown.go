package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sofic/sofic/internal/lint"
	"github.com/sofic/sofic/internal/version"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	out io.Writer
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(out io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{out: out}
}

// Format formats the summary as Markdown
func (f *MarkdownFormatter) Format(summary *lint.Summary) error {
	var builder strings.Builder

	builder.WriteString("# Sofic Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Root:** `%s`\n\n", summary.Root))
	builder.WriteString(fmt.Sprintf("**Version:** %s\n\n", version.Version))

	flagged := 0
	for _, r := range summary.Results {
		if r.HasIssues() {
			flagged++
		}
	}

	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Metric | Count |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Directories Checked | %d |\n", len(summary.Results)))
	builder.WriteString(fmt.Sprintf("| Flagged | %d |\n", flagged))
	builder.WriteString(fmt.Sprintf("| Failed | %d |\n", summary.FailedDirectories))
	builder.WriteString(fmt.Sprintf("| Findings | %d |\n", summary.TotalFindings))
	if summary.BaselineIgnored > 0 {
		builder.WriteString(fmt.Sprintf("| Baseline Ignored | %d |\n", summary.BaselineIgnored))
	}
	builder.WriteString("\n")

	builder.WriteString("## Findings\n\n")
	if flagged == 0 {
		builder.WriteString("*No findings.*\n")
	}

	for _, result := range summary.Results {
		if !result.HasIssues() {
			continue
		}

		builder.WriteString(fmt.Sprintf("### `%s`\n\n", result.Dir))
		if result.Err != nil {
			builder.WriteString(fmt.Sprintf("**Error:** %s\n\n", result.Err))
			continue
		}

		builder.WriteString("| Subsystem | Kind | Message |\n")
		builder.WriteString("|-----------|------|---------|\n")
		for _, finding := range result.Findings {
			builder.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				escapeTableCell(finding.Subsystem), finding.Kind, escapeTableCell(finding.Message)))
		}
		builder.WriteString("\n")
	}

	if _, err := io.WriteString(f.out, builder.String()); err != nil {
		return fmt.Errorf("error writing markdown: %w", err)
	}
	return nil
}

// escapeTableCell keeps pipes from breaking the table layout.
func escapeTableCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
