package output

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/sofic/sofic/internal/lint"
)

const (
	symbolError = "✖"
	symbolWarn  = "⚠"

	colorRed    = "9"
	colorYellow = "3"
	colorGray   = "7"
)

// ConsoleFormatter prints findings grouped under a directory header.
// Directories without findings print nothing.
type ConsoleFormatter struct {
	out      io.Writer
	errOut   io.Writer
	quiet    bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter. Failed directories are
// written to errOut so they stand apart from ordinary findings.
func NewConsoleFormatter(out, errOut io.Writer, quiet, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		out:      out,
		errOut:   errOut,
		quiet:    quiet,
		colorize: colorize,
	}
}

// Format formats the summary for console output
func (f *ConsoleFormatter) Format(summary *lint.Summary) error {
	for _, result := range summary.Results {
		if !result.HasIssues() {
			continue
		}
		if result.Err != nil {
			f.printFailure(result)
			continue
		}
		f.printFindings(result)
	}

	f.printSummary(summary)
	return nil
}

// paint colours s, or returns it unchanged when colour is off.
func (f *ConsoleFormatter) paint(color, s string) string {
	if !f.colorize {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(s)
}

func (f *ConsoleFormatter) header(dir string) string {
	if !f.colorize {
		return dir
	}
	return lipgloss.NewStyle().Underline(true).Render(dir)
}

// printFindings prints one directory's header followed by its findings
func (f *ConsoleFormatter) printFindings(result lint.DirectoryResult) {
	fmt.Fprintf(f.out, "\n%s\n", f.header(result.Dir))
	for _, finding := range result.Findings {
		fmt.Fprintf(f.out, "%s %s\n", f.paint(colorRed, symbolError), finding.String())
	}
}

// printFailure prints a directory that could not be evaluated
func (f *ConsoleFormatter) printFailure(result lint.DirectoryResult) {
	fmt.Fprintf(f.errOut, "\n%s\n", f.header(result.Dir))
	fmt.Fprintf(f.errOut, "%s %s\n", f.paint(colorRed, symbolError), f.paint(colorRed, "error: "+result.Err.Error()))
}

// printSummary prints the summary statistics when there was anything to report
func (f *ConsoleFormatter) printSummary(summary *lint.Summary) {
	if f.quiet {
		return
	}

	if summary.BaselineIgnored > 0 {
		fmt.Fprintf(f.out, "\n%s\n", f.paint(colorGray, fmt.Sprintf("%d baseline issues ignored", summary.BaselineIgnored)))
	}

	if summary.TotalFindings == 0 && summary.FailedDirectories == 0 {
		return
	}

	flagged := 0
	for _, r := range summary.Results {
		if r.HasIssues() {
			flagged++
		}
	}

	line := fmt.Sprintf("%d of %d directories flagged, %d findings, %d failed",
		flagged, len(summary.Results), summary.TotalFindings, summary.FailedDirectories)
	if !summary.StartTime.IsZero() {
		line += fmt.Sprintf(" (%v)", time.Since(summary.StartTime).Round(time.Millisecond))
	}
	fmt.Fprintf(f.out, "\n%s %s\n", f.paint(colorYellow, symbolWarn), line)
}
