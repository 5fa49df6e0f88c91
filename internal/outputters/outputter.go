package outputters

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/sofic/sofic/internal/config"
	"github.com/sofic/sofic/internal/lint"
	"github.com/sofic/sofic/internal/output"
)

// Formatter renders a walk summary.
type Formatter interface {
	Format(summary *lint.Summary) error
}

// FormatterFactory creates a formatter for a format name writing to out.
type FormatterFactory interface {
	CreateFormatter(format string, out io.Writer) (Formatter, error)
}

// DefaultFormatterFactory builds the console, json and markdown formatters.
type DefaultFormatterFactory struct {
	config *config.Config
	stderr io.Writer
	color  bool
}

// CreateFormatter implements FormatterFactory.
func (f *DefaultFormatterFactory) CreateFormatter(format string, out io.Writer) (Formatter, error) {
	switch format {
	case "console":
		return output.NewConsoleFormatter(out, f.stderr, f.config.Quiet, f.color), nil
	case "json":
		return output.NewJSONFormatter(out, true), nil
	case "markdown":
		return output.NewMarkdownFormatter(out), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Outputter handles output formatting
type Outputter struct {
	config  *config.Config
	factory FormatterFactory
	stdout  io.Writer
}

// NewOutputter creates an Outputter writing to stdout and stderr. Colour is
// enabled only when stdout is a terminal and --no-color is not set.
func NewOutputter(cfg *config.Config, stdout, stderr io.Writer) *Outputter {
	return &Outputter{
		config: cfg,
		factory: &DefaultFormatterFactory{
			config: cfg,
			stderr: stderr,
			color:  !cfg.NoColor && isTerminal(stdout),
		},
		stdout: stdout,
	}
}

// Format formats the walk summary using the configured format. json and
// markdown reports go to the configured output file when one is set.
func (o *Outputter) Format(summary *lint.Summary) error {
	if summary.StartTime.IsZero() {
		summary.StartTime = time.Now()
	}

	out := o.stdout
	if o.config.Output != "" {
		file, err := os.Create(o.config.Output)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	formatter, err := o.factory.CreateFormatter(o.config.Format, out)
	if err != nil {
		return err
	}
	return formatter.Format(summary)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
