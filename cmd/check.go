package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sofic/sofic/internal/baseline"
	"github.com/sofic/sofic/internal/config"
	"github.com/sofic/sofic/internal/lint"
	"github.com/sofic/sofic/internal/logging"
	"github.com/sofic/sofic/internal/outputters"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check a repository or every repository under a directory",
	Long: `Check evaluates the given directory (default: the working directory).

If the directory is itself a git repository or a package.json directory it is
checked alone. Otherwise each immediate subdirectory is checked. Findings are
printed per directory; directories without findings print nothing.

Findings do not change the exit code. Sofic exits 1 only when the path is not
a directory or a directory could not be checked.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		if err := runCheck(cmd, root); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// runCheck walks root and reports the findings. An empty root falls back to
// the configured one.
func runCheck(cmd *cobra.Command, root string) error {
	cfg, err := config.LoadConfig(configFile, root)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}

	logger := logging.New(cfg.Verbose)
	defer logging.Sync(logger)

	if saveConfigPath != "" {
		if err := config.SaveConfig(cfg, saveConfigPath); err != nil {
			return fmt.Errorf("error saving configuration: %w", err)
		}
		if !cfg.Quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration saved: %s\n", saveConfigPath)
		}
	}

	baselineFile := cfg.BaselinePath
	if !filepath.IsAbs(baselineFile) {
		baselineFile = filepath.Join(cfg.Root, baselineFile)
	}

	var b *baseline.Baseline
	if cfg.Baseline {
		if _, err := os.Stat(baselineFile); err == nil {
			b, err = baseline.LoadBaseline(baselineFile)
			if err != nil && !cfg.Quiet {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Failed to load baseline: %v\n", err)
				b = nil
			}
		}
	}

	walker := lint.NewWalker(
		lint.WithConcurrency(cfg.Concurrency),
		lint.WithLogger(logger),
	)
	summary, err := walker.Walk(cmd.Context(), cfg.Root)
	if err != nil {
		return err
	}

	var issues []baseline.Issue
	if cfg.CreateBaseline {
		issues = lint.CollectAllIssues(summary)
	}

	if b != nil {
		lint.FilterResults(summary, b)
	}

	outputter := outputters.NewOutputter(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err := outputter.Format(summary); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}

	if cfg.CreateBaseline {
		b = baseline.CreateBaseline(issues)
		b.CreatedAt = time.Now().UTC().Format(time.RFC3339)

		if err := b.SaveBaseline(baselineFile); err != nil {
			return fmt.Errorf("failed to save baseline: %w", err)
		}
		if !cfg.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "\nBaseline created: %s (%d issues)\n", baselineFile, len(b.Fingerprints))
		}
	}

	if summary.HasFailures() {
		return fmt.Errorf("%d of %d directories could not be checked", summary.FailedDirectories, len(summary.Results))
	}
	return nil
}
