package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile     string
	quiet          bool
	verbose        bool
	outputFormat   string
	outputFile     string
	noColor        bool
	concurrency    int
	useBaseline    bool
	createBaseline bool
	baselinePath   string
	saveConfigPath string
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

var rootCmd = &cobra.Command{
	Use:   "sofic",
	Short: "Sofic - opinionated checks for repositories and JavaScript packages",
	Long: `Sofic checks a repository, or every repository directly under a directory,
for the files and package.json settings a well-kept project is expected to have:
.editorconfig, .gitattributes, ESLint and Prettier configs, CI workflows and the
dev dependencies that go with them.

Running sofic without a command checks the current directory.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(cmd, ""); err != nil {
			fail(cmd, err)
		}
	},
}

// Execute runs the root command. Interrupts cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// cobra only hands the context to subcommands that have none yet, so a
	// second Execute in the same process would reuse the cancelled one.
	setContext(rootCmd, ctx)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		exitFunc(1)
	}
}

func setContext(c *cobra.Command, ctx context.Context) {
	c.SetContext(ctx)
	for _, sub := range c.Commands() {
		setContext(sub, ctx)
	}
}

// fail prints err in red on stderr and exits 1.
func fail(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", errorStyle.Render("Error:"), err)
	exitFunc(1)
}

func init() {
	rootCmd.SetErrPrefix(errorStyle.Render("Error:"))

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default .soficrc.{json,yaml,yml} in the working directory)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	flags.StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	flags.StringVarP(&outputFile, "output", "o", "", "Output file for json and markdown reports")
	flags.BoolVar(&noColor, "no-color", false, "Disable coloured output")
	flags.IntVar(&concurrency, "concurrency", 1, "Number of directories checked in parallel")
	flags.BoolVar(&useBaseline, "baseline", false, "Hide findings recorded in the baseline file")
	flags.BoolVar(&createBaseline, "create-baseline", false, "Record current findings in the baseline file")
	flags.StringVar(&baselinePath, "baseline-path", ".sofic-baseline.json", "Baseline file, relative to the checked root")
	flags.StringVar(&saveConfigPath, "save-config", "", "Write the effective settings to this file (e.g. .soficrc.json) before checking")

	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
	_ = viper.BindPFlag("noColor", flags.Lookup("no-color"))
	_ = viper.BindPFlag("concurrency", flags.Lookup("concurrency"))
	_ = viper.BindPFlag("baseline", flags.Lookup("baseline"))
	_ = viper.BindPFlag("createBaseline", flags.Lookup("create-baseline"))
	_ = viper.BindPFlag("baselinePath", flags.Lookup("baseline-path"))
}
