package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sofic/sofic/internal/config"
	"github.com/sofic/sofic/internal/logging"
	"github.com/sofic/sofic/internal/pkgmanager"
	"github.com/sofic/sofic/internal/prompt"
	"github.com/sofic/sofic/internal/scaffold"
	"github.com/sofic/sofic/internal/userconfig"
	"github.com/sofic/sofic/internal/version"
)

var (
	addList  bool
	addDir   string
	initList bool
	initDir  string
)

// newPrompter and newRunner are replaced in tests.
var (
	newPrompter = func() prompt.Prompter {
		return prompt.Huh{Accessible: !isatty.IsTerminal(os.Stdin.Fd())}
	}
	newRunner = func(stdout, stderr io.Writer) pkgmanager.Runner {
		return pkgmanager.ExecRunner{Stdout: stdout, Stderr: stderr}
	}
)

var addCmd = &cobra.Command{
	Use:   "add [tool]",
	Short: "Add a config file to a project",
	Long: `Add writes a config for the given tool into the project, installs the
packages it imports with the project's package manager and adds the matching
package.json script.

Configs come from the bundled defaults or from your saved configs in
~/.sofic/configs. Run without a tool (or with --list) to see the tools.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAdd(cmd, args); err != nil {
			fail(cmd, err)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init [tool]",
	Short: "Initialize a new project",
	Long: `Init creates a project with the given tool and then runs every add flow.
Run without a tool (or with --list) to see the tools.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInit(cmd, args); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	addCmd.Flags().BoolVar(&addList, "list", false, "List available tools")
	addCmd.Flags().StringVar(&addDir, "dir", "", "Project directory (default: working directory)")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available tools")
	initCmd.Flags().StringVar(&initDir, "dir", "", "Project directory (default: working directory)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(initCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, cleanup, err := newScaffolder(cmd, addDir)
	if err != nil {
		return err
	}
	defer cleanup()

	if addList || len(args) == 0 {
		printTools(cmd.OutOrStdout(), s.Tools())
		return nil
	}
	return s.Add(cmd.Context(), args[0])
}

func runInit(cmd *cobra.Command, args []string) error {
	if initList || len(args) == 0 {
		printTools(cmd.OutOrStdout(), scaffold.InitTools)
		return nil
	}

	s, cleanup, err := newScaffolder(cmd, initDir)
	if err != nil {
		return err
	}
	defer cleanup()
	return s.Init(cmd.Context(), args[0])
}

func printTools(w io.Writer, tools []string) {
	fmt.Fprintln(w, "Available tools:")
	for _, tool := range tools {
		fmt.Fprintf(w, "  - %s\n", tool)
	}
}

// newScaffolder wires the add/init flow for dir, defaulting to the working
// directory.
func newScaffolder(cmd *cobra.Command, dir string) (*scaffold.Scaffolder, func(), error) {
	cfg, err := config.LoadConfig(configFile, "")
	if err != nil {
		return nil, nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if dir == "" {
		if dir, err = os.Getwd(); err != nil {
			return nil, nil, err
		}
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return nil, nil, err
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("%s is not a directory", dir)
	}

	logger := logging.New(cfg.Verbose)
	s, err := scaffold.New(
		dir,
		userconfig.New(cfg.Home),
		newPrompter(),
		newRunner(cmd.ErrOrStderr(), cmd.ErrOrStderr()),
		scaffold.WithOutput(cmd.OutOrStdout()),
		scaffold.WithLogger(logger),
		scaffold.WithVersion(version.Version),
	)
	if err != nil {
		return nil, nil, err
	}
	return s, func() { logging.Sync(logger) }, nil
}
