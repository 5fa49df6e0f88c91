package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sofic/sofic/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sofic version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.Tool, version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
