package cli

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X".
var version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		printf(cmd.OutOrStdout(), "egx version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
