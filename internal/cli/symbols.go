package cli

import (
	"github.com/spf13/cobra"

	"github.com/ahmedfahmy1117/egx/config"
	"github.com/ahmedfahmy1117/egx/internal/universe"
)

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List the symbols a scan would cover",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		path := cfg.SymbolsFile
		if cmd.Flags().Changed("symbols-file") {
			path = symbolsFile
		}

		symbols, err := universe.Resolve(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, s := range symbols {
			printf(out, "%s\n", s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(symbolsCmd)
}
