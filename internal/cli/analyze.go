package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ahmedfahmy1117/egx/internal/domain"
	"github.com/ahmedfahmy1117/egx/internal/ports"
	"github.com/ahmedfahmy1117/egx/internal/report"
	"github.com/ahmedfahmy1117/egx/internal/universe"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze SYMBOL...",
	Short: "Print the full indicator breakdown of one or more symbols",
	Example: `  egx analyze COMI
  egx analyze comi hrho --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

var analyzeFormat string

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "table", "output format (table, json)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if err := outputFormat(analyzeFormat); err != nil {
		return err
	}
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	symbols := universe.Normalize(args)
	results := make([]*domain.Analysis, 0, len(symbols))
	for _, symbol := range symbols {
		a, err := e.scanner.AnalyzeSymbol(ctx, symbol)
		if err != nil {
			if errors.Is(err, ports.ErrContextCanceled) {
				return err
			}
			e.logger.Warn(ctx, "No usable data for symbol", map[string]interface{}{"symbol": symbol, "error": err.Error()})
			a = domain.NoData(symbol, err.Error())
		}
		results = append(results, a)
	}

	out := cmd.OutOrStdout()
	if analyzeFormat == "json" {
		return report.WriteJSON(out, results)
	}
	for i, a := range results {
		if i > 0 {
			printf(out, "\n")
		}
		if err := report.WriteDetail(out, a, e.cfg.PriceDecimals); err != nil {
			return err
		}
	}
	return nil
}
