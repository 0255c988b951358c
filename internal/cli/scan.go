package cli

import (
	"github.com/spf13/cobra"

	"github.com/ahmedfahmy1117/egx/internal/app"
	"github.com/ahmedfahmy1117/egx/internal/domain"
	"github.com/ahmedfahmy1117/egx/internal/report"
	"github.com/ahmedfahmy1117/egx/internal/universe"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score the whole universe and print the top results",
	Long: `Scan analyses every symbol of the universe in order. Symbols without a usable
CSV file are reported as NO_DATA and skipped. The ranking keeps symbols with a
positive score, highest first.

Example:
  egx scan --data-dir data --top 10`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

var (
	scanTop    int
	scanFormat string
	scanAll    bool
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().IntVarP(&scanTop, "top", "n", 0, "limit the ranking to N symbols (overrides TOP_N, 0 = all)")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "table", "output format (table, json)")
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "print every scanned symbol instead of the ranking")
}

func runScan(cmd *cobra.Command, args []string) error {
	if err := outputFormat(scanFormat); err != nil {
		return err
	}
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	symbols, err := universe.Resolve(e.cfg.SymbolsFile)
	if err != nil {
		return err
	}

	scan, err := e.scanner.Run(cmd.Context(), symbols)
	if err != nil {
		return err
	}

	topN := e.cfg.TopN
	if cmd.Flags().Changed("top") {
		topN = scanTop
	}

	var results []*domain.Analysis
	if scanAll {
		results = scan.Results
	} else {
		results = app.Rank(scan.Results, topN)
	}

	out := cmd.OutOrStdout()
	if scanFormat == "json" {
		return report.WriteJSON(out, results)
	}
	ok, noData := scan.Counts()
	printf(out, "Scanned %d symbols (%d analysed, %d without data), run %s\n\n", len(scan.Results), ok, noData, scan.RunID)
	if !scanAll {
		printf(out, "--- TOP RESULTS ---\n")
	}
	if len(results) == 0 {
		printf(out, "No symbol scored above zero.\n")
		return nil
	}
	return report.WriteTable(out, results, e.cfg.PriceDecimals)
}
