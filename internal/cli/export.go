package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ahmedfahmy1117/egx/internal/adapters/csvstore"
)

var exportCmd = &cobra.Command{
	Use:   "export SYMBOL",
	Short: "Write the per-bar indicator series of a symbol as CSV",
	Long: `Export writes one CSV row per bar with the close, fast/slow EMA, MACD line and
signal, and stochastic %K/%D. Undefined stochastic values are left empty.`,
	Example: `  egx export COMI -o comi_indicators.csv`,
	Args:    cobra.ExactArgs(1),
	RunE:    runExport,
}

var exportOutput string

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	symbol := strings.ToUpper(strings.TrimSpace(args[0]))
	bars, err := e.store.LoadBars(cmd.Context(), symbol)
	if err != nil {
		return err
	}
	rows, err := e.strategy.Series(bars)
	if err != nil {
		return fmt.Errorf("%s: %w", symbol, err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := csvstore.WriteIndicators(w, rows); err != nil {
		return err
	}

	e.logger.Info(cmd.Context(), "Indicators exported", map[string]interface{}{
		"symbol": symbol,
		"rows":   len(rows),
		"output": exportOutput,
	})
	return nil
}
