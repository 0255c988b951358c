// Package report renders screening results for people and for machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/ahmedfahmy1117/egx/internal/domain"
)

// NotAvailable is printed in place of an undefined indicator value.
const NotAvailable = "n/a"

// TableHeader lists the columns written by WriteTable.
var TableHeader = []string{"SYMBOL", "SCORE", "K", "D", "PIVOT", "R1", "S1", "R2", "S2", "EMA", "MACD", "STOCH", "OVERSOLD"}

// WriteTable writes one aligned row per analysis. Prices are rounded to decimals places.
func WriteTable(w io.Writer, analyses []*domain.Analysis, decimals int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, joinTabs(TableHeader))

	for _, a := range analyses {
		if !a.HasData() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t\n", a.Symbol, a.Status, a.Detail)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			a.Symbol,
			a.Score,
			optional(a.K, 2),
			optional(a.D, 2),
			price(a.PivotP, decimals),
			price(a.PivotR1, decimals),
			price(a.PivotS1, decimals),
			price(a.PivotR2, decimals),
			price(a.PivotS2, decimals),
			flag(a.EMATrend),
			flag(a.MACDCross),
			flag(a.StochCross),
			flag(a.Oversold),
		)
	}
	return tw.Flush()
}

// WriteDetail writes every indicator value of a single analysis as key/value lines.
func WriteDetail(w io.Writer, a *domain.Analysis, decimals int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Symbol:\t%s\n", a.Symbol)
	fmt.Fprintf(tw, "Status:\t%s\n", a.Status)
	if !a.HasData() {
		fmt.Fprintf(tw, "Detail:\t%s\n", a.Detail)
		return tw.Flush()
	}
	fmt.Fprintf(tw, "Bars:\t%d\n", a.Bars)
	fmt.Fprintf(tw, "Score:\t%d\n", a.Score)
	fmt.Fprintf(tw, "Stochastic %%K / %%D:\t%s / %s\n", optional(a.K, 2), optional(a.D, 2))
	fmt.Fprintf(tw, "Pivot P:\t%s\n", price(a.PivotP, decimals))
	fmt.Fprintf(tw, "R1 / S1:\t%s / %s\n", price(a.PivotR1, decimals), price(a.PivotS1, decimals))
	fmt.Fprintf(tw, "R2 / S2:\t%s / %s\n", price(a.PivotR2, decimals), price(a.PivotS2, decimals))
	fmt.Fprintf(tw, "EMA fast / slow:\t%s / %s\n", price(a.EMAFast, decimals), price(a.EMASlow, decimals))
	fmt.Fprintf(tw, "MACD / signal:\t%s / %s\n", price(a.MACD, decimals+1), price(a.MACDSignal, decimals+1))
	fmt.Fprintf(tw, "EMA trend:\t%s\n", flag(a.EMATrend))
	fmt.Fprintf(tw, "MACD cross:\t%s\n", flag(a.MACDCross))
	fmt.Fprintf(tw, "Stochastic cross:\t%s\n", flag(a.StochCross))
	fmt.Fprintf(tw, "Oversold:\t%s\n", flag(a.Oversold))
	return tw.Flush()
}

// WriteJSON writes analyses as an indented JSON array. Undefined values are null.
func WriteJSON(w io.Writer, analyses []*domain.Analysis) error {
	if analyses == nil {
		analyses = []*domain.Analysis{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analyses); err != nil {
		return fmt.Errorf("encoding analyses: %w", err)
	}
	return nil
}

func price(v float64, decimals int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(decimals))
}

func optional(v *float64, decimals int) string {
	if v == nil {
		return NotAvailable
	}
	return price(*v, decimals)
}

func flag(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}

func joinTabs(cols []string) string {
	line := ""
	for _, c := range cols {
		line += c + "\t"
	}
	return line
}
