package csvstore

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/ahmedfahmy1117/egx/internal/domain"
)

// ExportHeader is the header row written by WriteIndicators.
var ExportHeader = []string{"date", "close", "ema_fast", "ema_slow", "macd", "macd_signal", "k", "d"}

// WriteIndicators writes one CSV row per bar. Undefined indicator values are
// left empty.
func WriteIndicators(w io.Writer, rows []domain.IndicatorRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ExportHeader); err != nil {
		return err
	}

	for _, r := range rows {
		date := ""
		if !r.Time.IsZero() {
			date = r.Time.Format(time.DateOnly)
		}
		if err := writer.Write([]string{
			date,
			formatFloat(r.Close),
			formatFloat(r.EMAFast),
			formatFloat(r.EMASlow),
			formatFloat(r.MACD),
			formatFloat(r.MACDSignal),
			formatOptional(r.K),
			formatOptional(r.D),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}
