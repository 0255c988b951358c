package domain

import "time"

// Bar represents a single OHLCV record of a daily price series.
type Bar struct {
	Time   time.Time // Session date; zero when the source carries no date column
	Symbol string    // Ticker symbol (e.g., "COMI")
	Open   float64   // Opening price
	High   float64   // Highest price
	Low    float64   // Lowest price
	Close  float64   // Closing price
	Volume float64   // Traded volume
}

// Closes extracts the closing prices of bars, oldest first.
func Closes(bars []*Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}
