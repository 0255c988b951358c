package domain

import "time"

// IndicatorRow is one bar of an indicator export. Pointer fields are nil where
// the indicator is undefined.
type IndicatorRow struct {
	Time       time.Time
	Close      float64
	EMAFast    float64
	EMASlow    float64
	MACD       float64
	MACDSignal float64
	K          *float64
	D          *float64
}
