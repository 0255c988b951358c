package domain

// AnalysisStatus tells whether a symbol could be analysed.
type AnalysisStatus string

const (
	StatusOK     AnalysisStatus = "OK"
	StatusNoData AnalysisStatus = "NO_DATA"
)

// Analysis is the per-symbol outcome of a screening run.
type Analysis struct {
	Symbol string         `json:"symbol"`
	Status AnalysisStatus `json:"status"`
	Detail string         `json:"detail,omitempty"` // Why the symbol has no data, if it has none
	Score  int            `json:"score"`
	Bars   int            `json:"bars"`

	// Latest stochastic values; nil when undefined at the last bar.
	K *float64 `json:"k"`
	D *float64 `json:"d"`

	PivotP  float64 `json:"pivot_p"`
	PivotR1 float64 `json:"pivot_r1"`
	PivotS1 float64 `json:"pivot_s1"`
	PivotR2 float64 `json:"pivot_r2"`
	PivotS2 float64 `json:"pivot_s2"`

	EMAFast    float64 `json:"ema_fast"`
	EMASlow    float64 `json:"ema_slow"`
	MACD       float64 `json:"macd"`
	MACDSignal float64 `json:"macd_signal"`

	EMATrend   bool `json:"ema_cross"`   // Fast EMA above slow EMA at the last bar
	MACDCross  bool `json:"macd_cross"`  // MACD line crossed above its signal on the last bar
	StochCross bool `json:"stoch_cross"` // %K crossed above %D on the last bar
	Oversold   bool `json:"oversold"`    // Last %D below the oversold level
}

// NoData builds the result reported for a symbol that could not be analysed.
func NoData(symbol, detail string) *Analysis {
	return &Analysis{Symbol: symbol, Status: StatusNoData, Detail: detail}
}

// HasData reports whether the analysis carries indicator values.
func (a *Analysis) HasData() bool {
	return a.Status == StatusOK
}
