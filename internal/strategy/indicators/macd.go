package indicators

import "fmt"

// MACDConfig holds the three EMA spans of the MACD indicator.
type MACDConfig struct {
	Fast   int
	Slow   int
	Signal int
}

// DefaultMACDConfig returns the conventional 12/26/9 spans.
func DefaultMACDConfig() MACDConfig {
	return MACDConfig{Fast: 12, Slow: 26, Signal: 9}
}

// Validate rejects non-positive spans.
func (c MACDConfig) Validate() error {
	if err := requirePositive("fast", c.Fast); err != nil {
		return err
	}
	if err := requirePositive("slow", c.Slow); err != nil {
		return err
	}
	return requirePositive("signal", c.Signal)
}

// MACDResult holds the MACD line and its signal line, both as long as the input.
type MACDResult struct {
	Line   []float64
	Signal []float64
}

// Histogram returns Line - Signal per position.
func (r MACDResult) Histogram() []float64 {
	h := make([]float64, len(r.Line))
	for i := range r.Line {
		h[i] = r.Line[i] - r.Signal[i]
	}
	return h
}

// MACD computes EMA(fast) - EMA(slow) of values and its EMA(signal).
func MACD(values []float64, cfg MACDConfig) (MACDResult, error) {
	if err := cfg.Validate(); err != nil {
		return MACDResult{}, fmt.Errorf("macd: %w", err)
	}

	fast, err := EMA(values, cfg.Fast)
	if err != nil {
		return MACDResult{}, err
	}
	slow, err := EMA(values, cfg.Slow)
	if err != nil {
		return MACDResult{}, err
	}

	line := make([]float64, len(values))
	for i := range line {
		line[i] = fast[i] - slow[i]
	}

	signal, err := EMA(line, cfg.Signal)
	if err != nil {
		return MACDResult{}, err
	}
	return MACDResult{Line: line, Signal: signal}, nil
}
