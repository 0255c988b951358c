package strategy

import "github.com/ahmedfahmy1117/egx/internal/strategy/indicators"

// CrossedAbove reports a bullish cross: a was below b and is now above it.
func CrossedAbove(prevA, prevB, a, b float64) bool {
	return prevA < prevB && a > b
}

// LinesCrossedAbove reports whether line a crossed above line b on the last position.
func LinesCrossedAbove(a, b []float64) bool {
	n := len(a)
	if n < 2 || len(b) != n {
		return false
	}
	return CrossedAbove(a[n-2], b[n-2], a[n-1], b[n-1])
}

// SeriesCrossedAbove is LinesCrossedAbove for series that may hold undefined
// positions. No cross is claimed unless all four values are defined.
func SeriesCrossedAbove(a, b indicators.Series) bool {
	prevA, ok1 := a.At(-2).Float()
	prevB, ok2 := b.At(-2).Float()
	lastA, ok3 := a.Last().Float()
	lastB, ok4 := b.Last().Float()
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return false
	}
	return CrossedAbove(prevA, prevB, lastA, lastB)
}
