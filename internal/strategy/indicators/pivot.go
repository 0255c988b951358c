package indicators

import (
	"fmt"

	"github.com/ahmedfahmy1117/egx/internal/domain"
)

// Pivots holds classic floor-trader support and resistance levels.
type Pivots struct {
	P  float64
	R1 float64
	S1 float64
	R2 float64
	S2 float64
}

// PivotPoints derives pivot levels from a single bar's high, low and close.
// A flat bar (H == L == C) yields five equal levels.
func PivotPoints(bar *domain.Bar) (Pivots, error) {
	if bar == nil {
		return Pivots{}, fmt.Errorf("pivot points: %w: no bar", ErrInsufficientData)
	}
	h, l, c := bar.High, bar.Low, bar.Close
	p := (h + l + c) / 3
	return Pivots{
		P:  p,
		R1: 2*p - l,
		S1: 2*p - h,
		R2: p + (h - l),
		S2: p - (h - l),
	}, nil
}

// DailyPivots computes pivot levels from the most recent bar only.
func DailyPivots(bars []*domain.Bar) (Pivots, error) {
	if len(bars) == 0 {
		return Pivots{}, fmt.Errorf("pivot points: %w: empty series", ErrInsufficientData)
	}
	return PivotPoints(bars[len(bars)-1])
}
