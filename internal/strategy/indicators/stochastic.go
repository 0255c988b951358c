package indicators

import (
	"fmt"

	"github.com/ahmedfahmy1117/egx/internal/domain"
)

// StochasticConfig holds the %K lookback and the %D smoothing window.
type StochasticConfig struct {
	KPeriod int
	DPeriod int
}

// DefaultStochasticConfig returns the conventional 14/3 periods.
func DefaultStochasticConfig() StochasticConfig {
	return StochasticConfig{KPeriod: 14, DPeriod: 3}
}

// Validate rejects non-positive periods.
func (c StochasticConfig) Validate() error {
	if err := requirePositive("k period", c.KPeriod); err != nil {
		return err
	}
	return requirePositive("d period", c.DPeriod)
}

// StochasticResult holds %K and %D, both as long as the input bars.
type StochasticResult struct {
	K Series
	D Series
}

// Stochastic computes the stochastic oscillator of bars.
//
// %K is undefined for the first KPeriod-1 bars and wherever the trailing
// high/low range is zero. %D is the DPeriod mean of %K and is undefined
// wherever any %K in its window is.
func Stochastic(bars []*domain.Bar, cfg StochasticConfig) (StochasticResult, error) {
	if err := cfg.Validate(); err != nil {
		return StochasticResult{}, fmt.Errorf("stochastic: %w", err)
	}

	highs := make(Series, len(bars))
	lows := make(Series, len(bars))
	for i, b := range bars {
		if b == nil {
			return StochasticResult{}, fmt.Errorf("stochastic: %w: nil bar at %d", ErrInvalidInput, i)
		}
		highs[i] = Defined(b.High)
		lows[i] = Defined(b.Low)
	}

	lowMin := Rolling(lows, cfg.KPeriod, Min)
	highMax := Rolling(highs, cfg.KPeriod, Max)

	k := make(Series, len(bars))
	for i, b := range bars {
		lo, okLo := lowMin[i].Float()
		hi, okHi := highMax[i].Float()
		if !okLo || !okHi || hi == lo {
			k[i] = Undefined()
			continue
		}
		k[i] = Defined(100 * (b.Close - lo) / (hi - lo))
	}

	return StochasticResult{K: k, D: Rolling(k, cfg.DPeriod, Mean)}, nil
}
