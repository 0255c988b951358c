package strategy

import (
	"context"
	"fmt"

	"github.com/ahmedfahmy1117/egx/internal/domain"
	"github.com/ahmedfahmy1117/egx/internal/ports"
	"github.com/ahmedfahmy1117/egx/internal/strategy/indicators"
)

// Weights holds the points each bullish condition adds to a symbol's score.
type Weights struct {
	EMATrend   int // Fast EMA above slow EMA
	MACDCross  int // MACD line crossed above signal
	StochCross int // %K crossed above %D
	Oversold   int // %D below the oversold level
}

// Config holds parameters for the screening strategy.
type Config struct {
	EMAFastSpan int     // e.g., 20
	EMASlowSpan int     // e.g., 50
	MACD        indicators.MACDConfig
	Stochastic  indicators.StochasticConfig
	Oversold    float64 // e.g., 20.0
	MinHistory  int     // Bars required before a symbol is scored, e.g., 50
	Weights     Weights
}

// DefaultConfig returns the parameters of the daily EGX screen.
func DefaultConfig() Config {
	return Config{
		EMAFastSpan: 20,
		EMASlowSpan: 50,
		MACD:        indicators.DefaultMACDConfig(),
		Stochastic:  indicators.DefaultStochasticConfig(),
		Oversold:    20,
		MinHistory:  50,
		Weights:     Weights{EMATrend: 2, MACDCross: 2, StochCross: 2, Oversold: 1},
	}
}

// Strategy scores symbols from their daily indicators.
type Strategy struct {
	cfg    Config
	logger ports.Logger
}

// New creates a new Strategy instance.
func New(cfg Config, logger ports.Logger) (*Strategy, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger is required for strategy")
	}
	if cfg.EMAFastSpan <= 0 || cfg.EMASlowSpan <= 0 {
		return nil, fmt.Errorf("EMA spans must be positive")
	}
	if cfg.EMAFastSpan >= cfg.EMASlowSpan {
		return nil, fmt.Errorf("fast EMA span must be less than slow EMA span")
	}
	if err := cfg.MACD.Validate(); err != nil {
		return nil, fmt.Errorf("invalid MACD config: %w", err)
	}
	if err := cfg.Stochastic.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stochastic config: %w", err)
	}
	if cfg.Oversold <= 0 || cfg.Oversold >= 100 {
		return nil, fmt.Errorf("oversold level must be between 0 and 100 (exclusive)")
	}
	if cfg.MinHistory < 1 {
		return nil, fmt.Errorf("minimum history must be positive")
	}
	return &Strategy{cfg: cfg, logger: logger}, nil
}

// RequiredDataPoints returns the minimum number of bars a symbol needs to be scored.
func (s *Strategy) RequiredDataPoints() int {
	return s.cfg.MinHistory
}

// Analyze computes the daily indicators of a symbol and scores it.
// A symbol with less history than RequiredDataPoints is reported as NO_DATA.
func (s *Strategy) Analyze(ctx context.Context, symbol string, bars []*domain.Bar) (*domain.Analysis, error) {
	if len(bars) < s.cfg.MinHistory {
		s.logger.Debug(ctx, "Not enough history to score symbol",
			map[string]interface{}{"symbol": symbol, "available": len(bars), "required": s.cfg.MinHistory})
		return domain.NoData(symbol, fmt.Sprintf("%s: have %d bars, need %d",
			ports.ErrInsufficientHistory, len(bars), s.cfg.MinHistory)), nil
	}

	stoch, err := indicators.Stochastic(bars, s.cfg.Stochastic)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}
	pivots, err := indicators.DailyPivots(bars)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}

	closes := domain.Closes(bars)
	emaFast, err := indicators.EMA(closes, s.cfg.EMAFastSpan)
	if err != nil {
		return nil, fmt.Errorf("%s: fast EMA: %w", symbol, err)
	}
	emaSlow, err := indicators.EMA(closes, s.cfg.EMASlowSpan)
	if err != nil {
		return nil, fmt.Errorf("%s: slow EMA: %w", symbol, err)
	}
	macd, err := indicators.MACD(closes, s.cfg.MACD)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}

	last := len(bars) - 1
	a := &domain.Analysis{
		Symbol:     symbol,
		Status:     domain.StatusOK,
		Bars:       len(bars),
		K:          stoch.K.Last().Ptr(),
		D:          stoch.D.Last().Ptr(),
		PivotP:     pivots.P,
		PivotR1:    pivots.R1,
		PivotS1:    pivots.S1,
		PivotR2:    pivots.R2,
		PivotS2:    pivots.S2,
		EMAFast:    emaFast[last],
		EMASlow:    emaSlow[last],
		MACD:       macd.Line[last],
		MACDSignal: macd.Signal[last],
	}

	a.EMATrend = emaFast[last] > emaSlow[last]
	a.MACDCross = LinesCrossedAbove(macd.Line, macd.Signal)
	a.StochCross = SeriesCrossedAbove(stoch.K, stoch.D)
	if d, ok := stoch.D.Last().Float(); ok {
		a.Oversold = d < s.cfg.Oversold
	}
	a.Score = s.score(a)

	s.logger.Debug(ctx, "Symbol analysed", map[string]interface{}{
		"symbol":     symbol,
		"score":      a.Score,
		"emaTrend":   a.EMATrend,
		"macdCross":  a.MACDCross,
		"stochCross": a.StochCross,
		"oversold":   a.Oversold,
		"k":          stoch.K.Last().String(),
		"d":          stoch.D.Last().String(),
	})
	return a, nil
}

func (s *Strategy) score(a *domain.Analysis) int {
	w := s.cfg.Weights
	score := 0
	if a.EMATrend {
		score += w.EMATrend
	}
	if a.MACDCross {
		score += w.MACDCross
	}
	if a.StochCross {
		score += w.StochCross
	}
	if a.Oversold {
		score += w.Oversold
	}
	return score
}

// Series computes the per-bar indicator rows of bars for export.
func (s *Strategy) Series(bars []*domain.Bar) ([]domain.IndicatorRow, error) {
	closes := domain.Closes(bars)
	emaFast, err := indicators.EMA(closes, s.cfg.EMAFastSpan)
	if err != nil {
		return nil, err
	}
	emaSlow, err := indicators.EMA(closes, s.cfg.EMASlowSpan)
	if err != nil {
		return nil, err
	}
	macd, err := indicators.MACD(closes, s.cfg.MACD)
	if err != nil {
		return nil, err
	}
	stoch, err := indicators.Stochastic(bars, s.cfg.Stochastic)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.IndicatorRow, len(bars))
	for i, b := range bars {
		rows[i] = domain.IndicatorRow{
			Time:       b.Time,
			Close:      b.Close,
			EMAFast:    emaFast[i],
			EMASlow:    emaSlow[i],
			MACD:       macd.Line[i],
			MACDSignal: macd.Signal[i],
			K:          stoch.K[i].Ptr(),
			D:          stoch.D[i].Ptr(),
		}
	}
	return rows, nil
}
