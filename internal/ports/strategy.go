package ports

import (
	"context"

	"github.com/ahmedfahmy1117/egx/internal/domain"
)

// Analyzer defines the interface for scoring a symbol from its price history.
type Analyzer interface {
	// RequiredDataPoints returns the minimum number of bars needed for a scored analysis.
	RequiredDataPoints() int

	// Analyze computes indicators over bars and scores the symbol.
	Analyze(ctx context.Context, symbol string, bars []*domain.Bar) (*domain.Analysis, error)
}
