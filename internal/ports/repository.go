package ports

import (
	"context"

	"github.com/ahmedfahmy1117/egx/internal/domain"
)

// BarRepository defines the interface for loading a symbol's daily price history.
type BarRepository interface {
	// LoadBars returns the bars of symbol ordered oldest first.
	// Returns ErrNotFound when no history exists for the symbol.
	LoadBars(ctx context.Context, symbol string) ([]*domain.Bar, error)
}
