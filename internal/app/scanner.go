package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/ahmedfahmy1117/egx/internal/domain"
	"github.com/ahmedfahmy1117/egx/internal/ports"
	"github.com/ahmedfahmy1117/egx/internal/strategy/indicators"
)

// Scan is the outcome of one screening run over a universe.
type Scan struct {
	RunID    string
	Started  time.Time
	Finished time.Time
	Results  []*domain.Analysis // One per requested symbol, in request order
}

// Counts returns how many symbols were analysed and how many had no data.
func (s *Scan) Counts() (ok, noData int) {
	for _, r := range s.Results {
		if r.HasData() {
			ok++
		} else {
			noData++
		}
	}
	return ok, noData
}

// ScanService orchestrates loading price history and scoring each symbol.
type ScanService struct {
	logger   ports.Logger
	repo     ports.BarRepository
	analyzer ports.Analyzer
	now      func() time.Time
}

// NewScanService creates a new application service instance.
func NewScanService(logger ports.Logger, repo ports.BarRepository, analyzer ports.Analyzer) (*ScanService, error) {
	if logger == nil || repo == nil || analyzer == nil {
		return nil, fmt.Errorf("missing required dependencies for ScanService")
	}
	return &ScanService{
		logger:   logger,
		repo:     repo,
		analyzer: analyzer,
		now:      time.Now,
	}, nil
}

// Run analyses symbols in order. A symbol whose history cannot be loaded or
// analysed is reported as NO_DATA and the run continues. Only cancellation
// of ctx aborts the run.
func (s *ScanService) Run(ctx context.Context, symbols []string) (*Scan, error) {
	scan := &Scan{
		RunID:   uuid.NewString(),
		Started: s.now(),
		Results: make([]*domain.Analysis, 0, len(symbols)),
	}
	s.logger.Info(ctx, "Starting scan", map[string]interface{}{
		"runID":          scan.RunID,
		"symbols":        len(symbols),
		"requiredPoints": s.analyzer.RequiredDataPoints(),
	})

	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			s.logger.Warn(ctx, "Scan canceled", map[string]interface{}{
				"runID":     scan.RunID,
				"completed": len(scan.Results),
			})
			return nil, fmt.Errorf("%w: %w", ports.ErrContextCanceled, err)
		}

		result, err := s.AnalyzeSymbol(ctx, symbol)
		if err != nil {
			if errors.Is(err, ports.ErrContextCanceled) {
				return nil, err
			}
			s.logFailure(ctx, scan.RunID, symbol, err)
			result = domain.NoData(symbol, err.Error())
		}

		s.logger.Info(ctx, "Symbol scanned", map[string]interface{}{
			"runID":  scan.RunID,
			"symbol": symbol,
			"status": string(result.Status),
			"score":  result.Score,
		})
		scan.Results = append(scan.Results, result)
	}

	scan.Finished = s.now()
	ok, noData := scan.Counts()
	s.logger.Info(ctx, "Scan finished", map[string]interface{}{
		"runID":    scan.RunID,
		"analysed": ok,
		"noData":   noData,
		"duration": scan.Finished.Sub(scan.Started).String(),
	})
	return scan, nil
}

// AnalyzeSymbol loads the history of one symbol and scores it.
func (s *ScanService) AnalyzeSymbol(ctx context.Context, symbol string) (*domain.Analysis, error) {
	bars, err := s.repo.LoadBars(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return s.analyzer.Analyze(ctx, symbol, bars)
}

func (s *ScanService) logFailure(ctx context.Context, runID, symbol string, err error) {
	fields := map[string]interface{}{"runID": runID, "symbol": symbol}
	switch {
	case errors.Is(err, ports.ErrNotFound),
		errors.Is(err, ports.ErrMissingColumns),
		errors.Is(err, ports.ErrInvalidRecord),
		errors.Is(err, indicators.ErrInvalidInput):
		fields["error"] = err.Error()
		s.logger.Warn(ctx, "No usable data for symbol", fields)
	default:
		s.logger.Error(ctx, err, "Failed to analyse symbol", fields)
	}
}

// Rank keeps the results with a positive score, ordered by score descending.
// Ties keep their input order. topN > 0 truncates the ranking.
func Rank(results []*domain.Analysis, topN int) []*domain.Analysis {
	ranked := make([]*domain.Analysis, 0, len(results))
	for _, r := range results {
		if r != nil && r.HasData() && r.Score > 0 {
			ranked = append(ranked, r)
		}
	}
	slices.SortStableFunc(ranked, func(a, b *domain.Analysis) int {
		return b.Score - a.Score
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
