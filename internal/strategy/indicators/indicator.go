// Package indicators computes technical indicators over daily price series.
//
// Every function in this package is pure: it derives its whole output from the
// arguments of a single call and keeps no state between calls, so callers may
// compute indicators for many symbols concurrently without coordination.
package indicators

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a window, span or period is not positive.
	ErrInvalidParameter = errors.New("invalid indicator parameter")
	// ErrInsufficientData is returned when a calculation has no bar to work on.
	ErrInsufficientData = errors.New("insufficient data for indicator")
	// ErrInvalidInput is returned when a price series contains a nil bar.
	ErrInvalidInput = errors.New("invalid indicator input")
)

func requirePositive(name string, v int) error {
	if v < 1 {
		return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalidParameter, name, v)
	}
	return nil
}
