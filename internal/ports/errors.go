package ports

import "errors"

// Standard application-level errors.
// Adapters should wrap underlying infrastructure errors with these standard errors.
var (
	// General Errors
	ErrUnknown            = errors.New("unknown error occurred")
	ErrContextCanceled    = errors.New("operation canceled via context")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Price Data Errors
	ErrNotFound            = errors.New("price history not found")
	ErrMissingColumns      = errors.New("price history is missing required columns")
	ErrInvalidRecord       = errors.New("price history contains an invalid record")
	ErrInsufficientHistory = errors.New("not enough price history")
)
