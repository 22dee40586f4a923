package neochem

import "errors"

var (
	// ErrNotFound is returned when a query executes but returns no record.
	ErrNotFound = errors.New("neochem: record not found")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("neochem: invalid configuration")
)
