package domain

import "errors"

// Domain errors represent the failure taxonomy all providers and the
// aggregation service share. They are returned, never panicked, and are
// checked with errors.Is so adapters can wrap them with detail.
var (
	// ErrNotFound indicates a specific lookup found nothing.
	// Recoverable: the multi-provider probe treats it as a signal to
	// keep searching the remaining providers.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidQuery indicates a query's shape or filters are unusable
	// by the targeted provider (e.g. a required filter key is missing).
	ErrInvalidQuery = errors.New("invalid query")

	// ErrProvider wraps any transport, remote, or configuration failure,
	// including "provider not configured" when a named provider has no
	// registered adapter. Terminal for that call, non-fatal for fan-out.
	ErrProvider = errors.New("provider error")
)
