package store

import "errors"

// Common store errors used across all store implementations.
var (
	// ErrKeyNotFound is returned when a requested key does not exist in
	// the store.
	ErrKeyNotFound = errors.New("key not found")

	// ErrMalformedState is returned when a persisted value fails to
	// decode. Callers recover locally by treating the store as empty
	// and logging a warning; this error must never reach the user.
	ErrMalformedState = errors.New("malformed persisted state")
)
