package validation

import "errors"

var (
	// ErrInvalidRequest is the umbrella of all request validation failures.
	// It always wraps a more specific error.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidColumns occurs when an unknown table column is selected.
	ErrInvalidColumns = errors.New("invalid columns")

	// ErrInvalidDepth occurs when a tree depth is negative and not the
	// unbounded depth.
	ErrInvalidDepth = errors.New("invalid depth")
)
