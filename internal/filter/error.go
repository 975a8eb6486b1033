package filter

import "errors"

var (
	// ErrInvalidSize occurs when a human size string cannot be parsed.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidPattern occurs when a filename glob pattern is malformed.
	ErrInvalidPattern = errors.New("invalid name pattern")

	// ErrInvalidMinSize occurs when the minimum size bound cannot be parsed.
	ErrInvalidMinSize = errors.New("invalid minimum size")

	// ErrInvalidMaxSize occurs when the maximum size bound cannot be parsed.
	ErrInvalidMaxSize = errors.New("invalid maximum size")

	// ErrInvalidSizeRange occurs when the minimum size bound is strictly
	// greater than the maximum size bound.
	ErrInvalidSizeRange = errors.New("invalid size range: minimum size is greater than maximum size")
)
