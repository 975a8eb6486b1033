package schema

import "errors"

var (
	// ErrUnknownFormat occurs when a textual [Format] is not recognized.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownSortKey occurs when a textual [SortKey] is not recognized.
	ErrUnknownSortKey = errors.New("unknown sort key")

	// ErrUnknownColumn occurs when a textual [Column] is not recognized.
	ErrUnknownColumn = errors.New("unknown column")
)
