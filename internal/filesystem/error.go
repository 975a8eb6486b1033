package filesystem

import "errors"

var (
	// ErrRootRead occurs when the directory a listing was requested for cannot
	// be opened or enumerated.
	ErrRootRead = errors.New("failed to read directory")

	// ErrEmptyName occurs when a directory entry has no usable name.
	ErrEmptyName = errors.New("entry has an empty name")
)
