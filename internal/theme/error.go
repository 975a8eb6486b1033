package theme

import "errors"

var (
	// ErrUnknownColor occurs when a color name is not part of the palette.
	ErrUnknownColor = errors.New("unknown color name")

	// ErrNoConfigDir occurs when no user configuration directory is available.
	ErrNoConfigDir = errors.New("no user configuration directory")
)
