package theme

import (
	"fmt"
	"strings"
)

// Color is a member of the fixed 16-color terminal palette. The numeric value
// of a Color is its ANSI palette index.
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

//nolint:gochecknoglobals
var colorNames = [...]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright_black",
	"bright_red",
	"bright_green",
	"bright_yellow",
	"bright_blue",
	"bright_magenta",
	"bright_cyan",
	"bright_white",
}

// Colors returns all palette members in palette order.
func Colors() []Color {
	colors := make([]Color, len(colorNames))
	for i := range colorNames {
		colors[i] = Color(i)
	}

	return colors
}

// ParseColor returns the [Color] for a case-insensitive palette name such as
// "bright_cyan".
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for _, c := range Colors() {
		if c.String() == name {
			return c, nil
		}
	}

	return 0, fmt.Errorf("(theme-color) %w: %q", ErrUnknownColor, s)
}

// String returns the palette name of a [Color].
func (c Color) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}

	return colorNames[c]
}

// Valid reports whether the [Color] is a palette member.
func (c Color) Valid() bool {
	return c >= Black && c <= BrightWhite
}

// ANSI returns the ANSI palette index (0 to 15) of a [Color].
func (c Color) ANSI() int {
	return int(c)
}
