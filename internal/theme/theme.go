// Package theme implements the color theme of a listing: the palette, the
// built-in defaults, and the TOML configuration file it can be loaded from.
//
// A [Theme] is a plain value. It is loaded once by the caller and passed on
// by reference to whatever renders with it; nothing in this package keeps
// process-wide color state.
package theme

import (
	"path/filepath"
	"strings"

	"github.com/desertwitch/bestls/internal/schema"
)

// FileTypeColors are the colors per [schema.Kind].
type FileTypeColors struct {
	File      Color
	Directory Color
	Symlink   Color
}

// TableColors are the colors of the table columns and its header row.
type TableColors struct {
	Name   Color
	Size   Color
	Date   Color
	Header Color
}

// Theme is the principal structure describing the colors of a listing.
type Theme struct {
	FileTypes FileTypeColors

	// Extensions maps lower-case extensions (without the dot) to colors.
	Extensions map[string]Color

	Table TableColors
}

// Default returns the built-in [Theme].
func Default() *Theme {
	return &Theme{
		FileTypes: FileTypeColors{
			File:      BrightCyan,
			Directory: BrightBlue,
			Symlink:   BrightMagenta,
		},
		Extensions: defaultExtensions(),
		Table: TableColors{
			Name:   BrightCyan,
			Size:   BrightMagenta,
			Date:   BrightYellow,
			Header: BrightGreen,
		},
	}
}

func defaultExtensions() map[string]Color {
	return map[string]Color{
		"rs":   Yellow,
		"py":   Blue,
		"js":   Yellow,
		"ts":   Blue,
		"go":   BrightCyan,
		"c":    BrightBlue,
		"cpp":  BrightBlue,
		"java": Red,
		"md":   Cyan,
		"txt":  White,
		"pdf":  Red,
		"toml": Red,
		"json": Green,
		"yaml": Magenta,
		"yml":  Magenta,
		"xml":  Yellow,
		"zip":  Red,
		"tar":  Red,
		"gz":   Red,
		"png":  Magenta,
		"jpg":  Magenta,
		"jpeg": Magenta,
		"gif":  Magenta,
		"svg":  Yellow,
	}
}

// ColorFor returns the color of an element. Files are colored by their
// extension when the theme knows it, everything else by its kind.
func (t *Theme) ColorFor(kind schema.Kind, name string) Color {
	switch kind {
	case schema.KindDirectory:
		return t.FileTypes.Directory

	case schema.KindSymlink:
		return t.FileTypes.Symlink

	case schema.KindFile:
		if ext, ok := extensionOf(name); ok {
			if c, ok := t.Extensions[ext]; ok {
				return c
			}
		}

		return t.FileTypes.File

	default:
		return t.FileTypes.File
	}
}

func extensionOf(name string) (string, bool) {
	ext := filepath.Ext(name)
	if len(ext) < 2 { //nolint:mnd
		return "", false
	}

	return strings.ToLower(ext[1:]), true
}
