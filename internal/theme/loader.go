package theme

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type fileConfig struct {
	Colors colorSection `toml:"colors"`
}

type colorSection struct {
	File      string `toml:"file"`
	Directory string `toml:"directory"`
	Symlink   string `toml:"symlink"`

	FileTypes  *fileTypeSection  `toml:"file_types"`
	Table      *tableSection     `toml:"table"`
	Extensions map[string]string `toml:"extensions"`
}

type fileTypeSection struct {
	File      string `toml:"file"`
	Directory string `toml:"directory"`
	Symlink   string `toml:"symlink"`
}

type tableSection struct {
	Name   string `toml:"name"`
	Size   string `toml:"size"`
	Date   string `toml:"date"`
	Header string `toml:"header"`
}

// Load returns the [Theme] configured in the TOML file at path, merged onto
// [Default]. A missing, unreadable or malformed file yields the defaults.
// Colors with unknown names are dropped individually and keep their default.
func Load(path string) *Theme {
	t, err := Parse(path)
	if err != nil {
		slog.Debug("Using default theme", "err", err, "path", path)

		return Default()
	}

	return t
}

// Parse is the strict counterpart to [Load]: it returns an error when the
// file cannot be read or decoded. Unknown color names are still dropped.
func Parse(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("(theme-parse) %w", err)
	}

	return Decode(string(data))
}

// Decode returns the [Theme] configured by the TOML document, merged onto
// [Default].
func Decode(doc string) (*Theme, error) {
	var cfg fileConfig

	meta, err := toml.Decode(doc, &cfg)
	if err != nil {
		return nil, fmt.Errorf("(theme-decode) %w", err)
	}

	for _, key := range meta.Undecoded() {
		slog.Debug("Ignored unknown theme key", "key", key.String())
	}

	t := Default()
	cfg.Colors.apply(t)

	return t, nil
}

func (s *colorSection) apply(t *Theme) {
	if s.FileTypes != nil {
		mergeColor(&t.FileTypes.File, s.FileTypes.File, "file_types.file")
		mergeColor(&t.FileTypes.Directory, s.FileTypes.Directory, "file_types.directory")
		mergeColor(&t.FileTypes.Symlink, s.FileTypes.Symlink, "file_types.symlink")
	}

	mergeColor(&t.FileTypes.File, s.File, "file")
	mergeColor(&t.FileTypes.Directory, s.Directory, "directory")
	mergeColor(&t.FileTypes.Symlink, s.Symlink, "symlink")

	if s.Table != nil {
		mergeColor(&t.Table.Name, s.Table.Name, "table.name")
		mergeColor(&t.Table.Size, s.Table.Size, "table.size")
		mergeColor(&t.Table.Date, s.Table.Date, "table.date")
		mergeColor(&t.Table.Header, s.Table.Header, "table.header")
	}

	for ext, name := range s.Extensions {
		key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if key == "" {
			continue
		}

		c, err := ParseColor(name)
		if err != nil {
			slog.Debug("Dropped theme extension color", "err", err, "extension", ext)

			continue
		}
		t.Extensions[key] = c
	}
}

// mergeColor overwrites dst with the named color, unless the name is empty or
// not part of the palette.
func mergeColor(dst *Color, name string, field string) {
	if name == "" {
		return
	}

	c, err := ParseColor(name)
	if err != nil {
		slog.Debug("Dropped theme color", "err", err, "field", field)

		return
	}
	*dst = c
}
