// Package render implements the output formats of a listing.
//
// Rendering is a pure function of its inputs: the color profile is pinned per
// call instead of being detected from the terminal, so the same records and
// [Options] always produce the same payload.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/desertwitch/bestls/internal/schema"
	"github.com/desertwitch/bestls/internal/theme"
)

const jsonIndent = "  "

// Options configure the rendering of a listing.
type Options struct {
	Format   schema.Format
	Compact  bool
	UseColor bool

	// Theme colors the table format; nil uses [theme.Default].
	Theme *theme.Theme

	// Columns selects the table columns in display order; empty selects all.
	Columns []schema.Column
}

// Render returns the payload for the records in the given format. The payload
// carries no trailing newline.
func Render(entries []*schema.Entry, opts Options) (string, error) {
	switch opts.Format {
	case schema.FormatJSON:
		return renderJSON(entries, false)

	case schema.FormatJSONPretty:
		return renderJSON(entries, true)

	case schema.FormatTable, "":
		if opts.Compact {
			return renderCompact(entries), nil
		}

		return renderTable(entries, opts), nil

	default:
		return "", fmt.Errorf("(render) %w: %q", schema.ErrUnknownFormat, string(opts.Format))
	}
}

func renderCompact(entries []*schema.Entry) string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	return strings.Join(names, "\n")
}

func renderJSON(entries []*schema.Entry, pretty bool) (string, error) {
	if entries == nil {
		entries = []*schema.Entry{}
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", jsonIndent)
	}

	if err := enc.Encode(entries); err != nil {
		return "", fmt.Errorf("(render-json) %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
