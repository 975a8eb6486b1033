package render

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/desertwitch/bestls/internal/schema"
	"github.com/desertwitch/bestls/internal/theme"
	"github.com/muesli/termenv"
)

const cellPadding = 1

func renderTable(entries []*schema.Entry, opts Options) string {
	th := opts.Theme
	if th == nil {
		th = theme.Default()
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = schema.Columns()
	}

	renderer := lipgloss.NewRenderer(io.Discard)
	if opts.UseColor {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}

	base := renderer.NewStyle().Padding(0, cellPadding)

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header()
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = make([]string, len(columns))
		for j, c := range columns {
			rows[i][j] = cellValue(e, c)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(renderer.NewStyle()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if !opts.UseColor {
				return base
			}

			if row == table.HeaderRow {
				return base.Foreground(paletteColor(th.Table.Header))
			}

			if row < 0 || row >= len(entries) || col < 0 || col >= len(columns) {
				return base
			}

			switch columns[col] {
			case schema.ColumnName:
				return base.Foreground(paletteColor(th.Table.Name))
			case schema.ColumnSize:
				return base.Foreground(paletteColor(th.Table.Size))
			case schema.ColumnDate:
				return base.Foreground(paletteColor(th.Table.Date))
			case schema.ColumnType:
				e := entries[row]

				return base.Foreground(paletteColor(th.ColorFor(e.Kind, e.Name)))
			case schema.ColumnPermissions, schema.ColumnOwner, schema.ColumnGroup:
				return base
			default:
				return base
			}
		})

	return t.String()
}

func cellValue(e *schema.Entry, c schema.Column) string {
	switch c {
	case schema.ColumnName:
		return e.Name
	case schema.ColumnType:
		return e.Kind.String()
	case schema.ColumnSize:
		return e.SizeHuman
	case schema.ColumnDate:
		return e.Modified
	case schema.ColumnPermissions:
		return e.Permissions
	case schema.ColumnOwner:
		return e.Owner
	case schema.ColumnGroup:
		return e.Group
	default:
		return ""
	}
}

func paletteColor(c theme.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(c.ANSI()))
}
