package schema

import (
	"fmt"
	"strings"
)

// Format is the rendering format of a listing.
type Format string

const (
	FormatTable      Format = "table"
	FormatJSON       Format = "json"
	FormatJSONPretty Format = "json-pretty"
)

// Formats returns all known [Format] values in their documented order.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatJSONPretty}
}

// ParseFormat returns the [Format] for a textual representation.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q (want one of table, json, json-pretty)", ErrUnknownFormat, s)
}

// String implements [fmt.Stringer] and the flag value interface.
func (f *Format) String() string {
	return string(*f)
}

// Set implements the flag value interface.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// Type implements the flag value interface.
func (*Format) Type() string {
	return "format"
}

// ResolveFormat reconciles the legacy JSON switches with a format selector.
// The legacy switches take precedence: json-pretty, then json, then format.
func ResolveFormat(format Format, legacyJSON bool, legacyJSONPretty bool) Format {
	switch {
	case legacyJSONPretty:
		return FormatJSONPretty
	case legacyJSON:
		return FormatJSON
	case format == "":
		return FormatTable
	default:
		return format
	}
}

// SortKey is the attribute a listing is ordered by.
type SortKey string

const (
	SortByName SortKey = "name"
	SortBySize SortKey = "size"
	SortByDate SortKey = "date"
)

// SortKeys returns all known [SortKey] values in their documented order.
func SortKeys() []SortKey {
	return []SortKey{SortByName, SortBySize, SortByDate}
}

// ParseSortKey returns the [SortKey] for a textual representation.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q (want one of name, size, date)", ErrUnknownSortKey, s)
}

// String implements [fmt.Stringer] and the flag value interface.
func (k *SortKey) String() string {
	return string(*k)
}

// Set implements the flag value interface.
func (k *SortKey) Set(s string) error {
	v, err := ParseSortKey(s)
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// Type implements the flag value interface.
func (*SortKey) Type() string {
	return "key"
}

// Column is a column of the table format.
type Column string

const (
	ColumnName        Column = "name"
	ColumnType        Column = "type"
	ColumnSize        Column = "size"
	ColumnDate        Column = "date"
	ColumnPermissions Column = "permissions"
	ColumnOwner       Column = "owner"
	ColumnGroup       Column = "group"
)

// Columns returns all table columns in their canonical order.
func Columns() []Column {
	return []Column{
		ColumnName, ColumnType, ColumnSize, ColumnDate,
		ColumnPermissions, ColumnOwner, ColumnGroup,
	}
}

// ParseColumn returns the [Column] for a case-insensitive textual
// representation.
func ParseColumn(s string) (Column, error) {
	for _, c := range Columns() {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, s)
}

// Header returns the table header text of a [Column].
func (c Column) Header() string {
	switch c {
	case ColumnName:
		return "Name"
	case ColumnType:
		return "Type"
	case ColumnSize:
		return "Size"
	case ColumnDate:
		return "Modified"
	case ColumnPermissions:
		return "Permissions"
	case ColumnOwner:
		return "Owner"
	case ColumnGroup:
		return "Group"
	default:
		return string(c)
	}
}
