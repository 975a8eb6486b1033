package filter

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var sizeUnits = map[string]uint64{
	"":   1,
	"B":  1,
	"K":  humanize.KiByte,
	"KB": humanize.KiByte,
	"M":  humanize.MiByte,
	"MB": humanize.MiByte,
	"G":  humanize.GiByte,
	"GB": humanize.GiByte,
	"T":  humanize.TiByte,
	"TB": humanize.TiByte,
}

// ParseSize converts a human size string ("100", "1KB", "1.5MB") into a byte
// count. Units are case-insensitive and scale with base 1024; a missing unit
// means bytes. The result is the floor of the real-valued product.
func ParseSize(s string) (uint64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("%w: empty size", ErrInvalidSize)
	}

	split := strings.IndexFunc(s, unicode.IsLetter)
	if split < 0 {
		split = len(s)
	}

	number := strings.TrimSpace(s[:split])
	unit := strings.TrimSpace(s[split:])

	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrInvalidSize, unit)
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: malformed number %q", ErrInvalidSize, number)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: negative number %q", ErrInvalidSize, number)
	}

	product := math.Floor(value * float64(multiplier))
	if product >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidSize, s)
	}

	return uint64(product), nil
}

// ParseSizeLenient is the forgiving variant of [ParseSize]. It logs a warning
// instead of returning an error and reports whether the size was usable.
func ParseSizeLenient(s string) (uint64, bool) {
	size, err := ParseSize(s)
	if err != nil {
		slog.Warn("Ignored unparseable size",
			"size", s,
			"err", err,
		)

		return 0, false
	}

	return size, true
}
