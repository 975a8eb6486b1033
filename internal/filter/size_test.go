package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSize_Success tests the accepted size grammar.
func TestParseSize_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected uint64
	}{
		{"Success_PlainBytes", "100", 100},
		{"Success_ByteUnit", "100B", 100},
		{"Success_Kilo", "1K", 1024},
		{"Success_KiloBytes", "1KB", 1024},
		{"Success_LowerCase", "1kb", 1024},
		{"Success_Fraction", "1.5MB", 1572864},
		{"Success_Mega", "1M", 1 << 20},
		{"Success_Giga", "2GB", 2 << 30},
		{"Success_Tera", "1TB", 1 << 40},
		{"Success_Floor", "1.3K", 1331},
		{"Success_LeadingDot", ".5K", 512},
		{"Success_Whitespace", "  10 KB ", 10240},
		{"Success_Zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			size, err := ParseSize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, size)
		})
	}
}

// TestParseSize_Fail tests the rejected size strings.
func TestParseSize_Fail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"Fail_Empty", ""},
		{"Fail_Blank", "   "},
		{"Fail_NoNumber", "KB"},
		{"Fail_UnknownUnit", "10XB"},
		{"Fail_PetaUnsupported", "1PB"},
		{"Fail_Malformed", "1.2.3K"},
		{"Fail_Negative", "-5K"},
		{"Fail_Comma", "1,000"},
		{"Fail_Overflow", "99999999999TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseSize(tt.input)
			require.ErrorIs(t, err, ErrInvalidSize)
		})
	}
}

// TestParseSizeLenient tests that the forgiving variant reports usability.
func TestParseSizeLenient(t *testing.T) {
	t.Parallel()

	size, ok := ParseSizeLenient("2K")
	assert.True(t, ok)
	assert.Equal(t, uint64(2048), size)

	size, ok = ParseSizeLenient("lots")
	assert.False(t, ok)
	assert.Zero(t, size)
}
