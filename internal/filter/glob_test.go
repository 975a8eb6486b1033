package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGlob_Match tests the supported pattern syntax against bare filenames.
func TestGlob_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		name    string
		match   bool
	}{
		{"*.rs", "main.rs", true},
		{"*.rs", "README.md", false},
		{"*", ".hidden", true},
		{"?.txt", "a.txt", true},
		{"?.txt", "ab.txt", false},
		{"[abc]*", "bravo", true},
		{"[abc]*", "delta", false},
		{"[!abc]*", "delta", true},
		{"[!abc]*", "alpha", false},
		{"[a-c]?", "b1", true},
		{"*.rs", "sub/main.rs", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"_"+tt.name, func(t *testing.T) {
			t.Parallel()

			g, err := CompileGlob(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.match, g.Match(tt.name))
			assert.Equal(t, tt.pattern, g.String())
		})
	}
}

// TestCompileGlob_Fail tests that malformed patterns are rejected.
func TestCompileGlob_Fail(t *testing.T) {
	t.Parallel()

	for _, pattern := range []string{"[abc", "", "a["} {
		_, err := CompileGlob(pattern)
		require.ErrorIs(t, err, ErrInvalidPattern, pattern)
	}
}
