package filter

import (
	"testing"

	"github.com/desertwitch/bestls/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []*schema.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}

	return out
}

// TestChain_Apply tests the conjunction of the enabled predicates.
func TestChain_Apply(t *testing.T) {
	t.Parallel()

	entries := []*schema.Entry{
		{Name: "small.rs", SizeBytes: 100},
		{Name: "medium.rs", SizeBytes: 2048},
		{Name: "large.rs", SizeBytes: 1_500_000},
		{Name: "medium.md", SizeBytes: 2048},
		{Name: "lib.go", SizeBytes: 4096},
	}

	tests := []struct {
		name     string
		opts     Options
		expected []string
	}{
		{"Success_NoFilters", Options{}, []string{"small.rs", "medium.rs", "large.rs", "medium.md", "lib.go"}},
		{"Success_Extension", Options{Extensions: []string{"rs"}}, []string{"small.rs", "medium.rs", "large.rs"}},
		{"Success_Pattern", Options{Pattern: "medium.*"}, []string{"medium.rs", "medium.md"}},
		{"Success_SizeRange", Options{MinSize: "1KB", MaxSize: "1MB"}, []string{"medium.rs", "medium.md", "lib.go"}},
		{"Success_ExactSize", Options{MinSize: "2048", MaxSize: "2KB"}, []string{"medium.rs", "medium.md"}},
		{"Success_Combined", Options{Extensions: []string{"rs"}, Pattern: "m*", MinSize: "1K"}, []string{"medium.rs"}},
		{"Success_MaxOnly", Options{MaxSize: "100"}, []string{"small.rs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewChain(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, names(c.Apply(entries)))
		})
	}
}

// TestChain_Accept_Conjunction tests that a record survives iff every enabled
// predicate accepts it on its own.
func TestChain_Accept_Conjunction(t *testing.T) {
	t.Parallel()

	ext, err := NewChain(Options{Extensions: []string{"rs"}})
	require.NoError(t, err)
	glob, err := NewChain(Options{Pattern: "m*"})
	require.NoError(t, err)
	size, err := NewChain(Options{MinSize: "1K"})
	require.NoError(t, err)
	all, err := NewChain(Options{Extensions: []string{"rs"}, Pattern: "m*", MinSize: "1K"})
	require.NoError(t, err)

	assert.Equal(t, 3, all.Enabled())

	for _, e := range []*schema.Entry{
		{Name: "main.rs", SizeBytes: 4096},
		{Name: "main.rs", SizeBytes: 10},
		{Name: "lib.rs", SizeBytes: 4096},
		{Name: "main.go", SizeBytes: 4096},
	} {
		expected := ext.Accept(e) && glob.Accept(e) && size.Accept(e)
		assert.Equal(t, expected, all.Accept(e), e.Name)
	}
}

// TestNewChain_Fail tests the validation of the filter configuration.
func TestNewChain_Fail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		opts     Options
		expected error
	}{
		{"Fail_Pattern", Options{Pattern: "[oops"}, ErrInvalidPattern},
		{"Fail_MinSize", Options{MinSize: "big"}, ErrInvalidMinSize},
		{"Fail_MaxSize", Options{MaxSize: "1XB"}, ErrInvalidMaxSize},
		{"Fail_InvertedRange", Options{MinSize: "1MB", MaxSize: "1KB"}, ErrInvalidSizeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewChain(tt.opts)
			require.ErrorIs(t, err, tt.expected)
			assert.Nil(t, c)
		})
	}

	_, err := NewChain(Options{MinSize: "big"})
	require.ErrorIs(t, err, ErrInvalidSize)
}
