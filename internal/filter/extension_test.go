package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestExtensions_Match tests normalization and matching of extension lists.
func TestExtensions_Match(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		exts     []string
		filename string
		expected bool
	}{
		{"Success_EmptyMatchesAll", nil, "anything", true},
		{"Success_Plain", []string{"rs"}, "main.rs", true},
		{"Success_LeadingDot", []string{".rs"}, "main.rs", true},
		{"Success_Whitespace", []string{"  txt "}, "notes.txt", true},
		{"Success_UpperFilter", []string{"MD"}, "README.md", true},
		{"Success_UpperFilename", []string{"md"}, "README.MD", true},
		{"Success_AnyOfList", []string{"rs", "go"}, "main.go", true},
		{"Success_MultiDot", []string{"gz"}, "archive.tar.gz", true},
		{"Fail_NoDot", []string{"rs"}, "rs", false},
		{"Fail_SuffixOnly", []string{"rs"}, "hrs", false},
		{"Fail_Other", []string{"rs", "go"}, "main.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NewExtensions(tt.exts).Match(tt.filename))
		})
	}
}

// TestExtensions_Empty tests that blank extensions are dropped.
func TestExtensions_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, NewExtensions([]string{"", " ", "."}).Empty())
	assert.False(t, NewExtensions([]string{"", "rs"}).Empty())
}

// TestSplitList tests splitting of comma-separated lists.
func TestSplitList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"rs", ".txt", "md"}, SplitList("rs, .txt,,md ,"))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , "))
}
