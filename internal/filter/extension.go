package filter

import (
	"strings"
)

// Extensions matches filenames against a normalized set of extensions.
//
// Extensions are normalized once on construction (trimmed, one leading dot
// stripped, lower-cased). Filenames are lower-cased before comparison, so
// matching is case-insensitive on both sides.
type Extensions struct {
	suffixes []string
}

// NewExtensions returns [Extensions] for a list of extensions. Entries that
// are empty after normalization are dropped.
func NewExtensions(exts []string) *Extensions {
	e := &Extensions{}

	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext == "" {
			continue
		}
		e.suffixes = append(e.suffixes, "."+ext)
	}

	return e
}

// Empty reports whether there are no extensions to match against.
func (e *Extensions) Empty() bool {
	return len(e.suffixes) == 0
}

// Match reports whether a filename ends with one of the extensions. An empty
// set matches every filename.
func (e *Extensions) Match(name string) bool {
	if e.Empty() {
		return true
	}

	name = strings.ToLower(name)
	for _, suffix := range e.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

// SplitList splits a comma-separated list, trimming each element and dropping
// empty ones.
func SplitList(s string) []string {
	var list []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}

	return list
}
