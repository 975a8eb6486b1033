package filter

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob is a compiled filename pattern. It supports "*" (any run of
// non-separator characters), "?" (a single character), "[abc]" character
// classes and "[!abc]" negated classes.
type Glob struct {
	pattern string
}

// CompileGlob validates a pattern and returns a [Glob] for it.
func CompileGlob(pattern string) (*Glob, error) {
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	return &Glob{pattern: pattern}, nil
}

// Match reports whether a bare filename matches the pattern.
func (g *Glob) Match(name string) bool {
	ok, err := doublestar.Match(g.pattern, name)

	return err == nil && ok
}

// String returns the source pattern.
func (g *Glob) String() string {
	return g.pattern
}
