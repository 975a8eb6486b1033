// Package filter implements the predicates a listing is narrowed down with:
// human size bounds, filename glob patterns and extension lists, compiled once
// into a [Chain].
package filter

import (
	"fmt"

	"github.com/desertwitch/bestls/internal/processors"
	"github.com/desertwitch/bestls/internal/schema"
)

// Options holds the raw, unvalidated filter configuration of a request. Zero
// values disable the respective predicate.
type Options struct {
	Extensions []string
	Pattern    string
	MinSize    string
	MaxSize    string
}

// Chain is the compiled conjunction of the extension, name-pattern, min-size
// and max-size predicates, applied in that order. Disabled predicates are not
// part of the chain and so accept every record.
type Chain struct {
	pipeline *processors.GenericPipeline[*schema.Entry]

	extensions *Extensions
	glob       *Glob
	minSize    *uint64
	maxSize    *uint64
}

// NewChain validates the [Options] and compiles them into a [Chain]. It fails
// on a malformed pattern, a malformed size bound, or a minimum size strictly
// greater than the maximum size.
func NewChain(opts Options) (*Chain, error) {
	c := &Chain{
		pipeline:   processors.NewGenericPipeline[*schema.Entry](),
		extensions: NewExtensions(opts.Extensions),
	}

	if opts.Pattern != "" {
		glob, err := CompileGlob(opts.Pattern)
		if err != nil {
			return nil, err
		}
		c.glob = glob
	}

	if opts.MinSize != "" {
		size, err := ParseSize(opts.MinSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMinSize, err)
		}
		c.minSize = &size
	}

	if opts.MaxSize != "" {
		size, err := ParseSize(opts.MaxSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMaxSize, err)
		}
		c.maxSize = &size
	}

	if c.minSize != nil && c.maxSize != nil && *c.minSize > *c.maxSize {
		return nil, fmt.Errorf("%w (%d > %d bytes)", ErrInvalidSizeRange, *c.minSize, *c.maxSize)
	}

	c.compile()

	return c, nil
}

func (c *Chain) compile() {
	if !c.extensions.Empty() {
		c.pipeline.Add(func(e *schema.Entry) bool {
			return c.extensions.Match(e.Name)
		})
	}

	if c.glob != nil {
		c.pipeline.Add(func(e *schema.Entry) bool {
			return c.glob.Match(e.Name)
		})
	}

	if c.minSize != nil {
		minSize := *c.minSize
		c.pipeline.Add(func(e *schema.Entry) bool {
			return e.SizeBytes >= minSize
		})
	}

	if c.maxSize != nil {
		maxSize := *c.maxSize
		c.pipeline.Add(func(e *schema.Entry) bool {
			return e.SizeBytes <= maxSize
		})
	}
}

// Enabled returns the amount of enabled predicates.
func (c *Chain) Enabled() int {
	return c.pipeline.Len()
}

// Accept reports whether every enabled predicate accepts the [schema.Entry].
func (c *Chain) Accept(e *schema.Entry) bool {
	return c.pipeline.Process(e)
}

// Apply returns the records accepted by every enabled predicate, in their
// original order.
func (c *Chain) Apply(entries []*schema.Entry) []*schema.Entry {
	return c.pipeline.Filter(entries)
}
