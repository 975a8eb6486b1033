// Package validation implements the checks a [schema.Request] passes before
// any filesystem access, and compiles it into a ready-to-run [Plan].
package validation

import (
	"fmt"
	"slices"

	"github.com/desertwitch/bestls/internal/filesystem"
	"github.com/desertwitch/bestls/internal/filter"
	"github.com/desertwitch/bestls/internal/schema"
)

// Plan is a validated and compiled [schema.Request].
type Plan struct {
	List    filesystem.ListOptions
	Chain   *filter.Chain
	SortBy  schema.SortKey
	Format  schema.Format
	Compact bool
	Color   bool
	Columns []schema.Column
}

// Validate checks the [schema.Request] and compiles it into a [Plan]. All
// failures wrap [ErrInvalidRequest] and the specific cause.
func Validate(req *schema.Request) (*Plan, error) {
	chain, err := filter.NewChain(filter.Options{
		Extensions: req.FilterExt,
		Pattern:    req.FilterName,
		MinSize:    req.MinSize,
		MaxSize:    req.MaxSize,
	})
	if err != nil {
		return nil, fmt.Errorf("(validation) %w: %w", ErrInvalidRequest, err)
	}

	maxDepth := schema.UnboundedDepth
	if req.Tree {
		if req.MaxDepth < schema.UnboundedDepth {
			return nil, fmt.Errorf("(validation) %w: %w: %d", ErrInvalidRequest, ErrInvalidDepth, req.MaxDepth)
		}
		maxDepth = req.MaxDepth
	}

	columns, err := validateColumns(req.Columns)
	if err != nil {
		return nil, fmt.Errorf("(validation) %w: %w", ErrInvalidRequest, err)
	}

	format := schema.ResolveFormat(req.Format, req.JSON, req.JSONPretty)

	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = schema.SortByName
	}

	path := req.Path
	if path == "" {
		path = "."
	}

	return &Plan{
		List: filesystem.ListOptions{
			Root:          path,
			IncludeHidden: req.IncludeHidden,
			Tree:          req.Tree,
			MaxDepth:      maxDepth,
		},
		Chain:   chain,
		SortBy:  sortBy,
		Format:  format,
		Compact: req.Compact && format == schema.FormatTable,
		Color:   req.UseColor,
		Columns: columns,
	}, nil
}

// validateColumns returns the selected columns in canonical order, or all
// columns if none are selected.
func validateColumns(names []string) ([]schema.Column, error) {
	if len(names) == 0 {
		return schema.Columns(), nil
	}

	selected := make(map[schema.Column]struct{}, len(names))

	for _, name := range names {
		c, err := schema.ParseColumn(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidColumns, err)
		}
		selected[c] = struct{}{}
	}

	columns := slices.DeleteFunc(schema.Columns(), func(c schema.Column) bool {
		_, ok := selected[c]

		return !ok
	})

	return columns, nil
}
