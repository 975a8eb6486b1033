// Package listing implements the listing pipeline: a [schema.Request] goes in
// and the rendered payload comes out.
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/desertwitch/bestls/internal/filesystem"
	"github.com/desertwitch/bestls/internal/processors"
	"github.com/desertwitch/bestls/internal/render"
	"github.com/desertwitch/bestls/internal/schema"
	"github.com/desertwitch/bestls/internal/sorting"
	"github.com/desertwitch/bestls/internal/theme"
	"github.com/desertwitch/bestls/internal/validation"
	"github.com/dustin/go-humanize"
)

type fsProvider interface {
	List(ctx context.Context, opts filesystem.ListOptions) ([]*schema.Entry, error)
}

// Handler is the principal implementation of the listing pipeline. It keeps
// no state between requests.
type Handler struct {
	fsHandler fsProvider
}

// NewHandler returns a pointer to a new listing [Handler].
func NewHandler(fsHandler fsProvider) *Handler {
	return &Handler{
		fsHandler: fsHandler,
	}
}

// Run validates the request, enumerates and filters the records, sorts them
// and renders them with the theme. A nil theme uses [theme.Default].
//
// Validation failures wrap [validation.ErrInvalidRequest] and happen before
// any filesystem access; an unreadable root wraps [ErrRootRead].
func (l *Handler) Run(ctx context.Context, req *schema.Request, th *theme.Theme) (string, error) {
	entries, plan, err := l.Collect(ctx, req)
	if err != nil {
		return "", err
	}

	out, err := render.Render(entries, render.Options{
		Format:   plan.Format,
		Compact:  plan.Compact,
		UseColor: plan.Color,
		Theme:    th,
		Columns:  plan.Columns,
	})
	if err != nil {
		return "", fmt.Errorf("(listing) %w", err)
	}

	return out, nil
}

// Collect runs the pipeline up to, but not including, the rendering. It
// returns the filtered and sorted records and the validated [validation.Plan].
func (l *Handler) Collect(ctx context.Context, req *schema.Request) ([]*schema.Entry, *validation.Plan, error) {
	started := time.Now()

	plan, err := validation.Validate(req)
	if err != nil {
		return nil, nil, fmt.Errorf("(listing) %w", err)
	}

	entries, err := l.fsHandler.List(ctx, plan.List)
	if err != nil {
		return nil, nil, fmt.Errorf("(listing) %w", err)
	}
	listed := len(entries)

	post := processors.NewGenericPipeline[*schema.Entry]()
	post.AddPostProcess(sorting.Processor(plan.SortBy))

	entries, err = postProcess(post, plan.Chain.Apply(entries))
	if err != nil {
		return nil, nil, fmt.Errorf("(listing) %w", err)
	}

	var totalSize uint64
	for _, e := range entries {
		totalSize += e.SizeBytes
	}

	slog.Debug("Listing collected",
		"path", plan.List.Root,
		"listed", humanize.Comma(int64(listed)),
		"kept", humanize.Comma(int64(len(entries))),
		"size", humanize.IBytes(totalSize),
		"filters", plan.Chain.Enabled(),
		"sort", string(plan.SortBy),
		"took", time.Since(started),
	)

	return entries, plan, nil
}

func postProcess(pipeline schema.Pipeline[*schema.Entry], entries []*schema.Entry) ([]*schema.Entry, error) {
	result, ok := pipeline.PostProcess(entries)
	if !ok {
		return nil, ErrPostProcess
	}

	return result, nil
}
