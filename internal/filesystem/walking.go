package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/desertwitch/bestls/internal/queue"
	"github.com/desertwitch/bestls/internal/schema"
)

// ListOptions describes which elements a listing enumerates.
type ListOptions struct {
	// Root is the directory to list.
	Root string

	// IncludeHidden includes elements whose name begins with a dot.
	IncludeHidden bool

	// Tree descends recursively into subdirectories.
	Tree bool

	// MaxDepth bounds the recursion of a Tree listing; negative is unbounded.
	// A MaxDepth of zero produces the same records as a flat listing.
	MaxDepth int
}

type dirFrame struct {
	path  string
	depth int
}

// List enumerates the elements below the root and returns one record per
// element. The order of the records is not part of the contract.
//
// A failure to read the root returns [ErrRootRead]. Below the root, elements
// whose metadata cannot be read and directories that cannot be enumerated are
// skipped silently.
func (f *Handler) List(ctx context.Context, opts ListOptions) ([]*schema.Entry, error) {
	if !opts.Tree {
		return f.listFlat(ctx, opts)
	}

	return f.listTree(ctx, opts)
}

func (f *Handler) listFlat(ctx context.Context, opts ListOptions) ([]*schema.Entry, error) {
	entries, err := f.readLevel(ctx, opts.Root, 1, opts.IncludeHidden)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (f *Handler) listTree(ctx context.Context, opts ListOptions) ([]*schema.Entry, error) {
	rootEntries, err := f.readLevel(ctx, opts.Root, 1, opts.IncludeHidden)
	if err != nil {
		return nil, err
	}

	entries := make([]*schema.Entry, 0, len(rootEntries))
	entries = append(entries, rootEntries...)

	q := queue.NewGenericQueue[dirFrame]()

	if canDescend(opts.MaxDepth, 0) {
		q.Enqueue(f.subdirectories(rootEntries, 1)...)
	}

	if err := q.DequeueAndProcess(ctx, func(frame dirFrame) int {
		if opts.MaxDepth >= 0 && frame.depth > opts.MaxDepth {
			return queue.DecisionSkipped
		}

		children, err := f.readLevel(ctx, frame.path, frame.depth+1, opts.IncludeHidden)
		if err != nil {
			slog.Debug("Skipped unreadable directory during traversal",
				"err", err,
				"path", frame.path,
			)

			return queue.DecisionSkipped
		}

		entries = append(entries, children...)

		if canDescend(opts.MaxDepth, frame.depth) {
			q.Enqueue(f.subdirectories(children, frame.depth+1)...)
		}

		return queue.DecisionSuccess
	}); err != nil {
		slog.Debug("Traversal canceled",
			"root", opts.Root,
			"remaining", q.HasRemainingItems(),
		)

		return nil, fmt.Errorf("(fs-tree) %w", err)
	}

	skipped := q.GetSkipped()
	skippedPaths := make([]string, len(skipped))
	for i, frame := range skipped {
		skippedPaths[i] = frame.path
	}

	slog.Debug("Traversal finished",
		"root", opts.Root,
		"directories", len(q.GetSuccessful()),
		"skipped", skippedPaths,
	)

	return entries, nil
}

// readLevel enumerates one directory. Its children are recorded at depth.
func (f *Handler) readLevel(ctx context.Context, dir string, depth int, includeHidden bool) ([]*schema.Entry, error) {
	dirEntries, err := f.osHandler.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("(fs-read) %w: %q: %w", ErrRootRead, dir, err)
	}

	visible := make([]fs.DirEntry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if !includeHidden && isHidden(d.Name()) {
			continue
		}
		visible = append(visible, d)
	}

	entries, err := concMapSlice(ctx, f.maxWorkers, visible, func(d fs.DirEntry) (*schema.Entry, bool) {
		entry, err := f.Extract(dir, d, depth)
		if err != nil {
			slog.Debug("Skipped entry with unreadable metadata",
				"err", err,
				"path", dir,
				"name", d.Name(),
			)

			return nil, false
		}

		return entry, true
	})
	if err != nil {
		return nil, fmt.Errorf("(fs-read) %w", err)
	}

	return entries, nil
}

// subdirectories returns the frames for all directories among the entries.
// Symlinks are never followed, so symlinked directories are not returned.
func (*Handler) subdirectories(entries []*schema.Entry, depth int) []dirFrame {
	frames := []dirFrame{}

	for _, e := range entries {
		if e.Kind == schema.KindDirectory {
			frames = append(frames, dirFrame{path: e.Path, depth: depth})
		}
	}

	return frames
}

// canDescend reports whether the children of a directory at depth are to be
// enumerated.
func canDescend(maxDepth int, depth int) bool {
	return maxDepth < 0 || depth < maxDepth
}
