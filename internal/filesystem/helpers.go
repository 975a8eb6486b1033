package filesystem

import (
	"context"
	"strings"
	"time"

	"github.com/desertwitch/bestls/internal/schema"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

const (
	unixBasePerms = 0o777
)

// HumanSize formats a byte count with base 1024 and B/KB/MB/GB/TB suffixes,
// rounded for display (e.g. "1.5 KB").
func HumanSize(size uint64) string {
	return strings.Replace(humanize.IBytes(size), "iB", "B", 1)
}

func handleSize(size int64) uint64 {
	if size < 0 {
		return 0
	}

	return uint64(size)
}

func formatModified(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(schema.ModifiedLayout)
}

func displayName(name string) string {
	return strings.ToValidUTF8(name, "�")
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func kindOf(meta *schema.Metadata) schema.Kind {
	switch {
	case meta.IsRegular:
		return schema.KindFile
	case meta.IsDir:
		return schema.KindDirectory
	case meta.IsSymlink:
		return schema.KindSymlink
	default:
		return schema.KindFile
	}
}

// concMapSlice applies mapFunc to all items with at most maxWorkers running at
// once. Items for which mapFunc reports false are dropped. The order of the
// results is not part of the contract.
func concMapSlice[T, R any](ctx context.Context, maxWorkers int, items []T, mapFunc func(T) (R, bool)) ([]R, error) {
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(maxWorkers, 1))

	results := make([]R, len(items))
	kept := make([]bool, len(items))

	for i, item := range items {
		if gCtx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i], kept[i] = mapFunc(item)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	mapped := make([]R, 0, len(items))
	for i := range results {
		if kept[i] {
			mapped = append(mapped, results[i])
		}
	}

	return mapped, nil
}
