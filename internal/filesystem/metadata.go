package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/desertwitch/bestls/internal/schema"
)

// Extract reads the metadata of a directory entry once and derives a fully
// populated [schema.Entry] from it. The depth is recorded on the entry as is.
func (f *Handler) Extract(dir string, d fs.DirEntry, depth int) (*schema.Entry, error) {
	if d.Name() == "" {
		return nil, ErrEmptyName
	}

	path := filepath.Join(dir, d.Name())

	meta, err := f.getMetadata(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-extract) %w", err)
	}

	owner, group := f.resolveOwnership(meta)

	return &schema.Entry{
		Name:        displayName(d.Name()),
		Kind:        kindOf(meta),
		SizeBytes:   meta.Size,
		SizeHuman:   HumanSize(meta.Size),
		Modified:    formatModified(meta.ModifiedAt),
		Permissions: formatPermissions(meta),
		Owner:       owner,
		Group:       group,
		Path:        path,
		Depth:       depth,
	}, nil
}
