//go:build !unix

package filesystem

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/desertwitch/bestls/internal/schema"
)

type unixProvider interface {
	Lstat(name string) (os.FileInfo, error)
}

func (f *Handler) getMetadata(path string) (*schema.Metadata, error) {
	info, err := f.unixHandler.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	mode := info.Mode()

	return &schema.Metadata{
		Perms:      uint32(mode.Perm()),
		ReadOnly:   mode.Perm()&0o200 == 0,
		ModifiedAt: info.ModTime(),
		Size:       handleSize(info.Size()),
		IsRegular:  mode.IsRegular(),
		IsDir:      mode.IsDir(),
		IsSymlink:  mode&fs.ModeSymlink != 0,
	}, nil
}
