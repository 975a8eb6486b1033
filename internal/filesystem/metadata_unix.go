//go:build unix

package filesystem

import (
	"fmt"
	"strconv"

	"github.com/desertwitch/bestls/internal/schema"
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

//nolint:gochecknoglobals
var permBits = [9]struct {
	mask uint32
	char byte
}{
	{0o400, 'r'}, {0o200, 'w'}, {0o100, 'x'},
	{0o040, 'r'}, {0o020, 'w'}, {0o010, 'x'},
	{0o004, 'r'}, {0o002, 'w'}, {0o001, 'x'},
}

func (f *Handler) getMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-metadata) failed to lstat: %w", err)
	}

	fileType := uint32(stat.Mode) & unix.S_IFMT

	return &schema.Metadata{
		Perms:      uint32(stat.Mode) & unixBasePerms,
		UID:        stat.Uid,
		GID:        stat.Gid,
		ReadOnly:   uint32(stat.Mode)&0o200 == 0,
		ModifiedAt: statModTime(&stat),
		Size:       handleSize(stat.Size),
		IsRegular:  fileType == unix.S_IFREG,
		IsDir:      fileType == unix.S_IFDIR,
		IsSymlink:  fileType == unix.S_IFLNK,
	}, nil
}

func formatPermissions(meta *schema.Metadata) string {
	var perms [9]byte

	for i, bit := range permBits {
		if meta.Perms&bit.mask != 0 {
			perms[i] = bit.char
		} else {
			perms[i] = '-'
		}
	}

	return string(perms[:])
}

func (f *Handler) resolveOwnership(meta *schema.Metadata) (string, string) {
	uid := strconv.FormatUint(uint64(meta.UID), 10)
	gid := strconv.FormatUint(uint64(meta.GID), 10)

	owner, err := f.userHandler.LookupUser(uid)
	if err != nil || owner == "" {
		owner = uid
	}

	group, err := f.userHandler.LookupGroup(gid)
	if err != nil || group == "" {
		group = gid
	}

	return owner, group
}
