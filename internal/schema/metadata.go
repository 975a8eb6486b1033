package schema

import "time"

// Metadata is a platform-neutral view of the attributes read from a single
// (non-following) stat of a filesystem element.
type Metadata struct {
	Perms      uint32
	UID        uint32
	GID        uint32
	ReadOnly   bool
	ModifiedAt time.Time
	Size       uint64
	IsRegular  bool
	IsDir      bool
	IsSymlink  bool
}
