package schema

import "encoding/json"

// Kind is the coarse type of a filesystem element as presented in a listing.
// Anything that is neither a regular file, a directory nor a symlink (devices,
// sockets, pipes) is reported as [KindFile].
type Kind int

const (
	// KindFile is a regular file or any unclassified element.
	KindFile Kind = iota

	// KindDirectory is a directory.
	KindDirectory

	// KindSymlink is a symbolic link (never resolved).
	KindSymlink
)

// String returns the variant name of a [Kind].
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "Directory"
	case KindSymlink:
		return "Symlink"
	case KindFile:
		return "File"
	default:
		return "File"
	}
}

// MarshalJSON encodes a [Kind] as its variant name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Entry is the principal record of a listing. It is produced once per
// filesystem element by the metadata extraction, consumed by all downstream
// stages and discarded after rendering.
//
// Entries are meant to be passed by reference (pointer) and are not
// thread-safe.
type Entry struct {
	// Name is the bare filename (no path components), valid UTF-8.
	Name string `json:"name"`

	// Kind is the [Kind] of the element.
	Kind Kind `json:"e_type"`

	// SizeBytes is the raw length as reported by the filesystem. For
	// directories this is the directory's own entry length.
	SizeBytes uint64 `json:"len_bytes"`

	// SizeHuman is SizeBytes scaled with base 1024 (e.g. "1.5 KB").
	SizeHuman string `json:"human_size"`

	// Modified is the UTC modification time in the [ModifiedLayout], or
	// empty when unavailable.
	Modified string `json:"modified"`

	// Permissions is the permission string as derived by the platform.
	Permissions string `json:"permissions"`

	// Owner is the resolved owner name, or its numeric identifier.
	Owner string `json:"owner"`

	// Group is the resolved group name, or its numeric identifier.
	Group string `json:"group"`

	// Path is the full (raw) path of the element, used for descending.
	Path string `json:"-"`

	// Depth is the traversal depth of the element (children of the listed
	// root are at depth 1).
	Depth int `json:"-"`
}

// ModifiedLayout is the layout used for [Entry.Modified].
const ModifiedLayout = "Mon 02 Jan 2006 15:04:05"
