//go:build !unix

package schema

import "os"

// Unix is the stand-in for the Unix syscall wrapper on platforms without
// them. It wraps the portable [os] equivalents instead.
type Unix struct{}

// Lstat wraps around [os.Lstat].
func (*Unix) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}
