// Package filesystem implements the enumeration of directories and the
// extraction of per-element metadata into [schema.Entry] records.
package filesystem

import (
	"os"
	"runtime"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
}

type userProvider interface {
	LookupUser(uid string) (string, error)
	LookupGroup(gid string) (string, error)
}

// Handler is the principal implementation for the filesystem operations.
// It holds no state between calls and is safe for concurrent use.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
	userHandler userProvider
	maxWorkers  int
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider, userHandler userProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
		userHandler: userHandler,
		maxWorkers:  runtime.NumCPU(),
	}
}
