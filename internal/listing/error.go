package listing

import (
	"errors"

	"github.com/desertwitch/bestls/internal/filesystem"
)

var (
	// ErrRootRead occurs when the directory of a request cannot be opened or
	// enumerated. Failures below it never surface as errors.
	ErrRootRead = filesystem.ErrRootRead

	// ErrPostProcess occurs when a post-processing stage rejects the records.
	ErrPostProcess = errors.New("failed to post-process records")
)
