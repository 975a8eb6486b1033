package main

import (
	"errors"
	"fmt"

	"github.com/desertwitch/bestls/internal/validation"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

var (
	// ErrOutput occurs when the payload cannot be written to the output file.
	ErrOutput = errors.New("failed to write output")

	// ErrDepthWithoutTree occurs when a depth is given for a flat listing.
	ErrDepthWithoutTree = errors.New("--depth requires --tree")
)

// usageError marks a command line that could not be understood.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

func newUsageError(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exitCodeFor maps an error to the process exit code.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	var usageErr *usageError
	if errors.As(err, &usageErr) || errors.Is(err, validation.ErrInvalidRequest) {
		return exitUsage
	}

	return exitFailure
}
