package filelock

import "errors"

var (
	// ErrLockFailed occurs when a file lock cannot be acquired.
	ErrLockFailed = errors.New("failed to acquire lock")

	// ErrUnlockFailed occurs when a held file lock cannot be released.
	ErrUnlockFailed = errors.New("failed to release lock")

	// ErrWriteFailed occurs when a file cannot be written atomically.
	ErrWriteFailed = errors.New("failed to write file")
)
