// Package filelock implements locked writes of whole files.
package filelock

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const (
	lockSuffix  = ".lock"
	tempPattern = ".tmp-*"
	dirPerms    = 0o755
)

// FileLock is an advisory lock coordinating writers of one target file.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock returns a pointer to a new [FileLock] at the given lock path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// Lock acquires the lock, blocking until it is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("(filelock-lock) %w: %q: %w", ErrLockFailed, fl.path, err)
	}

	return nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("(filelock-unlock) %w: %q: %w", ErrUnlockFailed, fl.path, err)
	}

	return nil
}

// AtomicWrite writes the data to a temporary file next to the target and
// renames it over the target, so readers never observe a partial file. The
// parent directory is created if missing. On failure the original target, if
// any, is left untouched.
func AtomicWrite(path string, data []byte, perm fs.FileMode) (retErr error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerms); err != nil {
		return fmt.Errorf("(filelock-write) %w: %q: %w", ErrWriteFailed, dir, err)
	}

	tempFile, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return fmt.Errorf("(filelock-write) %w: %w", ErrWriteFailed, err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if retErr != nil {
			_ = tempFile.Close()
			_ = os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("(filelock-write) %w: %w", ErrWriteFailed, err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("(filelock-write) %w: %w", ErrWriteFailed, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("(filelock-write) %w: %w", ErrWriteFailed, err)
	}

	if err := os.Chmod(tempPath, perm); err != nil {
		return fmt.Errorf("(filelock-write) %w: %w", ErrWriteFailed, err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("(filelock-write) %w: %q: %w", ErrWriteFailed, path, err)
	}

	return nil
}

// LockAndWrite holds the lock at "<path>.lock" for the duration of an
// [AtomicWrite] to the path. The lock file is removed again afterwards.
func LockAndWrite(path string, data []byte, perm fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerms); err != nil {
		return fmt.Errorf("(filelock-lockwrite) %w: %w", ErrWriteFailed, err)
	}

	lock := NewFileLock(path + lockSuffix)
	if err := lock.Lock(); err != nil {
		return err
	}

	defer func() {
		if err := lock.Unlock(); err != nil {
			slog.Warn("Failed to release file lock", "err", err, "path", lock.path)

			return
		}
		if err := os.Remove(lock.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Failed to remove lock file", "err", err, "path", lock.path)
		}
	}()

	return AtomicWrite(path, data, perm)
}

// WriteInPlace writes the data into the file at path through the path
// itself. Symlinks are followed and an existing file keeps its mode and
// identity; perm only applies to a newly created file. Regular files are
// locked for the duration of the write and truncated under the lock.
func WriteInPlace(path string, data []byte, perm fs.FileMode) (retErr error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, perm)
	if err != nil {
		return fmt.Errorf("(filelock-inplace) %w: %q: %w", ErrWriteFailed, path, err)
	}

	defer func() {
		if err := file.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("(filelock-inplace) %w: %q: %w", ErrWriteFailed, path, err)
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("(filelock-inplace) %w: %q: %w", ErrWriteFailed, path, err)
	}

	if info.Mode().IsRegular() {
		lock := NewFileLock(path)
		if err := lock.Lock(); err != nil {
			return err
		}

		defer func() {
			if err := lock.Unlock(); err != nil {
				slog.Warn("Failed to release file lock", "err", err, "path", path)
			}
		}()

		if err := file.Truncate(0); err != nil {
			return fmt.Errorf("(filelock-inplace) %w: %q: %w", ErrWriteFailed, path, err)
		}
	}

	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("(filelock-inplace) %w: %q: %w", ErrWriteFailed, path, err)
	}

	return nil
}
