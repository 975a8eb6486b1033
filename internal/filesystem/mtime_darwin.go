//go:build darwin || netbsd

package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

func statModTime(stat *unix.Stat_t) time.Time {
	return time.Unix(int64(stat.Mtimespec.Sec), int64(stat.Mtimespec.Nsec)) //nolint:unconvert
}
