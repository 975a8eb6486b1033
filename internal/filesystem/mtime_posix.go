//go:build unix && !darwin && !netbsd

package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

func statModTime(stat *unix.Stat_t) time.Time {
	return time.Unix(int64(stat.Mtim.Sec), int64(stat.Mtim.Nsec)) //nolint:unconvert
}
