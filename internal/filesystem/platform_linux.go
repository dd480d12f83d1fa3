//go:build linux || openbsd

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// creationTime gets the change time from FileInfo (Unix)
func creationTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return time.Time{}, false
	}
	// Use ctime (change time)
	return time.Unix(int64(stat.Ctim.Sec), int64(stat.Ctim.Nsec)), true
}
