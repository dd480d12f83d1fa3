//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// creationTime gets the creation time from FileInfo (Windows)
func creationTime(info os.FileInfo) (time.Time, bool) {
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(0, stat.CreationTime.Nanoseconds()), true
}
