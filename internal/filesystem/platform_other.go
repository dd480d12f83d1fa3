//go:build !darwin && !freebsd && !netbsd && !linux && !openbsd && !windows

package filesystem

import (
	"os"
	"time"
)

// creationTime reports no creation time; callers fall back to ModTime
func creationTime(os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}
