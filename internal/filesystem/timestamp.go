package filesystem

import (
	"os"
	"time"
)

// CreationTime returns the creation timestamp recorded by the platform.
// Birth time is used where stat exposes it (darwin, freebsd, netbsd),
// inode change time on linux and openbsd, creation time on windows.
// The second result is false when info carries no platform data, as with
// in-memory filesystems.
func CreationTime(info os.FileInfo) (time.Time, bool) {
	if info == nil || info.Sys() == nil {
		return time.Time{}, false
	}
	return creationTime(info)
}

// EffectiveTime returns the later of the modification and creation times
func EffectiveTime(info os.FileInfo) time.Time {
	return effectiveTime(info.ModTime(), info)
}

// effectiveTime is EffectiveTime for a modification time already read from info
func effectiveTime(mod time.Time, info os.FileInfo) time.Time {
	if created, ok := CreationTime(info); ok && created.After(mod) {
		return created
	}
	return mod
}
