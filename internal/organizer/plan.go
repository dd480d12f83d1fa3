package organizer

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/IvanShishkin/dlsweep/internal/classify"
)

// UniqueTimeFormat is the timestamp layout appended to colliding names
const UniqueTimeFormat = "20060102_150405"

// ErrDestinationExists is returned when both the plain and the uniquified
// destination names are taken
var ErrDestinationExists = errors.New("destination already exists")

// ExistsFunc reports whether a path is already taken
type ExistsFunc func(path string) bool

// ResolveDestination returns the path name should be moved to inside
// categoryDir. A free name is used as is; otherwise the stem gets a
// _YYYYMMDD_HHMMSS suffix taken from now, keeping the extension. The bool
// result reports whether the name was changed.
func ResolveDestination(categoryDir, name string, now time.Time, exists ExistsFunc) (string, bool, error) {
	dest := filepath.Join(categoryDir, name)
	if !exists(dest) {
		return dest, false, nil
	}

	dest = filepath.Join(categoryDir, UniqueName(name, now))
	if exists(dest) {
		return "", false, ErrDestinationExists
	}
	return dest, true, nil
}

// UniqueName inserts the timestamp between the stem and the final suffix
func UniqueName(name string, now time.Time) string {
	stem, suffix := classify.SplitName(name)
	return stem + "_" + now.Format(UniqueTimeFormat) + suffix
}
