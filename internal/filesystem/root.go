package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

var (
	// ErrRootNotFound is returned when the configured root does not exist
	ErrRootNotFound = errors.New("root directory not found")
	// ErrNotDirectory is returned when the configured root is not a directory
	ErrNotDirectory = errors.New("root is not a directory")
)

// CheckRoot verifies that path exists and is a directory
func CheckRoot(path string) error {
	info, err := osfs.Default.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, path)
		}
		return fmt.Errorf("failed to access %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	return nil
}

// OpenRoot checks path and returns an OS filesystem rooted at it
func OpenRoot(path string) (billy.Filesystem, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if err := CheckRoot(abs); err != nil {
		return nil, err
	}
	return osfs.New(abs), nil
}
