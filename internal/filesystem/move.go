package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Move renames from to to. When the rename crosses devices the entry is
// copied (recursively for directories) and the source removed. A failed
// copy removes the partial destination and leaves the source in place.
func Move(fsys billy.Filesystem, from, to string) error {
	err := fsys.Rename(from, to)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}

	info, err := fsys.Lstat(from)
	if err != nil {
		return err
	}
	if _, err := fsys.Lstat(to); err == nil {
		return &os.PathError{Op: "move", Path: to, Err: os.ErrExist}
	}

	if err := copyEntry(fsys, from, to, info); err != nil {
		_ = util.RemoveAll(fsys, to)
		return fmt.Errorf("failed to copy %s: %w", from, err)
	}

	if err := util.RemoveAll(fsys, from); err != nil {
		return fmt.Errorf("copied but failed to remove %s: %w", from, err)
	}

	return nil
}

func copyEntry(fsys billy.Filesystem, from, to string, info os.FileInfo) error {
	mode := info.Mode()
	switch {
	case mode.IsDir():
		return copyDir(fsys, from, to, info)
	case mode&os.ModeSymlink != 0:
		return copyLink(fsys, from, to)
	case mode.IsRegular():
		return copyFile(fsys, from, to, info)
	default:
		return fmt.Errorf("unsupported file type %s: %s", mode.Type(), from)
	}
}

func copyDir(fsys billy.Filesystem, from, to string, info os.FileInfo) error {
	if err := fsys.MkdirAll(to, info.Mode().Perm()); err != nil {
		return err
	}

	entries, err := fsys.ReadDir(from)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		src := fsys.Join(from, entry.Name())
		dst := fsys.Join(to, entry.Name())
		if err := copyEntry(fsys, src, dst, entry); err != nil {
			return err
		}
	}

	preserveTimes(fsys, to, info)
	return nil
}

func copyLink(fsys billy.Filesystem, from, to string) error {
	links, ok := fsys.(billy.Symlink)
	if !ok {
		return billy.ErrNotSupported
	}

	target, err := links.Readlink(from)
	if err != nil {
		return err
	}
	return links.Symlink(target, to)
}

// copyFile copies a file from src to dst
func copyFile(fsys billy.Filesystem, src, dst string, info os.FileInfo) error {
	sourceFile, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	if err := destFile.Close(); err != nil {
		return err
	}

	preserveTimes(fsys, dst, info)
	return nil
}

// preserveTimes carries the source mtime over when the filesystem supports it
func preserveTimes(fsys billy.Filesystem, path string, info os.FileInfo) {
	if ch, ok := fsys.(billy.Change); ok {
		_ = ch.Chtimes(path, info.ModTime(), info.ModTime())
	}
}
