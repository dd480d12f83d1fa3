package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/IvanShishkin/dlsweep/pkg/models"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFiles(t *testing.T, fsys billy.Filesystem, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, util.WriteFile(fsys, name, []byte(content), 0644))
	}
}

func relPaths(records []*models.FileRecord) []string {
	paths := make([]string, 0, len(records))
	for _, r := range records {
		paths = append(paths, r.RelativePath)
	}
	sort.Strings(paths)
	return paths
}

func TestWalker_Scan(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, map[string]string{
		"a.txt":              "hello",
		"README":             "x",
		"sub/b.PDF":          "12345678",
		"sub/deep/c.tar.gz":  "abc",
		".hidden":            "secret",
		".git/config":        "ignored",
		"sub/.cache/d.txt":   "ignored",
		"sub/deep/.e.txt":    "ignored",
	})
	require.NoError(t, fsys.MkdirAll("empty", 0755))

	walker := NewWalker(fsys, zap.NewNop())
	result, err := walker.Scan(context.Background(), ".")
	require.NoError(t, err)

	assert.False(t, result.Interrupted)
	assert.Equal(t, 0, result.Errors)
	assert.Equal(t, []string{"README", "a.txt", "sub/b.PDF", "sub/deep/c.tar.gz"}, relPaths(result.Records))
}

func TestWalker_RecordFields(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, map[string]string{
		"top.md":        "12",
		"sub/inner.PDF": "12345",
		"sub/Makefile":  "",
	})

	walker := NewWalker(fsys, zap.NewNop())
	result, err := walker.Scan(context.Background(), ".")
	require.NoError(t, err)

	byPath := make(map[string]*models.FileRecord)
	for _, r := range result.Records {
		byPath[r.RelativePath] = r
	}

	top := byPath["top.md"]
	require.NotNil(t, top)
	assert.Equal(t, "top.md", top.Name)
	assert.Equal(t, models.RootLocation, top.Location)
	assert.Equal(t, uint64(2), top.Size)
	assert.Equal(t, ".md", top.Extension)
	assert.Equal(t, filepath.Join(fsys.Root(), "top.md"), top.Path)
	assert.Equal(t, top.ModTime, top.EffectiveTime, "in-memory files have no creation time")

	inner := byPath["sub/inner.PDF"]
	require.NotNil(t, inner)
	assert.Equal(t, "sub", inner.Location)
	assert.Equal(t, ".pdf", inner.Extension)
	assert.Equal(t, uint64(5), inner.Size)

	makefile := byPath["sub/Makefile"]
	require.NotNil(t, makefile)
	assert.Equal(t, models.NoExtension, makefile.Extension)
	assert.Equal(t, uint64(0), makefile.Size)
}

func TestWalker_ScanSubdirectory(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, map[string]string{
		"a.txt":       "a",
		"sub/b.txt":   "b",
		"sub/c/d.txt": "d",
	})

	walker := NewWalker(fsys, zap.NewNop())
	result, err := walker.Scan(context.Background(), "sub")
	require.NoError(t, err)

	assert.Equal(t, "sub", result.Dir)
	assert.Equal(t, []string{"sub/b.txt", "sub/c/d.txt"}, relPaths(result.Records))
}

func TestWalker_HiddenScanRoot(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, map[string]string{
		".stash/a.txt":       "a",
		".stash/.skip/b.txt": "b",
	})

	walker := NewWalker(fsys, zap.NewNop())
	result, err := walker.Scan(context.Background(), ".stash")
	require.NoError(t, err)

	assert.Equal(t, []string{".stash/a.txt"}, relPaths(result.Records))
}

func TestWalker_MissingDir(t *testing.T) {
	walker := NewWalker(memfs.New(), zap.NewNop())

	_, err := walker.Scan(context.Background(), "nope")
	assert.Error(t, err)
}

func TestWalker_Cancelled(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	walker := NewWalker(fsys, zap.NewNop())
	result, err := walker.Scan(ctx, ".")
	require.NoError(t, err)

	assert.True(t, result.Interrupted)
	assert.Empty(t, result.Records)
}

func TestWalker_CancelledMidWalk(t *testing.T) {
	fsys := memfs.New()
	writeFiles(t, fsys, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
		"c.txt": "c",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	walker := NewWalker(fsys, zap.NewNop())
	var seen []string
	_, err := walker.Walk(ctx, ".", func(r *models.FileRecord) {
		seen = append(seen, r.Name)
		cancel()
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"a.txt"}, seen)
}

func TestWalker_OSFilesystem(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	path := filepath.Join(dir, "sub", "old.txt")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))

	old := time.Now().Add(-72 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	walker := NewWalker(osfs.New(dir), zap.NewNop())
	result, err := walker.Scan(context.Background(), ".")
	require.NoError(t, err)
	require.Len(t, result.Records, 1)

	r := result.Records[0]
	assert.Equal(t, path, r.Path)
	assert.WithinDuration(t, old, r.ModTime, time.Second)
	assert.False(t, r.EffectiveTime.Before(r.ModTime))
	assert.Equal(t, FileURI(path), r.FileURI)
	assert.Equal(t, FileURI(filepath.Join(dir, "sub")), r.FolderURI)
}

func TestWalker_SymlinksNotFollowed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), []byte("data"), 0644))
	if err := os.Symlink(filepath.Join(dir, "real.txt"), filepath.Join(dir, "link.txt")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	walker := NewWalker(osfs.New(dir), zap.NewNop())
	result, err := walker.Scan(context.Background(), ".")
	require.NoError(t, err)

	assert.Equal(t, []string{"real.txt"}, relPaths(result.Records))
	assert.Zero(t, result.Errors)
}

func TestFileURI(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/home/user/Downloads/a.pdf", "file:///home/user/Downloads/a.pdf"},
		{"/home/user/My Files/b c.txt", "file:///home/user/My%20Files/b%20c.txt"},
		{"/", "file:///"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FileURI(tt.path); got != tt.expected {
				t.Errorf("FileURI(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{".DS_Store", true},
		{".git", true},
		{"visible.txt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHidden(tt.name); got != tt.expected {
				t.Errorf("isHidden(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}
