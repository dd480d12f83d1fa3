package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveTime_OS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.bin")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	old := time.Now().Add(-30 * 24 * time.Hour)
	require.NoError(t, os.Chtimes(path, old, old))

	info, err := os.Stat(path)
	require.NoError(t, err)

	effective := EffectiveTime(info)
	assert.False(t, effective.Before(info.ModTime()))

	if created, ok := CreationTime(info); ok {
		// The file was created just now, so creation wins over the old mtime.
		assert.True(t, created.After(old))
		assert.Equal(t, created, effective)
	} else {
		assert.Equal(t, info.ModTime(), effective)
	}
}

func TestEffectiveTime_NoPlatformData(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "a.txt", []byte("a"), 0644))

	info, err := fsys.Stat("a.txt")
	require.NoError(t, err)

	_, ok := CreationTime(info)
	assert.False(t, ok)

	mod := time.Now().Add(-time.Hour)
	assert.Equal(t, mod, effectiveTime(mod, info))
}

func TestCreationTime_Nil(t *testing.T) {
	_, ok := CreationTime(nil)
	assert.False(t, ok)
}
