package fs_test

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/filedep/internal/adapters/fs"
)

func TestOSFileSystem_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	filesystem := fs.NewOSFileSystem()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "package.json"), []byte("{}"), 0o600))

	exists, err := filesystem.Exists(filepath.Join(tmpDir, "package.json"))
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = filesystem.Exists(tmpDir)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = filesystem.Exists(filepath.Join(tmpDir, "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOSFileSystem_Exists_PropagatesOtherErrors(t *testing.T) {
	tmpDir := t.TempDir()
	filesystem := fs.NewOSFileSystem()

	// A path below a regular file fails with ENOTDIR, which is not a "does not exist" error.
	file := filepath.Join(tmpDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	exists, err := filesystem.Exists(filepath.Join(file, "child"))
	if err == nil {
		// Some platforms report ENOENT here; then it simply does not exist.
		assert.False(t, exists)
		return
	}
	assert.False(t, exists)
	assert.Contains(t, err.Error(), "failed to stat path")
}

func TestOSFileSystem_Stat(t *testing.T) {
	tmpDir := t.TempDir()
	filesystem := fs.NewOSFileSystem()

	manifest := filepath.Join(tmpDir, "package.json")
	require.NoError(t, os.WriteFile(manifest, []byte("{}"), 0o600))

	info, err := filesystem.Stat(manifest)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	info, err = filesystem.Stat(tmpDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = filesystem.Stat(filepath.Join(tmpDir, "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))
	assert.True(t, strings.HasPrefix(err.Error(), "failed to stat path"))
}
