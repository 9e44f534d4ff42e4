package staging_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/filesystem"
	"github.com/arthur-debert/electron-kit/pkg/staging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirectoryIsIdempotent(t *testing.T) {
	fs := filesystem.NewOS()
	dir := filepath.Join(t.TempDir(), "build")

	require.NoError(t, staging.EnsureDirectory(fs, dir))
	require.NoError(t, fs.WriteFile(filepath.Join(dir, "keep"), []byte("x"), 0644))

	// second call is a no-op and leaves contents alone
	require.NoError(t, staging.EnsureDirectory(fs, dir))
	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEnsureDirectoryMissingParent(t *testing.T) {
	fs := filesystem.NewOS()
	dir := filepath.Join(t.TempDir(), "missing", "child")

	err := staging.EnsureDirectory(fs, dir)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}

func TestEnsureDirectoryOverFile(t *testing.T) {
	fs := filesystem.NewOS()
	file := filepath.Join(t.TempDir(), "build")
	require.NoError(t, fs.WriteFile(file, []byte("x"), 0644))

	err := staging.EnsureDirectory(fs, file)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}

func TestEnsureDirectoryPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	fs := filesystem.NewOS()
	parent := filepath.Join(t.TempDir(), "locked")
	require.NoError(t, os.Mkdir(parent, 0500))
	t.Cleanup(func() { _ = os.Chmod(parent, 0755) })

	err := staging.EnsureDirectory(fs, filepath.Join(parent, "child"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDirCreate))
}

func TestEnsureNestedDirectories(t *testing.T) {
	fs := filesystem.NewOS()
	base := filepath.Join(t.TempDir(), "build")
	segments := []string{"unpacked", "electron", "resources", "app"}

	require.NoError(t, staging.EnsureNestedDirectories(fs, base, segments))

	current := base
	for _, s := range segments {
		current = filepath.Join(current, s)
		info, err := fs.Stat(current)
		require.NoError(t, err, current)
		assert.True(t, info.IsDir())
	}

	// running again over the existing tree succeeds
	assert.NoError(t, staging.EnsureNestedDirectories(fs, base, segments))
}

func TestEnsureNestedDirectoriesInMemory(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/work", 0755))

	require.NoError(t, staging.EnsureNestedDirectories(fs, "/work/build", []string{"unpacked", "", "electron"}))
	assert.True(t, filesystem.Exists(fs, "/work/build/unpacked/electron"))
}
