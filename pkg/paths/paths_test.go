package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/layout"
	"github.com/arthur-debert/electron-kit/pkg/paths"
	"github.com/arthur-debert/electron-kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuild(t *testing.T) {
	work := t.TempDir()
	opts := types.DefaultOptions()
	opts.WorkDir = work

	b, err := paths.NewBuild(opts, layout.Resolve(types.PlatformLinux, true, ""))
	require.NoError(t, err)

	assert.Equal(t, work, b.WorkDir)
	assert.Equal(t, filepath.Join(work, "build"), b.Output)
	assert.Equal(t, filepath.Join(work, "app"), b.Input)
	assert.Equal(t, filepath.Join(work, "node_modules", "electron", "dist"), b.Runtime)
	assert.Equal(t, filepath.Join(work, "build", "unpacked", "electron"), b.Electron)
	assert.Equal(t, filepath.Join(work, "build", "unpacked", "electron", "resources"), b.Resources)
	assert.Equal(t, filepath.Join(b.Resources, "app.asar"), b.StagedArchive())
	assert.Equal(t, filepath.Join(b.Resources, "default_app.asar"), b.DefaultApp())
	assert.Equal(t, filepath.Join(work, ".temp-electron-kit", "app.asar"), b.TempArchive)
	assert.Equal(t, filepath.Join(work, "app", "package.json"), b.AppManifest())
	assert.Equal(t, filepath.Join(b.Electron, "Demo.exe"), b.Executable("Demo.exe"))
}

func TestNewBuildNestedApp(t *testing.T) {
	work := t.TempDir()
	opts := types.DefaultOptions()
	opts.WorkDir = work

	b, err := paths.NewBuild(opts, layout.Resolve(types.PlatformDarwin, false, ""))
	require.NoError(t, err)

	resources := filepath.Join(work, "build", "unpacked", "electron", "Electron.app", "Contents", "Resources")
	assert.Equal(t, filepath.Join(resources, "app"), b.Resources)
	assert.Equal(t, filepath.Join(resources, "default_app.asar"), b.DefaultApp())
}

func TestNewBuildAbsolutePaths(t *testing.T) {
	work := t.TempDir()
	out := filepath.Join(t.TempDir(), "dist")
	opts := types.MergeOptions(types.PartialOptions{WorkDir: work, Output: out})

	b, err := paths.NewBuild(opts, layout.Resolve(types.PlatformLinux, true, ""))
	require.NoError(t, err)
	assert.Equal(t, out, b.Output)
}

func TestNewBuildDefaultsToCwd(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	b, err := paths.NewBuild(types.DefaultOptions(), layout.Resolve(types.PlatformLinux, true, ""))
	require.NoError(t, err)
	assert.Equal(t, cwd, b.WorkDir)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "electron-kit", "electron-kit.log"), paths.LogFilePath())
}

func TestNewBuildRejectsOverlap(t *testing.T) {
	work := t.TempDir()
	l := layout.Resolve(types.PlatformLinux, true, "")

	tests := []struct {
		name string
		opts types.PartialOptions
	}{
		{"output is the working directory", types.PartialOptions{Output: "."}},
		{"output is a parent of the working directory", types.PartialOptions{Output: ".."}},
		{"output aliases the input", types.PartialOptions{Output: filepath.Join(work, "app")}},
		{"output is a parent of the input", types.PartialOptions{Output: "src", Input: "src/app"}},
		{"output contains the runtime", types.PartialOptions{Output: "node_modules"}},
		{"output inside the input", types.PartialOptions{Output: "app/build"}},
		{"output inside the runtime", types.PartialOptions{Output: "node_modules/electron/dist/out"}},
		{"input contains the temporary directory", types.PartialOptions{Input: ".", Output: filepath.Join(t.TempDir(), "out")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.WorkDir = work
			_, err := paths.NewBuild(types.MergeOptions(tt.opts), l)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), err.Error())
		})
	}
}

func TestNewBuildUnpackedInputMayHoldTempDir(t *testing.T) {
	work := t.TempDir()
	opts := types.MergeOptions(types.PartialOptions{
		WorkDir: work,
		Input:   ".",
		Output:  filepath.Join(t.TempDir(), "out"),
		Archive: types.Bool(false),
	})

	_, err := paths.NewBuild(opts, layout.Resolve(types.PlatformLinux, false, ""))
	assert.NoError(t, err)
}

func TestWithin(t *testing.T) {
	sep := string(filepath.Separator)
	root := sep + "work"
	assert.True(t, paths.Within(root, root))
	assert.True(t, paths.Within(root, filepath.Join(root, "app")))
	assert.True(t, paths.Within(sep, root))
	assert.False(t, paths.Within(root, sep+"workshop"))
	assert.False(t, paths.Within(filepath.Join(root, "app"), root))
	assert.False(t, paths.Within(root, filepath.Join(sep+"other", "..foo")))
	assert.True(t, paths.Within(root, filepath.Join(root, "..foo")))
}
