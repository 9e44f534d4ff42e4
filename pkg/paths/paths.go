package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/layout"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// Fixed names inside the build tree. These are not user-configurable.
const (
	// ToolDirName is the directory name for electron-kit state
	ToolDirName = "electron-kit"

	// LogFileName is the name of the log file
	LogFileName = "electron-kit.log"

	// UnpackedDir holds the staged runtime tree under the output directory
	UnpackedDir = "unpacked"

	// TempDirName is the transient working directory used while archiving
	TempDirName = ".temp-electron-kit"

	// ArchiveFileName is the packed application file
	ArchiveFileName = "app.asar"

	// DefaultAppArchive is the placeholder application shipped with the runtime
	DefaultAppArchive = "default_app.asar"

	// AppManifestFile marks an application with installable dependencies
	AppManifestFile = "package.json"
)

// StateDir returns the XDG state directory for electron-kit
func StateDir() string {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, ToolDirName)
	}
	return filepath.Join(xdg.StateHome, ToolDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// Build holds the absolute paths of one pipeline run
type Build struct {
	WorkDir string
	Output  string
	Input   string
	Runtime string

	// Unpacked is <output>/unpacked
	Unpacked string
	// Electron is <output>/unpacked/electron
	Electron string
	// Resources is where application content is placed
	Resources string
	// ResourceBase is the platform resource directory, without a nested app directory
	ResourceBase string

	TempDir     string
	TempArchive string
}

// NewBuild resolves all paths of a run. An empty WorkDir means the current
// working directory.
func NewBuild(opts types.Options, l layout.Layout) (Build, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Build{}, errors.Wrap(err, errors.ErrFileAccess, "failed to get current directory")
		}
		workDir = cwd
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Build{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", workDir)
	}

	b := Build{
		WorkDir: workDir,
		Output:  resolve(workDir, opts.Output),
		Input:   resolve(workDir, opts.Input),
		Runtime: resolve(workDir, opts.Runtime),
		TempDir: filepath.Join(workDir, TempDirName),
	}
	b.Unpacked = filepath.Join(b.Output, UnpackedDir)
	b.Electron = filepath.Join(b.Unpacked, layout.RuntimeDir)
	b.Resources = filepath.Join(b.Unpacked, filepath.FromSlash(l.ResourcePath))
	b.ResourceBase = filepath.Join(b.Unpacked, filepath.FromSlash(l.ResourceBase()))
	b.TempArchive = filepath.Join(b.TempDir, ArchiveFileName)

	if err := b.checkOverlap(opts.Archive); err != nil {
		return Build{}, err
	}
	return b, nil
}

// checkOverlap rejects layouts where cleaning the output would delete
// sources, or where copying the input would recurse into its own destination.
func (b Build) checkOverlap(archive bool) error {
	for _, src := range []struct{ name, path string }{
		{"working directory", b.WorkDir},
		{"input", b.Input},
		{"runtime", b.Runtime},
	} {
		if Within(b.Output, src.path) {
			return errors.Newf(errors.ErrConfigValid, "output %s would remove the %s %s", b.Output, src.name, src.path).
				WithDetail("output", b.Output).
				WithDetail(src.name, src.path)
		}
	}
	if Within(b.Input, b.Output) {
		return errors.Newf(errors.ErrConfigValid, "output %s must not be inside the input %s", b.Output, b.Input).
			WithDetail("output", b.Output).
			WithDetail("input", b.Input)
	}
	if Within(b.Runtime, b.Output) {
		return errors.Newf(errors.ErrConfigValid, "output %s must not be inside the runtime %s", b.Output, b.Runtime).
			WithDetail("output", b.Output).
			WithDetail("runtime", b.Runtime)
	}
	if archive && Within(b.Input, b.TempDir) {
		return errors.Newf(errors.ErrConfigValid, "input %s must not contain the temporary directory %s", b.Input, b.TempDir).
			WithDetail("input", b.Input)
	}
	return nil
}

// Within reports whether p is dir or lies below it. Both paths must be clean
// and absolute.
func Within(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// Executable returns the path of the named runtime executable
func (b Build) Executable(name string) string {
	return filepath.Join(b.Electron, name)
}

// AppManifest returns the path of the application's package manifest
func (b Build) AppManifest() string {
	return filepath.Join(b.Input, AppManifestFile)
}

// StagedArchive returns where the packed application ends up
func (b Build) StagedArchive() string {
	return filepath.Join(b.Resources, ArchiveFileName)
}

// DefaultApp returns the placeholder archive inside the staged runtime
func (b Build) DefaultApp() string {
	return filepath.Join(b.ResourceBase, DefaultAppArchive)
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
