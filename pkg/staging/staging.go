// Package staging creates the output directory tree a build writes into.
package staging

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// DirPerm is the mode of directories created while staging
const DirPerm fs.FileMode = 0755

// EnsureDirectory creates path. An existing directory at path is not an
// error; any other failure is, including an existing non-directory.
func EnsureDirectory(fsys types.FS, path string) error {
	err := fsys.Mkdir(path, DirPerm)
	if err == nil {
		return nil
	}
	if stderrors.Is(err, fs.ErrExist) {
		info, statErr := fsys.Stat(path)
		if statErr == nil && info.IsDir() {
			return nil
		}
		return errors.Newf(errors.ErrDirCreate, "%s exists and is not a directory", path).
			WithDetail("path", path)
	}
	return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", path).
		WithDetail("path", path)
}

// EnsureNestedDirectories creates base and then each successive join of
// base with the next segment, left to right.
func EnsureNestedDirectories(fsys types.FS, base string, segments []string) error {
	logger := logging.GetLogger("staging")

	if err := EnsureDirectory(fsys, base); err != nil {
		return err
	}
	current := base
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		current = filepath.Join(current, segment)
		if err := EnsureDirectory(fsys, current); err != nil {
			return err
		}
	}
	logger.Debug().Str("base", base).Strs("segments", segments).Msg("Directories staged")
	return nil
}
