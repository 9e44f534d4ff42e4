package filesystem

import (
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// CopyFile copies a single regular file, preserving its permission bits
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "cannot stat %s", src)
	}
	if info.IsDir() {
		return errors.Newf(errors.ErrCopy, "%s is a directory", src).WithDetail("path", src)
	}
	return copyRegular(fsys, src, dst, info.Mode().Perm())
}

func copyRegular(fsys types.FS, src, dst string, perm fs.FileMode) error {
	in, err := fsys.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer in.Close()

	out, err := fsys.Create(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot close %s", dst)
	}
	if err := fsys.Chmod(dst, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot chmod %s", dst)
	}
	return nil
}

// CopyTree copies the contents of the directory src into the directory dst,
// creating dst if needed. Symbolic links are recreated, not followed, so
// framework bundles inside a runtime distribution keep their structure.
func CopyTree(ctx context.Context, fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileNotFound, "cannot stat %s", src).WithDetail("path", src)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrCopy, "%s is not a directory", src).WithDetail("path", src)
	}
	if err := fsys.MkdirAll(dst, info.Mode().Perm()|0700); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", dst)
	}
	return copyDir(ctx, fsys, src, dst)
}

func copyDir(ctx context.Context, fsys types.FS, src, dst string) error {
	entries, err := fsys.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read directory %s", src)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		info, err := fsys.Lstat(from)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", from)
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			target, err := fsys.Readlink(from)
			if err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "cannot read link %s", from)
			}
			if err := fsys.Symlink(target, to); err != nil {
				return errors.Wrapf(err, errors.ErrCopy, "cannot link %s", to)
			}
		case info.IsDir():
			if err := fsys.MkdirAll(to, info.Mode().Perm()|0700); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", to)
			}
			if err := copyDir(ctx, fsys, from, to); err != nil {
				return err
			}
		default:
			if err := copyRegular(fsys, from, to, info.Mode().Perm()); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveIfExists removes path and everything below it. A missing path is
// not an error.
func RemoveIfExists(fsys types.FS, path string) error {
	if err := fsys.RemoveAll(path); err != nil {
		return errors.Wrapf(err, errors.ErrRemove, "cannot remove %s", path).WithDetail("path", path)
	}
	return nil
}

// Exists reports whether path exists. Stat errors other than absence are
// reported as existing so callers do not silently skip unreadable paths.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil || !stderrors.Is(err, fs.ErrNotExist)
}
