package asar

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"io"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// BlockSize is the integrity block size used by Electron
const BlockSize = 4 * 1024 * 1024

// Builder packs directories into asar archives
type Builder struct {
	fs types.FS
}

// NewBuilder creates a Builder over fsys
func NewBuilder(fsys types.FS) *Builder {
	return &Builder{fs: fsys}
}

// pending is a file whose contents follow the header
type pending struct {
	path string
	size int64
}

// Build packs srcDir into destFile, creating destFile's parent directory
func (b *Builder) Build(ctx context.Context, srcDir, destFile string) error {
	logger := logging.GetLogger("asar")
	done := logging.LogOperationStart(logger, "asar pack")
	defer done()

	info, err := b.fs.Stat(srcDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot read source %s", srcDir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrArchive, "source %s is not a directory", srcDir)
	}

	var files []pending
	var offset int64
	root, err := b.walk(ctx, filepath.Clean(srcDir), filepath.Clean(srcDir), &files, &offset)
	if err != nil {
		return err
	}

	header, err := json.Marshal(root)
	if err != nil {
		return errors.Wrap(err, errors.ErrArchive, "cannot encode archive header")
	}

	if err := b.fs.MkdirAll(filepath.Dir(destFile), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(destFile))
	}
	out, err := b.fs.Create(destFile)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot create %s", destFile)
	}

	if err := b.write(ctx, out, header, files); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot close %s", destFile)
	}

	logger.Info().
		Str("archive", destFile).
		Int("files", len(files)).
		Int64("bytes", offset).
		Msg("Archive created")
	return nil
}

// walk builds the header node for dir and queues its files in order.
// root is the directory being packed.
func (b *Builder) walk(ctx context.Context, root, dir string, files *[]pending, offset *int64) (map[string]interface{}, error) {
	entries, err := b.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchive, "cannot read directory %s", dir)
	}

	children := make(map[string]interface{}, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(dir, entry.Name())
		info, err := b.fs.Lstat(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrArchive, "cannot stat %s", path)
		}

		switch {
		case info.Mode()&fs.ModeSymlink != 0:
			target, err := b.linkTarget(root, path)
			if err != nil {
				return nil, err
			}
			children[entry.Name()] = map[string]interface{}{"link": target}
		case info.IsDir():
			node, err := b.walk(ctx, root, path, files, offset)
			if err != nil {
				return nil, err
			}
			children[entry.Name()] = node
		default:
			integrity, err := b.integrity(path)
			if err != nil {
				return nil, err
			}
			node := map[string]interface{}{
				"size":      info.Size(),
				"offset":    strconv.FormatInt(*offset, 10),
				"integrity": integrity,
			}
			if info.Mode().Perm()&0100 != 0 {
				node["executable"] = true
			}
			children[entry.Name()] = node
			*files = append(*files, pending{path: path, size: info.Size()})
			*offset += info.Size()
		}
	}
	return map[string]interface{}{"files": children}, nil
}

// linkTarget returns the target of the link at path relative to root, which
// is how archive readers resolve links. Targets outside root are rejected.
func (b *Builder) linkTarget(root, path string) (string, error) {
	target, err := b.fs.Readlink(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrArchive, "cannot read link %s", path)
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	rel, err := filepath.Rel(root, filepath.Clean(target))
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.Newf(errors.ErrArchive, "link %s points outside %s", path, root).
			WithDetail("target", target)
	}
	return filepath.ToSlash(rel), nil
}

func (b *Builder) integrity(path string) (map[string]interface{}, error) {
	f, err := b.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchive, "cannot open %s", path)
	}
	defer f.Close()

	whole := sha256.New()
	blocks := []string{}
	buf := make([]byte, BlockSize)
	for {
		n, err := io.ReadFull(f, buf)
		if n > 0 {
			whole.Write(buf[:n])
			sum := sha256.Sum256(buf[:n])
			blocks = append(blocks, hex.EncodeToString(sum[:]))
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrArchive, "cannot read %s", path)
		}
	}
	return map[string]interface{}{
		"algorithm": "SHA256",
		"hash":      hex.EncodeToString(whole.Sum(nil)),
		"blockSize": BlockSize,
		"blocks":    blocks,
	}, nil
}

func (b *Builder) write(ctx context.Context, w io.Writer, header []byte, files []pending) error {
	if _, err := w.Write(encodeHeader(header)); err != nil {
		return errors.Wrap(err, errors.ErrArchive, "cannot write archive header")
	}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.appendFile(w, file); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) appendFile(w io.Writer, file pending) error {
	f, err := b.fs.Open(file.path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot open %s", file.path)
	}
	defer f.Close()

	n, err := io.Copy(w, f)
	if err != nil {
		return errors.Wrapf(err, errors.ErrArchive, "cannot append %s", file.path)
	}
	if n != file.size {
		return errors.Newf(errors.ErrArchive, "%s changed size while packing", file.path).
			WithDetail("expected", file.size).
			WithDetail("actual", n)
	}
	return nil
}

// encodeHeader returns the size pickle followed by the header pickle
func encodeHeader(header []byte) []byte {
	padded := align4(len(header))
	headerPickle := make([]byte, 8+padded)
	binary.LittleEndian.PutUint32(headerPickle[0:4], uint32(4+padded))
	binary.LittleEndian.PutUint32(headerPickle[4:8], uint32(len(header)))
	copy(headerPickle[8:], header)

	out := make([]byte, 8, 8+len(headerPickle))
	binary.LittleEndian.PutUint32(out[0:4], 4)
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(headerPickle)))
	return append(out, headerPickle...)
}

func align4(n int) int {
	return (n + 3) &^ 3
}
