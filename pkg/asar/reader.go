package asar

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// Entry is a node of an archive header
type Entry struct {
	Files      map[string]*Entry `json:"files,omitempty"`
	Size       int64             `json:"size"`
	Offset     string            `json:"offset,omitempty"`
	Executable bool              `json:"executable,omitempty"`
	Link       string            `json:"link,omitempty"`
	Unpacked   bool              `json:"unpacked,omitempty"`
}

// IsDir reports whether the entry is a directory
func (e *Entry) IsDir() bool {
	return e.Files != nil
}

// Archive is an opened asar archive held in memory
type Archive struct {
	root       *Entry
	data       []byte
	dataOffset int
}

// Open reads the archive at name
func Open(fsys types.FS, name string) (*Archive, error) {
	raw, err := fsys.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchive, "cannot read %s", name)
	}
	return Parse(raw)
}

// Parse decodes an archive from its raw bytes
func Parse(raw []byte) (*Archive, error) {
	if len(raw) < 16 {
		return nil, errors.New(errors.ErrArchive, "archive is truncated")
	}
	headerPickleSize := int(binary.LittleEndian.Uint32(raw[4:8]))
	if 8+headerPickleSize > len(raw) {
		return nil, errors.New(errors.ErrArchive, "archive header exceeds file size")
	}
	jsonLen := int(binary.LittleEndian.Uint32(raw[12:16]))
	if 16+jsonLen > 8+headerPickleSize {
		return nil, errors.New(errors.ErrArchive, "archive header is corrupt")
	}

	var root Entry
	if err := json.Unmarshal(raw[16:16+jsonLen], &root); err != nil {
		return nil, errors.Wrap(err, errors.ErrArchive, "cannot decode archive header")
	}
	if root.Files == nil {
		root.Files = map[string]*Entry{}
	}
	return &Archive{root: &root, data: raw, dataOffset: 8 + headerPickleSize}, nil
}

// Files returns the slash separated paths of all regular files, sorted
func (a *Archive) Files() []string {
	var out []string
	var walk func(prefix string, e *Entry)
	walk = func(prefix string, e *Entry) {
		for name, child := range e.Files {
			p := path.Join(prefix, name)
			switch {
			case child.IsDir():
				walk(p, child)
			case child.Link == "":
				out = append(out, p)
			}
		}
	}
	walk("", a.root)
	sort.Strings(out)
	return out
}

// Lookup returns the entry at the slash separated path name
func (a *Archive) Lookup(name string) (*Entry, bool) {
	e := a.root
	for _, part := range strings.Split(strings.Trim(name, "/"), "/") {
		if part == "" {
			continue
		}
		child, ok := e.Files[part]
		if !ok {
			return nil, false
		}
		e = child
	}
	return e, true
}

// ReadFile returns the contents of the file at name
func (a *Archive) ReadFile(name string) ([]byte, error) {
	e, ok := a.Lookup(name)
	if !ok || e.IsDir() || e.Link != "" {
		return nil, errors.Newf(errors.ErrFileNotFound, "%s is not a file in the archive", name)
	}
	off, err := strconv.ParseInt(e.Offset, 10, 64)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrArchive, "bad offset for %s", name)
	}
	start := int64(a.dataOffset) + off
	end := start + e.Size
	if end > int64(len(a.data)) {
		return nil, errors.Newf(errors.ErrArchive, "%s extends past end of archive", name)
	}
	out := make([]byte, e.Size)
	copy(out, a.data[start:end])
	return out, nil
}

// Extract writes the contents of name to w
func (a *Archive) Extract(name string, w io.Writer) error {
	data, err := a.ReadFile(name)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
