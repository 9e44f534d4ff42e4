// Package plist edits the identity fields of macOS application bundles.
package plist

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
	"github.com/beevik/etree"
)

// Info.plist keys rewritten during rebranding
const (
	KeyDisplayName   = "CFBundleDisplayName"
	KeyName          = "CFBundleName"
	KeyIdentifier    = "CFBundleIdentifier"
	KeyShortVersion  = "CFBundleShortVersionString"
	KeyBundleVersion = "CFBundleVersion"
	KeyCopyright     = "NSHumanReadableCopyright"
)

// Document is a parsed property list
type Document struct {
	doc  *etree.Document
	dict *etree.Element
}

// Parse reads a property list in XML format
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrRebrand, "cannot parse property list")
	}
	dict := doc.FindElement("/plist/dict")
	if dict == nil {
		return nil, errors.New(errors.ErrRebrand, "property list has no top-level dict")
	}
	return &Document{doc: doc, dict: dict}, nil
}

// Get returns the string value for key
func (d *Document) Get(key string) (string, bool) {
	value := d.valueElement(key)
	if value == nil {
		return "", false
	}
	return value.Text(), true
}

// Set assigns a string value to key, adding the key when missing
func (d *Document) Set(key, value string) {
	if el := d.valueElement(key); el != nil {
		el.Tag = "string"
		el.SetText(value)
		return
	}
	d.dict.CreateElement("key").SetText(key)
	d.dict.CreateElement("string").SetText(value)
	d.doc.IndentTabs()
}

// Bytes serializes the document
func (d *Document) Bytes() ([]byte, error) {
	out, err := d.doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRebrand, "cannot serialize property list")
	}
	return out, nil
}

func (d *Document) valueElement(key string) *etree.Element {
	children := d.dict.ChildElements()
	for i, child := range children {
		if child.Tag == "key" && strings.TrimSpace(child.Text()) == key && i+1 < len(children) {
			return children[i+1]
		}
	}
	return nil
}

// BundleEditor implements types.BundleEditor over a filesystem
type BundleEditor struct {
	fs types.FS
}

// NewBundleEditor creates a BundleEditor
func NewBundleEditor(fsys types.FS) *BundleEditor {
	return &BundleEditor{fs: fsys}
}

// Rebrand rewrites the main bundle's Info.plist and those of its helper
// applications under Contents/Frameworks. The bundle directory and the
// executables inside it keep their names.
func (b *BundleEditor) Rebrand(bundlePath string, id types.BundleIdentity) error {
	logger := logging.GetLogger("plist")

	main := filepath.Join(bundlePath, "Contents", "Info.plist")
	if err := b.editFile(main, func(d *Document) {
		d.Set(KeyDisplayName, id.DisplayName)
		d.Set(KeyName, id.Name)
		d.Set(KeyIdentifier, id.Identifier)
		if id.Version != "" {
			d.Set(KeyShortVersion, id.Version)
			d.Set(KeyBundleVersion, id.Version)
		}
		if id.Copyright != "" {
			d.Set(KeyCopyright, id.Copyright)
		}
	}); err != nil {
		return err
	}

	helpers, err := b.helperBundles(bundlePath)
	if err != nil {
		return err
	}
	for _, helper := range helpers {
		suffix := HelperSuffix(strings.TrimSuffix(filepath.Base(helper), ".app"))
		plistPath := filepath.Join(helper, "Contents", "Info.plist")
		if _, err := b.fs.Stat(plistPath); err != nil {
			logger.Debug().Str("helper", helper).Msg("Helper has no Info.plist, skipping")
			continue
		}
		if err := b.editFile(plistPath, func(d *Document) {
			d.Set(KeyDisplayName, id.DisplayName+suffix)
			d.Set(KeyName, id.Name+suffix)
			d.Set(KeyIdentifier, id.Identifier+".helper")
		}); err != nil {
			return err
		}
	}

	logger.Info().
		Str("bundle", bundlePath).
		Str("identifier", id.Identifier).
		Int("helpers", len(helpers)).
		Msg("Bundle identity updated")
	return nil
}

// HelperSuffix returns the part of a helper bundle name after the runtime
// name, e.g. " Helper (GPU)" for "Electron Helper (GPU)".
func HelperSuffix(helperName string) string {
	if i := strings.Index(helperName, " Helper"); i >= 0 {
		return helperName[i:]
	}
	return " Helper"
}

func (b *BundleEditor) helperBundles(bundlePath string) ([]string, error) {
	frameworks := filepath.Join(bundlePath, "Contents", "Frameworks")
	entries, err := b.fs.ReadDir(frameworks)
	if err != nil {
		if _, statErr := b.fs.Stat(frameworks); statErr != nil {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrRebrand, "cannot read %s", frameworks)
	}
	var helpers []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() && strings.HasSuffix(name, ".app") && strings.Contains(name, "Helper") {
			helpers = append(helpers, filepath.Join(frameworks, name))
		}
	}
	return helpers, nil
}

func (b *BundleEditor) editFile(path string, edit func(*Document)) error {
	info, err := b.fs.Stat(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRebrand, "cannot read %s", path)
	}
	data, err := b.fs.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRebrand, "cannot read %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		return errors.Wrapf(err, errors.ErrRebrand, "invalid %s", path)
	}
	edit(doc)
	out, err := doc.Bytes()
	if err != nil {
		return err
	}
	if err := b.fs.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrRebrand, "cannot write %s", path)
	}
	return nil
}
