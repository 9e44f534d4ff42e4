package plist_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/filesystem"
	"github.com/arthur-debert/electron-kit/pkg/plist"
	"github.com/arthur-debert/electron-kit/pkg/testutil"
	"github.com/arthur-debert/electron-kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentGetSet(t *testing.T) {
	doc, err := plist.Parse([]byte(testutil.InfoPlist("Electron", "com.github.Electron")))
	require.NoError(t, err)

	name, ok := doc.Get(plist.KeyName)
	require.True(t, ok)
	assert.Equal(t, "Electron", name)

	doc.Set(plist.KeyName, "Demo")
	doc.Set(plist.KeyCopyright, "(c) Acme")

	out, err := doc.Bytes()
	require.NoError(t, err)

	reparsed, err := plist.Parse(out)
	require.NoError(t, err)

	name, _ = reparsed.Get(plist.KeyName)
	assert.Equal(t, "Demo", name)
	copyright, ok := reparsed.Get(plist.KeyCopyright)
	require.True(t, ok)
	assert.Equal(t, "(c) Acme", copyright)

	exe, _ := reparsed.Get("CFBundleExecutable")
	assert.Equal(t, "Electron", exe, "unrelated keys are kept")
	assert.Contains(t, string(out), "<!DOCTYPE plist")
}

func TestParseErrors(t *testing.T) {
	_, err := plist.Parse([]byte("<plist><array/></plist>"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRebrand))

	_, err = plist.Parse([]byte("<plist><dict></plist>"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRebrand))
}

func TestHelperSuffix(t *testing.T) {
	assert.Equal(t, " Helper", plist.HelperSuffix("Electron Helper"))
	assert.Equal(t, " Helper (GPU)", plist.HelperSuffix("Electron Helper (GPU)"))
	assert.Equal(t, " Helper", plist.HelperSuffix("Odd"))
}

func TestBundleEditorRebrand(t *testing.T) {
	p := testutil.SetupTestProject(t)
	p.AddRuntime(t, types.PlatformDarwin)
	bundle := filepath.Join(p.Runtime, "Electron.app")
	fs := filesystem.NewOS()

	err := plist.NewBundleEditor(fs).Rebrand(bundle, types.BundleIdentity{
		DisplayName: "My Demo",
		Name:        "My Demo",
		Identifier:  "com.acme.mydemo",
		Version:     "2.0.0",
	})
	require.NoError(t, err)

	read := func(path string) *plist.Document {
		data, err := fs.ReadFile(path)
		require.NoError(t, err)
		doc, err := plist.Parse(data)
		require.NoError(t, err)
		return doc
	}

	main := read(filepath.Join(bundle, "Contents", "Info.plist"))
	for key, want := range map[string]string{
		plist.KeyDisplayName:   "My Demo",
		plist.KeyName:          "My Demo",
		plist.KeyIdentifier:    "com.acme.mydemo",
		plist.KeyShortVersion:  "2.0.0",
		plist.KeyBundleVersion: "2.0.0",
	} {
		got, ok := main.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	helper := read(filepath.Join(bundle, "Contents", "Frameworks", "Electron Helper.app", "Contents", "Info.plist"))
	name, _ := helper.Get(plist.KeyName)
	assert.Equal(t, "My Demo Helper", name)
	id, _ := helper.Get(plist.KeyIdentifier)
	assert.Equal(t, "com.acme.mydemo.helper", id)
}

func TestBundleEditorMissingPlist(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, fs.MkdirAll("/Electron.app/Contents", 0755))

	err := plist.NewBundleEditor(fs).Rebrand("/Electron.app", types.BundleIdentity{Name: "X"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRebrand))
}
