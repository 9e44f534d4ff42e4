package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/electron-kit/pkg/types"
	"github.com/stretchr/testify/require"
)

// TestProject is a working directory laid out like an application project
type TestProject struct {
	Root    string // working directory
	AppDir  string // application input directory
	Runtime string // runtime distribution directory
}

// SetupTestProject creates an empty project with the default input and
// runtime locations.
func SetupTestProject(t *testing.T) *TestProject {
	t.Helper()

	root := t.TempDir()
	p := &TestProject{
		Root:    root,
		AppDir:  filepath.Join(root, types.DefaultInput),
		Runtime: filepath.Join(root, filepath.FromSlash(types.DefaultRuntime)),
	}
	require.NoError(t, os.MkdirAll(p.AppDir, 0755))
	return p
}

// AddAppFile writes a file below the application directory
func (p *TestProject) AddAppFile(t *testing.T, rel, content string) string {
	t.Helper()

	path := filepath.Join(p.AppDir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AddManifest writes a package.json into the application directory
func (p *TestProject) AddManifest(t *testing.T) string {
	t.Helper()
	return p.AddAppFile(t, "package.json", `{"name":"demo","version":"1.0.0","main":"main.js"}`)
}

// AddRuntime writes a minimal runtime distribution for platform: the
// executable, a resources directory with the placeholder default app, and
// for darwin an application bundle with Info.plist files.
func (p *TestProject) AddRuntime(t *testing.T, platform types.Platform) {
	t.Helper()

	write := func(rel, content string, perm os.FileMode) {
		path := filepath.Join(p.Runtime, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), perm))
	}

	switch platform {
	case types.PlatformWindows:
		write("electron.exe", "MZ fake executable", 0755)
		write("resources/default_app.asar", "placeholder", 0644)
		write("LICENSE", "MIT", 0644)
	case types.PlatformDarwin:
		write("Electron.app/Contents/MacOS/Electron", "fake mach-o", 0755)
		write("Electron.app/Contents/Info.plist", InfoPlist("Electron", "com.github.Electron"), 0644)
		write("Electron.app/Contents/Resources/default_app.asar", "placeholder", 0644)
		write("Electron.app/Contents/Frameworks/Electron Helper.app/Contents/Info.plist",
			InfoPlist("Electron Helper", "com.github.Electron.helper"), 0644)
	default:
		write("electron", "#!/bin/sh\necho fake electron\n", 0755)
		write("resources/default_app.asar", "placeholder", 0644)
		write("LICENSE", "MIT", 0644)
	}
}

// Path joins rel onto the project root
func (p *TestProject) Path(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// InfoPlist returns a minimal Info.plist document
func InfoPlist(name, identifier string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>CFBundleDisplayName</key>
	<string>` + name + `</string>
	<key>CFBundleExecutable</key>
	<string>` + name + `</string>
	<key>CFBundleIdentifier</key>
	<string>` + identifier + `</string>
	<key>CFBundleName</key>
	<string>` + name + `</string>
	<key>CFBundlePackageType</key>
	<string>APPL</string>
</dict>
</plist>
`
}
