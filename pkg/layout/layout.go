// Package layout resolves where application content lives inside an
// unpacked runtime distribution.
package layout

import (
	"path"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/types"
)

const (
	// RuntimeDir is the directory the runtime distribution is copied to
	RuntimeDir = "electron"

	// DarwinBundle is the application bundle shipped in the macOS runtime
	DarwinBundle = "Electron.app"

	// AppDir holds unpacked application files when archiving is off
	AppDir = "app"

	darwinResources  = RuntimeDir + "/" + DarwinBundle + "/Contents/Resources"
	defaultResources = RuntimeDir + "/resources"
)

// Layout is the resolved resource location for one build
type Layout struct {
	// ResourcePath is relative to the unpacked directory and slash separated
	ResourcePath string
	// NestedApp is true when application files go into an extra app directory
	NestedApp bool
}

// Resolve returns the layout for platform and archive mode. productName is
// accepted so callers pass the full identity, but the resource path never
// depends on it: the runtime bundle keeps its original directory name.
func Resolve(platform types.Platform, archive bool, productName string) Layout {
	_ = productName
	base := defaultResources
	if platform == types.PlatformDarwin {
		base = darwinResources
	}
	if archive {
		return Layout{ResourcePath: base}
	}
	return Layout{ResourcePath: path.Join(base, AppDir), NestedApp: true}
}

// Segments splits the resource path into its directory names
func (l Layout) Segments() []string {
	return strings.Split(l.ResourcePath, "/")
}

// ResourceBase is the platform resource directory without the nested app directory
func (l Layout) ResourceBase() string {
	if l.NestedApp {
		return path.Dir(l.ResourcePath)
	}
	return l.ResourcePath
}

// ExecutableName returns the name of the runtime executable inside RuntimeDir
func ExecutableName(platform types.Platform) string {
	switch platform {
	case types.PlatformWindows:
		return "electron.exe"
	case types.PlatformDarwin:
		return DarwinBundle
	default:
		return "electron"
	}
}

// RebrandedExecutableName returns the runtime executable name after rebranding
func RebrandedExecutableName(platform types.Platform, productName string) string {
	if productName == "" {
		return ExecutableName(platform)
	}
	switch platform {
	case types.PlatformWindows:
		return productName + ".exe"
	case types.PlatformDarwin:
		return DarwinBundle
	default:
		return productName
	}
}
