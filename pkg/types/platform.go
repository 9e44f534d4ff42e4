package types

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
)

// Platform is the target operating system of a build
type Platform string

const (
	PlatformDarwin  Platform = "darwin"
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
)

// HostPlatform returns the platform of the running process.
// Hosts other than darwin and windows are treated as linux.
func HostPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// ParsePlatform accepts the Go and Node spellings of a platform name
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "darwin", "mac", "macos", "osx":
		return PlatformDarwin, nil
	case "windows", "win32", "win":
		return PlatformWindows, nil
	case "linux":
		return PlatformLinux, nil
	}
	return "", errors.Newf(errors.ErrPlatformUnsupported, "unsupported platform %q", s).
		WithDetail("platform", s)
}

// String implements fmt.Stringer
func (p Platform) String() string {
	return string(p)
}

// Valid reports whether p is one of the known platforms
func (p Platform) Valid() bool {
	switch p {
	case PlatformDarwin, PlatformWindows, PlatformLinux:
		return true
	}
	return false
}
