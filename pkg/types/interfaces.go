package types

import (
	"context"
	"io"
	"io/fs"
)

// FS is the filesystem interface required by the pipeline
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Open(name string) (fs.File, error)
	Create(name string) (io.WriteCloser, error)
	Chmod(name string, mode fs.FileMode) error

	// Directory operations
	Mkdir(path string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
	RemoveAll(path string) error
}

// Command is a process invocation with structured arguments
type Command struct {
	Name string
	Args []string
	Dir  string
	// Env entries are appended to the current environment
	Env []string
}

// CommandOutput holds the captured output of a finished command
type CommandOutput struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner runs external processes
type CommandRunner interface {
	Run(ctx context.Context, cmd Command) (CommandOutput, error)
}

// DependencyInstaller installs the declared dependencies of the application in dir
type DependencyInstaller interface {
	Install(ctx context.Context, dir string) error
}

// ArchiveBuilder packs srcDir into the single file destFile
type ArchiveBuilder interface {
	Build(ctx context.Context, srcDir, destFile string) error
}

// Version string keys understood by ExecutableEditor implementations
const (
	VersionCompanyName     = "CompanyName"
	VersionLegalCopyright  = "LegalCopyright"
	VersionProductName     = "ProductName"
	VersionProductVersion  = "ProductVersion"
	VersionFileVersion     = "FileVersion"
	VersionFileDescription = "FileDescription"
)

// ExecutableMetadata is the resource data written into a Windows executable.
// Empty fields are left untouched.
type ExecutableMetadata struct {
	VersionStrings          map[string]string
	ProductVersion          string
	FileVersion             string
	Icon                    string
	RequestedExecutionLevel Permission
	ApplicationManifest     string
}

// ExecutableEditor rewrites the embedded metadata of an executable in place
type ExecutableEditor interface {
	Edit(ctx context.Context, exePath string, meta ExecutableMetadata) error
}

// BundleIdentity holds the identity fields of a macOS application bundle
type BundleIdentity struct {
	DisplayName string
	Name        string
	Identifier  string
	Version     string
	Copyright   string
}

// BundleEditor rewrites the identity fields of a macOS application bundle
type BundleEditor interface {
	Rebrand(bundlePath string, id BundleIdentity) error
}

// WindowsInstallerSpec describes a Windows installer to generate
type WindowsInstallerSpec struct {
	AppDirectory    string
	OutputDirectory string
	Authors         string
	Name            string
	ProductName     string
	Exe             string
	Version         string
	Icon            string
	Description     string
}

// WindowsInstallerBuilder produces a Windows installer and returns its path
type WindowsInstallerBuilder interface {
	Build(ctx context.Context, spec WindowsInstallerSpec) (string, error)
}

// DiskImageSpec describes a macOS disk image to generate
type DiskImageSpec struct {
	AppPath string
	Name    string
	Out     string
}

// DiskImageBuilder produces a macOS disk image and returns its path
type DiskImageBuilder interface {
	Build(ctx context.Context, spec DiskImageSpec) (string, error)
}
