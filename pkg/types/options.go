package types

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
)

// Default option values
const (
	DefaultOutput  = "build"
	DefaultInput   = "app"
	DefaultRuntime = "node_modules/electron/dist"
)

// Options is the merged, immutable option set of one pipeline run.
// Relative paths are resolved against WorkDir.
type Options struct {
	Output      string     `koanf:"output" toml:"output" yaml:"output"`
	Input       string     `koanf:"input" toml:"input" yaml:"input"`
	Archive     bool       `koanf:"asar" toml:"asar" yaml:"asar"`
	ProductName string     `koanf:"product_name" toml:"product_name" yaml:"product_name"`
	Company     string     `koanf:"company" toml:"company" yaml:"company"`
	Copyright   string     `koanf:"copyright" toml:"copyright" yaml:"copyright"`
	Version     string     `koanf:"version" toml:"version" yaml:"version"`
	Description string     `koanf:"description" toml:"description" yaml:"description"`
	Icon        string     `koanf:"icon" toml:"icon" yaml:"icon"`
	Permission  Permission `koanf:"permission" toml:"permission" yaml:"permission"`
	Manifest    string     `koanf:"manifest" toml:"manifest" yaml:"manifest"`

	// Runtime is the prebuilt runtime distribution copied into the output tree
	Runtime string `koanf:"runtime" toml:"runtime" yaml:"runtime"`
	// WorkDir is the base directory for relative paths and the transient archive directory
	WorkDir string `koanf:"work_dir" toml:"work_dir,omitempty" yaml:"work_dir,omitempty"`
	// Platform overrides the host platform when set
	Platform Platform `koanf:"platform" toml:"platform,omitempty" yaml:"platform,omitempty"`
	// BundleID is the macOS CFBundleIdentifier written during rebranding
	BundleID    string `koanf:"bundle_id" toml:"bundle_id,omitempty" yaml:"bundle_id,omitempty"`
	SkipInstall bool   `koanf:"skip_install" toml:"skip_install" yaml:"skip_install"`
	NoInstaller bool   `koanf:"no_installer" toml:"no_installer" yaml:"no_installer"`
}

// PartialOptions holds caller-supplied options. Empty strings and nil
// pointers mean "not supplied".
type PartialOptions struct {
	Output      string
	Input       string
	Archive     *bool
	ProductName string
	Company     string
	Copyright   string
	Version     string
	Description string
	Icon        string
	Permission  Permission
	Manifest    string
	Runtime     string
	WorkDir     string
	Platform    Platform
	BundleID    string
	SkipInstall bool
	NoInstaller bool
}

// DefaultOptions returns the option defaults
func DefaultOptions() Options {
	return Options{
		Output:  DefaultOutput,
		Input:   DefaultInput,
		Archive: true,
		Runtime: DefaultRuntime,
	}
}

// MergeOptions shallow-merges the supplied options over the defaults
func MergeOptions(p PartialOptions) Options {
	o := DefaultOptions()
	setString(&o.Output, p.Output)
	setString(&o.Input, p.Input)
	if p.Archive != nil {
		o.Archive = *p.Archive
	}
	setString(&o.ProductName, p.ProductName)
	setString(&o.Company, p.Company)
	setString(&o.Copyright, p.Copyright)
	setString(&o.Version, p.Version)
	setString(&o.Description, p.Description)
	setString(&o.Icon, p.Icon)
	if p.Permission != "" {
		o.Permission = p.Permission
	}
	setString(&o.Manifest, p.Manifest)
	setString(&o.Runtime, p.Runtime)
	setString(&o.WorkDir, p.WorkDir)
	if p.Platform != "" {
		o.Platform = p.Platform
	}
	setString(&o.BundleID, p.BundleID)
	o.SkipInstall = p.SkipInstall
	o.NoInstaller = p.NoInstaller
	return o
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// Bool returns a pointer to b, for PartialOptions.Archive
func Bool(b bool) *bool {
	return &b
}

// Validate checks option values that would otherwise fail late in the pipeline
func (o Options) Validate() error {
	if strings.TrimSpace(o.Output) == "" {
		return errors.New(errors.ErrConfigValid, "output directory must not be empty")
	}
	if strings.TrimSpace(o.Input) == "" {
		return errors.New(errors.ErrConfigValid, "input directory must not be empty")
	}
	if filepath.Clean(o.Output) == filepath.Clean(o.Input) {
		return errors.Newf(errors.ErrConfigValid, "output and input must differ (both %q)", o.Output)
	}
	if o.Platform != "" && !o.Platform.Valid() {
		return errors.Newf(errors.ErrPlatformUnsupported, "unsupported platform %q", o.Platform)
	}
	if _, err := ParsePermission(string(o.Permission)); err != nil {
		return err
	}
	return nil
}

// FileDescription returns the first non-empty of description, company and product name
func (o Options) FileDescription() string {
	for _, v := range []string{o.Description, o.Company, o.ProductName} {
		if v != "" {
			return v
		}
	}
	return ""
}

// InstallerName returns the product name with all whitespace removed,
// falling back to "electron" when no product name is set.
func (o Options) InstallerName() string {
	name := strings.Join(strings.Fields(o.ProductName), "")
	if name == "" {
		return "electron"
	}
	return name
}
