package pipeline

import (
	"context"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/layout"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// rebrand applies the product identity to the staged runtime. Without a
// product name the runtime is left as shipped.
func (d *Driver) rebrand(ctx context.Context, r *run) error {
	if r.Options.ProductName == "" {
		r.logger.Debug().Msg("No product name, keeping runtime identity")
		return nil
	}

	switch r.Platform {
	case types.PlatformDarwin:
		return d.rebrandBundle(r)
	case types.PlatformWindows:
		if err := d.renameExecutable(r); err != nil {
			return err
		}
		return d.editExecutable(ctx, r)
	default:
		return d.renameExecutable(r)
	}
}

func (d *Driver) renameExecutable(r *run) error {
	from, to := r.ExecutablePath(), r.BrandedExecutablePath()
	if err := d.c.FS.Rename(from, to); err != nil {
		return errors.Wrapf(err, errors.ErrRebrand, "cannot rename %s to %s", filepath.Base(from), filepath.Base(to)).
			WithDetail("path", from)
	}
	r.logger.Debug().Str("from", from).Str("to", to).Msg("Executable renamed")
	return nil
}

func (d *Driver) editExecutable(ctx context.Context, r *run) error {
	if d.c.Executables == nil {
		return errors.New(errors.ErrRebrand, "no executable editor configured")
	}
	if err := d.c.Executables.Edit(ctx, r.BrandedExecutablePath(), ExecutableMetadata(r.Options)); err != nil {
		if errors.GetErrorCode(err) == errors.ErrRebrand {
			return err
		}
		return errors.Wrap(err, errors.ErrRebrand, "failed to edit executable metadata")
	}
	return nil
}

func (d *Driver) rebrandBundle(r *run) error {
	if d.c.Bundles == nil {
		return errors.New(errors.ErrRebrand, "no bundle editor configured")
	}
	bundle := r.Paths.Executable(layout.DarwinBundle)
	if err := d.c.Bundles.Rebrand(bundle, BundleIdentity(r.Options)); err != nil {
		if errors.GetErrorCode(err) == errors.ErrRebrand {
			return err
		}
		return errors.Wrap(err, errors.ErrRebrand, "failed to rebrand application bundle")
	}
	return nil
}

// ExecutableMetadata builds the Windows resource data for opts
func ExecutableMetadata(opts types.Options) types.ExecutableMetadata {
	return types.ExecutableMetadata{
		VersionStrings: map[string]string{
			types.VersionCompanyName:     opts.Company,
			types.VersionLegalCopyright:  opts.Copyright,
			types.VersionProductName:     opts.ProductName,
			types.VersionProductVersion:  opts.Version,
			types.VersionFileVersion:     opts.Version,
			types.VersionFileDescription: opts.FileDescription(),
		},
		ProductVersion:          opts.Version,
		FileVersion:             opts.Version,
		Icon:                    opts.Icon,
		RequestedExecutionLevel: opts.Permission,
		ApplicationManifest:     opts.Manifest,
	}
}

// BundleIdentity builds the macOS bundle identity for opts
func BundleIdentity(opts types.Options) types.BundleIdentity {
	id := opts.BundleID
	if id == "" {
		id = DefaultBundleID(opts.Company, opts.ProductName)
	}
	return types.BundleIdentity{
		DisplayName: opts.ProductName,
		Name:        opts.ProductName,
		Identifier:  id,
		Version:     opts.Version,
		Copyright:   opts.Copyright,
	}
}

var bundleIDUnsafe = regexp.MustCompile(`[^a-z0-9-]+`)

// DefaultBundleID derives com.<company>.<product>, using "electron" for a
// missing company. Only letters, digits and hyphens survive.
func DefaultBundleID(company, productName string) string {
	part := func(s, fallback string) string {
		s = strings.Trim(bundleIDUnsafe.ReplaceAllString(strings.ToLower(s), "-"), "-")
		if s == "" {
			return fallback
		}
		return s
	}
	return "com." + part(company, "electron") + "." + part(productName, "app")
}
