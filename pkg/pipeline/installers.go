package pipeline

import (
	"context"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/layout"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// buildInstaller produces the platform installer. Both platforms report a
// builder failure as the failure of the run.
func (d *Driver) buildInstaller(ctx context.Context, r *run) error {
	if r.Options.NoInstaller {
		r.logger.Debug().Msg("Installer generation disabled")
		return nil
	}

	var (
		artifact string
		err      error
	)
	switch r.Platform {
	case types.PlatformWindows:
		if d.c.WindowsInstaller == nil {
			d.warn(r, types.StepInstaller, "no Windows installer builder configured, skipping")
			return nil
		}
		artifact, err = d.c.WindowsInstaller.Build(ctx, WindowsInstallerSpec(r.Plan))
	case types.PlatformDarwin:
		if d.c.DiskImage == nil {
			d.warn(r, types.StepInstaller, "no disk image builder configured, skipping")
			return nil
		}
		artifact, err = d.c.DiskImage.Build(ctx, DiskImageSpec(r.Plan))
	default:
		r.logger.Debug().Msg("No installer for this platform, the unpacked tree is the deliverable")
		return nil
	}

	if err != nil {
		if errors.GetErrorCode(err) == errors.ErrInstaller {
			return err
		}
		return errors.Wrap(err, errors.ErrInstaller, "installer generation failed")
	}
	if artifact != "" {
		r.artifacts = append(r.artifacts, artifact)
	}
	return nil
}

// WindowsInstallerSpec describes the setup executable for a plan
func WindowsInstallerSpec(p Plan) types.WindowsInstallerSpec {
	productName := p.Options.ProductName
	if productName == "" {
		productName = "electron"
	}
	return types.WindowsInstallerSpec{
		AppDirectory:    p.Paths.Electron,
		OutputDirectory: p.Paths.Output,
		Authors:         p.Options.Company,
		Name:            p.Options.InstallerName(),
		ProductName:     productName,
		Exe:             productName + ".exe",
		Version:         p.Options.Version,
		Icon:            p.Options.Icon,
		Description:     p.Options.FileDescription(),
	}
}

// DiskImageSpec describes the disk image for a plan
func DiskImageSpec(p Plan) types.DiskImageSpec {
	name := p.Options.ProductName
	if name == "" {
		name = "electron"
	}
	return types.DiskImageSpec{
		AppPath: p.Paths.Executable(layout.DarwinBundle),
		Name:    name,
		Out:     p.Paths.Output,
	}
}
