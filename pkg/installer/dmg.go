package installer

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// DefaultHdiutil is the disk image tool shipped with macOS
const DefaultHdiutil = "hdiutil"

// DMG builds compressed macOS disk images with hdiutil
type DMG struct {
	fs      types.FS
	runner  types.CommandRunner
	hdiutil string
}

// NewDMG creates a DMG builder. An empty hdiutil means DefaultHdiutil.
func NewDMG(fsys types.FS, r types.CommandRunner, hdiutil string) *DMG {
	if hdiutil == "" {
		hdiutil = DefaultHdiutil
	}
	return &DMG{fs: fsys, runner: r, hdiutil: hdiutil}
}

// Build creates <Out>/<Name>.dmg from the application bundle and returns its path
func (d *DMG) Build(ctx context.Context, spec types.DiskImageSpec) (string, error) {
	logger := logging.GetLogger("installer.dmg")
	done := logging.LogOperationStart(logger, "hdiutil create")
	defer done()

	if spec.AppPath == "" || spec.Out == "" || spec.Name == "" {
		return "", errors.New(errors.ErrInvalidInput, "disk image needs an app path, a name and an output directory")
	}
	if _, err := d.fs.Stat(spec.AppPath); err != nil {
		return "", errors.Wrapf(err, errors.ErrInstaller, "application bundle %s not found", spec.AppPath)
	}
	if err := d.fs.MkdirAll(spec.Out, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", spec.Out)
	}

	image := filepath.Join(spec.Out, spec.Name+".dmg")
	if _, err := d.runner.Run(ctx, types.Command{
		Name: d.hdiutil,
		Args: []string{
			"create",
			"-volname", spec.Name,
			"-srcfolder", spec.AppPath,
			"-ov",
			"-format", "UDZO",
			image,
		},
	}); err != nil {
		return "", errors.Wrap(err, errors.ErrInstaller, "hdiutil failed")
	}

	logger.Info().Str("image", image).Msg("Disk image created")
	return image, nil
}
