package pipeline

import (
	"context"
	"fmt"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/filesystem"
	"github.com/arthur-debert/electron-kit/pkg/paths"
	"github.com/arthur-debert/electron-kit/pkg/staging"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// clean removes the output of a previous run
func (d *Driver) clean(_ context.Context, r *run) error {
	return filesystem.RemoveIfExists(d.c.FS, r.Paths.Output)
}

// stage creates <output>/unpacked/<resource path>
func (d *Driver) stage(_ context.Context, r *run) error {
	segments := append([]string{paths.UnpackedDir}, r.Layout.Segments()...)
	return staging.EnsureNestedDirectories(d.c.FS, r.Paths.Output, segments)
}

// copyRuntime copies the runtime distribution into <output>/unpacked/electron
func (d *Driver) copyRuntime(ctx context.Context, r *run) error {
	if !filesystem.Exists(d.c.FS, r.Paths.Runtime) {
		return errors.Newf(errors.ErrRuntimeCopy, "runtime distribution not found at %s", r.Paths.Runtime).
			WithDetail("path", r.Paths.Runtime)
	}
	if err := filesystem.CopyTree(ctx, d.c.FS, r.Paths.Runtime, r.Paths.Electron); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return errors.Wrapf(err, errors.ErrRuntimeCopy, "failed to copy runtime from %s", r.Paths.Runtime)
	}
	return nil
}

// installDependencies installs the application's declared dependencies.
// Every failure here is downgraded to a warning.
func (d *Driver) installDependencies(ctx context.Context, r *run) error {
	switch {
	case r.Options.SkipInstall:
		r.logger.Debug().Msg("Dependency installation disabled")
		return nil
	case d.c.Dependencies == nil:
		d.warn(r, types.StepDependencies, "no dependency installer configured, skipping")
		return nil
	}

	manifest := r.Paths.AppManifest()
	if _, err := d.c.FS.Stat(manifest); err != nil {
		d.warn(r, types.StepDependencies, fmt.Sprintf("no %s in %s, skipping dependency install", paths.AppManifestFile, r.Paths.Input))
		return nil
	}
	if err := d.c.Dependencies.Install(ctx, r.Paths.Input); err != nil {
		d.warn(r, types.StepDependencies, fmt.Sprintf("dependency install failed: %v", err))
	}
	return nil
}

// archiveApp packs the input directory and places the archive in the
// resource directory.
func (d *Driver) archiveApp(ctx context.Context, r *run) error {
	if d.c.Archiver == nil {
		return errors.New(errors.ErrInternal, "no archive builder configured")
	}
	if err := staging.EnsureDirectory(d.c.FS, r.Paths.TempDir); err != nil {
		return err
	}
	r.tempCreated = true

	if err := d.c.Archiver.Build(ctx, r.Paths.Input, r.Paths.TempArchive); err != nil {
		if errors.GetErrorCode(err) == errors.ErrArchive {
			return err
		}
		return errors.Wrapf(err, errors.ErrArchive, "failed to pack %s", r.Paths.Input)
	}
	if err := filesystem.CopyFile(d.c.FS, r.Paths.TempArchive, r.Paths.StagedArchive()); err != nil {
		return errors.Wrapf(err, errors.ErrCopy, "failed to place %s", paths.ArchiveFileName)
	}
	return nil
}

// copyApp copies the input tree unpacked into the resource directory
func (d *Driver) copyApp(ctx context.Context, r *run) error {
	if err := filesystem.CopyTree(ctx, d.c.FS, r.Paths.Input, r.Paths.Resources); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return errors.Wrapf(err, errors.ErrCopy, "failed to copy application from %s", r.Paths.Input)
	}
	return nil
}

// cleanup removes the placeholder default app and the transient directory.
// Failures only produce warnings.
func (d *Driver) cleanup(_ context.Context, r *run) error {
	for _, p := range []string{r.Paths.DefaultApp(), r.Paths.TempDir} {
		if err := filesystem.RemoveIfExists(d.c.FS, p); err != nil {
			d.warn(r, types.StepCleanup, err.Error())
		}
	}
	return nil
}
