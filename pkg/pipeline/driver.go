package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/electron-kit/pkg/asar"
	"github.com/arthur-debert/electron-kit/pkg/deps"
	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/filesystem"
	"github.com/arthur-debert/electron-kit/pkg/installer"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/plist"
	"github.com/arthur-debert/electron-kit/pkg/rcedit"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// Collaborators are the capabilities a Driver delegates to. A nil installer
// builder disables installer generation for its platform.
type Collaborators struct {
	FS               types.FS
	Dependencies     types.DependencyInstaller
	Archiver         types.ArchiveBuilder
	Executables      types.ExecutableEditor
	Bundles          types.BundleEditor
	WindowsInstaller types.WindowsInstallerBuilder
	DiskImage        types.DiskImageBuilder
}

// Tools names the external programs used by the default collaborators.
// Empty fields use the program found on PATH.
type Tools struct {
	RCEdit   string `koanf:"rcedit" toml:"rcedit" yaml:"rcedit"`
	Makensis string `koanf:"makensis" toml:"makensis" yaml:"makensis"`
	Hdiutil  string `koanf:"hdiutil" toml:"hdiutil" yaml:"hdiutil"`
}

// DefaultCollaborators wires the production implementations around fsys and r
func DefaultCollaborators(fsys types.FS, r types.CommandRunner, tools Tools) Collaborators {
	return Collaborators{
		FS:               fsys,
		Dependencies:     deps.NewNPM(r),
		Archiver:         asar.NewBuilder(fsys),
		Executables:      rcedit.New(r, tools.RCEdit),
		Bundles:          plist.NewBundleEditor(fsys),
		WindowsInstaller: installer.NewNSIS(fsys, r, tools.Makensis),
		DiskImage:        installer.NewDMG(fsys, r, tools.Hdiutil),
	}
}

// Driver runs the packaging steps
type Driver struct {
	c        Collaborators
	reporter types.Reporter
	now      func() time.Time
}

// New creates a Driver. A nil reporter discards progress events.
func New(c Collaborators, reporter types.Reporter) *Driver {
	if reporter == nil {
		reporter = types.NopReporter{}
	}
	return &Driver{c: c, reporter: reporter, now: time.Now}
}

// run is the mutable state of a single pipeline run
type run struct {
	Plan
	logger      zerolog.Logger
	warnings    []string
	artifacts   []string
	tempCreated bool
}

type step struct {
	name types.Step
	fn   func(ctx context.Context, r *run) error
}

// Run executes every step for opts and returns the terminal result.
// The context is passed to every external process the steps start.
func (d *Driver) Run(ctx context.Context, opts types.Options) types.Result {
	start := d.now()
	logger := logging.GetLogger("pipeline")

	plan, err := NewPlan(opts)
	if err != nil {
		logger.Error().Err(err).Msg("Invalid build options")
		d.reporter.Report(types.Event{Step: types.StepClean, Kind: types.EventFail, Message: err.Error()})
		return types.Result{Message: err.Error(), Step: types.StepClean, Duration: d.now().Sub(start)}
	}

	r := &run{Plan: plan, logger: logger}
	defer d.releaseTemp(r)

	logger.Info().
		Str("platform", plan.Platform.String()).
		Str("input", plan.Paths.Input).
		Str("output", plan.Paths.Output).
		Bool("archive", opts.Archive).
		Str("productName", opts.ProductName).
		Msg("Starting build")

	for _, s := range d.steps(r) {
		if err := d.runStep(ctx, r, s); err != nil {
			logger.Error().Err(err).Str("step", string(s.name)).Msg("Build failed")
			return types.Result{
				Message:   err.Error(),
				Step:      s.name,
				Warnings:  r.warnings,
				Artifacts: r.artifacts,
				Duration:  d.now().Sub(start),
			}
		}
	}

	result := types.Result{
		Success:   true,
		Warnings:  r.warnings,
		Artifacts: r.artifacts,
		Duration:  d.now().Sub(start),
	}
	logger.Info().
		Int("warnings", len(result.Warnings)).
		Strs("artifacts", result.Artifacts).
		Dur("duration", result.Duration).
		Msg("Build completed")
	return result
}

func (d *Driver) steps(r *run) []step {
	appStep := step{types.StepCopyApp, d.copyApp}
	if r.Options.Archive {
		appStep = step{types.StepArchive, d.archiveApp}
	}
	return []step{
		{types.StepClean, d.clean},
		{types.StepStage, d.stage},
		{types.StepCopyRuntime, d.copyRuntime},
		{types.StepDependencies, d.installDependencies},
		appStep,
		{types.StepRebrand, d.rebrand},
		{types.StepCleanup, d.cleanup},
		{types.StepInstaller, d.buildInstaller},
	}
}

func (d *Driver) runStep(ctx context.Context, r *run, s step) error {
	if err := ctx.Err(); err != nil {
		wrapped := errors.Wrap(err, errors.ErrInternal, "build cancelled")
		d.reporter.Report(types.Event{Step: s.name, Kind: types.EventFail, Message: wrapped.Error()})
		return wrapped
	}

	d.reporter.Report(types.Event{Step: s.name, Kind: types.EventStart})
	done := logging.LogOperationStart(r.logger, string(s.name))
	err := s.fn(ctx, r)
	done()

	if err != nil {
		d.reporter.Report(types.Event{Step: s.name, Kind: types.EventFail, Message: err.Error()})
		return err
	}
	d.reporter.Report(types.Event{Step: s.name, Kind: types.EventDone})
	return nil
}

// warn records a non-fatal problem of the current step
func (d *Driver) warn(r *run, s types.Step, msg string) {
	r.logger.Warn().Str("step", string(s)).Msg(msg)
	r.warnings = append(r.warnings, msg)
	d.reporter.Report(types.Event{Step: s, Kind: types.EventWarn, Message: msg})
}

// releaseTemp removes the transient archive directory once it was created,
// whatever the outcome of the run.
func (d *Driver) releaseTemp(r *run) {
	if !r.tempCreated {
		return
	}
	if err := filesystem.RemoveIfExists(d.c.FS, r.Paths.TempDir); err != nil {
		r.logger.Warn().Err(err).Str("path", r.Paths.TempDir).Msg("Failed to release temporary directory")
	}
}
