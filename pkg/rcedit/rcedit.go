// Package rcedit rewrites the version resources, icon and manifest of a
// Windows executable by invoking the rcedit tool.
package rcedit

import (
	"context"
	"runtime"
	"sort"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// DefaultBinary is the rcedit executable looked up on PATH
const DefaultBinary = "rcedit"

// Editor implements types.ExecutableEditor
type Editor struct {
	runner types.CommandRunner
	binary string
	goos   string
}

// New creates an Editor that runs binary through r. An empty binary means
// DefaultBinary.
func New(r types.CommandRunner, binary string) *Editor {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Editor{runner: r, binary: binary, goos: runtime.GOOS}
}

// Edit applies meta to the executable at exePath in place
func (e *Editor) Edit(ctx context.Context, exePath string, meta types.ExecutableMetadata) error {
	logger := logging.GetLogger("rcedit")

	args := Args(exePath, meta)
	if len(args) == 1 {
		logger.Debug().Str("exe", exePath).Msg("No metadata to apply")
		return nil
	}

	cmd := types.Command{Name: e.binary, Args: args}
	if e.goos != "windows" && strings.HasSuffix(strings.ToLower(e.binary), ".exe") {
		cmd = types.Command{Name: "wine", Args: append([]string{e.binary}, args...)}
	}

	if _, err := e.runner.Run(ctx, cmd); err != nil {
		return errors.Wrapf(err, errors.ErrRebrand, "failed to edit resources of %s", exePath).
			WithDetail("exe", exePath)
	}
	logger.Info().Str("exe", exePath).Int("args", len(args)).Msg("Executable metadata updated")
	return nil
}

// Args returns the rcedit command line for meta. Empty values are skipped
// and version strings are emitted in name order.
func Args(exePath string, meta types.ExecutableMetadata) []string {
	args := []string{exePath}

	keys := make([]string, 0, len(meta.VersionStrings))
	for k, v := range meta.VersionStrings {
		if v != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, "--set-version-string", k, meta.VersionStrings[k])
	}

	if meta.FileVersion != "" {
		args = append(args, "--set-file-version", meta.FileVersion)
	}
	if meta.ProductVersion != "" {
		args = append(args, "--set-product-version", meta.ProductVersion)
	}
	if meta.Icon != "" {
		args = append(args, "--set-icon", meta.Icon)
	}
	if meta.RequestedExecutionLevel != "" {
		args = append(args, "--set-requested-execution-level", string(meta.RequestedExecutionLevel))
	}
	if meta.ApplicationManifest != "" {
		args = append(args, "--application-manifest", meta.ApplicationManifest)
	}
	return args
}
