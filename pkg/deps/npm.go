// Package deps installs the declared dependencies of an application.
package deps

import (
	"context"
	"runtime"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
)

// NPM installs dependencies with the npm client
type NPM struct {
	runner  types.CommandRunner
	command string
}

// NewNPM creates an installer that runs npm through r
func NewNPM(r types.CommandRunner) *NPM {
	return &NPM{runner: r, command: npmCommand(runtime.GOOS)}
}

func npmCommand(goos string) string {
	if goos == "windows" {
		return "npm.cmd"
	}
	return "npm"
}

// Install runs "npm install" in dir
func (n *NPM) Install(ctx context.Context, dir string) error {
	logger := logging.GetLogger("deps.npm")
	done := logging.LogOperationStart(logger, "npm install")
	defer done()

	_, err := n.runner.Run(ctx, types.Command{
		Name: n.command,
		Args: []string{"install"},
		Dir:  dir,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrDependency, "failed to install dependencies in %s", dir)
	}
	return nil
}
