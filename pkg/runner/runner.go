// Package runner executes external processes with structured arguments.
// Arguments are never passed through a shell, so paths containing spaces
// need no quoting.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/electron-kit/pkg/errors"
	"github.com/arthur-debert/electron-kit/pkg/logging"
	"github.com/arthur-debert/electron-kit/pkg/types"
	"github.com/rs/zerolog"
)

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger zerolog.Logger
}

// New creates a new ExecRunner
func New() *ExecRunner {
	return &ExecRunner{
		logger: logging.GetLogger("runner"),
	}
}

// Run executes cmd and waits for it to finish. A non-zero exit status is
// returned as an ErrCommandExecute error carrying the captured stderr.
func (r *ExecRunner) Run(ctx context.Context, cmd types.Command) (types.CommandOutput, error) {
	if cmd.Name == "" {
		return types.CommandOutput{}, errors.New(errors.ErrInvalidInput, "command name is required")
	}

	logging.LogCommand(cmd.Name, cmd.Args)
	r.logger.Debug().Str("dir", cmd.Dir).Msg("Running command")

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	if cmd.Dir != "" {
		if _, err := os.Stat(cmd.Dir); err != nil {
			return types.CommandOutput{}, errors.Wrapf(err, errors.ErrFileAccess,
				"working directory does not exist: %s", cmd.Dir)
		}
		c.Dir = cmd.Dir
	}
	c.Env = append(os.Environ(), cmd.Env...)

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	out := types.CommandOutput{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if c.ProcessState != nil {
		out.ExitCode = c.ProcessState.ExitCode()
	}

	if stdout.Len() > 0 {
		r.logger.Trace().Str("output", out.Stdout).Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		r.logger.Debug().Str("output", out.Stderr).Msg("Command stderr")
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return out, errors.Wrapf(ctxErr, errors.ErrCommandExecute, "%s interrupted", cmd.Name)
		}
		kerr := errors.Wrapf(err, errors.ErrCommandExecute, "%s failed", cmd.Name).
			WithDetail("args", cmd.Args).
			WithDetail("exitCode", out.ExitCode)
		if msg := lastLine(out.Stderr); msg != "" {
			kerr.Message = cmd.Name + " failed: " + msg
		}
		var notFound *exec.Error
		if stderrors.As(err, &notFound) {
			kerr.Code = errors.ErrNotFound
		}
		return out, kerr
	}

	r.logger.Debug().Str("command", cmd.Name).Msg("Command completed")
	return out, nil
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
