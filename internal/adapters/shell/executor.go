// Package shell provides the executor adapter that runs produced executables.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"go.trai.ch/bakery/internal/core/domain"
	"go.trai.ch/bakery/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	stdin  io.Reader
}

// NewExecutor creates a new Executor reading from os.Stdin.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
		stdin:  os.Stdin,
	}
}

// WithStdin replaces the standard input handed to executed programs.
func (e *Executor) WithStdin(r io.Reader) *Executor {
	e.stdin = r
	return e
}

// Execute runs the program at path in dir, attached to the given streams.
//
// A program exiting unsuccessfully yields domain.ErrExecutableFailed carrying its
// "exit_code"; -1 when the program was not started or was killed by a signal.
func (e *Executor) Execute(
	ctx context.Context,
	path string,
	args []string,
	dir string,
	stdout, stderr io.Writer,
) error {
	e.logger.Info("Running " + filepath.Base(path))

	cmd := exec.CommandContext(ctx, path, args...) //nolint:gosec // path is the project's own artifact
	cmd.Dir = dir
	cmd.Stdin = e.stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err = zerr.Wrap(err, domain.ErrExecutableFailed.Error())
		return zerr.With(zerr.With(err, "path", path), "exit_code", exitCode)
	}

	return nil
}
