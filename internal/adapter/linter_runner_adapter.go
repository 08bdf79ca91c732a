// Package adapter contains the process, filesystem and output adapters of the engine.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	m "github.com/codeclimate-community/codeclimate-clippy/internal/model"
)

// DefaultLinterCommand is the command line used to run clippy.
var DefaultLinterCommand = []string{"cargo", "clippy", "--message-format", "json", "-q"}

// linterWaitDelay bounds how long Close waits for the linter's I/O after it
// has been killed or has exited.
const linterWaitDelay = 5 * time.Second

// LinterRunnerAdapter abstracts running the linter.
type LinterRunnerAdapter interface {
	// Stream starts the linter and returns its stdout. Closing the returned
	// reader unblocks pending reads and waits for the process to exit. The
	// exit status is not reported.
	Stream(ctx context.Context) (io.ReadCloser, error)
}

// LocalLinterRunnerAdapter runs the linter with os/exec, inheriting the
// environment, working directory and stderr of the current process.
type LocalLinterRunnerAdapter struct {
	command []string
	stderr  io.Writer
}

// LinterRunnerOption configures a LocalLinterRunnerAdapter.
type LinterRunnerOption func(*LocalLinterRunnerAdapter)

// WithCommand replaces the linter command line.
func WithCommand(command ...string) LinterRunnerOption {
	return func(a *LocalLinterRunnerAdapter) {
		a.command = command
	}
}

// WithStderr redirects the linter's stderr.
func WithStderr(w io.Writer) LinterRunnerOption {
	return func(a *LocalLinterRunnerAdapter) {
		a.stderr = w
	}
}

// NewLocalLinterRunnerAdapter constructs a LocalLinterRunnerAdapter running DefaultLinterCommand.
func NewLocalLinterRunnerAdapter(options ...LinterRunnerOption) *LocalLinterRunnerAdapter {
	a := &LocalLinterRunnerAdapter{
		command: DefaultLinterCommand,
		stderr:  os.Stderr,
	}

	for _, option := range options {
		option(a)
	}

	return a
}

// Stream starts the linter and returns its stdout.
func (a *LocalLinterRunnerAdapter) Stream(ctx context.Context) (io.ReadCloser, error) {
	if len(a.command) == 0 {
		return nil, fmt.Errorf("%w: empty command", m.ErrSpawnFailed)
	}

	cmd := exec.CommandContext(ctx, a.command[0], a.command[1:]...)
	cmd.Stderr = a.stderr
	cmd.WaitDelay = linterWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", m.ErrSpawnFailed, err)
	}

	slog.Debug("Starting linter", "command", strings.Join(a.command, " "))

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", m.ErrSpawnFailed, a.command[0], err)
	}

	return &linterOutput{ReadCloser: stdout, cmd: cmd}, nil
}

type linterOutput struct {
	io.ReadCloser
	cmd *exec.Cmd
}

// Close releases the pipe and waits for the linter. A linter that still has
// output pending gets EPIPE and exits.
func (o *linterOutput) Close() error {
	_ = o.ReadCloser.Close()

	err := o.cmd.Wait()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		slog.Debug("Linter exited", "code", exitErr.ExitCode())
		return nil
	}

	if err != nil {
		slog.Debug("Linter wait failed", "error", err)
		return nil
	}

	slog.Debug("Linter exited", "code", 0)

	return nil
}
