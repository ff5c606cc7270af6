// Package executor provides command execution functionality.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/draalcore/devtool/internal/domain"
)

// pipeDrainDelay bounds how long Execute keeps reading output after the child
// exits. Background processes started by the child may hold the pipes open.
const pipeDrainDelay = 500 * time.Millisecond

// Client implements domain.CommandExecutor interface.
type Client struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewClient creates a command executor bound to the process's standard streams.
func NewClient() *Client {
	return NewClientWithStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewClientWithStreams creates a command executor with custom streams.
// A nil stdin connects the child to the null device.
func NewClientWithStreams(stdin io.Reader, stdout, stderr io.Writer) *Client {
	return &Client{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Ensure Client implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and waits for it to exit.
//
// Without onStdout the child writes straight to the client's streams.
// With onStdout both streams are captured: every stdout chunk is echoed to
// the console and handed to onStdout, stderr chunks are only echoed.
// A non-zero exit status is returned as the code plus a *domain.ExitError.
func (c *Client) Execute(ctx context.Context, cmd *domain.ExecCommand, onStdout domain.StdoutFunc) (int, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted UseCase code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}
	if len(cmd.Env) > 0 {
		execCmd.Env = append(os.Environ(), cmd.Env...)
	}
	execCmd.Stdin = c.stdin
	execCmd.WaitDelay = pipeDrainDelay

	if onStdout == nil {
		execCmd.Stdout = c.stdout
		execCmd.Stderr = c.stderr
	} else {
		execCmd.Stdout = &chunkWriter{console: c.stdout, onChunk: onStdout}
		execCmd.Stderr = &chunkWriter{console: c.stderr}
	}

	err := execCmd.Run()
	if err == nil || errors.Is(err, exec.ErrWaitDelay) {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitCode(exitErr)
		return code, &domain.ExitError{Code: code}
	}
	return 1, fmt.Errorf("execute command: %w", err)
}

// exitCode returns the status of a finished child.
// A child killed by a signal reports 128+signal like a shell does.
func exitCode(exitErr *exec.ExitError) int {
	if code := exitErr.ExitCode(); code >= 0 {
		return code
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return 1
}

// chunkWriter echoes each chunk trimmed to the console and forwards a copy to onChunk.
// os/exec writes from a single goroutine per stream, so no locking is needed.
type chunkWriter struct {
	console io.Writer
	onChunk domain.StdoutFunc
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	if w.console != nil {
		// TrimSpace returns a subslice of p; appending to it would clobber p.
		line := append([]byte(nil), bytes.TrimSpace(p)...)
		line = append(line, '\n')
		if _, err := w.console.Write(line); err != nil {
			return 0, err
		}
	}
	if w.onChunk != nil {
		w.onChunk(bytes.Clone(p))
	}
	return len(p), nil
}
