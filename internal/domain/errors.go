package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
	ErrMissingVersion     = errors.New("no --version=<major.minor.patch> option defined")
	ErrInvalidVersion     = errors.New("invalid version (expected major.minor.patch)")
	ErrTagExists          = errors.New("release tag already exists")
	ErrRemoteNotFound     = errors.New("git remote not found")
	ErrConfigExists       = errors.New("config file already exists")
	ErrConflictingRunners = errors.New("--djangorunner and --baserunner cannot be used together")
	ErrEmptyCommand       = errors.New("command cannot be empty")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidEnv         = errors.New("invalid environment variable (expected KEY=VALUE)")
)

// ExitError reports that a child process exited with a non-zero status.
// It is the only error kind produced by running a command.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// ExitCode maps an error to a process exit code.
// nil is 0, an ExitError carries its own code and anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
