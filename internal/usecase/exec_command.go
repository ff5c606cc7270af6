package usecase

import (
	"context"
	"strings"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase/shared"
)

// ExecCommandInput contains the parameters for running a raw shell command.
type ExecCommandInput struct {
	Command string   // Shell command; may chain commands with && (required)
	Dir     string   // Working directory ("" = current directory)
	Env     []string // Extra KEY=VALUE pairs for the child
	Capture bool     // Capture output and collect stdout chunks
}

// ExecCommandOutput contains the result of running a command.
type ExecCommandOutput struct {
	Stdout   []byte // Collected stdout chunks (Capture only)
	ExitCode int
}

// ExecCommand is the use case for running an arbitrary shell command.
type ExecCommand struct {
	executor domain.CommandExecutor
	logger   domain.Logger
}

// NewExecCommand creates a new ExecCommand use case.
func NewExecCommand(executor domain.CommandExecutor, logger domain.Logger) *ExecCommand {
	return &ExecCommand{
		executor: executor,
		logger:   logger,
	}
}

// Execute runs the command and waits for it to exit.
// A non-zero exit is returned as *domain.ExitError along with the output.
func (uc *ExecCommand) Execute(ctx context.Context, in ExecCommandInput) (*ExecCommandOutput, error) {
	if strings.TrimSpace(in.Command) == "" {
		return nil, domain.ErrEmptyCommand
	}
	if err := shared.ValidateEnvPairs(in.Env); err != nil {
		return nil, err
	}

	out := &ExecCommandOutput{}
	var onStdout domain.StdoutFunc
	if in.Capture {
		onStdout = func(chunk []byte) {
			out.Stdout = append(out.Stdout, chunk...)
		}
	}

	uc.logger.Info("", "exec", in.Command)
	cmd := domain.NewShellCommand(in.Command, in.Dir)
	cmd.Env = in.Env
	code, err := uc.executor.Execute(ctx, cmd, onStdout)
	out.ExitCode = code
	if err != nil {
		uc.logger.Error("", "exec", err.Error())
		return out, err
	}
	return out, nil
}
