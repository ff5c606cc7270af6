// Package shared provides helpers used by several task use cases.
package shared

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/google/uuid"
)

// PlanDeps contains dependencies for running a plan.
// Fields are ordered to minimize memory padding.
type PlanDeps struct {
	Executor domain.CommandExecutor
	Logger   domain.Logger
	Stdout   io.Writer // Receives the script on dry runs
}

// RunPlanInput contains parameters for running a plan.
type RunPlanInput struct {
	Plan     *domain.Plan
	OnStdout domain.StdoutFunc // Optional; switches the executor to captured output
	DryRun   bool              // Print the script instead of running it
}

// RunPlanOutput contains the result of running a plan.
type RunPlanOutput struct {
	RunID    string // Correlates the log entries of one run
	Script   string // The shell script that was (or would be) executed
	ExitCode int
}

// RunPlan executes the plan as one shell command and reports its exit code.
// A non-zero exit is returned as *domain.ExitError together with the output.
func RunPlan(ctx context.Context, deps PlanDeps, in RunPlanInput) (*RunPlanOutput, error) {
	logger := deps.Logger
	if logger == nil {
		logger = domain.NopLogger{}
	}

	out := &RunPlanOutput{
		RunID:  uuid.NewString(),
		Script: in.Plan.Script(),
	}
	task := in.Plan.Task

	logger.Info(task, "plan", fmt.Sprintf("run=%s dry_run=%t script=%s", out.RunID, in.DryRun, out.Script))
	if len(in.Plan.Env) > 0 {
		logger.Debug(task, "plan", fmt.Sprintf("run=%s env=%s", out.RunID, strings.Join(in.Plan.Env, " ")))
	}

	if in.DryRun {
		if deps.Stdout != nil {
			for _, kv := range in.Plan.Env {
				_, _ = fmt.Fprintf(deps.Stdout, "export %s\n", kv)
			}
			_, _ = fmt.Fprintln(deps.Stdout, out.Script)
		}
		return out, nil
	}

	code, err := deps.Executor.Execute(ctx, in.Plan.Command(), in.OnStdout)
	out.ExitCode = code
	if err != nil {
		logger.Error(task, "run", fmt.Sprintf("run=%s exit=%d: %v", out.RunID, code, err))
		return out, fmt.Errorf("%s: %w", task, err)
	}

	logger.Info(task, "run", fmt.Sprintf("run=%s exit=0", out.RunID))
	return out, nil
}
