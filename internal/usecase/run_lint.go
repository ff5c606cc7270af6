package usecase

import (
	"context"
	"fmt"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase/shared"
)

// RunLintInput contains the parameters for the lint task.
type RunLintInput struct {
	Paths  []string // Paths to lint ("" = [lint] paths)
	DryRun bool
}

// RunLint is the use case for checking code style with flake8.
type RunLint struct {
	configLoader domain.ConfigLoader
	deps         shared.PlanDeps
}

// NewRunLint creates a new RunLint use case.
func NewRunLint(configLoader domain.ConfigLoader, deps shared.PlanDeps) *RunLint {
	return &RunLint{
		configLoader: configLoader,
		deps:         deps,
	}
}

// Execute runs the linter.
func (uc *RunLint) Execute(ctx context.Context, in RunLintInput) (*shared.RunPlanOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	plan := domain.NewLintPlan(cfg.Lint, domain.LintOptions{Paths: in.Paths})
	return shared.RunPlan(ctx, uc.deps, shared.RunPlanInput{Plan: plan, DryRun: in.DryRun})
}
