package usecase

import (
	"context"
	"fmt"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase/shared"
)

// SetupVirtualenvInput contains the parameters for the virtualenv task.
type SetupVirtualenvInput struct {
	Python string // Interpreter path ("" = [virtualenv] python)
	Name   string // Environment name ("" = [virtualenv] name)
	DryRun bool
}

// SetupVirtualenv is the use case for creating the local development environment.
type SetupVirtualenv struct {
	configLoader domain.ConfigLoader
	deps         shared.PlanDeps
}

// NewSetupVirtualenv creates a new SetupVirtualenv use case.
func NewSetupVirtualenv(configLoader domain.ConfigLoader, deps shared.PlanDeps) *SetupVirtualenv {
	return &SetupVirtualenv{
		configLoader: configLoader,
		deps:         deps,
	}
}

// Execute creates the environment and installs the requirements.
func (uc *SetupVirtualenv) Execute(ctx context.Context, in SetupVirtualenvInput) (*shared.RunPlanOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	plan := domain.NewVirtualenvPlan(cfg.Virtualenv, domain.VirtualenvOptions{
		Python: in.Python,
		Name:   in.Name,
	})
	return shared.RunPlan(ctx, uc.deps, shared.RunPlanInput{Plan: plan, DryRun: in.DryRun})
}
