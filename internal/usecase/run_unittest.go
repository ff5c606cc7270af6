package usecase

import (
	"context"
	"fmt"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase/shared"
)

// RunUnitTestInput contains the parameters for the unittest task.
// Fields are ordered to minimize memory padding.
type RunUnitTestInput struct {
	TestApp      string // App label or dotted test path ("" = whole project)
	DjangoRunner bool   // Use Django's DiscoverRunner
	BaseRunner   bool   // Use the settings default runner
	DryRun       bool
}

// RunUnitTest is the use case for running the test suite under coverage.
type RunUnitTest struct {
	configLoader domain.ConfigLoader
	deps         shared.PlanDeps
}

// NewRunUnitTest creates a new RunUnitTest use case.
func NewRunUnitTest(configLoader domain.ConfigLoader, deps shared.PlanDeps) *RunUnitTest {
	return &RunUnitTest{
		configLoader: configLoader,
		deps:         deps,
	}
}

// Execute runs the tests and prints the coverage report.
func (uc *RunUnitTest) Execute(ctx context.Context, in RunUnitTestInput) (*shared.RunPlanOutput, error) {
	if in.DjangoRunner && in.BaseRunner {
		return nil, domain.ErrConflictingRunners
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	runner := domain.RunnerBase
	if in.DjangoRunner {
		runner = domain.RunnerDjango
	}

	plan := domain.NewUnitTestPlan(cfg.Test, domain.UnitTestOptions{
		TestApp: in.TestApp,
		Runner:  runner,
	})
	return shared.RunPlan(ctx, uc.deps, shared.RunPlanInput{Plan: plan, DryRun: in.DryRun})
}
