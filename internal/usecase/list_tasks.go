package usecase

import (
	"context"
	"fmt"

	"github.com/draalcore/devtool/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	WithScripts bool // Resolve the shell script each task would run
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks []domain.TaskInfo
}

// ListTasks is the use case for listing the available tasks.
type ListTasks struct {
	configLoader domain.ConfigLoader
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(configLoader domain.ConfigLoader) *ListTasks {
	return &ListTasks{
		configLoader: configLoader,
	}
}

// Execute returns the task catalog.
// Scripts are rendered with the effective config and no per-run overrides;
// release needs a version, so it never gets one.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks := domain.AllTasks()
	if !in.WithScripts {
		return &ListTasksOutput{Tasks: tasks}, nil
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	for i := range tasks {
		var plan *domain.Plan
		switch tasks[i].Name {
		case domain.TaskLint:
			plan = domain.NewLintPlan(cfg.Lint, domain.LintOptions{})
		case domain.TaskUnitTest:
			plan = domain.NewUnitTestPlan(cfg.Test, domain.UnitTestOptions{})
		case domain.TaskVirtualenv:
			plan = domain.NewVirtualenvPlan(cfg.Virtualenv, domain.VirtualenvOptions{})
		}
		if plan != nil {
			tasks[i].Script = plan.Script()
		}
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
