package domain

import (
	"fmt"
	"strings"
)

// TestRunner selects the Django test runner.
type TestRunner string

// Test runners understood by project.test_settings.
const (
	RunnerBase   TestRunner = "base"   // nose runner, the settings default
	RunnerDjango TestRunner = "django" // django.test.runner.DiscoverRunner
)

// DjangoRunnerEnv is the variable project.test_settings checks to pick DiscoverRunner.
const DjangoRunnerEnv = "DJANGO_TEST_RUNNER"

// UnitTestOptions holds per-run unittest overrides.
type UnitTestOptions struct {
	TestApp string     // App label or dotted test path ("" = whole project)
	Runner  TestRunner // "" behaves like RunnerBase
}

// NewUnitTestPlan builds the coverage run + coverage report chain.
func NewUnitTestPlan(cfg TestConfig, opts UnitTestOptions) *Plan {
	manage := cfg.Manage
	if manage == "" {
		manage = "manage.py"
	}
	source := cfg.Source
	if source == "" {
		source = "."
	}

	run := []string{"coverage run", "--source=" + quote(source), quote(manage), "test"}
	if opts.TestApp != "" {
		run = append(run, quote(opts.TestApp))
	}
	if cfg.Verbosity > 0 {
		run = append(run, fmt.Sprintf("--verbosity=%d", cfg.Verbosity))
	}
	if cfg.Settings != "" {
		run = append(run, "--settings="+quote(cfg.Settings))
	}

	report := []string{"coverage report"}
	if len(cfg.Omit) > 0 {
		report = append(report, "--omit="+quote(strings.Join(cfg.Omit, ",")))
	}
	report = append(report, "-m")

	plan := &Plan{
		Task: TaskUnitTest,
		Steps: []string{
			strings.Join(run, " "),
			strings.Join(report, " "),
		},
	}
	if opts.Runner == RunnerDjango {
		plan.Env = []string{DjangoRunnerEnv + "=1"}
	}
	return plan
}
