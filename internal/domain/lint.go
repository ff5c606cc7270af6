package domain

import "strings"

// LintOptions holds per-run lint overrides.
type LintOptions struct {
	Paths []string // Paths to lint; config paths are used when empty
}

// NewLintPlan builds the flake8 invocation.
func NewLintPlan(cfg LintConfig, opts LintOptions) *Plan {
	command := cfg.Command
	if command == "" {
		command = "flake8"
	}
	paths := opts.Paths
	if len(paths) == 0 {
		paths = cfg.Paths
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	parts := []string{quote(command)}
	if cfg.Config != "" {
		parts = append(parts, "--config="+quote(cfg.Config))
	}
	parts = append(parts, "--verbose")
	if len(cfg.Exclude) > 0 {
		parts = append(parts, "--exclude="+quote(strings.Join(cfg.Exclude, ",")))
	}
	parts = append(parts, quoteAll(paths))

	return &Plan{
		Task:  TaskLint,
		Steps: []string{strings.Join(parts, " ")},
	}
}
