package domain

import (
	"path"
	"strings"
)

// VirtualenvOptions holds per-run virtualenv overrides.
type VirtualenvOptions struct {
	Python string // Interpreter path ("" = config value)
	Name   string // Environment name ("" = config value)
}

// NewVirtualenvPlan builds the chain that creates the environment,
// activates it and installs the requirements into it.
func NewVirtualenvPlan(cfg VirtualenvConfig, opts VirtualenvOptions) *Plan {
	dir := cfg.Dir
	if dir == "" {
		dir = "virtualenv"
	}
	name := firstNonEmpty(opts.Name, cfg.Name, "draalcore")
	python := firstNonEmpty(opts.Python, cfg.Python, "python")
	envPath := path.Join(dir, name)

	steps := []string{
		"mkdir -p " + quote(dir),
		"virtualenv -p " + quote(python) + " --no-site-packages " + quote(envPath),
		". " + quote("./"+path.Join(envPath, "bin", "activate")),
	}
	if cfg.Requirements != "" {
		steps = append(steps, "pip install -r "+quote(cfg.Requirements))
	}

	return &Plan{
		Task:  TaskVirtualenv,
		Steps: steps,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
