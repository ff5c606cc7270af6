package domain

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Plan is the ordered list of shell commands a task runs.
// Steps are chained with && so the first failure stops the chain
// and its exit code becomes the exit code of the whole plan.
type Plan struct {
	Task  TaskName
	Dir   string   // Working directory ("" = current directory)
	Steps []string // Shell commands in execution order
	Env   []string // Extra KEY=VALUE pairs for the child
}

// Script returns the steps joined with a logical AND.
func (p *Plan) Script() string {
	return strings.Join(p.Steps, " && ")
}

// Command returns the shell command that runs the whole plan.
func (p *Plan) Command() *ExecCommand {
	cmd := NewShellCommand(p.Script(), p.Dir)
	if len(p.Env) > 0 {
		cmd.Env = append([]string(nil), p.Env...)
	}
	return cmd
}

// quote makes a single value safe to embed in a shell command.
func quote(s string) string {
	return shellquote.Join(s)
}

// quoteAll quotes each value and joins them with spaces.
func quoteAll(values []string) string {
	return shellquote.Join(values...)
}
