package domain

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
	Env     []string // Extra KEY=VALUE pairs appended to the inherited environment
}

// NewCommand creates an ExecCommand for a program and its arguments.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// NewShellCommand creates an ExecCommand that runs script with sh -c.
// The script may chain several commands with &&.
func NewShellCommand(script, dir string) *ExecCommand {
	return NewCommand("sh", []string{"-c", script}, dir)
}

// StdoutFunc receives each chunk a child process writes to stdout.
// The slice is owned by the callee.
type StdoutFunc func(chunk []byte)
