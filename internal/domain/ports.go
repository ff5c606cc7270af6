package domain

import "context"

// CommandExecutor runs external commands.
type CommandExecutor interface {
	// Execute runs cmd and waits for it to exit.
	// With a nil onStdout the child inherits the executor's streams.
	// Otherwise stdout and stderr are captured, echoed to the console and
	// every stdout chunk is passed to onStdout.
	// It returns the exit code and an *ExitError when the code is non-zero.
	Execute(ctx context.Context, cmd *ExecCommand, onStdout StdoutFunc) (int, error)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- repo).
	Load() (*Config, error)

	// LoadWithOptions returns the merged configuration, skipping ignored sources.
	LoadWithOptions(opts LoadConfigOptions) (*Config, error)
}

// LoadConfigOptions selects which configuration sources to skip.
type LoadConfigOptions struct {
	IgnoreGlobal bool
	IgnoreRepo   bool
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetRepoConfigInfo returns information about the repository config file.
	GetRepoConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitRepoConfig writes the config template to the repository config path.
	InitRepoConfig(cfg *Config) error

	// InitGlobalConfig writes the config template to the global config path.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Git provides the repository queries used by release preflight.
type Git interface {
	// CurrentBranch returns the name of the checked out branch.
	CurrentBranch() (string, error)

	// TagExists checks if a tag exists.
	TagExists(tag string) (bool, error)

	// Remotes returns the names of the configured remotes.
	Remotes() ([]string, error)
}

// Logger writes task logs.
type Logger interface {
	Info(task TaskName, category, msg string)
	Debug(task TaskName, category, msg string)
	Warn(task TaskName, category, msg string)
	Error(task TaskName, category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

// Info discards the entry.
func (NopLogger) Info(TaskName, string, string) {}

// Debug discards the entry.
func (NopLogger) Debug(TaskName, string, string) {}

// Warn discards the entry.
func (NopLogger) Warn(TaskName, string, string) {}

// Error discards the entry.
func (NopLogger) Error(TaskName, string, string) {}
