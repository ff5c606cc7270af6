// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"strings"

	"github.com/draalcore/devtool/internal/domain"
)

// MockCommandExecutor is a test double for domain.CommandExecutor.
// Fields are ordered to minimize memory padding.
type MockCommandExecutor struct {
	ExecuteErr error                 // Returned instead of running when set
	Commands   []*domain.ExecCommand // Every command passed to Execute
	Chunks     [][]byte              // Sent to the stdout callback, when one is given
	ExitCode   int                   // Exit code to report
}

// NewMockCommandExecutor creates a new MockCommandExecutor that succeeds.
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{}
}

// Ensure MockCommandExecutor implements domain.CommandExecutor interface.
var _ domain.CommandExecutor = (*MockCommandExecutor)(nil)

// Execute records the command and reports the configured outcome.
func (m *MockCommandExecutor) Execute(_ context.Context, cmd *domain.ExecCommand, onStdout domain.StdoutFunc) (int, error) {
	m.Commands = append(m.Commands, cmd)
	if m.ExecuteErr != nil {
		return 1, m.ExecuteErr
	}
	if onStdout != nil {
		for _, chunk := range m.Chunks {
			onStdout(append([]byte(nil), chunk...))
		}
	}
	if m.ExitCode != 0 {
		return m.ExitCode, &domain.ExitError{Code: m.ExitCode}
	}
	return 0, nil
}

// LastScript returns the sh -c script of the last executed command.
func (m *MockCommandExecutor) LastScript() string {
	if len(m.Commands) == 0 {
		return ""
	}
	args := m.Commands[len(m.Commands)-1].Args
	if len(args) < 2 {
		return ""
	}
	return args[1]
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config      *domain.Config
	LoadErr     error
	LastOptions domain.LoadConfigOptions
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	return m.LoadWithOptions(domain.LoadConfigOptions{})
}

// LoadWithOptions records the options and returns the configured config or error.
func (m *MockConfigLoader) LoadWithOptions(opts domain.LoadConfigOptions) (*domain.Config, error) {
	m.LastOptions = opts
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitRepoErr      error
	InitGlobalErr    error
	RepoConfigInfo   domain.ConfigInfo
	GlobalConfigInfo domain.ConfigInfo
	InitRepoCalled   bool
	InitGlobalCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		RepoConfigInfo: domain.ConfigInfo{
			Path:   "/test/.devtool.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/devtool/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetRepoConfigInfo returns the configured repo config info.
func (m *MockConfigManager) GetRepoConfigInfo() domain.ConfigInfo {
	return m.RepoConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitRepoConfig records the call and returns configured error.
func (m *MockConfigManager) InitRepoConfig(_ *domain.Config) error {
	m.InitRepoCalled = true
	return m.InitRepoErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(_ *domain.Config) error {
	m.InitGlobalCalled = true
	return m.InitGlobalErr
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	CurrentBranchErr error
	TagErr           error
	RemotesErr       error
	Tags             map[string]bool
	Branch           string
	RemoteNames      []string
}

// NewMockGit creates a MockGit on master with an origin remote.
func NewMockGit() *MockGit {
	return &MockGit{
		Tags:        make(map[string]bool),
		Branch:      "master",
		RemoteNames: []string{"origin"},
	}
}

// Ensure MockGit implements domain.Git interface.
var _ domain.Git = (*MockGit)(nil)

// CurrentBranch returns the configured branch.
func (m *MockGit) CurrentBranch() (string, error) {
	if m.CurrentBranchErr != nil {
		return "", m.CurrentBranchErr
	}
	return m.Branch, nil
}

// TagExists reports whether tag was registered in Tags.
func (m *MockGit) TagExists(tag string) (bool, error) {
	if m.TagErr != nil {
		return false, m.TagErr
	}
	return m.Tags[tag], nil
}

// Remotes returns the configured remote names.
func (m *MockGit) Remotes() ([]string, error) {
	if m.RemotesErr != nil {
		return nil, m.RemotesErr
	}
	return m.RemoteNames, nil
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	Task     domain.TaskName
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

// Info records an info entry.
func (m *MockLogger) Info(task domain.TaskName, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "INFO", Task: task, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(task domain.TaskName, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "DEBUG", Task: task, Category: category, Msg: msg})
}

// Warn records a warning entry.
func (m *MockLogger) Warn(task domain.TaskName, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "WARN", Task: task, Category: category, Msg: msg})
}

// Error records an error entry.
func (m *MockLogger) Error(task domain.TaskName, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: "ERROR", Task: task, Category: category, Msg: msg})
}

// HasEntry reports whether any entry at level contains substr.
func (m *MockLogger) HasEntry(level, substr string) bool {
	for _, e := range m.Entries {
		if e.Level == level && strings.Contains(e.Msg, substr) {
			return true
		}
	}
	return false
}
