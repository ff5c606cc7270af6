// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/infra/config"
	"github.com/draalcore/devtool/internal/infra/executor"
	"github.com/draalcore/devtool/internal/infra/git"
	"github.com/draalcore/devtool/internal/infra/logging"
	"github.com/draalcore/devtool/internal/usecase"
	"github.com/draalcore/devtool/internal/usecase/shared"
)

// Config holds the application paths.
type Config struct {
	WorkDir  string // Directory commands run in
	RepoRoot string // Root of the git work tree ("" outside a repository)
	GitDir   string // Path to the .git directory ("" outside a repository)
	ToolDir  string // Path to <git dir>/devtool ("" outside a repository)
}

// ExecutorFactory creates a command executor writing to the given streams.
type ExecutorFactory func(stdout, stderr io.Writer) domain.CommandExecutor

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Git           domain.Git // nil outside a git repository
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	TaskLogger    domain.Logger

	NewExecutor ExecutorFactory

	// Pointer fields
	Logger     *slog.Logger
	fileLogger *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given directory.
// A directory outside any git repository is allowed; release then fails
// preflight and file logging is disabled.
func New(dir string) (*Container, error) {
	return newContainer(dir, os.Stderr)
}

// newContainer builds the container with diagnostics written to stderr.
func newContainer(dir string, stderr io.Writer) (*Container, error) {
	cfg := Config{WorkDir: dir, RepoRoot: dir}

	var gitPort domain.Git
	gitClient, err := git.NewClient(dir)
	switch {
	case err == nil:
		cfg.RepoRoot = gitClient.RepoRoot()
		cfg.GitDir = gitClient.GitDir()
		cfg.ToolDir = domain.RepoToolDir(cfg.GitDir)
		gitPort = gitClient
	case errors.Is(err, domain.ErrNotGitRepository):
		// Not a repository: keep going with the working directory as root
	default:
		return nil, err
	}

	configLoader := config.NewLoader(cfg.RepoRoot)
	appConfig, loadErr := configLoader.Load()
	if loadErr != nil {
		appConfig = domain.NewDefaultConfig()
	}
	level := logging.ParseLevel(appConfig.Log.Level)

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))
	if loadErr != nil {
		logger.Warn("failed to load config, using defaults", "error", loadErr)
	}
	logger.Debug("container ready", "repo_root", cfg.RepoRoot, "in_repository", gitPort != nil)

	fileLogger := logging.New(cfg.ToolDir, level)

	return &Container{
		Git:           gitPort,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.RepoRoot),
		TaskLogger:    fileLogger,
		NewExecutor:   defaultExecutor,
		Logger:        logger,
		fileLogger:    fileLogger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, gitPort domain.Git, loader domain.ConfigLoader, manager domain.ConfigManager, newExecutor ExecutorFactory) *Container {
	return &Container{
		Git:           gitPort,
		ConfigLoader:  loader,
		ConfigManager: manager,
		TaskLogger:    domain.NopLogger{},
		NewExecutor:   newExecutor,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:        cfg,
	}
}

func defaultExecutor(stdout, stderr io.Writer) domain.CommandExecutor {
	return executor.NewClientWithStreams(os.Stdin, stdout, stderr)
}

// Close releases the log files.
func (c *Container) Close() error {
	if c.fileLogger == nil {
		return nil
	}
	return c.fileLogger.Close()
}

// planDeps wires the executor and task logger for a plan run.
func (c *Container) planDeps(stdout, stderr io.Writer) shared.PlanDeps {
	return shared.PlanDeps{
		Executor: c.NewExecutor(stdout, stderr),
		Logger:   c.TaskLogger,
		Stdout:   stdout,
	}
}

// UseCase factory methods

// RunLintUseCase returns a new RunLint use case.
func (c *Container) RunLintUseCase(stdout, stderr io.Writer) *usecase.RunLint {
	return usecase.NewRunLint(c.ConfigLoader, c.planDeps(stdout, stderr))
}

// RunUnitTestUseCase returns a new RunUnitTest use case.
func (c *Container) RunUnitTestUseCase(stdout, stderr io.Writer) *usecase.RunUnitTest {
	return usecase.NewRunUnitTest(c.ConfigLoader, c.planDeps(stdout, stderr))
}

// SetupVirtualenvUseCase returns a new SetupVirtualenv use case.
func (c *Container) SetupVirtualenvUseCase(stdout, stderr io.Writer) *usecase.SetupVirtualenv {
	return usecase.NewSetupVirtualenv(c.ConfigLoader, c.planDeps(stdout, stderr))
}

// ReleaseUseCase returns a new Release use case.
func (c *Container) ReleaseUseCase(stdout, stderr io.Writer) *usecase.Release {
	return usecase.NewRelease(c.ConfigLoader, c.Git, c.planDeps(stdout, stderr))
}

// ExecCommandUseCase returns a new ExecCommand use case.
func (c *Container) ExecCommandUseCase(stdout, stderr io.Writer) *usecase.ExecCommand {
	return usecase.NewExecCommand(c.NewExecutor(stdout, stderr), c.TaskLogger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.ConfigLoader)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
