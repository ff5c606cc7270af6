// Package cli provides the command-line interface for devtool.
package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/domain"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the task picker, allowing it to be mocked in tests.
// It returns the command line of the picked task, or nil when the user quit.
var launchTUIFunc = launchTUI

// isTerminalFunc reports whether devtool is attached to an interactive terminal.
var isTerminalFunc = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// NewRootCommand creates the root command for devtool.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "devtool",
		Short: "Development task runner for draalcore",
		Long: `devtool runs the development tasks of the draalcore project:
lint, unit tests with coverage, virtualenv setup and releases.

Every task is a chain of shell commands run through one executor.
The exit code of the first failing command becomes the exit code of devtool.

Run without arguments in a terminal to pick a task interactively.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Reported by the command that needs the config
				return nil
			}

			for _, w := range cfg.Warnings {
				printWarning(cmd.ErrOrStderr(), "Warning: %s", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminalFunc() {
				return cmd.Help()
			}
			args, err := launchTUIFunc(c)
			if err != nil || args == nil {
				return err
			}
			return runTask(cmd, args)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Tasks:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	lintCmd := newLintCommand(c)
	lintCmd.GroupID = groupTask

	unittestCmd := newUnitTestCommand(c)
	unittestCmd.GroupID = groupTask

	virtualenvCmd := newVirtualenvCommand(c)
	virtualenvCmd.GroupID = groupTask

	releaseCmd := newReleaseCommand(c)
	releaseCmd.GroupID = groupTask

	execCmd := newExecCommand(c)
	execCmd.GroupID = groupTask

	tasksCmd := newTasksCommand(c)
	tasksCmd.GroupID = groupSetup

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		lintCmd,
		unittestCmd,
		virtualenvCmd,
		releaseCmd,
		execCmd,
		tasksCmd,
		configCmd,
	)

	return root
}

// runTask runs the task command named by args[0] with the remaining args as its flags.
func runTask(cmd *cobra.Command, args []string) error {
	if _, err := domain.FindTask(args[0]); err != nil {
		return err
	}

	sub, rest, err := cmd.Root().Find(args)
	if err != nil {
		return err
	}
	if err := sub.ParseFlags(rest); err != nil {
		return err
	}
	sub.SetContext(cmd.Context())
	return sub.RunE(sub, sub.Flags().Args())
}
