package cli

import (
	"github.com/spf13/cobra"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase"
)

// newLintCommand creates the lint command.
func newLintCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Check code style with flake8",
		Long: `Check code style with flake8.

Runs: flake8 --config=<lint.config> --verbose --exclude=<lint.exclude> <paths>

Paths given as arguments replace [lint] paths from the config.`,
		Example: `  devtool lint
  devtool lint draalcore project
  devtool lint --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.RunLintUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err := uc.Execute(cmd.Context(), usecase.RunLintInput{
				Paths:  args,
				DryRun: dryRun,
			})
			return reportTask(cmd.ErrOrStderr(), domain.TaskLint, dryRun, err)
		},
	}

	addDryRunFlag(cmd, &dryRun)
	return cmd
}

// newUnitTestCommand creates the unittest command.
func newUnitTestCommand(c *app.Container) *cobra.Command {
	var opts usecase.RunUnitTestInput

	cmd := &cobra.Command{
		Use:   "unittest",
		Short: "Run unit tests with coverage report",
		Long: `Run the Django test suite under coverage and print the coverage report.

--djangorunner selects Django's DiscoverRunner by setting DJANGO_TEST_RUNNER=1.
--baserunner (the default) keeps the runner configured in the test settings.`,
		Example: `  devtool unittest
  devtool unittest --testapp draalcore.models
  devtool unittest --djangorunner`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.RunUnitTestUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err := uc.Execute(cmd.Context(), opts)
			return reportTask(cmd.ErrOrStderr(), domain.TaskUnitTest, opts.DryRun, err)
		},
	}

	cmd.Flags().StringVar(&opts.TestApp, "testapp", "", "Test only this app or dotted test path")
	cmd.Flags().BoolVar(&opts.DjangoRunner, "djangorunner", false, "Use Django's DiscoverRunner")
	cmd.Flags().BoolVar(&opts.BaseRunner, "baserunner", false, "Use the runner from the test settings (default)")
	cmd.MarkFlagsMutuallyExclusive("djangorunner", "baserunner")
	addDryRunFlag(cmd, &opts.DryRun)
	return cmd
}

// newVirtualenvCommand creates the virtualenv command.
func newVirtualenvCommand(c *app.Container) *cobra.Command {
	var opts usecase.SetupVirtualenvInput

	cmd := &cobra.Command{
		Use:   "virtualenv",
		Short: "Set up a virtual environment for local development",
		Long: `Create <virtualenv.dir>/<name> with virtualenv, activate it and
install the requirements file into it.`,
		Example: `  devtool virtualenv
  devtool virtualenv --python /usr/bin/python3 --virtualname dev`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.SetupVirtualenvUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err := uc.Execute(cmd.Context(), opts)
			return reportTask(cmd.ErrOrStderr(), domain.TaskVirtualenv, opts.DryRun, err)
		},
	}

	cmd.Flags().StringVar(&opts.Python, "python", "", "Python interpreter for the environment")
	cmd.Flags().StringVar(&opts.Name, "virtualname", "", "Name of the environment")
	addDryRunFlag(cmd, &opts.DryRun)
	return cmd
}

// newReleaseCommand creates the release command.
func newReleaseCommand(c *app.Container) *cobra.Command {
	var opts usecase.ReleaseInput

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Bump version, tag and push a release",
		Long: `Write the version module, bump package.json, commit, tag v<version>
and push the tag and the release branch to every remote.

The tag must not exist yet and every remote must be configured.`,
		Example: `  devtool release --version 1.2.3
  devtool release --version 1.2.3 --remotes origin,github
  devtool release --version 1.2.3 --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ReleaseUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			out, err := uc.Execute(cmd.Context(), opts)
			if out != nil {
				for _, w := range out.Warnings {
					printWarning(cmd.ErrOrStderr(), "%s", w)
				}
			}
			if err == nil && !opts.DryRun {
				printInfo(cmd.ErrOrStderr(), "released %s to %v", out.Tag, out.Remotes)
			}
			return reportTask(cmd.ErrOrStderr(), domain.TaskRelease, opts.DryRun, err)
		},
	}

	cmd.Flags().StringVar(&opts.Version, "version", "", "Release version major.minor.patch (required)")
	cmd.Flags().StringVar(&opts.Remotes, "remotes", "", "Comma separated remotes to push to (default from config)")
	addDryRunFlag(cmd, &opts.DryRun)
	return cmd
}

func addDryRunFlag(cmd *cobra.Command, dryRun *bool) {
	cmd.Flags().BoolVar(dryRun, "dry-run", false, "Print the commands instead of running them")
}
