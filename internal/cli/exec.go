package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/usecase"
)

// newExecCommand creates the exec command.
func newExecCommand(c *app.Container) *cobra.Command {
	var capture bool
	var env []string

	cmd := &cobra.Command{
		Use:   "exec <command>...",
		Short: "Run a shell command through the executor",
		Long: `Run a shell command and exit with its exit code.

Arguments are joined with spaces and run by sh -c, so commands may be
chained with && and the first failure stops the chain.

With --capture the output is read in chunks; each chunk is echoed
trimmed on its own line.`,
		Example: `  devtool exec "echo hi && exit 0"
  devtool exec -- ls -la
  devtool exec -e DJANGO_TEST_RUNNER=1 "python manage.py test"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ExecCommandUseCase(cmd.OutOrStdout(), cmd.ErrOrStderr())
			_, err := uc.Execute(cmd.Context(), usecase.ExecCommandInput{
				Command: strings.Join(args, " "),
				Dir:     c.Config.WorkDir,
				Env:     env,
				Capture: capture,
			})
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "Set an environment variable for the command (KEY=VALUE, repeatable)")
	cmd.Flags().BoolVar(&capture, "capture", false, "Read output in chunks instead of passing the terminal through")
	return cmd
}
