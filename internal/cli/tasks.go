package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/draalcore/devtool/internal/app"
	"github.com/draalcore/devtool/internal/domain"
	"github.com/draalcore/devtool/internal/usecase"
)

// Output formats of the tasks command.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newTasksCommand creates the tasks command.
func newTasksCommand(c *app.Container) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List available tasks",
		Long: `List available tasks with the script each one runs under the current config.

Output format is tab-separated with columns:
  NAME, DESCRIPTION, SCRIPT

release needs --version, so no script is shown for it.`,
		Example: `  devtool tasks
  devtool tasks --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{WithScripts: true})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch format {
			case formatText:
				printTaskList(w, out.Tasks)
				return nil
			case formatJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Tasks)
			case formatYAML:
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(out.Tasks); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json or yaml")
	return cmd
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []domain.TaskInfo) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "NAME\tDESCRIPTION\tSCRIPT")
	for _, t := range tasks {
		script := t.Script
		if script == "" {
			script = "-"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Name, t.Description, script)
	}
}
