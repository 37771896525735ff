package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/idgen"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for list.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter string
		Format string
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the tasks, newest first.

Output format is tab-separated with columns:
  ID, DONE, CREATED, TEXT

Examples:
  # List the sample tasks
  todo list --sample

  # Only tasks still to do
  todo list --sample --filter pending

  # Machine-readable output
  todo list --seed tasks.yaml --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := c.AppConfig.View.Filter
			if opts.Filter != "" {
				f, err := domain.ParseFilter(opts.Filter)
				if err != nil {
					return err
				}
				filter = f
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Filter: filter})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch opts.Format {
			case formatText:
				printTaskList(w, out.Tasks, out.Filter, c.Clock, c.AppConfig.View.DateLayout)
				return nil
			case formatJSON:
				return writeJSON(w, out.Tasks)
			case formatYAML:
				return writeYAML(w, out.Tasks)
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", opts.Format)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "", "Filter: all, pending or completed (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", formatText, "Output format: text, json or yaml")

	return cmd
}

// newProgressCommand creates the progress command.
func newProgressCommand(c *app.Container) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show completion progress",
		Long: `Show how many tasks are completed, as a count, a percentage and a bar.

Examples:
  todo progress --sample
  todo progress --seed tasks.yaml --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowProgressUseCase().Execute(cmd.Context(), usecase.ShowProgressInput{})
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), out.Progress)
			}
			printProgress(cmd.OutOrStdout(), out.Progress)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// printTaskList prints tasks as a table, or the empty-state message.
func printTaskList(w io.Writer, tasks []*domain.Task, filter domain.Filter, clock domain.Clock, dateLayout string) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, domain.EmptyStateMessage(filter))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tDONE\tCREATED\tTEXT")

	// Rows
	now := clock.Now()
	for _, task := range tasks {
		done := "[ ]"
		if task.Completed {
			done = "[x]"
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			idgen.ShortID(task.ID),
			done,
			domain.TimeLabel(task.CreatedAt, now, dateLayout),
			strings.ReplaceAll(task.Text, "\n", " "),
		)
	}
}

// printProgress prints the progress summary.
func printProgress(w io.Writer, p domain.Progress) {
	_, _ = fmt.Fprintf(w, "%s %3d%%  %d/%d completed\n", p.Bar(20), p.Percentage, p.Completed, p.Total)
	_, _ = fmt.Fprintln(w, p.Message)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
