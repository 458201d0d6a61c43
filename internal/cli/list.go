package cli

import (
	"errors"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/soracane/taskvault/internal/domain"
	"github.com/soracane/taskvault/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(d *deps) *cobra.Command {
	var opts struct {
		Search    string
		Completed bool
		Pending   bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks in store order.

Examples:
  # Everything
  taskvault list

  # Case-insensitive substring search over title and description
  taskvault list --search milk

  # Only open tasks
  taskvault list --pending`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.Completed && opts.Pending {
				return errors.New("--completed and --pending are mutually exclusive")
			}

			input := usecase.ListTasksInput{Query: opts.Search}
			if opts.Completed || opts.Pending {
				input.Completed = &opts.Completed
			}

			out, err := d.c.ListTasksUseCase().Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			renderTaskTable(cmd, out.Tasks, d.c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "Filter by substring (case-insensitive)")
	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "Show only completed tasks")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Show only pending tasks")

	return cmd
}

// renderTaskTable prints tasks as a table on the command's stdout.
func renderTaskTable(cmd *cobra.Command, tasks []*domain.Task, now time.Time) {
	w := table.NewWriter()
	w.SetOutputMirror(cmd.OutOrStdout())
	w.AppendHeader(table.Row{"ID", "", "Title", "Due", "Description"})

	for _, task := range tasks {
		mark := " "
		if task.Completed {
			mark = "x"
		}
		due := ""
		if task.Due != nil {
			due = task.Due.Format("2006-01-02")
			if task.IsOverdue(now) {
				due = text.FgRed.Sprint(due + " !")
			}
		}
		w.AppendRow(table.Row{task.ID, mark, task.Title, due, task.Description})
	}

	w.SetStyle(table.StyleLight)
	w.Render()
}
