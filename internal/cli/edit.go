package cli

import (
	"errors"
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/spf13/cobra"
)

// newEditCommand creates the edit command.
func newEditCommand(d *deps) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Due         string
		ClearDue    bool
		Completed   bool
		Pending     bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task's fields",
		Long: `Edit a task. Only the flags you pass change; the rest keep their
current values.

Examples:
  taskvault edit 2 --title "Buy oat milk"
  taskvault edit 2 --due 2026-05-01
  taskvault edit 2 --clear-due --pending`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if opts.Completed && opts.Pending {
				return errors.New("--completed and --pending are mutually exclusive")
			}

			task, err := d.c.Tasks.Get(id)
			if err != nil {
				return err
			}
			if task == nil {
				return fmt.Errorf("no task at index %d", id)
			}

			if cmd.Flags().Changed("title") {
				if opts.Title == "" {
					return domain.ErrEmptyTitle
				}
				task.Title = opts.Title
			}
			if cmd.Flags().Changed("desc") {
				task.Description = opts.Description
			}
			if opts.ClearDue {
				task.Due = nil
			} else if cmd.Flags().Changed("due") {
				due, err := parseDue(opts.Due)
				if err != nil {
					return err
				}
				task.Due = due
			}
			if opts.Completed {
				task.Completed = true
			}
			if opts.Pending {
				task.Completed = false
			}

			err = d.c.Feed.UpdateTask(cmd.Context(), id, task.Title, task.Description, task.Due, task.Completed)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "New title")
	cmd.Flags().StringVar(&opts.Description, "desc", "", "New description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().BoolVar(&opts.ClearDue, "clear-due", false, "Remove the due date")
	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "Mark as completed")
	cmd.Flags().BoolVar(&opts.Pending, "pending", false, "Mark as pending")

	return cmd
}
