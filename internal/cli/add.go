package cli

import (
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand(d *deps) *cobra.Command {
	var opts struct {
		Description string
		Due         string
	}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a new task",
		Long: `Add a new task to the list.

Examples:
  # A bare task
  taskvault add "Buy milk"

  # With a description and a due date
  taskvault add "File taxes" --desc "Use last year's folder" --due 2026-04-15`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			if title == "" {
				return domain.ErrEmptyTitle
			}

			due, err := parseDue(opts.Due)
			if err != nil {
				return err
			}

			id, err := d.c.Feed.AddTask(cmd.Context(), title, opts.Description, due)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "desc", "", "Task description")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD or RFC 3339)")

	return cmd
}
