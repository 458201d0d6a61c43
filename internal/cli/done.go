package cli

import (
	"errors"
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/spf13/cobra"
)

// newDoneCommand creates the done command.
func newDoneCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			completed, err := d.c.Feed.ToggleCompletion(cmd.Context(), id)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("no task at index %d", id)
				}
				return err
			}

			state := "pending"
			if completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", id, state)
			return nil
		},
	}
}
