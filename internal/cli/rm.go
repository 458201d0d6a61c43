package cli

import (
	"errors"
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/spf13/cobra"
)

// newRemoveCommand creates the rm command.
func newRemoveCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			if err := d.c.Feed.DeleteTask(cmd.Context(), id); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("no task at index %d", id)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}
