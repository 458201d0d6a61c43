package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newClearCommand creates the clear command.
func newClearCommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deleted, err := d.c.Feed.DeleteCompletedTasks(cmd.Context())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d completed task(s)\n", deleted)
			return nil
		},
	}
}
