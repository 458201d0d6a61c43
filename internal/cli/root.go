// Package cli provides the command-line interface for taskvault.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/soracane/taskvault/internal/app"
	"github.com/soracane/taskvault/internal/domain"
	"github.com/spf13/cobra"
)

// deps holds the container shared by all commands. It is populated by the
// root command's PersistentPreRunE once flags are parsed.
type deps struct {
	c *app.Container
}

// NewRootCommand creates the root command for taskvault.
func NewRootCommand(version string) *cobra.Command {
	d := &deps{}
	var storePath string

	root := &cobra.Command{
		Use:   "taskvault",
		Short: "Local task list with a durable binary store",
		Long: `taskvault keeps a single task list in a compact binary container file.

Every mutation is flushed to disk before the command returns, so the
list survives crashes. The store location comes from
$XDG_CONFIG_HOME/taskvault/config.toml and can be overridden with --store.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c, err := app.New(app.Options{StorePath: storePath})
			if err != nil {
				if errors.Is(err, domain.ErrStoreOpen) {
					return fmt.Errorf("%w\nthe container file is unreadable; move it aside to start fresh", err)
				}
				return err
			}
			d.c = c
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if d.c == nil {
				return nil
			}
			return d.c.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVar(&storePath, "store", "", "Path to the task container file")

	root.AddCommand(
		newAddCommand(d),
		newListCommand(d),
		newDoneCommand(d),
		newRemoveCommand(d),
		newClearCommand(d),
		newEditCommand(d),
		newExportCommand(d),
		newTUICommand(d),
	)

	return root
}

// parseTaskID parses a positional task index argument.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid task index %q", arg)
	}
	return id, nil
}

// parseDue parses a due date flag value: either a date (due at midnight UTC)
// or a full RFC 3339 timestamp.
func parseDue(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q (want YYYY-MM-DD or RFC 3339)", value)
	}
	t = t.UTC()
	return &t, nil
}
