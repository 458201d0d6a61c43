package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soracane/taskvault/internal/tui"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command.
func newTUICommand(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse tasks interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			model := tui.New(d.c.Feed, d.c.Clock)
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
