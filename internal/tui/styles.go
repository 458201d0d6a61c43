package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	Header     lipgloss.Style
	FilterHint lipgloss.Style

	TaskNormal        lipgloss.Style
	TaskSelected      lipgloss.Style
	TaskDone          lipgloss.Style
	TaskID            lipgloss.Style
	TaskDesc          lipgloss.Style
	TaskDescSelected  lipgloss.Style
	DueNormal         lipgloss.Style
	DueOverdue        lipgloss.Style
	CursorNormal      lipgloss.Style
	CursorSelected    lipgloss.Style
	CheckDone         lipgloss.Style
	CheckPending      lipgloss.Style

	Empty  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header:     lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		FilterHint: lipgloss.NewStyle().Foreground(Colors.Warning),

		TaskNormal:       lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		TaskSelected:     lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		TaskDone:         lipgloss.NewStyle().Foreground(Colors.Muted).Strikethrough(true),
		TaskID:           lipgloss.NewStyle().Foreground(Colors.Muted),
		TaskDesc:         lipgloss.NewStyle().Foreground(Colors.DescNormal),
		TaskDescSelected: lipgloss.NewStyle().Foreground(Colors.DescSelected),
		DueNormal:        lipgloss.NewStyle().Foreground(Colors.Muted),
		DueOverdue:       lipgloss.NewStyle().Foreground(Colors.Error).Bold(true),
		CursorNormal:     lipgloss.NewStyle().Foreground(Colors.Muted),
		CursorSelected:   lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		CheckDone:        lipgloss.NewStyle().Foreground(Colors.Success),
		CheckPending:     lipgloss.NewStyle().Foreground(Colors.Muted),

		Empty:  lipgloss.NewStyle().Foreground(Colors.Muted).Italic(true),
		Status: lipgloss.NewStyle().Foreground(Colors.Muted),
		Error:  lipgloss.NewStyle().Foreground(Colors.Error),
		Help:   lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}
