// Package tui implements the interactive terminal UI for taskvault.
//
// The model subscribes to the task feed: every mutation or filter change
// wakes the program through a buffered channel, and the visible list is
// re-read from the feed. The TUI never caches store state across
// notifications.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/soracane/taskvault/internal/domain"
	"github.com/soracane/taskvault/internal/view"
)

// mode is the current input mode of the TUI.
type mode int

const (
	modeList   mode = iota // Browsing the task list
	modeFilter             // Editing the substring filter
	modeAdd                // Entering a new task title
)

// changedMsg signals that the feed's visible set may have changed.
type changedMsg struct{}

// Model is the bubbletea model for the task browser.
// Fields are ordered to minimize memory padding.
type Model struct {
	feed    *view.Feed
	clock   domain.Clock
	changes chan struct{}
	cancel  func()

	tasks  []*domain.Task
	input  textinput.Model
	help   help.Model
	keys   KeyMap
	styles Styles

	status string
	err    error

	cursor int
	width  int
	height int
	mode   mode
}

// New creates a TUI model over the given feed.
func New(feed *view.Feed, clock domain.Clock) *Model {
	input := textinput.New()
	input.CharLimit = 256

	m := &Model{
		feed:    feed,
		clock:   clock,
		changes: make(chan struct{}, 1),
		input:   input,
		help:    help.New(),
		keys:    DefaultKeyMap(),
		styles:  DefaultStyles(),
	}

	// Coalescing send: the channel holds at most one pending wakeup, so a
	// burst of mutations results in a single redraw with fresh state.
	m.cancel = feed.Subscribe(func() {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})

	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.reload()
	return m.waitForChange()
}

// waitForChange blocks until the feed reports a change.
func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return changedMsg{}
	}
}

// reload re-reads the visible task list from the feed and clamps the cursor.
func (m *Model) reload() {
	tasks, err := m.feed.VisibleTasks(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.tasks = tasks
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selected returns the task under the cursor, or nil if the list is empty.
func (m *Model) selected() *domain.Task {
	if len(m.tasks) == 0 || m.cursor >= len(m.tasks) {
		return nil
	}
	return m.tasks[m.cursor]
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case changedMsg:
		m.reload()
		return m, m.waitForChange()

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter, modeAdd:
			return m.updateInput(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// updateList handles keys in list mode.
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Top):
		m.cursor = 0

	case key.Matches(msg, m.keys.End):
		if len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}

	case key.Matches(msg, m.keys.Toggle):
		if task := m.selected(); task != nil {
			if _, err := m.feed.ToggleCompletion(ctx, task.ID); err != nil {
				m.err = err
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if task := m.selected(); task != nil {
			if err := m.feed.DeleteTask(ctx, task.ID); err != nil {
				m.err = err
			} else {
				m.status = fmt.Sprintf("deleted task #%d", task.ID)
			}
		}

	case key.Matches(msg, m.keys.Clear):
		deleted, err := m.feed.DeleteCompletedTasks(ctx)
		if err != nil {
			m.err = err
		} else {
			m.status = fmt.Sprintf("cleared %d completed task(s)", deleted)
		}

	case key.Matches(msg, m.keys.New):
		m.mode = modeAdd
		m.input.Placeholder = "task title"
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.input.Placeholder = "filter"
		m.input.SetValue(m.feed.Filter())
		m.input.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Escape):
		if m.feed.Filter() != "" {
			m.feed.SetFilter("")
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// updateInput handles keys while the text input is focused.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		m.mode = modeList
		return m, nil

	case key.Matches(msg, m.keys.Accept):
		value := strings.TrimSpace(m.input.Value())
		m.input.Blur()

		switch m.mode {
		case modeFilter:
			m.feed.SetFilter(value)
		case modeAdd:
			if value != "" {
				if _, err := m.feed.AddTask(context.Background(), value, "", nil); err != nil {
					m.err = err
				}
			}
		}
		m.mode = modeList
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Filter edits apply live so the list narrows as you type.
	if m.mode == modeFilter {
		m.feed.SetFilter(m.input.Value())
	}

	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("taskvault"))
	if filter := m.feed.Filter(); filter != "" && m.mode != modeFilter {
		b.WriteString("  ")
		b.WriteString(m.styles.FilterHint.Render("filter: " + filter))
	}
	b.WriteString("\n\n")

	if m.mode == modeFilter || m.mode == modeAdd {
		label := "filter: "
		if m.mode == modeAdd {
			label = "new task: "
		}
		b.WriteString(label)
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.Empty.Render("no tasks"))
		b.WriteString("\n")
	} else {
		now := m.clock.Now()
		for i, task := range m.tasks {
			b.WriteString(m.renderTask(task, i == m.cursor, now))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

// renderTask renders a single task row.
func (m *Model) renderTask(task *domain.Task, selected bool, now time.Time) string {
	cursor := "  "
	if selected {
		cursor = m.styles.CursorSelected.Render("> ")
	}

	check := m.styles.CheckPending.Render("[ ]")
	if task.Completed {
		check = m.styles.CheckDone.Render("[x]")
	}

	titleStyle := m.styles.TaskNormal
	switch {
	case task.Completed:
		titleStyle = m.styles.TaskDone
	case selected:
		titleStyle = m.styles.TaskSelected
	}

	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(m.styles.TaskID.Render(fmt.Sprintf("#%-3d", task.ID)))
	b.WriteString(" ")
	b.WriteString(check)
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(task.Title))

	if task.HasDue() {
		due := task.Due.Format("2006-01-02")
		if task.IsOverdue(now) {
			b.WriteString("  " + m.styles.DueOverdue.Render(due+" !"))
		} else {
			b.WriteString("  " + m.styles.DueNormal.Render(due))
		}
	}

	if task.Description != "" {
		descStyle := m.styles.TaskDesc
		if selected {
			descStyle = m.styles.TaskDescSelected
		}
		b.WriteString("  " + descStyle.Render(task.Description))
	}

	return b.String()
}