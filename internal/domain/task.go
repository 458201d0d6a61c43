// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a single to-do entry managed by taskvault.
// Fields are ordered to minimize memory padding.
type Task struct {
	Due         *time.Time // Due date (nil = no due date), millisecond resolution UTC
	Title       string     // Title (required at creation)
	Description string     // Free-text description (empty = none)
	ID          int        // Store-assigned index (stable while the store is open)
	Completed   bool       // Completion flag, false at creation
}

// HasDue returns true if the task has a due date.
func (t *Task) HasDue() bool {
	return t.Due != nil
}

// IsOverdue returns true if the task has a due date before now and is not completed.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Due != nil && t.Due.Before(now) && !t.Completed
}

// Matches reports whether the task is visible under the given substring query.
// The match is case-insensitive over title and description; an empty query
// matches every task.
func (t *Task) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q)
}

// TaskFilter specifies criteria for listing tasks.
type TaskFilter struct {
	Completed *bool  // nil = all tasks, set = only tasks with this completion state
	Query     string // Case-insensitive substring over title/description ("" = all)
}

// Match reports whether the task passes the filter.
func (f TaskFilter) Match(t *Task) bool {
	if f.Completed != nil && t.Completed != *f.Completed {
		return false
	}
	return t.Matches(f.Query)
}
