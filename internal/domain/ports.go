package domain

import "time"

// TaskRepository manages task persistence.
//
// Implementations assign the index returned by Append and must keep every
// assigned index stable while the repository stays open: deleting one task
// never shifts or invalidates the indices of the others.
type TaskRepository interface {
	// Get retrieves a task by index. Returns nil if not found.
	Get(id int) (*Task, error)

	// List retrieves tasks matching the filter, in store scan order.
	List(filter TaskFilter) ([]*Task, error)

	// Append persists a new task and returns its assigned index.
	Append(task *Task) (int, error)

	// Update overwrites all fields of the task at task.ID.
	// Returns ErrNotFound if the index does not exist.
	Update(task *Task) error

	// Delete removes the task at the given index.
	// Returns ErrNotFound if the index does not exist.
	Delete(id int) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
