package usecase

import (
	"context"
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
)

// ListTasksInput contains the filter criteria for listing tasks.
type ListTasksInput struct {
	Completed *bool  // nil = all, set = only tasks with this completion state
	Query     string // Case-insensitive substring over title/description
}

// ListTasksOutput contains the matching tasks in store scan order.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for reading the filtered task list.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

// Execute returns the tasks matching the input filter, freshly scanned from
// the store on every call.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.tasks.List(domain.TaskFilter{
		Query:     in.Query,
		Completed: in.Completed,
	})
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
