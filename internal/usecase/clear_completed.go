package usecase

import (
	"context"
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
)

// ClearCompletedInput contains the parameters for bulk-deleting completed tasks.
type ClearCompletedInput struct{}

// ClearCompletedOutput contains the result of the bulk delete.
type ClearCompletedOutput struct {
	Deleted int // Number of tasks removed
}

// ClearCompleted is the use case for deleting every completed task.
type ClearCompleted struct {
	tasks domain.TaskRepository
}

// NewClearCompleted creates a new ClearCompleted use case.
func NewClearCompleted(tasks domain.TaskRepository) *ClearCompleted {
	return &ClearCompleted{tasks: tasks}
}

// Execute deletes all completed tasks and returns how many were removed.
// Each record deletion is its own durable unit; there is no multi-record
// transaction.
func (uc *ClearCompleted) Execute(_ context.Context, _ ClearCompletedInput) (*ClearCompletedOutput, error) {
	done := true
	completed, err := uc.tasks.List(domain.TaskFilter{Completed: &done})
	if err != nil {
		return nil, fmt.Errorf("list completed tasks: %w", err)
	}

	for _, task := range completed {
		if err := uc.tasks.Delete(task.ID); err != nil {
			return nil, fmt.Errorf("delete task %d: %w", task.ID, err)
		}
	}

	return &ClearCompletedOutput{Deleted: len(completed)}, nil
}
