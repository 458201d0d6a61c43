package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/soracane/taskvault/internal/domain"
)

// UpdateTaskInput contains the parameters for updating a task.
// All fields of the stored record are overwritten.
// Fields are ordered to minimize memory padding.
type UpdateTaskInput struct {
	Due         *time.Time // New due date (nil = no due date)
	Title       string     // New title
	Description string     // New description
	TaskID      int        // Task index to update
	Completed   bool       // New completion state
}

// UpdateTaskOutput contains the result of updating a task.
type UpdateTaskOutput struct{}

// UpdateTask is the use case for overwriting a task's fields.
type UpdateTask struct {
	tasks domain.TaskRepository
}

// NewUpdateTask creates a new UpdateTask use case.
func NewUpdateTask(tasks domain.TaskRepository) *UpdateTask {
	return &UpdateTask{tasks: tasks}
}

// Execute overwrites all fields of the task at the given index.
// Returns domain.ErrNotFound if the index does not exist.
func (uc *UpdateTask) Execute(_ context.Context, in UpdateTaskInput) (*UpdateTaskOutput, error) {
	task := &domain.Task{
		ID:          in.TaskID,
		Title:       in.Title,
		Description: in.Description,
		Completed:   in.Completed,
		Due:         in.Due,
	}

	if err := uc.tasks.Update(task); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &UpdateTaskOutput{}, nil
}
