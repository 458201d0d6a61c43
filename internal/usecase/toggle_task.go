package usecase

import (
	"context"
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task's completion.
type ToggleTaskInput struct {
	TaskID int // Task index to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Completed bool // The completion state after the toggle
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	tasks domain.TaskRepository
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(tasks domain.TaskRepository) *ToggleTask {
	return &ToggleTask{tasks: tasks}
}

// Execute flips the completion flag of the task at the given index.
// Toggling twice restores the original state.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	task, err := uc.tasks.Get(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}

	task.Completed = !task.Completed
	if err := uc.tasks.Update(task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	return &ToggleTaskOutput{Completed: task.Completed}, nil
}
