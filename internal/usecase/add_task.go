// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/soracane/taskvault/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Due         *time.Time // Due date (optional, nil = no due date)
	Title       string     // Task title
	Description string     // Task description (optional)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	TaskID int // The store-assigned index of the created task
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	tasks domain.TaskRepository
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(tasks domain.TaskRepository) *AddTask {
	return &AddTask{tasks: tasks}
}

// Execute appends a new task with the given input. The task starts
// uncompleted; the store assigns its index.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task := &domain.Task{
		Title:       in.Title,
		Description: in.Description,
		Due:         in.Due,
	}

	id, err := uc.tasks.Append(task)
	if err != nil {
		return nil, fmt.Errorf("append task: %w", err)
	}

	return &AddTaskOutput{TaskID: id}, nil
}
