// Package view presents a filtered, subscribable view over the task store.
//
// The Feed is the surface the presentation layer talks to: it owns the
// active substring filter and the subscriber list, and routes every mutation
// through the corresponding use case. After each mutation it notifies all
// subscribers unconditionally; it never diffs whether the visible set
// actually changed. Overnotification is fine, undernotification is not.
package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/soracane/taskvault/internal/usecase"
)

// Feed is the reactive query layer over a task repository.
// Fields are ordered to minimize memory padding.
type Feed struct {
	logger  *slog.Logger
	add     *usecase.AddTask
	update  *usecase.UpdateTask
	toggle  *usecase.ToggleTask
	delete  *usecase.DeleteTask
	clear   *usecase.ClearCompleted
	list    *usecase.ListTasks
	subs    []subscriber
	filter  string
	nextSub int
}

// subscriber pairs a callback with its registration token.
type subscriber struct {
	fn func()
	id int
}

// New creates a Feed over the given repository.
func New(tasks domain.TaskRepository, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Feed{
		logger: logger,
		add:    usecase.NewAddTask(tasks),
		update: usecase.NewUpdateTask(tasks),
		toggle: usecase.NewToggleTask(tasks),
		delete: usecase.NewDeleteTask(tasks),
		clear:  usecase.NewClearCompleted(tasks),
		list:   usecase.NewListTasks(tasks),
	}
}

// Subscribe registers fn to be called after every mutation and filter change.
// Delivery is synchronous, in registration order, on the mutating goroutine;
// there is no payload, subscribers re-read VisibleTasks. The returned cancel
// function removes the subscription.
func (f *Feed) Subscribe(fn func()) (cancel func()) {
	id := f.nextSub
	f.nextSub++
	f.subs = append(f.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range f.subs {
			if sub.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// notify delivers a change notification to every subscriber in registration
// order.
func (f *Feed) notify() {
	for _, sub := range f.subs {
		sub.fn()
	}
}

// SetFilter replaces the active case-insensitive substring filter.
// An empty string shows all tasks. Subscribers are notified because the
// visible set may have changed.
func (f *Feed) SetFilter(query string) {
	f.filter = query
	f.notify()
}

// Filter returns the active filter string.
func (f *Feed) Filter() string {
	return f.filter
}

// VisibleTasks returns all stored tasks, in store scan order, whose title or
// description contains the active filter substring. The list is computed
// fresh from the store on every call.
func (f *Feed) VisibleTasks(ctx context.Context) ([]*domain.Task, error) {
	out, err := f.list.Execute(ctx, usecase.ListTasksInput{Query: f.filter})
	if err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// AddTask appends a new uncompleted task and returns its assigned index.
func (f *Feed) AddTask(ctx context.Context, title, description string, due *time.Time) (int, error) {
	out, err := f.add.Execute(ctx, usecase.AddTaskInput{
		Title:       title,
		Description: description,
		Due:         due,
	})
	if err != nil {
		return 0, err
	}
	f.logger.Debug("task added", "id", out.TaskID, "title", title)
	f.notify()
	return out.TaskID, nil
}

// UpdateTask overwrites all fields of the task at the given index.
func (f *Feed) UpdateTask(ctx context.Context, id int, title, description string, due *time.Time, completed bool) error {
	_, err := f.update.Execute(ctx, usecase.UpdateTaskInput{
		TaskID:      id,
		Title:       title,
		Description: description,
		Due:         due,
		Completed:   completed,
	})
	if err != nil {
		return err
	}
	f.logger.Debug("task updated", "id", id)
	f.notify()
	return nil
}

// ToggleCompletion flips the completion flag of the task at the given index
// and returns the new state.
func (f *Feed) ToggleCompletion(ctx context.Context, id int) (bool, error) {
	out, err := f.toggle.Execute(ctx, usecase.ToggleTaskInput{TaskID: id})
	if err != nil {
		return false, err
	}
	f.logger.Debug("task toggled", "id", id, "completed", out.Completed)
	f.notify()
	return out.Completed, nil
}

// DeleteTask removes the task at the given index.
func (f *Feed) DeleteTask(ctx context.Context, id int) error {
	if _, err := f.delete.Execute(ctx, usecase.DeleteTaskInput{TaskID: id}); err != nil {
		return err
	}
	f.logger.Debug("task deleted", "id", id)
	f.notify()
	return nil
}

// DeleteCompletedTasks removes every completed task and returns how many
// were deleted.
func (f *Feed) DeleteCompletedTasks(ctx context.Context) (int, error) {
	out, err := f.clear.Execute(ctx, usecase.ClearCompletedInput{})
	if err != nil {
		return 0, err
	}
	f.logger.Debug("completed tasks cleared", "count", out.Deleted)
	f.notify()
	return out.Deleted, nil
}
