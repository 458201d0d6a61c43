package usecase

import (
	"context"
	"testing"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedListRepo(t *testing.T) *mockTaskRepository {
	t.Helper()
	repo := newMockTaskRepository()
	_, _ = repo.Append(&domain.Task{Title: "Buy milk"})
	_, _ = repo.Append(&domain.Task{Title: "Buy eggs", Completed: true})
	_, _ = repo.Append(&domain.Task{Title: "Call dentist", Description: "milk teeth"})
	return repo
}

func TestListTasks_Execute_All(t *testing.T) {
	uc := NewListTasks(seedListRepo(t))

	out, err := uc.Execute(context.Background(), ListTasksInput{})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, "Buy milk", out.Tasks[0].Title)
	assert.Equal(t, "Buy eggs", out.Tasks[1].Title)
	assert.Equal(t, "Call dentist", out.Tasks[2].Title)
}

func TestListTasks_Execute_Query(t *testing.T) {
	uc := NewListTasks(seedListRepo(t))

	out, err := uc.Execute(context.Background(), ListTasksInput{Query: "Milk"})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "Buy milk", out.Tasks[0].Title)
	assert.Equal(t, "Call dentist", out.Tasks[1].Title)
}

func TestListTasks_Execute_QueryNoMatch(t *testing.T) {
	uc := NewListTasks(seedListRepo(t))

	out, err := uc.Execute(context.Background(), ListTasksInput{Query: "bread"})

	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
}

func TestListTasks_Execute_CompletedFilter(t *testing.T) {
	uc := NewListTasks(seedListRepo(t))

	pending := false
	out, err := uc.Execute(context.Background(), ListTasksInput{Completed: &pending})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "Buy milk", out.Tasks[0].Title)
	assert.Equal(t, "Call dentist", out.Tasks[1].Title)
}

func TestListTasks_Execute_ListError(t *testing.T) {
	repo := newMockTaskRepository()
	repo.listErr = assert.AnError
	uc := NewListTasks(repo)

	_, err := uc.Execute(context.Background(), ListTasksInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "list tasks")
}
