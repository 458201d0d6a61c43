package usecase

import (
	"github.com/soracane/taskvault/internal/domain"
)

// mockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type mockTaskRepository struct {
	appendErr error
	getErr    error
	updateErr error
	deleteErr error
	listErr   error
	tasks     []*domain.Task
	nextID    int
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{}
}

func (m *mockTaskRepository) Get(id int) (*domain.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, t := range m.tasks {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockTaskRepository) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []*domain.Task
	for _, t := range m.tasks {
		if filter.Match(t) {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockTaskRepository) Append(task *domain.Task) (int, error) {
	if m.appendErr != nil {
		return 0, m.appendErr
	}
	id := m.nextID
	m.nextID++
	cp := *task
	cp.ID = id
	m.tasks = append(m.tasks, &cp)
	return id, nil
}

func (m *mockTaskRepository) Update(task *domain.Task) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i, t := range m.tasks {
		if t.ID == task.ID {
			cp := *task
			m.tasks[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockTaskRepository) Delete(id int) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Ensure the mock satisfies the port.
var _ domain.TaskRepository = (*mockTaskRepository)(nil)
