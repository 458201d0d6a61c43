package binstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/soracane/taskvault/internal/infra/codec"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.bin")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func reopen(t *testing.T, s *Store, path string) *Store {
	t.Helper()
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s2.Close() })
	return s2
}

func TestOpen_CreatesContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tasks.bin")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = s.Close() }()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("container not created: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestStore_AppendAssignsSequentialIndices(t *testing.T) {
	s, _ := newTestStore(t)

	for want := 0; want < 3; want++ {
		id, err := s.Append(&domain.Task{Title: "task"})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		if id != want {
			t.Errorf("Append() = %d, want %d", id, want)
		}
	}
}

func TestStore_AppendAndGet(t *testing.T) {
	s, _ := newTestStore(t)

	due := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	id, err := s.Append(&domain.Task{
		Title:       "Write report",
		Description: "Quarterly numbers",
		Due:         &due,
	})
	if err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	got, err := s.Get(id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() returned nil")
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if got.Title != "Write report" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Description != "Quarterly numbers" {
		t.Errorf("Description = %q", got.Description)
	}
	if got.Completed {
		t.Error("Completed = true, want false")
	}
	if got.Due == nil || !got.Due.Equal(due) {
		t.Errorf("Due = %v, want %v", got.Due, due)
	}
}

func TestStore_GetNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	got, err := s.Get(999)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %v, want nil", got)
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t)

	id, _ := s.Append(&domain.Task{Title: "original"})

	got, _ := s.Get(id)
	got.Title = "mutated"

	again, _ := s.Get(id)
	if again.Title != "original" {
		t.Errorf("Title = %q, want %q", again.Title, "original")
	}
}

func TestStore_Update(t *testing.T) {
	s, path := newTestStore(t)

	id, _ := s.Append(&domain.Task{Title: "before"})

	if err := s.Update(&domain.Task{ID: id, Title: "after", Completed: true}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got, _ := s.Get(id)
	if got.Title != "after" || !got.Completed {
		t.Errorf("Get() = %+v", got)
	}

	// Durable across reopen
	s2 := reopen(t, s, path)
	got, _ = s2.Get(id)
	if got == nil || got.Title != "after" || !got.Completed {
		t.Errorf("after reopen: Get() = %+v", got)
	}
}

func TestStore_UpdateNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.Update(&domain.Task{ID: 7, Title: "ghost"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s, path := newTestStore(t)

	id, _ := s.Append(&domain.Task{Title: "doomed"})

	if err := s.Delete(id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	got, _ := s.Get(id)
	if got != nil {
		t.Errorf("Get() after delete = %v, want nil", got)
	}

	tasks, _ := s.List(domain.TaskFilter{})
	if len(tasks) != 0 {
		t.Errorf("List() after delete = %d tasks, want 0", len(tasks))
	}

	// Durable across reopen
	s2 := reopen(t, s, path)
	if s2.Len() != 0 {
		t.Errorf("after reopen: Len() = %d, want 0", s2.Len())
	}
}

func TestStore_DeleteNotFound(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Delete(3); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Delete() error = %v, want ErrNotFound", err)
	}
}

func TestStore_DeleteKeepsOtherIndicesStable(t *testing.T) {
	s, _ := newTestStore(t)

	first, _ := s.Append(&domain.Task{Title: "first"})
	second, _ := s.Append(&domain.Task{Title: "second"})
	third, _ := s.Append(&domain.Task{Title: "third"})

	if err := s.Delete(second); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// Surviving indices are untouched
	got, _ := s.Get(first)
	if got == nil || got.Title != "first" {
		t.Errorf("Get(first) = %+v", got)
	}
	got, _ = s.Get(third)
	if got == nil || got.Title != "third" {
		t.Errorf("Get(third) = %+v", got)
	}

	// A deleted index is never reused while the store stays open
	fourth, _ := s.Append(&domain.Task{Title: "fourth"})
	if fourth == second {
		t.Errorf("Append() reused deleted index %d", second)
	}
}

func TestStore_ListOrderAndFilter(t *testing.T) {
	s, _ := newTestStore(t)

	_, _ = s.Append(&domain.Task{Title: "Buy milk"})
	_, _ = s.Append(&domain.Task{Title: "Buy eggs", Completed: true})
	_, _ = s.Append(&domain.Task{Title: "Call dentist", Description: "about milk teeth"})

	all, err := s.List(domain.TaskFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List() = %d tasks, want 3", len(all))
	}
	for i, want := range []string{"Buy milk", "Buy eggs", "Call dentist"} {
		if all[i].Title != want {
			t.Errorf("List()[%d].Title = %q, want %q", i, all[i].Title, want)
		}
	}

	milk, _ := s.List(domain.TaskFilter{Query: "MILK"})
	if len(milk) != 2 {
		t.Errorf("List(query milk) = %d tasks, want 2", len(milk))
	}

	done := true
	completed, _ := s.List(domain.TaskFilter{Completed: &done})
	if len(completed) != 1 || completed[0].Title != "Buy eggs" {
		t.Errorf("List(completed) = %+v", completed)
	}
}

func TestStore_ReopenPreservesOrderAndCompactsIndices(t *testing.T) {
	s, path := newTestStore(t)

	_, _ = s.Append(&domain.Task{Title: "a"})
	middle, _ := s.Append(&domain.Task{Title: "b"})
	_, _ = s.Append(&domain.Task{Title: "c"})
	if err := s.Delete(middle); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	s2 := reopen(t, s, path)

	tasks, _ := s2.List(domain.TaskFilter{})
	if len(tasks) != 2 {
		t.Fatalf("List() = %d tasks, want 2", len(tasks))
	}
	if tasks[0].Title != "a" || tasks[1].Title != "c" {
		t.Errorf("scan order after reopen = %q, %q", tasks[0].Title, tasks[1].Title)
	}
	// Indices are reassigned compactly in scan order on open
	if tasks[0].ID != 0 || tasks[1].ID != 1 {
		t.Errorf("reopened indices = %d, %d, want 0, 1", tasks[0].ID, tasks[1].ID)
	}
}

func TestStore_AppendDurableAcrossReopen(t *testing.T) {
	s, path := newTestStore(t)

	_, _ = s.Append(&domain.Task{Title: "persisted"})

	s2 := reopen(t, s, path)
	got, _ := s2.Get(0)
	if got == nil || got.Title != "persisted" {
		t.Errorf("Get() after reopen = %+v", got)
	}
}

func TestOpen_DropsTornTrailingRecord(t *testing.T) {
	s, path := newTestStore(t)

	_, _ = s.Append(&domain.Task{Title: "whole"})
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Simulate a crash mid-append: a prefix of a valid frame at the tail.
	frame := codec.AppendTask(nil, &domain.Task{Title: "torn"})
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		t.Fatalf("open container: %v", err)
	}
	if _, err := f.Write(frame[:len(frame)-3]); err != nil {
		t.Fatalf("write torn frame: %v", err)
	}
	_ = f.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer func() { _ = s2.Close() }()

	if s2.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s2.Len())
	}
	got, _ := s2.Get(0)
	if got.Title != "whole" {
		t.Errorf("Title = %q, want %q", got.Title, "whole")
	}

	// The torn bytes are gone; appending works normally afterwards.
	if _, err := s2.Append(&domain.Task{Title: "next"}); err != nil {
		t.Fatalf("Append() after torn recovery error = %v", err)
	}
	s3 := reopen(t, s2, path)
	if s3.Len() != 2 {
		t.Errorf("Len() after reopen = %d, want 2", s3.Len())
	}
}

func TestOpen_CorruptRecordFails(t *testing.T) {
	s, path := newTestStore(t)

	_, _ = s.Append(&domain.Task{Title: "ok"})
	_, _ = s.Append(&domain.Task{Title: "bad"})
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// Flip the completed byte of the second record to an invalid value.
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read container: %v", err)
	}
	firstLen := len(codec.AppendTask(nil, &domain.Task{Title: "ok"}))
	// completed byte sits after the two length-prefixed strings of record 2
	pos := firstLen + 4 + len("bad") + 4
	buf[pos] = 0xFF
	if err := os.WriteFile(path, buf, 0o600); err != nil {
		t.Fatalf("write container: %v", err)
	}

	_, err = Open(path)
	if !errors.Is(err, domain.ErrStoreOpen) {
		t.Errorf("Open() error = %v, want ErrStoreOpen", err)
	}
	if !errors.Is(err, domain.ErrCorruptData) {
		t.Errorf("Open() error = %v, want ErrCorruptData in chain", err)
	}
}
