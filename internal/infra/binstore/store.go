// Package binstore provides a durable, file-backed implementation of
// TaskRepository using the binary record format from the codec package.
//
// The container is a single file holding a flat stream of task frames.
// Record order in the stream is the index space: on open, records are
// assigned compact indices 0..n-1 in stream order, and every index assigned
// while the store is open stays valid until that record is deleted. Indices
// are never reused or shifted within an open store.
package binstore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/soracane/taskvault/internal/domain"
	"github.com/soracane/taskvault/internal/infra/codec"
)

// Store implements domain.TaskRepository backed by a binary container file.
// Fields are ordered to minimize memory padding.
type Store struct {
	file   *os.File
	byID   map[int]int
	path   string
	recs   []record
	nextID int
}

// record pairs a stored task with its assigned index.
type record struct {
	task domain.Task
	id   int
}

// Open loads the container at path, creating it (and its parent directory)
// if it does not exist. Malformed backing data fails with an error wrapping
// domain.ErrStoreOpen; a torn trailing frame left by an interrupted append is
// dropped, since the append it belonged to never returned success.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("%w: create store directory: %w", domain.ErrStoreOpen, err)
	}

	buf, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: read container: %w", domain.ErrStoreOpen, err)
	}

	s := &Store{
		path: path,
		byID: make(map[int]int),
	}

	off := 0
	for off < len(buf) {
		task, next, err := codec.ReadTask(buf, off)
		if err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				// Torn tail from an interrupted append; discard it.
				if err := truncateFile(path, off); err != nil {
					return nil, fmt.Errorf("%w: drop torn record: %w", domain.ErrStoreOpen, err)
				}
				break
			}
			return nil, fmt.Errorf("%w: decode record %d at offset %d: %w",
				domain.ErrStoreOpen, len(s.recs), off, err)
		}
		task.ID = s.nextID
		s.byID[s.nextID] = len(s.recs)
		s.recs = append(s.recs, record{id: s.nextID, task: *task})
		s.nextID++
		off = next
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: open container for append: %w", domain.ErrStoreOpen, err)
	}
	s.file = f

	return s, nil
}

// Close releases the container file handle. The store must not be used
// afterwards.
func (s *Store) Close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.recs)
}

// Get retrieves a task by index. Returns nil if not found.
func (s *Store) Get(id int) (*domain.Task, error) {
	pos, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	task := s.recs[pos].task
	return &task, nil
}

// List retrieves tasks matching the filter, in stream order. The returned
// tasks are copies; mutating them does not affect the store.
func (s *Store) List(filter domain.TaskFilter) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for i := range s.recs {
		task := s.recs[i].task
		if !filter.Match(&task) {
			continue
		}
		tasks = append(tasks, &task)
	}
	return tasks, nil
}

// Append persists a new task at the end of the stream and returns its
// assigned index. The frame is flushed to disk before Append returns.
func (s *Store) Append(task *domain.Task) (int, error) {
	frame := codec.AppendTask(nil, task)
	if _, err := s.file.Write(frame); err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}
	if err := s.file.Sync(); err != nil {
		return 0, fmt.Errorf("sync container: %w", err)
	}

	id := s.nextID
	s.nextID++
	stored := *task
	stored.ID = id
	s.byID[id] = len(s.recs)
	s.recs = append(s.recs, record{id: id, task: stored})
	return id, nil
}

// Update overwrites all fields of the record at task.ID and rewrites the
// container. Returns domain.ErrNotFound if the index does not exist.
func (s *Store) Update(task *domain.Task) error {
	pos, ok := s.byID[task.ID]
	if !ok {
		return domain.ErrNotFound
	}

	prev := s.recs[pos].task
	s.recs[pos].task = *task
	if err := s.rewrite(); err != nil {
		s.recs[pos].task = prev
		return err
	}
	return nil
}

// Delete removes the record at the given index and rewrites the container.
// Returns domain.ErrNotFound if the index does not exist. Indices of the
// remaining records are unaffected.
func (s *Store) Delete(id int) error {
	pos, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}

	removed := s.recs[pos]
	s.recs = append(s.recs[:pos], s.recs[pos+1:]...)
	delete(s.byID, id)
	for i := pos; i < len(s.recs); i++ {
		s.byID[s.recs[i].id] = i
	}

	if err := s.rewrite(); err != nil {
		// Restore in-memory state so the store stays consistent with disk.
		s.recs = append(s.recs[:pos], append([]record{removed}, s.recs[pos:]...)...)
		for i := pos; i < len(s.recs); i++ {
			s.byID[s.recs[i].id] = i
		}
		return err
	}
	return nil
}

// rewrite replaces the container with the current record stream. The new
// content is written to a temp file, synced, and renamed over the old one, so
// a crash mid-rewrite leaves the previous container intact.
func (s *Store) rewrite() error {
	var buf []byte
	for i := range s.recs {
		buf = codec.AppendTask(buf, &s.recs[i].task)
	}

	if s.file != nil {
		if err := s.file.Close(); err != nil {
			return fmt.Errorf("close container: %w", err)
		}
		s.file = nil
	}

	if err := writeFileSync(s.path, buf); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("reopen container: %w", err)
	}
	s.file = f
	return nil
}

// writeFileSync atomically replaces path with content and flushes both the
// file and its directory.
func writeFileSync(path string, content []byte) error {
	tmpPath := path + ".tmp"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return syncDir(filepath.Dir(path))
}

// truncateFile cuts path to size bytes and flushes the result.
func truncateFile(path string, size int) error {
	if err := os.Truncate(path, int64(size)); err != nil {
		return fmt.Errorf("truncate container: %w", err)
	}
	return syncDir(filepath.Dir(path))
}

// syncDir flushes directory metadata so a rename survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("open directory: %w", err)
	}
	defer func() { _ = d.Close() }()
	if err := d.Sync(); err != nil {
		return fmt.Errorf("sync directory: %w", err)
	}
	return nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
