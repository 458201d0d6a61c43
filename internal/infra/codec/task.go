package codec

import (
	"fmt"
	"time"

	"github.com/soracane/taskvault/internal/domain"
)

// TaskCodec encodes a Task record frame:
// [title][description][completed][due date].
// The frame carries no index; a record's position in the container stream is
// its identity.
type TaskCodec struct{}

// Encode appends the binary form of a *domain.Task to dst.
func (TaskCodec) Encode(dst []byte, v any) ([]byte, error) {
	task, ok := v.(*domain.Task)
	if !ok {
		return nil, fmt.Errorf("task codec got %T: %w", v, domain.ErrUnknownType)
	}
	return AppendTask(dst, task), nil
}

// Decode reads a Task frame at off.
func (TaskCodec) Decode(buf []byte, off int) (any, int, error) {
	return ReadTask(buf, off)
}

// AppendTask appends the binary form of a task to dst.
func AppendTask(dst []byte, task *domain.Task) []byte {
	dst = AppendString(dst, task.Title)
	dst = AppendString(dst, task.Description)
	dst = AppendBool(dst, task.Completed)
	return AppendOptionalTime(dst, task.Due)
}

// ReadTask decodes a Task frame at off. The returned task has a zero ID; the
// store assigns indices, not the codec.
func ReadTask(buf []byte, off int) (*domain.Task, int, error) {
	title, off, err := ReadString(buf, off)
	if err != nil {
		return nil, off, fmt.Errorf("task title: %w", err)
	}
	description, off, err := ReadString(buf, off)
	if err != nil {
		return nil, off, fmt.Errorf("task description: %w", err)
	}
	completed, off, err := ReadBool(buf, off)
	if err != nil {
		return nil, off, fmt.Errorf("task completed: %w", err)
	}
	due, off, err := ReadOptionalTime(buf, off)
	if err != nil {
		return nil, off, fmt.Errorf("task due: %w", err)
	}
	return &domain.Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		Due:         due,
	}, off, nil
}

// OptionalTimeCodec encodes a nilable timestamp as one presence byte
// (0 = absent, 1 = present) followed by the timestamp when present.
type OptionalTimeCodec struct{}

// Encode appends the binary form of a *time.Time (nil allowed) to dst.
func (OptionalTimeCodec) Encode(dst []byte, v any) ([]byte, error) {
	t, ok := v.(*time.Time)
	if !ok {
		return nil, fmt.Errorf("optional time codec got %T: %w", v, domain.ErrUnknownType)
	}
	return AppendOptionalTime(dst, t), nil
}

// Decode reads an optional timestamp at off.
func (OptionalTimeCodec) Decode(buf []byte, off int) (any, int, error) {
	return ReadOptionalTime(buf, off)
}

// AppendOptionalTime appends a presence-prefixed timestamp to dst.
func AppendOptionalTime(dst []byte, t *time.Time) []byte {
	if t == nil {
		return append(dst, 0)
	}
	dst = append(dst, 1)
	return AppendTime(dst, *t)
}

// ReadOptionalTime decodes a presence-prefixed timestamp at off.
func ReadOptionalTime(buf []byte, off int) (*time.Time, int, error) {
	present, off, err := ReadBool(buf, off)
	if err != nil {
		return nil, off, fmt.Errorf("presence byte: %w", err)
	}
	if !present {
		return nil, off, nil
	}
	t, off, err := ReadTime(buf, off)
	if err != nil {
		return nil, off, err
	}
	return &t, off, nil
}
