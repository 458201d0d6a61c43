package domain

import "errors"

// Domain errors.
var (
	// ErrNotFound is returned when an operation addresses a task index that
	// does not exist in the store. Callers recover locally; never fatal.
	ErrNotFound = errors.New("task not found")

	// ErrStoreOpen is returned when the backing file exists but cannot be
	// read or decoded at open time.
	ErrStoreOpen = errors.New("cannot open task store")

	// ErrCorruptData is returned when a record's bytes are malformed during
	// decode.
	ErrCorruptData = errors.New("corrupt record data")

	// ErrUnknownType is returned when a codec is requested for an
	// unregistered type tag. This is a programming error, not a runtime
	// condition.
	ErrUnknownType = errors.New("unknown type tag")

	// ErrEmptyTitle is returned when a task is created without a title.
	ErrEmptyTitle = errors.New("title cannot be empty")
)
