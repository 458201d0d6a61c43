package codec

import (
	"fmt"

	"github.com/soracane/taskvault/internal/domain"
)

// Tag identifies which codec applies to a stored value.
type Tag uint8

// Registered type tags. The registry is closed: the store cannot operate with
// any tag outside this set, and format changes require a new tag.
const (
	// TagTask identifies a full Task record frame.
	TagTask Tag = 0

	// TagOptionalTime identifies the presence-prefixed timestamp used for a
	// task's due date.
	TagOptionalTime Tag = 1
)

// Codec encodes and decodes one registered value shape.
type Codec interface {
	// Encode appends the value's binary form to dst.
	Encode(dst []byte, v any) ([]byte, error)

	// Decode reads a value at off and returns it with the new cursor.
	Decode(buf []byte, off int) (any, int, error)
}

// For resolves the codec for a tag. An unregistered tag returns
// domain.ErrUnknownType; hitting that at startup is a misconfiguration, not a
// recoverable runtime condition.
func For(tag Tag) (Codec, error) {
	switch tag {
	case TagTask:
		return TaskCodec{}, nil
	case TagOptionalTime:
		return OptionalTimeCodec{}, nil
	default:
		return nil, fmt.Errorf("type tag %d: %w", tag, domain.ErrUnknownType)
	}
}
