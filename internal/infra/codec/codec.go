// Package codec implements the binary wire format for persisted records.
//
// Values are encoded with append-style writers and decoded with a byte
// cursor: every Read function takes a buffer and an offset and returns the
// decoded value together with the offset of the first unread byte. Decode
// failures wrap domain.ErrCorruptData.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/soracane/taskvault/internal/domain"
)

// errShort marks decode failures caused by running out of bytes. It wraps
// io.ErrUnexpectedEOF so the store can tell a torn trailing record apart from
// in-place corruption (a torn append is missing bytes, never wrong ones).
var errShort = fmt.Errorf("%w: %w", io.ErrUnexpectedEOF, domain.ErrCorruptData)

// AppendString appends a length-prefixed UTF-8 string.
// The length is a fixed-width big-endian uint32.
func AppendString(dst []byte, s string) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(s)))
	return append(dst, s...)
}

// ReadString decodes a length-prefixed UTF-8 string at off.
func ReadString(buf []byte, off int) (string, int, error) {
	if off+4 > len(buf) {
		return "", off, fmt.Errorf("string length prefix at %d: %w", off, errShort)
	}
	n := int(binary.BigEndian.Uint32(buf[off:]))
	off += 4
	if n < 0 || off+n > len(buf) {
		return "", off, fmt.Errorf("string body of %d bytes at %d: %w", n, off, errShort)
	}
	return string(buf[off : off+n]), off + n, nil
}

// AppendBool appends a boolean as a single byte, 1 for true and 0 for false.
func AppendBool(dst []byte, v bool) []byte {
	if v {
		return append(dst, 1)
	}
	return append(dst, 0)
}

// ReadBool decodes a boolean at off. Any byte other than 0 or 1 is corrupt.
func ReadBool(buf []byte, off int) (bool, int, error) {
	if off >= len(buf) {
		return false, off, fmt.Errorf("bool at %d: %w", off, errShort)
	}
	switch buf[off] {
	case 0:
		return false, off + 1, nil
	case 1:
		return true, off + 1, nil
	default:
		return false, off, fmt.Errorf("bool byte 0x%02x at %d: %w", buf[off], off, domain.ErrCorruptData)
	}
}

// AppendTime appends a timestamp as a signed 64-bit big-endian count of
// milliseconds since the Unix epoch. The zone is discarded; only the instant
// is preserved.
func AppendTime(dst []byte, t time.Time) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(t.UnixMilli()))
}

// ReadTime decodes a millisecond timestamp at off. The result is in UTC.
func ReadTime(buf []byte, off int) (time.Time, int, error) {
	if off+8 > len(buf) {
		return time.Time{}, off, fmt.Errorf("timestamp at %d: %w", off, errShort)
	}
	ms := int64(binary.BigEndian.Uint64(buf[off:]))
	return time.UnixMilli(ms).UTC(), off + 8, nil
}
