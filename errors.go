package nbt

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteValue reports that the source ran out of bytes in the
	// middle of a value. It is distinct from a transport error so callers
	// can tell "stream ended mid-record" from "stream broke".
	ErrIncompleteValue = errors.New("nbt: incomplete value")

	// ErrStringTooLong reports a string whose UTF-8 encoding exceeds the
	// 65535 bytes representable in the wire format's length field.
	ErrStringTooLong = errors.New("nbt: string exceeds 65535 bytes")

	// ErrNegativeLength reports a negative array length field. Lengths are
	// attacker-controlled and must never reach an allocation.
	ErrNegativeLength = errors.New("nbt: negative array length")

	// ErrHeterogeneousList reports a list whose elements do not all share
	// the same tag.
	ErrHeterogeneousList = errors.New("nbt: list elements have mixed tags")

	// ErrInvalidTag reports a tag byte outside the range the format
	// defines.
	ErrInvalidTag = errors.New("nbt: invalid tag")

	// ErrNoRootCompound reports a stream that does not begin with a
	// compound header.
	ErrNoRootCompound = errors.New("nbt: root value is not a compound")
)

// UTF8Error reports string payload bytes that are not valid UTF-8. The
// offending bytes are kept for diagnostics.
type UTF8Error struct {
	Bytes []byte
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("nbt: invalid UTF-8 in string payload (% x)", e.Bytes)
}
