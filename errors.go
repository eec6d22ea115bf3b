// SPDX-License-Identifier: Apache-2.0

package rawbson

import (
	"fmt"

	"github.com/jcdyer/rawbson/bsontype"
)

// MalformedBytesError reports a framing violation: a length mismatch, a
// missing terminator, a truncated payload, an unrecognized type tag, an
// out-of-bounds read, an invalid boolean byte, or a negative length. It is
// returned by every reader and scan step that discovers the bytes in front
// of it cannot be shaped the way BSON requires.
type MalformedBytesError struct {
	// Offset is the byte offset at which the violation was discovered,
	// relative to the start of the slice being read: the document for
	// construction and scan errors, the element's payload for errors
	// returned by an As* accessor.
	Offset int
	Reason string
}

func (e *MalformedBytesError) Error() string {
	return fmt.Sprintf("rawbson: malformed bytes at offset %d: %s", e.Offset, e.Reason)
}

// Utf8Error reports that a byte run required to be UTF-8 (a key, a string
// value, a regex pattern or its options) was not.
type Utf8Error struct {
	Offset int
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("rawbson: invalid utf-8 at offset %d", e.Offset)
}

// UnexpectedTypeError reports that a typed accessor was called on an
// element whose tag does not match.
type UnexpectedTypeError struct {
	Expected bsontype.Type
	Actual   bsontype.Type
}

func (e *UnexpectedTypeError) Error() string {
	return fmt.Sprintf("rawbson: expected type %s, found %s", e.Expected, e.Actual)
}

// OutOfRangeError reports that a value read from the wire cannot be
// represented in the numeric domain the caller requested it in.
type OutOfRangeError struct {
	Reason string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("rawbson: value out of range: %s", e.Reason)
}

func malformed(offset int, format string, args ...interface{}) error {
	return &MalformedBytesError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func unexpectedType(expected, actual bsontype.Type) error {
	return &UnexpectedTypeError{Expected: expected, Actual: actual}
}
