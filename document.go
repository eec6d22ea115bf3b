// SPDX-License-Identifier: Apache-2.0

package rawbson

import "github.com/jcdyer/rawbson/bsontype"

// Document is a borrowed, non-owning view over a well-framed BSON document
// slice. Construction validates only the outer frame (length prefix,
// terminator, minimum size); interior elements are validated on demand as
// Get or Iter walks past them. A Document must not outlive the slice it
// was built from.
type Document struct {
	data []byte
}

// New wraps data as a Document. It succeeds iff the declared length prefix
// equals len(data), len(data) >= 5, and the last byte is 0x00. The
// interior is not validated at this point.
func New(data []byte) (*Document, error) {
	if len(data) < 5 {
		return nil, malformed(0, "document too short (%d bytes, need at least 5)", len(data))
	}
	length, _, err := readI32LE(data, 0)
	if err != nil {
		return nil, err
	}
	if length < 0 || int(length) != len(data) {
		return nil, malformed(0, "declared length %d does not match slice length %d", length, len(data))
	}
	if data[len(data)-1] != 0x00 {
		return nil, malformed(len(data)-1, "document is not null-terminated")
	}
	return &Document{data: data}, nil
}

// Bytes returns the document's backing slice.
func (d *Document) Bytes() []byte {
	return d.data
}

// Len returns the number of bytes in the document's backing slice,
// including the length prefix and terminator.
func (d *Document) Len() int {
	return len(d.data)
}

// Get performs a linear scan for the first element whose key matches key
// byte-exact. A missing key returns (Element{}, false, nil); a framing
// violation encountered while scanning toward it returns a non-nil error.
func (d *Document) Get(key string) (Element, bool, error) {
	for cur := newScanner(d); ; {
		k, elem, ok, err := cur.Next()
		if err != nil {
			return Element{}, false, err
		}
		if !ok {
			return Element{}, false, nil
		}
		if k == key {
			return elem, true, nil
		}
	}
}

// GetF64 is Get composed with AsF64: absent key -> (0, false, nil);
// present with the wrong type -> (0, false, UnexpectedTypeError).
func (d *Document) GetF64(key string) (float64, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	v, err := e.AsF64()
	return v, err == nil, err
}

func (d *Document) GetStr(key string) (string, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return "", false, err
	}
	v, err := e.AsStr()
	return v, err == nil, err
}

func (d *Document) GetDocument(key string) (*Document, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	v, err := e.AsDocument()
	return v, err == nil, err
}

func (d *Document) GetArray(key string) (*Array, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return nil, false, err
	}
	v, err := e.AsArray()
	return v, err == nil, err
}

func (d *Document) GetBinary(key string) (Binary, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return Binary{}, false, err
	}
	v, err := e.AsBinary()
	return v, err == nil, err
}

func (d *Document) GetObjectID(key string) (ObjectID, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return ObjectID{}, false, err
	}
	v, err := e.AsObjectID()
	return v, err == nil, err
}

func (d *Document) GetBool(key string) (bool, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return false, false, err
	}
	v, err := e.AsBool()
	return v, err == nil, err
}

func (d *Document) GetI32(key string) (int32, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	v, err := e.AsI32()
	return v, err == nil, err
}

func (d *Document) GetI64(key string) (int64, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return 0, false, err
	}
	v, err := e.AsI64()
	return v, err == nil, err
}

func (d *Document) GetTimestamp(key string) (Timestamp, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return Timestamp{}, false, err
	}
	v, err := e.AsTimestamp()
	return v, err == nil, err
}

func (d *Document) GetDecimal128(key string) (Decimal128, bool, error) {
	e, ok, err := d.Get(key)
	if err != nil || !ok {
		return Decimal128{}, false, err
	}
	v, err := e.AsDecimal128()
	return v, err == nil, err
}

// Iter returns a fused scanner over (key, element) pairs in document byte
// order. After the first error, subsequent calls to Next return ok=false
// with that same error.
func (d *Document) Iter() *Iterator {
	return newScanner(d)
}

// Iterator walks a Document's elements lazily, carrying only a buffer
// reference, the current offset, a terminated flag, and the error that
// terminated it, if any.
type Iterator struct {
	doc  *Document
	off  int
	done bool
	err  error
}

func newScanner(d *Document) *Iterator {
	return &Iterator{doc: d, off: 4}
}

// Next advances the iterator. ok is false either at end of document or
// after an error; once err is non-nil it is returned on every subsequent
// call.
func (it *Iterator) Next() (key string, elem Element, ok bool, err error) {
	if it.done {
		return "", Element{}, false, it.err
	}
	k, e, next, end, scanErr := scanOne(it.doc.data, it.off)
	if scanErr != nil {
		it.done = true
		it.err = scanErr
		return "", Element{}, false, scanErr
	}
	if end {
		it.done = true
		return "", Element{}, false, nil
	}
	it.off = next
	return k, e, true, nil
}

// scanOne reads one (tag, key, payload) triple starting at offset. If
// offset addresses the document's terminating NUL, end is true. A tag
// outside the closed set, or an advance past the terminator, is malformed.
func scanOne(data []byte, offset int) (key string, elem Element, next int, end bool, err error) {
	if offset == len(data)-1 {
		if data[offset] == 0x00 {
			return "", Element{}, offset, true, nil
		}
		return "", Element{}, offset, false, malformed(offset, "expected document terminator")
	}
	tagByte, keyOff, err := readU8(data, offset)
	if err != nil {
		return "", Element{}, offset, false, err
	}
	tag := bsontype.Type(tagByte)
	if !tag.Valid() {
		return "", Element{}, offset, false, malformed(offset, "invalid element type tag %#x", tagByte)
	}
	key, payloadOff, err := readCStr(data, keyOff)
	if err != nil {
		return "", Element{}, offset, false, err
	}
	payloadLen, err := elementPayloadLength(data, payloadOff, tag)
	if err != nil {
		return "", Element{}, offset, false, err
	}
	payloadEnd := payloadOff + payloadLen
	if payloadLen < 0 || payloadEnd > len(data)-1 {
		return "", Element{}, offset, false, malformed(payloadOff, "%s element payload runs past document terminator", tag)
	}
	return key, Element{tag: tag, data: data[payloadOff:payloadEnd]}, payloadEnd, false, nil
}

// elementPayloadLength computes the number of payload bytes that follow
// the key's terminating NUL, for a given type tag. Nested document/array
// lengths and code-with-scope total lengths are read verbatim and not
// re-validated here; that happens when the nested view is constructed.
func elementPayloadLength(data []byte, off int, tag bsontype.Type) (int, error) {
	switch tag {
	case bsontype.Double, bsontype.DateTime, bsontype.Timestamp, bsontype.Int64:
		return 8, nil
	case bsontype.String, bsontype.JavaScript, bsontype.Symbol:
		length, _, err := readI32LE(data, off)
		if err != nil {
			return 0, err
		}
		return 4 + int(length), nil
	case bsontype.EmbeddedDocument, bsontype.Array, bsontype.CodeWithScope:
		length, _, err := readI32LE(data, off)
		if err != nil {
			return 0, err
		}
		if length < 0 {
			return 0, malformed(off, "%s has negative declared length", tag)
		}
		return int(length), nil
	case bsontype.Binary:
		length, _, err := readI32LE(data, off)
		if err != nil {
			return 0, err
		}
		return 4 + 1 + int(length), nil
	case bsontype.Undefined, bsontype.Null, bsontype.MinKey, bsontype.MaxKey:
		return 0, nil
	case bsontype.ObjectID:
		return 12, nil
	case bsontype.Boolean:
		return 1, nil
	case bsontype.Regex:
		_, mid, err := readCStr(data, off)
		if err != nil {
			return 0, err
		}
		_, end, err := readCStr(data, mid)
		if err != nil {
			return 0, err
		}
		return end - off, nil
	case bsontype.DBPointer:
		length, _, err := readI32LE(data, off)
		if err != nil {
			return 0, err
		}
		return 4 + int(length) + 12, nil
	case bsontype.Int32:
		return 4, nil
	case bsontype.Decimal128:
		return 16, nil
	default:
		return 0, malformed(off, "invalid element type tag %#x", byte(tag))
	}
}
