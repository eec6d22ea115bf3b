// SPDX-License-Identifier: Apache-2.0

package rawbson

import (
	"time"

	"github.com/jcdyer/rawbson/bsontype"
)

// Element is a borrowed handle to one (tag, payload) pair inside a
// document. It is produced only by Document iteration or keyed lookup,
// never constructed directly from user input. The payload sub-slice
// shares memory with the document's backing buffer; an Element must not
// outlive that buffer.
type Element struct {
	tag  bsontype.Type
	data []byte
}

// Type returns the element's wire type tag.
func (e Element) Type() bsontype.Type {
	return e.tag
}

// Bytes returns the element's raw, unvalidated payload.
func (e Element) Bytes() []byte {
	return e.data
}

// AsF64 returns the element's value as a float64. Tag 0x01, 8 bytes LE.
func (e Element) AsF64() (float64, error) {
	if e.tag != bsontype.Double {
		return 0, unexpectedType(bsontype.Double, e.tag)
	}
	v, _, err := readF64LE(e.data, 0)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// AsStr returns the element's value as a UTF-8 string. Tag 0x02. The string
// is a copy of the payload bytes, not a view into the document's buffer.
func (e Element) AsStr() (string, error) {
	if e.tag != bsontype.String {
		return "", unexpectedType(bsontype.String, e.tag)
	}
	return decodeLPStrPayload(e.data)
}

// AsDocument returns the element's value as a nested Document view. Tag 0x03.
func (e Element) AsDocument() (*Document, error) {
	if e.tag != bsontype.EmbeddedDocument {
		return nil, unexpectedType(bsontype.EmbeddedDocument, e.tag)
	}
	return New(e.data)
}

// AsArray returns the element's value as a nested Array view. Tag 0x04.
func (e Element) AsArray() (*Array, error) {
	if e.tag != bsontype.Array {
		return nil, unexpectedType(bsontype.Array, e.tag)
	}
	doc, err := New(e.data)
	if err != nil {
		return nil, err
	}
	return &Array{doc: doc}, nil
}

// Binary is the decoded payload of a Binary element: a subtype tag and the
// borrowed bytes it carries.
type Binary struct {
	Subtype bsontype.BinarySubtype
	Data    []byte
}

// AsBinary returns the element's value as a (subtype, bytes) pair. Tag 0x05.
func (e Element) AsBinary() (Binary, error) {
	if e.tag != bsontype.Binary {
		return Binary{}, unexpectedType(bsontype.Binary, e.tag)
	}
	length, off, err := readI32LE(e.data, 0)
	if err != nil {
		return Binary{}, err
	}
	if length < 0 || int(length) != len(e.data)-5 {
		return Binary{}, malformed(0, "binary element has wrong declared length")
	}
	subtype, off, err := readU8(e.data, off)
	if err != nil {
		return Binary{}, err
	}
	data, _, err := readFixed(e.data, off, int(length))
	if err != nil {
		return Binary{}, err
	}
	st := bsontype.BinarySubtype(subtype)
	if st == bsontype.BinaryOld {
		// The deprecated old binary subtype nests its own length prefix.
		if len(data) < 4 {
			return Binary{}, malformed(off, "old binary subtype has no inner declared length")
		}
		innerLen, _, err := readI32LE(data, 0)
		if err != nil {
			return Binary{}, err
		}
		if innerLen+4 != length {
			return Binary{}, malformed(off, "old binary subtype has wrong inner declared length")
		}
		data = data[4:]
	}
	return Binary{Subtype: st, Data: data}, nil
}

// AsUndefined succeeds only for the deprecated, empty-payload Undefined tag.
// Tag 0x06.
func (e Element) AsUndefined() error {
	if e.tag != bsontype.Undefined {
		return unexpectedType(bsontype.Undefined, e.tag)
	}
	return nil
}

// ObjectID is the 12-byte identifier used by MongoDB's _id field.
type ObjectID [12]byte

// AsObjectID returns the element's value as a 12-byte ObjectID. Tag 0x07.
func (e Element) AsObjectID() (ObjectID, error) {
	if e.tag != bsontype.ObjectID {
		return ObjectID{}, unexpectedType(bsontype.ObjectID, e.tag)
	}
	var id ObjectID
	b, _, err := readFixed(e.data, 0, 12)
	if err != nil {
		return ObjectID{}, err
	}
	copy(id[:], b)
	return id, nil
}

// AsBool returns the element's value as a bool. The payload must be
// exactly one byte, 0x00 or 0x01; any other value is malformed. Tag 0x08.
func (e Element) AsBool() (bool, error) {
	if e.tag != bsontype.Boolean {
		return false, unexpectedType(bsontype.Boolean, e.tag)
	}
	if len(e.data) != 1 {
		return false, malformed(0, "boolean payload has length %d, want 1", len(e.data))
	}
	switch e.data[0] {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, malformed(0, "boolean value %#x is neither 0x00 nor 0x01", e.data[0])
	}
}

// AsDateTime returns the element's value as a UTC time, decoded from
// milliseconds since the Unix epoch. Tag 0x09.
func (e Element) AsDateTime() (time.Time, error) {
	if e.tag != bsontype.DateTime {
		return time.Time{}, unexpectedType(bsontype.DateTime, e.tag)
	}
	ms, _, err := readI64LE(e.data, 0)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

// AsNull succeeds only for the empty-payload Null tag. Tag 0x0A.
func (e Element) AsNull() error {
	if e.tag != bsontype.Null {
		return unexpectedType(bsontype.Null, e.tag)
	}
	return nil
}

// Regex is the decoded payload of a Regex element.
type Regex struct {
	Pattern string
	Options string
}

// AsRegex returns the element's value as a (pattern, options) pair,
// decoded from two back-to-back cstrings. Tag 0x0B.
func (e Element) AsRegex() (Regex, error) {
	if e.tag != bsontype.Regex {
		return Regex{}, unexpectedType(bsontype.Regex, e.tag)
	}
	pattern, off, err := readCStr(e.data, 0)
	if err != nil {
		return Regex{}, err
	}
	options, off, err := readCStr(e.data, off)
	if err != nil {
		return Regex{}, err
	}
	if off != len(e.data) {
		return Regex{}, malformed(off, "regex element has trailing bytes")
	}
	return Regex{Pattern: pattern, Options: options}, nil
}

// DBPointer is the decoded payload of the deprecated DBPointer element.
type DBPointer struct {
	Namespace string
	ID        ObjectID
}

// AsDBPointer returns the element's value as a (namespace, id) pair. Tag 0x0C.
func (e Element) AsDBPointer() (DBPointer, error) {
	if e.tag != bsontype.DBPointer {
		return DBPointer{}, unexpectedType(bsontype.DBPointer, e.tag)
	}
	ns, off, err := readLPStr(e.data, 0)
	if err != nil {
		return DBPointer{}, err
	}
	idBytes, _, err := readFixed(e.data, off, 12)
	if err != nil {
		return DBPointer{}, err
	}
	var id ObjectID
	copy(id[:], idBytes)
	return DBPointer{Namespace: ns, ID: id}, nil
}

// AsJavascript returns the element's value as code text, copied out of the
// payload. Tag 0x0D.
func (e Element) AsJavascript() (string, error) {
	if e.tag != bsontype.JavaScript {
		return "", unexpectedType(bsontype.JavaScript, e.tag)
	}
	return decodeLPStrPayload(e.data)
}

// AsSymbol returns the element's value as a symbol name, copied out of the
// payload. Tag 0x0E.
func (e Element) AsSymbol() (string, error) {
	if e.tag != bsontype.Symbol {
		return "", unexpectedType(bsontype.Symbol, e.tag)
	}
	return decodeLPStrPayload(e.data)
}

// AsJavascriptWithScope returns the element's (code, scope) pair. The
// leading 4-byte total length governs the entire payload. Tag 0x0F.
func (e Element) AsJavascriptWithScope() (string, *Document, error) {
	if e.tag != bsontype.CodeWithScope {
		return "", nil, unexpectedType(bsontype.CodeWithScope, e.tag)
	}
	total, off, err := readI32LE(e.data, 0)
	if err != nil {
		return "", nil, err
	}
	if int(total) != len(e.data) {
		return "", nil, malformed(0, "javascript-with-scope has wrong declared length")
	}
	code, off, err := readLPStr(e.data, off)
	if err != nil {
		return "", nil, err
	}
	scope, err := New(e.data[off:])
	if err != nil {
		return "", nil, err
	}
	return code, scope, nil
}

// AsI32 returns the element's value as an int32. Tag 0x10.
func (e Element) AsI32() (int32, error) {
	if e.tag != bsontype.Int32 {
		return 0, unexpectedType(bsontype.Int32, e.tag)
	}
	v, _, err := readI32LE(e.data, 0)
	return v, err
}

// Timestamp is the internal MongoDB replication timestamp: an ordinal
// within a second plus the second itself.
type Timestamp struct {
	Increment uint32
	Time      uint32
}

// AsTimestamp returns the element's value as a (increment, time) pair,
// each a little-endian uint32. Tag 0x11.
func (e Element) AsTimestamp() (Timestamp, error) {
	if e.tag != bsontype.Timestamp {
		return Timestamp{}, unexpectedType(bsontype.Timestamp, e.tag)
	}
	if len(e.data) != 8 {
		return Timestamp{}, malformed(0, "timestamp payload has length %d, want 8", len(e.data))
	}
	inc := uint32(e.data[0]) | uint32(e.data[1])<<8 | uint32(e.data[2])<<16 | uint32(e.data[3])<<24
	t := uint32(e.data[4]) | uint32(e.data[5])<<8 | uint32(e.data[6])<<16 | uint32(e.data[7])<<24
	return Timestamp{Increment: inc, Time: t}, nil
}

// AsI64 returns the element's value as an int64. Tag 0x12.
func (e Element) AsI64() (int64, error) {
	if e.tag != bsontype.Int64 {
		return 0, unexpectedType(bsontype.Int64, e.tag)
	}
	v, _, err := readI64LE(e.data, 0)
	return v, err
}

// AsDecimal128 returns the element's value as the raw 16 bytes of an IEEE
// 754-2008 decimal128, interpreted as little-endian high/low halves. The
// wire contract is bit-exact; no decimal arithmetic is performed. Tag 0x13.
func (e Element) AsDecimal128() (Decimal128, error) {
	if e.tag != bsontype.Decimal128 {
		return Decimal128{}, unexpectedType(bsontype.Decimal128, e.tag)
	}
	if len(e.data) != 16 {
		return Decimal128{}, malformed(0, "decimal128 payload has length %d, want 16", len(e.data))
	}
	lo, _, _ := readI64LE(e.data, 0)
	hi, _, _ := readI64LE(e.data, 8)
	return Decimal128{Lo: uint64(lo), Hi: uint64(hi)}, nil
}

// AsMinKey succeeds only for the empty-payload MinKey tag. Tag 0xFF.
func (e Element) AsMinKey() error {
	if e.tag != bsontype.MinKey {
		return unexpectedType(bsontype.MinKey, e.tag)
	}
	return nil
}

// AsMaxKey succeeds only for the empty-payload MaxKey tag. Tag 0x7F.
func (e Element) AsMaxKey() error {
	if e.tag != bsontype.MaxKey {
		return unexpectedType(bsontype.MaxKey, e.tag)
	}
	return nil
}

// decodeLPStrPayload decodes a length-prefixed string that is the entire
// payload of an element (as opposed to one read off a cursor mid-document).
func decodeLPStrPayload(data []byte) (string, error) {
	s, off, err := readLPStr(data, 0)
	if err != nil {
		return "", err
	}
	if off != len(data) {
		return "", malformed(off, "string element has trailing bytes")
	}
	return s, nil
}
