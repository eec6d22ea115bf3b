// SPDX-License-Identifier: Apache-2.0

package rawbson

import (
	"time"

	"github.com/jcdyer/rawbson/bsontype"
)

// Value is an eager (tag, payload) pair produced by decoding an Element's
// payload exactly once, for callers that need to dispatch on type without
// calling every As* accessor in turn (notably rawdump's validate command).
// It is the Go analogue of the original Rust implementation's
// `TryFrom<Element> for bson::Bson` conversion: each tag with a payload
// decodes into the field below that matches it, selected by Type. Symbol
// shares Str with String, and CodeWithScope fills both Javascript and
// JavascriptScope.
type Value struct {
	Type bsontype.Type

	F64             float64
	Str             string
	Doc             *Document
	Arr             *Array
	Bin             Binary
	ObjectID        ObjectID
	Bool            bool
	DateTime        time.Time
	Regex           Regex
	DBPointer       DBPointer
	Javascript      string
	JavascriptScope *Document
	I32             int32
	Timestamp       Timestamp
	I64             int64
	Decimal128      Decimal128
}

// Value decodes the element's payload once into the matching typed
// accessor's result and returns it as a tagged union. MinKey, MaxKey,
// Undefined, and Null carry no payload; Value.Type alone distinguishes
// them.
func (e Element) Value() (Value, error) {
	switch e.tag {
	case bsontype.Double:
		v, err := e.AsF64()
		return Value{Type: e.tag, F64: v}, err
	case bsontype.String:
		v, err := e.AsStr()
		return Value{Type: e.tag, Str: v}, err
	case bsontype.EmbeddedDocument:
		v, err := e.AsDocument()
		return Value{Type: e.tag, Doc: v}, err
	case bsontype.Array:
		v, err := e.AsArray()
		return Value{Type: e.tag, Arr: v}, err
	case bsontype.Binary:
		v, err := e.AsBinary()
		return Value{Type: e.tag, Bin: v}, err
	case bsontype.Undefined:
		return Value{Type: e.tag}, e.AsUndefined()
	case bsontype.ObjectID:
		v, err := e.AsObjectID()
		return Value{Type: e.tag, ObjectID: v}, err
	case bsontype.Boolean:
		v, err := e.AsBool()
		return Value{Type: e.tag, Bool: v}, err
	case bsontype.DateTime:
		v, err := e.AsDateTime()
		return Value{Type: e.tag, DateTime: v}, err
	case bsontype.Null:
		return Value{Type: e.tag}, e.AsNull()
	case bsontype.Regex:
		v, err := e.AsRegex()
		return Value{Type: e.tag, Regex: v}, err
	case bsontype.DBPointer:
		v, err := e.AsDBPointer()
		return Value{Type: e.tag, DBPointer: v}, err
	case bsontype.JavaScript:
		v, err := e.AsJavascript()
		return Value{Type: e.tag, Javascript: v}, err
	case bsontype.Symbol:
		v, err := e.AsSymbol()
		return Value{Type: e.tag, Str: v}, err
	case bsontype.CodeWithScope:
		code, scope, err := e.AsJavascriptWithScope()
		return Value{Type: e.tag, Javascript: code, JavascriptScope: scope}, err
	case bsontype.Int32:
		v, err := e.AsI32()
		return Value{Type: e.tag, I32: v}, err
	case bsontype.Timestamp:
		v, err := e.AsTimestamp()
		return Value{Type: e.tag, Timestamp: v}, err
	case bsontype.Int64:
		v, err := e.AsI64()
		return Value{Type: e.tag, I64: v}, err
	case bsontype.Decimal128:
		v, err := e.AsDecimal128()
		return Value{Type: e.tag, Decimal128: v}, err
	case bsontype.MinKey:
		return Value{Type: e.tag}, e.AsMinKey()
	case bsontype.MaxKey:
		return Value{Type: e.tag}, e.AsMaxKey()
	default:
		return Value{}, malformed(0, "invalid element type tag %#x", byte(e.tag))
	}
}
