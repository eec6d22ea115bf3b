// SPDX-License-Identifier: Apache-2.0

// Package bsontype defines the closed set of BSON element type tags
// recognized by rawbson. It mirrors the split between the type enum and
// the reader in the BSON wire format specification: the tag byte alone
// determines how a payload must be shaped.
package bsontype

// Type is the single byte that precedes every element's key in a BSON
// document, identifying how its payload is framed.
type Type byte

const (
	Double           Type = 0x01
	String           Type = 0x02
	EmbeddedDocument Type = 0x03
	Array            Type = 0x04
	Binary           Type = 0x05
	Undefined        Type = 0x06 // deprecated
	ObjectID         Type = 0x07
	Boolean          Type = 0x08
	DateTime         Type = 0x09
	Null             Type = 0x0A
	Regex            Type = 0x0B
	DBPointer        Type = 0x0C // deprecated
	JavaScript       Type = 0x0D
	Symbol           Type = 0x0E // deprecated
	CodeWithScope    Type = 0x0F
	Int32            Type = 0x10
	Timestamp        Type = 0x11
	Int64            Type = 0x12
	Decimal128       Type = 0x13
	MinKey           Type = 0xFF
	MaxKey           Type = 0x7F
)

// Valid reports whether t is one of the closed set of tags listed above.
// Any other byte value found on the wire is malformed, never merely
// "unknown" — there is no extension mechanism for BSON element types.
func (t Type) Valid() bool {
	switch t {
	case Double, String, EmbeddedDocument, Array, Binary, Undefined, ObjectID,
		Boolean, DateTime, Null, Regex, DBPointer, JavaScript, Symbol,
		CodeWithScope, Int32, Timestamp, Int64, Decimal128, MinKey, MaxKey:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	switch t {
	case Double:
		return "double"
	case String:
		return "string"
	case EmbeddedDocument:
		return "document"
	case Array:
		return "array"
	case Binary:
		return "binary"
	case Undefined:
		return "undefined"
	case ObjectID:
		return "objectId"
	case Boolean:
		return "bool"
	case DateTime:
		return "dateTime"
	case Null:
		return "null"
	case Regex:
		return "regex"
	case DBPointer:
		return "dbPointer"
	case JavaScript:
		return "javascript"
	case Symbol:
		return "symbol"
	case CodeWithScope:
		return "javascriptWithScope"
	case Int32:
		return "int32"
	case Timestamp:
		return "timestamp"
	case Int64:
		return "int64"
	case Decimal128:
		return "decimal128"
	case MinKey:
		return "minKey"
	case MaxKey:
		return "maxKey"
	default:
		return "invalid"
	}
}

// BinarySubtype identifies the kind of data carried by a Binary element.
type BinarySubtype byte

const (
	BinaryGeneric     BinarySubtype = 0x00
	BinaryFunction    BinarySubtype = 0x01
	BinaryOld         BinarySubtype = 0x02 // deprecated, has an inner length
	BinaryOldUUID     BinarySubtype = 0x03 // deprecated
	BinaryUUID        BinarySubtype = 0x04
	BinaryMD5         BinarySubtype = 0x05
	BinaryEncrypted   BinarySubtype = 0x06
	BinaryUserDefined BinarySubtype = 0x80
)
