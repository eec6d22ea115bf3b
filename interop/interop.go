// SPDX-License-Identifier: Apache-2.0

// Package interop bridges rawbson's borrowed views to
// go.mongodb.org/mongo-driver/bson, the trusted encoder this project
// defers to whenever a document needs to be built rather than merely
// read. FromBSON produces an owned rawbson.Buffer from a bson.D; ToBSON
// walks a rawbson.Document into a bson.D for callers that want the
// driver's own value types instead of raw accessors.
package interop

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jcdyer/rawbson"
	"github.com/jcdyer/rawbson/bsontype"
)

// FromBSON marshals doc with the driver's encoder and wraps the result as
// an owned rawbson.Buffer, giving callers zero-copy lazy access to bytes
// the driver itself produced.
func FromBSON(doc bson.D) (*rawbson.Buffer, error) {
	data, err := bson.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling bson.D")
	}
	buf, err := rawbson.NewBuffer(data)
	if err != nil {
		return nil, errors.Wrap(err, "wrapping marshaled bytes")
	}
	return buf, nil
}

// ToBSON walks doc's elements in order and reconstructs them as a bson.D,
// handing nested documents and arrays to the driver's own value types.
// It forces full validation of every element it visits, unlike the lazy
// accessors it is built on.
func ToBSON(doc *rawbson.Document) (bson.D, error) {
	var out bson.D
	it := doc.Iter()
	for {
		key, elem, ok, err := it.Next()
		if err != nil {
			return nil, errors.Wrapf(err, "iterating document at key %q", key)
		}
		if !ok {
			return out, nil
		}
		v, err := elementToInterface(elem)
		if err != nil {
			return nil, errors.Wrapf(err, "converting element %q", key)
		}
		out = append(out, bson.E{Key: key, Value: v})
	}
}

func elementToInterface(e rawbson.Element) (interface{}, error) {
	switch e.Type() {
	case bsontype.Double:
		return e.AsF64()
	case bsontype.String:
		return e.AsStr()
	case bsontype.EmbeddedDocument:
		d, err := e.AsDocument()
		if err != nil {
			return nil, err
		}
		return ToBSON(d)
	case bsontype.Array:
		a, err := e.AsArray()
		if err != nil {
			return nil, err
		}
		return arrayToInterface(a)
	case bsontype.Binary:
		b, err := e.AsBinary()
		if err != nil {
			return nil, err
		}
		return primitive.Binary{Subtype: byte(b.Subtype), Data: append([]byte(nil), b.Data...)}, nil
	case bsontype.Undefined:
		return primitive.Undefined{}, e.AsUndefined()
	case bsontype.ObjectID:
		id, err := e.AsObjectID()
		return primitive.ObjectID(id), err
	case bsontype.Boolean:
		return e.AsBool()
	case bsontype.DateTime:
		t, err := e.AsDateTime()
		return primitive.NewDateTimeFromTime(t), err
	case bsontype.Null:
		return nil, e.AsNull()
	case bsontype.Regex:
		r, err := e.AsRegex()
		return primitive.Regex{Pattern: r.Pattern, Options: r.Options}, err
	case bsontype.DBPointer:
		p, err := e.AsDBPointer()
		if err != nil {
			return nil, err
		}
		return primitive.DBPointer{DB: p.Namespace, Pointer: primitive.ObjectID(p.ID)}, nil
	case bsontype.JavaScript:
		code, err := e.AsJavascript()
		return primitive.JavaScript(code), err
	case bsontype.Symbol:
		s, err := e.AsSymbol()
		return primitive.Symbol(s), err
	case bsontype.CodeWithScope:
		code, scope, err := e.AsJavascriptWithScope()
		if err != nil {
			return nil, err
		}
		scopeD, err := ToBSON(scope)
		if err != nil {
			return nil, err
		}
		return primitive.CodeWithScope{Code: primitive.JavaScript(code), Scope: scopeD}, nil
	case bsontype.Int32:
		return e.AsI32()
	case bsontype.Timestamp:
		ts, err := e.AsTimestamp()
		return primitive.Timestamp{T: ts.Time, I: ts.Increment}, err
	case bsontype.Int64:
		return e.AsI64()
	case bsontype.Decimal128:
		d, err := e.AsDecimal128()
		if err != nil {
			return nil, err
		}
		return primitive.NewDecimal128(d.Hi, d.Lo), nil
	case bsontype.MinKey:
		return primitive.MinKey{}, e.AsMinKey()
	case bsontype.MaxKey:
		return primitive.MaxKey{}, e.AsMaxKey()
	default:
		return nil, errors.Errorf("unrecognized element type tag %#x", byte(e.Type()))
	}
}

func arrayToInterface(a *rawbson.Array) (bson.A, error) {
	var out bson.A
	it := a.Iter()
	for {
		_, elem, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		v, err := elementToInterface(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
}

