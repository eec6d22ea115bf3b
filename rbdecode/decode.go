// SPDX-License-Identifier: Apache-2.0

// Package rbdecode deserializes a rawbson.Document into a Go struct by
// reflection, the way a caller who has already validated a document's
// shape with the zero-copy accessors might still want a plain struct to
// pass further down a call stack. It is a thin visitor over
// Document.Iter, not a replacement for the lazy core.
package rbdecode

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jcdyer/rawbson"
	"github.com/jcdyer/rawbson/bsontype"
	"github.com/jcdyer/rawbson/logger"
)

// Unmarshal decodes buf into v, which must be a non-nil pointer to a
// struct. Fields are matched case-insensitively against document keys
// unless overridden with a `rawbson:"name"` tag; a field tagged "-" is
// skipped. Keys present in the document with no matching field are
// ignored, matching the core's "absence is not an error" policy applied
// in reverse.
func Unmarshal(buf []byte, v interface{}) error {
	return UnmarshalWithLogger(buf, v, logger.NopLogger)
}

// UnmarshalWithLogger behaves like Unmarshal but reports document keys that
// match no struct field to log at debug level, instead of skipping them
// silently. Fields skipped with a "-" tag are not reported.
func UnmarshalWithLogger(buf []byte, v interface{}, log logger.Logger) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.New("rbdecode: v must be a non-nil pointer to a struct")
	}
	doc, err := rawbson.New(buf)
	if err != nil {
		return errors.Wrap(err, "rbdecode: constructing document")
	}
	return decodeStruct(doc, rv.Elem(), log)
}

func decodeStruct(doc *rawbson.Document, sv reflect.Value, log logger.Logger) error {
	fields := fieldsByKey(sv.Type())
	it := doc.Iter()
	for {
		key, elem, ok, err := it.Next()
		if err != nil {
			return errors.Wrapf(err, "rbdecode: iterating at key %q", key)
		}
		if !ok {
			return nil
		}
		fi, found := fields[strings.ToLower(key)]
		if !found {
			log.Debugf("rbdecode: no struct field for key %q, skipping", key)
			continue
		}
		fv := sv.Field(fi)
		if err := decodeInto(elem, fv, log); err != nil {
			return errors.Wrapf(err, "rbdecode: decoding key %q into field %s", key, sv.Type().Field(fi).Name)
		}
	}
}

func fieldsByKey(t reflect.Type) map[string]int {
	out := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("rawbson"); ok {
			if tag == "-" {
				continue
			}
			name = tag
		}
		out[strings.ToLower(name)] = i
	}
	return out
}

func decodeInto(e rawbson.Element, fv reflect.Value, log logger.Logger) error {
	switch fv.Kind() {
	case reflect.String:
		switch e.Type() {
		case bsontype.String:
			s, err := e.AsStr()
			if err != nil {
				return err
			}
			fv.SetString(s)
			return nil
		case bsontype.Symbol:
			s, err := e.AsSymbol()
			if err != nil {
				return err
			}
			fv.SetString(s)
			return nil
		default:
			return unexpectedKind(e, "string")
		}
	case reflect.Bool:
		b, err := e.AsBool()
		if err != nil {
			return err
		}
		fv.SetBool(b)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := e.AsF64()
		if err != nil {
			return err
		}
		fv.SetFloat(f)
		return nil
	case reflect.Int32:
		i, err := e.AsI32()
		if err != nil {
			return err
		}
		fv.SetInt(int64(i))
		return nil
	case reflect.Int, reflect.Int64:
		i, err := e.AsI64()
		if err != nil {
			return err
		}
		fv.SetInt(i)
		return nil
	case reflect.Slice:
		if fv.Type().Elem().Kind() == reflect.Uint8 {
			b, err := e.AsBinary()
			if err != nil {
				return err
			}
			fv.SetBytes(append([]byte(nil), b.Data...))
			return nil
		}
		return decodeSlice(e, fv, log)
	case reflect.Struct:
		if fv.Type() == reflect.TypeOf(uuid.UUID{}) {
			return decodeUUID(e, fv)
		}
		d, err := e.AsDocument()
		if err != nil {
			return err
		}
		return decodeStruct(d, fv, log)
	case reflect.Ptr:
		if e.Type() == bsontype.Null {
			fv.Set(reflect.Zero(fv.Type()))
			return e.AsNull()
		}
		fv.Set(reflect.New(fv.Type().Elem()))
		return decodeInto(e, fv.Elem(), log)
	default:
		return errors.Errorf("rbdecode: unsupported destination kind %s", fv.Kind())
	}
}

func decodeSlice(e rawbson.Element, fv reflect.Value, log logger.Logger) error {
	arr, err := e.AsArray()
	if err != nil {
		return err
	}
	it := arr.Iter()
	out := reflect.MakeSlice(fv.Type(), 0, 0)
	for {
		idx, elem, ok, err := it.Next()
		if err != nil {
			return errors.Wrapf(err, "decoding array index %q", idx)
		}
		if !ok {
			fv.Set(out)
			return nil
		}
		elemVal := reflect.New(fv.Type().Elem()).Elem()
		if err := decodeInto(elem, elemVal, log); err != nil {
			return err
		}
		out = reflect.Append(out, elemVal)
	}
}

func decodeUUID(e rawbson.Element, fv reflect.Value) error {
	b, err := e.AsBinary()
	if err != nil {
		return err
	}
	if b.Subtype != bsontype.BinaryUUID && b.Subtype != bsontype.BinaryOldUUID {
		return errors.Errorf("rbdecode: binary subtype %#x is not a uuid subtype", byte(b.Subtype))
	}
	id, err := uuid.FromBytes(b.Data)
	if err != nil {
		return errors.Wrap(err, "rbdecode: decoding uuid bytes")
	}
	fv.Set(reflect.ValueOf(id))
	return nil
}

func unexpectedKind(e rawbson.Element, want string) error {
	return fmt.Errorf("rbdecode: cannot decode %s element into a %s field", e.Type(), want)
}
