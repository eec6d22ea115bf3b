// SPDX-License-Identifier: Apache-2.0

package rawbson

import (
	"testing"

	"github.com/jcdyer/rawbson/bsontype"
)

func TestValueString(t *testing.T) {
	data := buildDoc(t, elemStr("k", "v"))
	doc, err := New(data)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e, ok, err := doc.Get("k")
	if err != nil || !ok {
		t.Fatalf("Get(k): ok=%v err=%v", ok, err)
	}
	v, err := e.Value()
	if err != nil {
		t.Fatalf("Value(): %v", err)
	}
	if v.Type != bsontype.String || v.Str != "v" {
		t.Fatalf("Value() = %+v, want Type=String Str=v", v)
	}
}

func TestValueNullAndMinKey(t *testing.T) {
	null := Element{tag: bsontype.Null}
	v, err := null.Value()
	if err != nil || v.Type != bsontype.Null {
		t.Fatalf("Value() for Null = %+v, err=%v", v, err)
	}

	min := Element{tag: bsontype.MinKey}
	v, err = min.Value()
	if err != nil || v.Type != bsontype.MinKey {
		t.Fatalf("Value() for MinKey = %+v, err=%v", v, err)
	}
}

func TestValueInt32(t *testing.T) {
	e := Element{tag: bsontype.Int32, data: appendI32LE(nil, 42)}
	v, err := e.Value()
	if err != nil || v.Type != bsontype.Int32 || v.I32 != 42 {
		t.Fatalf("Value() = %+v, err=%v", v, err)
	}
}
