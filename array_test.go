// SPDX-License-Identifier: Apache-2.0

package rawbson

import "testing"

// TestArrayPositionalAccess exercises scenario 4: array elements addressed
// by position rather than by string key.
func TestArrayPositionalAccess(t *testing.T) {
	data := buildDoc(t, elemStr("0", "a"), elemStr("1", "b"), elemStr("2", "c"))
	arr, err := NewArray(data)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}

	v, ok, err := arr.GetStr(1)
	if err != nil || !ok || v != "b" {
		t.Fatalf("GetStr(1) = (%q, %v, %v), want (b, true, nil)", v, ok, err)
	}

	_, ok, err = arr.GetStr(5)
	if err != nil || ok {
		t.Fatalf("GetStr(5) = (_, %v, %v), want (_, false, nil)", ok, err)
	}
}

func TestArrayIteration(t *testing.T) {
	data := buildDoc(t, elemI32("0", 10), elemI32("1", 20))
	arr, err := NewArray(data)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	it := arr.Iter()

	idx, e, ok, err := it.Next()
	if err != nil || !ok || idx != "0" {
		t.Fatalf("first index = %q, ok=%v, err=%v", idx, ok, err)
	}
	if v, err := e.AsI32(); err != nil || v != 10 {
		t.Fatalf("first value = %d, err=%v", v, err)
	}

	idx, e, ok, err = it.Next()
	if err != nil || !ok || idx != "1" {
		t.Fatalf("second index = %q, ok=%v, err=%v", idx, ok, err)
	}
	if v, err := e.AsI32(); err != nil || v != 20 {
		t.Fatalf("second value = %d, err=%v", v, err)
	}

	_, _, ok, err = it.Next()
	if err != nil || ok {
		t.Fatalf("expected end of array, got ok=%v err=%v", ok, err)
	}
}

func TestArrayDocument(t *testing.T) {
	data := buildDoc(t, elemStr("0", "only"))
	arr, err := NewArray(data)
	if err != nil {
		t.Fatalf("NewArray: %v", err)
	}
	s, ok, err := arr.Document().GetStr("0")
	if err != nil || !ok || s != "only" {
		t.Fatalf("Document().GetStr(0) = (%q, %v, %v)", s, ok, err)
	}
}
