// SPDX-License-Identifier: Apache-2.0

package rawbson

import "testing"

func TestBufferDelegatesToDocument(t *testing.T) {
	data := buildDoc(t, elemStr("hello", "world"))
	buf, err := NewBuffer(data)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	s, ok, err := buf.GetStr("hello")
	if err != nil || !ok || s != "world" {
		t.Fatalf("GetStr(hello) = (%q, %v, %v)", s, ok, err)
	}
}

func TestBufferIntoInner(t *testing.T) {
	data := buildDoc(t, elemStr("k", "v"))
	buf, err := NewBuffer(data)
	if err != nil {
		t.Fatalf("NewBuffer: %v", err)
	}
	inner := buf.IntoInner()
	if len(inner) != len(data) {
		t.Fatalf("IntoInner length = %d, want %d", len(inner), len(data))
	}
}

func TestNewBufferRejectsMalformed(t *testing.T) {
	if _, err := NewBuffer([]byte{0x01}); err == nil {
		t.Fatal("expected error constructing Buffer from a too-short slice")
	}
}
