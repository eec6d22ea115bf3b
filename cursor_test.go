// SPDX-License-Identifier: Apache-2.0

package rawbson

import "testing"

func TestReadI32LE(t *testing.T) {
	buf := []byte{0x78, 0x56, 0x34, 0x12, 0xFF}
	v, off, err := readI32LE(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x12345678 {
		t.Fatalf("got %#x, want %#x", v, 0x12345678)
	}
	if off != 4 {
		t.Fatalf("got offset %d, want 4", off)
	}
}

func TestReadI32LEOutOfBounds(t *testing.T) {
	buf := []byte{0x01, 0x02}
	if _, _, err := readI32LE(buf, 0); err == nil {
		t.Fatal("expected error for truncated i32")
	}
}

func TestReadCStr(t *testing.T) {
	buf := []byte("hello\x00world")
	s, off, err := readCStr(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "hello" {
		t.Fatalf("got %q, want %q", s, "hello")
	}
	if off != 6 {
		t.Fatalf("got offset %d, want 6", off)
	}
}

func TestReadCStrMissingNUL(t *testing.T) {
	buf := []byte("hello")
	if _, _, err := readCStr(buf, 0); err == nil {
		t.Fatal("expected error for missing NUL terminator")
	}
}

func TestReadCStrInvalidUTF8(t *testing.T) {
	buf := []byte{0xFF, 0xFE, 0x00}
	_, _, err := readCStr(buf, 0)
	if err == nil {
		t.Fatal("expected utf-8 error")
	}
	if _, ok := err.(*Utf8Error); !ok {
		t.Fatalf("got %T, want *Utf8Error", err)
	}
}

func TestReadLPStr(t *testing.T) {
	// length=6 ("world\0"), then "world\0"
	buf := []byte{0x06, 0x00, 0x00, 0x00, 'w', 'o', 'r', 'l', 'd', 0x00}
	s, off, err := readLPStr(buf, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != "world" {
		t.Fatalf("got %q, want %q", s, "world")
	}
	if off != len(buf) {
		t.Fatalf("got offset %d, want %d", off, len(buf))
	}
}

func TestReadLPStrZeroLength(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x00, 0x00}
	if _, _, err := readLPStr(buf, 0); err == nil {
		t.Fatal("expected error for zero-length lpstr")
	}
}

func TestReadLPStrMissingTerminator(t *testing.T) {
	buf := []byte{0x05, 0x00, 0x00, 0x00, 'h', 'e', 'l', 'l', 'o'}
	if _, _, err := readLPStr(buf, 0); err == nil {
		t.Fatal("expected error for lpstr missing trailing NUL")
	}
}

func TestReadFixed(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	got, off, err := readFixed(buf, 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []byte{2, 3, 4}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if off != 4 {
		t.Fatalf("got offset %d, want 4", off)
	}
}
