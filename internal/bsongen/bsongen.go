// SPDX-License-Identifier: Apache-2.0

// Package bsongen builds syntactically valid, and deliberately corrupted,
// BSON byte slices for property-based tests. It has no dependency on the
// rawbson package itself, so it can be imported by rawbson's own tests
// without an import cycle.
package bsongen

import (
	"encoding/binary"
	"math/rand"
)

// Document generates a random well-formed BSON document, recursing into
// nested documents up to maxDepth levels deep.
func Document(rng *rand.Rand, maxDepth int) []byte {
	n := rng.Intn(5)
	var body []byte
	for i := 0; i < n; i++ {
		body = append(body, randomElement(rng, randomKey(rng, i), maxDepth)...)
	}
	return frame(body)
}

// frame wraps body (a concatenation of already-framed elements) with the
// 4-byte little-endian length prefix and trailing NUL every BSON document
// and array shares.
func frame(body []byte) []byte {
	total := 4 + len(body) + 1
	out := make([]byte, 0, total)
	out = appendI32LE(out, int32(total))
	out = append(out, body...)
	out = append(out, 0x00)
	return out
}

func randomKey(rng *rand.Rand, i int) string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	n := 1 + rng.Intn(6)
	b := make([]byte, n)
	for j := range b {
		b[j] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

func randomElement(rng *rand.Rand, key string, maxDepth int) []byte {
	choices := []func(*rand.Rand, string, int) []byte{
		doubleElement, stringElement, boolElement, int32Element, int64Element, nullElement,
	}
	if maxDepth > 0 {
		choices = append(choices, documentElement, arrayElement)
	}
	return choices[rng.Intn(len(choices))](rng, key, maxDepth)
}

func keyBytes(key string) []byte {
	return append([]byte(key), 0x00)
}

func doubleElement(rng *rand.Rand, key string, _ int) []byte {
	out := append([]byte{0x01}, keyBytes(key)...)
	bits := rng.Uint64()
	val := make([]byte, 8)
	binary.LittleEndian.PutUint64(val, bits)
	return append(out, val...)
}

func stringElement(rng *rand.Rand, key string, _ int) []byte {
	out := append([]byte{0x02}, keyBytes(key)...)
	s := randomKey(rng, 0)
	val := appendI32LE(nil, int32(len(s)+1))
	val = append(val, s...)
	val = append(val, 0x00)
	return append(out, val...)
}

func boolElement(rng *rand.Rand, key string, _ int) []byte {
	out := append([]byte{0x08}, keyBytes(key)...)
	if rng.Intn(2) == 0 {
		return append(out, 0x00)
	}
	return append(out, 0x01)
}

func int32Element(rng *rand.Rand, key string, _ int) []byte {
	out := append([]byte{0x10}, keyBytes(key)...)
	return append(out, appendI32LE(nil, rng.Int31())...)
}

func int64Element(rng *rand.Rand, key string, _ int) []byte {
	out := append([]byte{0x12}, keyBytes(key)...)
	val := make([]byte, 8)
	binary.LittleEndian.PutUint64(val, rng.Uint64())
	return append(out, val...)
}

func nullElement(_ *rand.Rand, key string, _ int) []byte {
	return append([]byte{0x0A}, keyBytes(key)...)
}

func documentElement(rng *rand.Rand, key string, maxDepth int) []byte {
	out := append([]byte{0x03}, keyBytes(key)...)
	return append(out, Document(rng, maxDepth-1)...)
}

func arrayElement(rng *rand.Rand, key string, maxDepth int) []byte {
	out := append([]byte{0x04}, keyBytes(key)...)
	return append(out, Array(rng, maxDepth-1)...)
}

// Array generates a random well-formed BSON array, with keys "0", "1", …
// assigned in order.
func Array(rng *rand.Rand, maxDepth int) []byte {
	n := rng.Intn(5)
	var body []byte
	for i := 0; i < n; i++ {
		body = append(body, randomElement(rng, itoa(i), maxDepth)...)
	}
	return frame(body)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

func appendI32LE(dst []byte, v int32) []byte {
	return append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// Truncate returns data cut short at a random offset within [1, len(data)),
// simulating a connection or file cut off mid-document. The length
// prefix, if still present, is left unmodified, so the result typically
// fails the declared-length check before any interior scan runs.
func Truncate(rng *rand.Rand, data []byte) []byte {
	if len(data) <= 1 {
		return data
	}
	cut := 1 + rng.Intn(len(data)-1)
	return append([]byte(nil), data[:cut]...)
}

// FlipByte returns a copy of data with one random byte's bits inverted,
// simulating bit rot or a mis-seeked read offset.
func FlipByte(rng *rand.Rand, data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	out := append([]byte(nil), data...)
	i := rng.Intn(len(out))
	out[i] ^= 0xFF
	return out
}
