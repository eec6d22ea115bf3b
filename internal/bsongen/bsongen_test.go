// SPDX-License-Identifier: Apache-2.0

package bsongen

import (
	"math/rand"
	"testing"
)

func TestDocumentIsFramedConsistently(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		data := Document(rng, 3)
		if len(data) < 5 {
			t.Fatalf("document too short: %d bytes", len(data))
		}
		length := int32(data[0]) | int32(data[1])<<8 | int32(data[2])<<16 | int32(data[3])<<24
		if int(length) != len(data) {
			t.Fatalf("declared length %d != actual %d", length, len(data))
		}
		if data[len(data)-1] != 0x00 {
			t.Fatalf("missing terminator")
		}
	}
}

func TestTruncateShortensInput(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	data := Document(rng, 2)
	short := Truncate(rng, data)
	if len(short) >= len(data) {
		t.Fatalf("Truncate did not shorten: got %d, original %d", len(short), len(data))
	}
}

func TestFlipByteChangesOneByte(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	data := Document(rng, 1)
	flipped := FlipByte(rng, data)
	if len(flipped) != len(data) {
		t.Fatalf("FlipByte changed length")
	}
	diff := 0
	for i := range data {
		if data[i] != flipped[i] {
			diff++
		}
	}
	if diff != 1 && len(data) > 0 {
		t.Fatalf("FlipByte changed %d bytes, want exactly 1", diff)
	}
}
