// SPDX-License-Identifier: Apache-2.0

package rawbson

import (
	"math/rand"
	"testing"

	"github.com/jcdyer/rawbson/internal/bsongen"
)

// TestGeneratedDocumentsParseWithoutPanicking is a loose property test:
// every syntactically valid document the generator produces must both
// construct successfully and survive a full Iter walk without error,
// regardless of its random shape or depth.
func TestGeneratedDocumentsParseWithoutPanicking(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		data := bsongen.Document(rng, 3)
		doc, err := New(data)
		if err != nil {
			t.Fatalf("New on generator output: %v", err)
		}
		if err := walkAll(doc); err != nil {
			t.Fatalf("walkAll on generator output: %v", err)
		}
	}
}

// TestTruncatedGeneratedDocumentsNeverPanic checks that truncating a
// well-formed document either fails cleanly at construction or fails
// cleanly during iteration — it must never succeed at producing a
// complete, error-free walk of truncated bytes.
func TestTruncatedGeneratedDocumentsNeverPanic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		full := bsongen.Document(rng, 3)
		if len(full) < 8 {
			continue
		}
		short := bsongen.Truncate(rng, full)
		doc, err := New(short)
		if err != nil {
			continue
		}
		if err := walkAll(doc); err == nil && len(short) != len(full) {
			t.Fatalf("truncated document of length %d (from %d) walked with no error", len(short), len(full))
		}
	}
}

func walkAll(doc *Document) error {
	it := doc.Iter()
	for {
		_, elem, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		v, err := elem.Value()
		if err != nil {
			return err
		}
		if v.Doc != nil {
			if err := walkAll(v.Doc); err != nil {
				return err
			}
		}
		if v.Arr != nil {
			if err := walkAll(v.Arr.Document()); err != nil {
				return err
			}
		}
	}
}
