// SPDX-License-Identifier: Apache-2.0

package interop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFromBSONRoundTrip(t *testing.T) {
	want := bson.D{
		{Key: "name", Value: "ada"},
		{Key: "age", Value: int32(30)},
		{Key: "pi", Value: 3.25},
		{Key: "active", Value: true},
		{Key: "nested", Value: bson.D{{Key: "k", Value: "v"}}},
		{Key: "list", Value: bson.A{"a", "b", "c"}},
	}

	buf, err := FromBSON(want)
	if err != nil {
		t.Fatalf("FromBSON: %v", err)
	}
	got, err := ToBSON(buf.Document)
	if err != nil {
		t.Fatalf("ToBSON: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToBSONEmptyDocument(t *testing.T) {
	buf, err := FromBSON(bson.D{})
	if err != nil {
		t.Fatalf("FromBSON: %v", err)
	}
	got, err := ToBSON(buf.Document)
	if err != nil {
		t.Fatalf("ToBSON: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ToBSON(empty) = %v, want empty", got)
	}
}
