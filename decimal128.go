// SPDX-License-Identifier: Apache-2.0

package rawbson

import "fmt"

// Decimal128 holds the raw 16 bytes of an IEEE 754-2008 decimal128 value,
// split into its little-endian low and high 64-bit halves. Decimal
// arithmetic depends on a numeric library the core does not carry; the
// wire contract (16 raw bytes) is bit-exact and is all this type
// represents. Callers needing arithmetic should hand Bytes() to a
// decimal128 library such as go.mongodb.org/mongo-driver/bson/primitive.
type Decimal128 struct {
	Lo uint64
	Hi uint64
}

// Bytes returns the 16-byte little-endian wire representation.
func (d Decimal128) Bytes() [16]byte {
	var b [16]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(d.Lo >> (8 * i))
		b[8+i] = byte(d.Hi >> (8 * i))
	}
	return b
}

func (d Decimal128) String() string {
	return fmt.Sprintf("Decimal128(hi=%#016x, lo=%#016x)", d.Hi, d.Lo)
}
