// SPDX-License-Identifier: Apache-2.0

package rawbson

// Buffer is the owned-buffer wrapper: it holds an owned byte slice and
// hands out the same lookup/iteration surface as Document by delegating to
// a Document view bound to its own bytes. Buffer is the thing application
// code typically holds; Document is what gets passed down into recursive
// navigation.
//
// This type is an external collaborator per the core's contract (§4.5):
// everything it does is delegation to *Document, plus ownership of the
// backing slice.
type Buffer struct {
	*Document
	data []byte
}

// NewBuffer takes ownership of data and validates its outer frame exactly
// as New does.
func NewBuffer(data []byte) (*Buffer, error) {
	doc, err := New(data)
	if err != nil {
		return nil, err
	}
	return &Buffer{Document: doc, data: data}, nil
}

// IntoInner releases the owned byte slice. After calling it, the Buffer
// must not be used again — there is no way to express "moved-from" in Go
// short of this convention, which mirrors the Rust original's
// into_inner(self).
func (b *Buffer) IntoInner() []byte {
	return b.data
}
