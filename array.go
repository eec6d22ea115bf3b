// SPDX-License-Identifier: Apache-2.0

package rawbson

import "strconv"

// Array is a specialization of Document whose keys are expected to be
// decimal string indices "0", "1", … in order. The core does not enforce
// that naming on parse; Array is accessed positionally by iteration order
// and is otherwise indistinguishable from a Document.
type Array struct {
	doc *Document
}

// NewArray wraps data as an Array, applying the same outer-frame checks as
// New.
func NewArray(data []byte) (*Array, error) {
	doc, err := New(data)
	if err != nil {
		return nil, err
	}
	return &Array{doc: doc}, nil
}

// Document returns the Array's underlying Document view, for callers that
// want the keyed-lookup surface directly.
func (a *Array) Document() *Document {
	return a.doc
}

// Bytes returns the array's backing slice.
func (a *Array) Bytes() []byte {
	return a.doc.Bytes()
}

// Get formats i as a decimal ASCII key and delegates to Document.Get.
func (a *Array) Get(i uint32) (Element, bool, error) {
	return a.doc.Get(strconv.FormatUint(uint64(i), 10))
}

func (a *Array) GetF64(i uint32) (float64, bool, error) {
	return a.doc.GetF64(strconv.FormatUint(uint64(i), 10))
}

func (a *Array) GetStr(i uint32) (string, bool, error) {
	return a.doc.GetStr(strconv.FormatUint(uint64(i), 10))
}

func (a *Array) GetDocument(i uint32) (*Document, bool, error) {
	return a.doc.GetDocument(strconv.FormatUint(uint64(i), 10))
}

func (a *Array) GetArray(i uint32) (*Array, bool, error) {
	return a.doc.GetArray(strconv.FormatUint(uint64(i), 10))
}

func (a *Array) GetI32(i uint32) (int32, bool, error) {
	return a.doc.GetI32(strconv.FormatUint(uint64(i), 10))
}

func (a *Array) GetI64(i uint32) (int64, bool, error) {
	return a.doc.GetI64(strconv.FormatUint(uint64(i), 10))
}

func (a *Array) GetBool(i uint32) (bool, bool, error) {
	return a.doc.GetBool(strconv.FormatUint(uint64(i), 10))
}

// Iter yields elements in document order, each with its raw key. No
// validation that keys equal "0", "1", … is performed — that is the
// producer's responsibility; consumers that care must check the raw index
// that ArrayIterator.Next returns.
func (a *Array) Iter() *ArrayIterator {
	return &ArrayIterator{inner: a.doc.Iter()}
}

// ArrayIterator adapts a Document Iterator, exposing each element's raw key
// string (for callers that want to verify index naming) alongside the
// element.
type ArrayIterator struct {
	inner *Iterator
}

// Next advances the iterator, returning the element's raw key (the
// producer's claimed index) and its value.
func (it *ArrayIterator) Next() (rawIndex string, elem Element, ok bool, err error) {
	return it.inner.Next()
}
