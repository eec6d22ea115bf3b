// SPDX-License-Identifier: Apache-2.0

// Package rawbson provides zero-copy, lazily-validated access to BSON
// documents. Document and Array are borrowed views over a caller-supplied
// byte slice; Element is a borrowed (tag, payload) pair produced by
// lookup or iteration. Keys and string values are copied out of the buffer
// into Go strings; nested documents, arrays and binary data stay views into
// it. Nothing here performs I/O.
package rawbson
