// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strbytes

import (
	"fmt"

	"cloudeng.io/errors"
)

var (
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("strbytes: index out of range")

	// ErrInvalidUTF8 is matched by every *InvalidUTF8Error.
	ErrInvalidUTF8 = errors.New("strbytes: invalid utf-8")

	// ErrFixedLength is returned when an attempt is made to change the
	// length of a View obtained from Mutate rather than MutateResize.
	ErrFixedLength = errors.New("strbytes: view length is fixed")

	// ErrRevoked is returned when a View is used after the mutation that
	// created it has completed.
	ErrRevoked = errors.New("strbytes: view used outside of its mutation")

	// ErrBusy is returned when a Buffer is mutated from within one of its
	// own transforms.
	ErrBusy = errors.New("strbytes: buffer already has a live view")
)

// RangeError records an access through a View that fell outside of
// [0, Len).
type RangeError struct {
	Op    string
	Index int
	Len   int
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("strbytes: %s: index %d out of range [0:%d)", e.Op, e.Index, e.Len)
}

// Is supports errors.Is.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// InvalidUTF8Error is returned when the bytes produced by a transform are
// not valid UTF-8. The buffer that was being mutated is left unchanged.
type InvalidUTF8Error struct {
	// Offset is the length of the valid UTF-8 prefix of the rejected bytes.
	Offset int
	// Len is the length of the invalid byte sequence at Offset, or zero if
	// the bytes ended part way through a sequence.
	Len int
}

// Error implements error.
func (e *InvalidUTF8Error) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("strbytes: incomplete utf-8 byte sequence from index %d", e.Offset)
	}
	return fmt.Sprintf("strbytes: invalid utf-8 sequence of %d bytes from index %d", e.Len, e.Offset)
}

// Is supports errors.Is.
func (e *InvalidUTF8Error) Is(target error) bool {
	return target == ErrInvalidUTF8
}

// TransformError wraps an error returned by a caller supplied transform.
type TransformError struct {
	Err error
}

// Error implements error.
func (e *TransformError) Error() string {
	return "strbytes: transform failed: " + e.Err.Error()
}

// Unwrap implements errors.Unwrap.
func (e *TransformError) Unwrap() error {
	return e.Err
}
