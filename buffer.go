// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strbytes

import (
	"slices"

	"cloudeng.io/strbytes/internal/utf8check"
)

// Buffer holds UTF-8 text whose bytes may only be modified via one of
// its Mutate methods. The zero value is an empty, ready to use, Buffer.
// A Buffer is not safe for concurrent use.
type Buffer struct {
	b    []byte
	busy bool
}

// New returns a Buffer containing a copy of s. An *InvalidUTF8Error is
// returned if s is not valid UTF-8.
func New(s string) (*Buffer, error) {
	return FromBytes([]byte(s))
}

// MustNew is like New but panics on error.
func MustNew(s string) *Buffer {
	b, err := New(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBytes returns a Buffer containing a copy of b. An *InvalidUTF8Error
// is returned if b is not valid UTF-8.
func FromBytes(b []byte) (*Buffer, error) {
	if err := validate(b); err != nil {
		return nil, err
	}
	return &Buffer{b: slices.Clone(b)}, nil
}

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.b)
}

// Bytes returns a copy of the buffer's contents.
func (b *Buffer) Bytes() []byte {
	return slices.Clone(b.b)
}

// AppendTo appends the buffer's contents to dst and returns the extended
// slice.
func (b *Buffer) AppendTo(dst []byte) []byte {
	return append(dst, b.b...)
}

// String returns the buffer's contents as a string.
func (b *Buffer) String() string {
	return string(b.b)
}

// Clone returns a new Buffer with the same contents.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{b: slices.Clone(b.b)}
}

// Reset empties the buffer. It returns ErrBusy if called from within one
// of the buffer's own transforms.
func (b *Buffer) Reset() error {
	if b.busy {
		return ErrBusy
	}
	b.b = b.b[:0]
	return nil
}

func validate(b []byte) error {
	r := utf8check.Validate(b)
	if r.Valid() {
		return nil
	}
	return &InvalidUTF8Error{Offset: r.ValidUpTo, Len: r.ErrorLen}
}
