// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strbytes

import (
	"io"
	"iter"
)

// View provides indexed read/write access to the bytes of a Buffer for the
// duration of a single call to one of the Buffer's Mutate methods. A View
// performs bounds checking but no UTF-8 checking; the bytes it exposes may
// be left invalid while the transform runs, they are validated once the
// transform returns. A View must not be retained, once the mutation
// completes every method returns ErrRevoked.
//
// The first access error encountered by a View is recorded and causes the
// mutation to fail even if the transform ignores it.
type View struct {
	b         []byte
	live      bool
	resizable bool
	err       error
}

func newView(b []byte, resizable bool) *View {
	return &View{b: b, live: true, resizable: resizable}
}

// revoke returns the final contents of the view and disables it.
func (v *View) revoke() []byte {
	b := v.b
	v.b, v.live = nil, false
	return b
}

func (v *View) fail(err error) error {
	if v.err == nil {
		v.err = err
	}
	return err
}

func (v *View) rangeErr(op string, idx int) error {
	return v.fail(&RangeError{Op: op, Index: idx, Len: len(v.b)})
}

// Len returns the number of bytes in the view, or zero if the view
// has been revoked.
func (v *View) Len() int {
	return len(v.b)
}

// Resizable returns true if the view's length may be changed.
func (v *View) Resizable() bool {
	return v.resizable
}

// At returns the byte at index i.
func (v *View) At(i int) (byte, error) {
	if !v.live {
		return 0, ErrRevoked
	}
	if i < 0 || i >= len(v.b) {
		return 0, v.rangeErr("read", i)
	}
	return v.b[i], nil
}

// Set sets the byte at index i to c.
func (v *View) Set(i int, c byte) error {
	if !v.live {
		return ErrRevoked
	}
	if i < 0 || i >= len(v.b) {
		return v.rangeErr("write", i)
	}
	v.b[i] = c
	return nil
}

// ReadAt implements io.ReaderAt. Reads at or beyond the end of the view
// return io.EOF, a negative offset is an access error.
func (v *View) ReadAt(p []byte, off int64) (int, error) {
	if !v.live {
		return 0, ErrRevoked
	}
	if off < 0 {
		return 0, v.rangeErr("read", int(off))
	}
	if off >= int64(len(v.b)) {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n := copy(p, v.b[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt. The entire range [off, off+len(p))
// must lie within the view; a View never grows as a side effect of
// WriteAt, use Resize or Splice for that.
func (v *View) WriteAt(p []byte, off int64) (int, error) {
	if !v.live {
		return 0, ErrRevoked
	}
	if off < 0 || off > int64(len(v.b)) {
		return 0, v.rangeErr("write", int(off))
	}
	if end := off + int64(len(p)); end > int64(len(v.b)) {
		return 0, v.rangeErr("write", int(end-1))
	}
	return copy(v.b[off:], p), nil
}

// All returns an iterator over the index and value of every byte in the
// view. Modifying the view during iteration is allowed, the iterator always
// yields the current value at each index.
func (v *View) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; v.live && i < len(v.b); i++ {
			if !yield(i, v.b[i]) {
				return
			}
		}
	}
}

// Resize changes the length of the view to n bytes, truncating or
// extending it with zero bytes as required. It returns ErrFixedLength
// unless the view was obtained from MutateResize.
func (v *View) Resize(n int) error {
	if !v.live {
		return ErrRevoked
	}
	if !v.resizable {
		return v.fail(ErrFixedLength)
	}
	if n < 0 {
		return v.rangeErr("resize", n)
	}
	if n <= len(v.b) {
		v.b = v.b[:n]
		return nil
	}
	v.b = append(v.b, make([]byte, n-len(v.b))...)
	return nil
}

// Splice replaces the bytes in [from, to) with repl. Changing the length
// of the view requires a resizable view, otherwise ErrFixedLength is
// returned.
func (v *View) Splice(from, to int, repl []byte) error {
	if !v.live {
		return ErrRevoked
	}
	if from < 0 || from > len(v.b) {
		return v.rangeErr("splice", from)
	}
	if to < from || to > len(v.b) {
		return v.rangeErr("splice", to)
	}
	if len(repl) == to-from {
		copy(v.b[from:to], repl)
		return nil
	}
	if !v.resizable {
		return v.fail(ErrFixedLength)
	}
	tail := len(v.b) - to
	nl := from + len(repl) + tail
	if nl > cap(v.b) {
		nb := make([]byte, nl, nl+nl/4)
		copy(nb, v.b[:from])
		copy(nb[from+len(repl):], v.b[to:])
		copy(nb[from:], repl)
		v.b = nb
		return nil
	}
	old := v.b
	v.b = v.b[:nl]
	copy(v.b[from+len(repl):], old[to:to+tail])
	copy(v.b[from:], repl)
	return nil
}
