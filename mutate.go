// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strbytes

import (
	"slices"

	"cloudeng.io/strbytes/scoped"
)

// txn snapshots a buffer's bytes and accepts the modified bytes only if
// they are valid UTF-8.
var txn = scoped.New(snapshot, validate)

func snapshot(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return slices.Clone(b)
}

// run executes fn within a transaction over the buffer's bytes and
// commits the result if it is valid UTF-8.
func (b *Buffer) run(fn func([]byte) ([]byte, error)) error {
	if b.busy {
		return ErrBusy
	}
	b.busy = true
	defer func() { b.busy = false }()
	return txn.Apply(&b.b, fn)
}

func (b *Buffer) withView(resizable bool, fn func(*View) error) error {
	return b.run(func(work []byte) ([]byte, error) {
		v := newView(work, resizable)
		defer v.revoke()
		err := fn(v)
		if v.err != nil {
			return nil, v.err
		}
		if err != nil {
			return nil, &TransformError{Err: err}
		}
		return v.b, nil
	})
}

// Mutate calls fn with a View of the buffer's bytes. The length of the
// View is fixed. When fn returns, the bytes are validated and, if they
// are valid UTF-8, become the buffer's new contents. Otherwise the buffer
// is left unchanged and an error is returned:
//
//   - the first access error recorded by the View (a *RangeError,
//     ErrFixedLength or ErrRevoked) if there was one,
//   - a *TransformError wrapping the error returned by fn, if not nil,
//   - an *InvalidUTF8Error if the resulting bytes are not valid UTF-8.
//
// If fn panics the panic is propagated and the buffer is left unchanged.
func (b *Buffer) Mutate(fn func(*View) error) error {
	return b.withView(false, fn)
}

// MutateResize is like Mutate except that fn may change the length of
// the View via its Resize and Splice methods.
func (b *Buffer) MutateResize(fn func(*View) error) error {
	return b.withView(true, fn)
}

// MustMutate is like Mutate except that it panics on error, leaving the
// buffer unchanged. fn has no error return; its access errors are
// recorded by the View.
func (b *Buffer) MustMutate(fn func(*View)) {
	if err := b.Mutate(func(v *View) error {
		fn(v)
		return nil
	}); err != nil {
		panic(err)
	}
}

// MutateBytes calls fn with a copy of the buffer's bytes that fn may
// modify in place. The modified bytes are accepted using the same rules
// as Mutate. The slice passed to fn is not used after fn returns, so it is
// safe, though pointless, for fn to retain it.
func (b *Buffer) MutateBytes(fn func([]byte) error) error {
	return b.run(func(work []byte) ([]byte, error) {
		if err := fn(work); err != nil {
			return nil, &TransformError{Err: err}
		}
		return slices.Clone(work), nil
	})
}

// MutateBytesResize calls fn with a copy of the buffer's bytes; the slice
// returned by fn, which may be of any length and may share storage with
// the supplied one, is copied and then accepted using the same rules as
// Mutate.
func (b *Buffer) MutateBytesResize(fn func([]byte) ([]byte, error)) error {
	return b.run(func(work []byte) ([]byte, error) {
		next, err := fn(work)
		if err != nil {
			return nil, &TransformError{Err: err}
		}
		if next == nil {
			return []byte{}, nil
		}
		return slices.Clone(next), nil
	})
}

// MutateWithResult is like Mutate except that fn may return a value which
// is returned to the caller if the mutation succeeds. The zero value of R
// is returned on failure.
func MutateWithResult[R any](b *Buffer, fn func(*View) (R, error)) (R, error) {
	var result R
	err := b.Mutate(func(v *View) error {
		r, err := fn(v)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		var zero R
		return zero, err
	}
	return result, nil
}
