// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package scoped provides a transaction primitive for temporarily breaking
// an invariant within a closed scope. The state of interest is snapshotted,
// the snapshot is handed to a function that may modify it arbitrarily and
// the result is accepted only if it passes validation. The original state
// is never modified, so a failed or panicking function leaves nothing to
// undo.
//
//	txn := scoped.New(slices.Clone[[]int], checkSorted)
//	next, err := txn.Run(current, func(s []int) ([]int, error) {
//	    return append(s, 42), nil
//	})
//	if err == nil {
//	    current = next
//	}
package scoped

// Txn represents a reusable snapshot/validate transaction for values of
// type T.
type Txn[T any] struct {
	snapshot func(T) T
	validate func(T) error
}

// New returns a Txn that uses snapshot to obtain a private copy of the
// current state and validate to accept or reject the modified state.
// Either function may be nil: a nil snapshot passes the state through
// unchanged (appropriate for value types), a nil validate accepts any state.
func New[T any](snapshot func(T) T, validate func(T) error) *Txn[T] {
	return &Txn[T]{snapshot: snapshot, validate: validate}
}

// Run calls fn with a snapshot of current. If fn succeeds and its result
// is accepted by the validate function, that result is returned. Otherwise
// current is returned, unmodified, along with the error from fn or
// validate. A panic in fn is not recovered.
func (t *Txn[T]) Run(current T, fn func(T) (T, error)) (T, error) {
	work := current
	if t.snapshot != nil {
		work = t.snapshot(current)
	}
	next, err := fn(work)
	if err != nil {
		return current, err
	}
	if t.validate != nil {
		if err := t.validate(next); err != nil {
			return current, err
		}
	}
	return next, nil
}

// Apply is like Run except that the result is stored in *state on
// success and *state is left untouched on failure.
func (t *Txn[T]) Apply(state *T, fn func(T) (T, error)) error {
	next, err := t.Run(*state, fn)
	if err != nil {
		return err
	}
	*state = next
	return nil
}
