// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package transform provides commonly used byte level transformations
// for use with strbytes.Buffer's Mutate and MutateResize methods.
package transform

import (
	"cloudeng.io/errors"
	"cloudeng.io/strbytes"
)

// Func is the type of a transformation applied to a View.
type Func = func(*strbytes.View) error

// ErrNotASCII is returned by ReplaceASCII when either of its arguments
// is not an ASCII character.
var ErrNotASCII = errors.New("transform: not an ASCII character")

// Chain returns a Func that applies each of fns in turn, stopping at the
// first error. When used with Mutate, the result of the entire chain is
// validated once and either all or none of the changes are made.
func Chain(fns ...Func) Func {
	return func(v *strbytes.View) error {
		for _, fn := range fns {
			if err := fn(v); err != nil {
				return err
			}
		}
		return nil
	}
}

func mapBytes(v *strbytes.View, fn func(byte) byte) error {
	for i, c := range v.All() {
		if nc := fn(c); nc != c {
			if err := v.Set(i, nc); err != nil {
				return err
			}
		}
	}
	return nil
}

// ASCIIUpper converts the ASCII lower case letters a-z to upper case.
// All other bytes, including those of multi-byte runes, are unchanged.
func ASCIIUpper(v *strbytes.View) error {
	return mapBytes(v, func(c byte) byte {
		if 'a' <= c && c <= 'z' {
			return c - ('a' - 'A')
		}
		return c
	})
}

// ASCIILower converts the ASCII upper case letters A-Z to lower case.
func ASCIILower(v *strbytes.View) error {
	return mapBytes(v, func(c byte) byte {
		if 'A' <= c && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	})
}

// ReplaceASCII returns a Func that replaces every occurrence of the ASCII
// character from with the ASCII character to. Since no byte of a
// multi-byte UTF-8 sequence is in the ASCII range the result is always
// valid UTF-8.
func ReplaceASCII(from, to byte) Func {
	return func(v *strbytes.View) error {
		if from >= 0x80 || to >= 0x80 {
			return ErrNotASCII
		}
		return mapBytes(v, func(c byte) byte {
			if c == from {
				return to
			}
			return c
		})
	}
}

// readAll returns a copy of the View's contents.
func readAll(v *strbytes.View) ([]byte, error) {
	b := make([]byte, v.Len())
	_, err := v.ReadAt(b, 0)
	return b, err
}

// replaceAll replaces the View's contents with b, resizing it if needed.
func replaceAll(v *strbytes.View, b []byte) error {
	if len(b) != v.Len() {
		if err := v.Resize(len(b)); err != nil {
			return err
		}
	}
	_, err := v.WriteAt(b, 0)
	return err
}
