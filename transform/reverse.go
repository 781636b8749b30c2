// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package transform

import (
	"unicode/utf8"

	"cloudeng.io/strbytes"
)

func reverseRange(v *strbytes.View, from, to int) error {
	for i, j := from, to-1; i < j; i, j = i+1, j-1 {
		a, err := v.At(i)
		if err != nil {
			return err
		}
		b, err := v.At(j)
		if err != nil {
			return err
		}
		if err := v.Set(i, b); err != nil {
			return err
		}
		if err := v.Set(j, a); err != nil {
			return err
		}
	}
	return nil
}

// ReverseRunes reverses the order of the runes in the View, in place.
// The bytes of each rune are first reversed and then the entire View
// is reversed, restoring the byte order within each rune. The length of
// the View is unchanged. Bytes that are not part of a valid rune are
// treated as single byte runes.
func ReverseRunes(v *strbytes.View) error {
	var rb [utf8.UTFMax]byte
	n := v.Len()
	for i := 0; i < n; {
		m, err := v.ReadAt(rb[:min(utf8.UTFMax, n-i)], int64(i))
		if err != nil {
			return err
		}
		_, size := utf8.DecodeRune(rb[:m])
		if err := reverseRange(v, i, i+size); err != nil {
			return err
		}
		i += size
	}
	return reverseRange(v, 0, n)
}
