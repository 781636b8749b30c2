// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package edit provides support for editing the contents of a
// strbytes.Buffer using insert, delete and replace operations expressed
// in terms of byte positions. All of the edits supplied in a single call
// are applied atomically: if any of them is out of range, or the edited
// text is not valid UTF-8, the buffer is left unchanged.
package edit

import (
	"fmt"
	"math"
	"slices"

	"cloudeng.io/errors"
	"cloudeng.io/strbytes"
)

type editOp int

const (
	deleteOp editOp = iota
	replaceOp
	insertOp
)

// Delta represents an insertion, deletion or replacement.
type Delta struct {
	op       editOp
	from, to int
	text     string
}

// String implements stringer. The format is as follows:
//
//	deletions:    < @pos#<num bytes>
//	insertions:   > @pos#<num bytes>
//	replacements: ~ @pos#<num bytes>/<num bytes>
func (d Delta) String() string {
	switch d.op {
	case deleteOp:
		return fmt.Sprintf("< @%d#%d", d.from, d.to-d.from)
	case insertOp:
		return fmt.Sprintf("> @%d#%d", d.from, len(d.text))
	default:
		return fmt.Sprintf("~ @%d#%d/%d", d.from, d.to-d.from, len(d.text))
	}
}

// invalidPos is used for any position, or end of range, that cannot
// be represented as an int and hence is never in range.
const invalidPos = -1

func span(pos, size uint) (from, to int) {
	if pos > math.MaxInt || size > math.MaxInt-pos {
		return invalidPos, invalidPos
	}
	return int(pos), int(pos + size)
}

// Insert creates a Delta to insert text at pos.
func Insert(pos uint, text string) Delta {
	from, to := span(pos, 0)
	return Delta{op: insertOp, from: from, to: to, text: text}
}

// Replace creates a Delta to replace the size bytes starting at pos
// with text, which may be shorter or longer than size.
func Replace(pos, size uint, text string) Delta {
	from, to := span(pos, size)
	return Delta{op: replaceOp, from: from, to: to, text: text}
}

// Delete creates a Delta to delete size bytes starting at pos.
func Delete(pos, size uint) Delta {
	from, to := span(pos, size)
	return Delta{op: deleteOp, from: from, to: to}
}

func (d Delta) inRange(size int) bool {
	return 0 <= d.from && d.from <= d.to && d.to <= size
}

// Validate returns an error for every delta that does not lie within
// contents of the specified size. The errors match strbytes.ErrOutOfRange.
func Validate(size int, deltas ...Delta) error {
	errs := &errors.M{}
	for _, d := range deltas {
		if !d.inRange(size) {
			errs.Append(fmt.Errorf("%w: %s", strbytes.ErrOutOfRange, d))
		}
	}
	return errs.Err()
}

// sortDeltas returns a copy of deltas sorted by start position and then
// by operation: deletions, replacements and finally insertions. The sort is
// stable so that operations of the same type at the same position retain
// the order in which they were specified.
func sortDeltas(deltas []Delta) []Delta {
	sorted := slices.Clone(deltas)
	slices.SortStableFunc(sorted, func(a, b Delta) int {
		if a.from != b.from {
			return a.from - b.from
		}
		return int(a.op) - int(b.op)
	})
	return sorted
}

// overwrite returns the result of writing b over the start of a.
func overwrite(a, b string) string {
	if len(b) >= len(a) {
		return b
	}
	return b + a[len(b):]
}

// Do applies the supplied deltas to contents, returning a new slice.
// Deltas are sorted by their start position, then at each position:
//  1. deletions are applied, then
//  2. replacements are applied, then,
//  3. insertions are applied.
//
// Multiple deletions and replacements at the same position overwrite each
// other, whereas insertions are concatenated. Processing stops at the
// first delta that is out of range, use Validate to detect this. Do makes no
// attempt to check that the result is valid UTF-8, see Apply.
func Do(contents []byte, deltas ...Delta) []byte {
	patched := make([]byte, 0, len(contents))
	// offset is the start of the unprocessed portion of contents.
	offset := 0
	// replacements at the same position are accumulated, later ones
	// overwriting earlier ones.
	var (
		replacing   bool
		replaceFrom int
		replaceTo   int
		replacement string
	)
	flush := func() {
		if !replacing {
			return
		}
		patched = append(patched, replacement...)
		offset = max(offset, replaceTo)
		replacing, replacement, replaceTo = false, "", 0
	}
	for _, d := range sortDeltas(deltas) {
		if !d.inRange(len(contents)) {
			break
		}
		if replacing && (d.op != replaceOp || d.from != replaceFrom) {
			flush()
		}
		if d.from > offset {
			patched = append(patched, contents[offset:d.from]...)
			offset = d.from
		}
		switch d.op {
		case deleteOp:
			offset = max(offset, d.to)
		case replaceOp:
			if !replacing {
				replacing, replaceFrom = true, d.from
			}
			replacement = overwrite(replacement, d.text)
			replaceTo = max(replaceTo, d.to)
		case insertOp:
			patched = append(patched, d.text...)
		}
	}
	flush()
	if offset < len(contents) {
		patched = append(patched, contents[offset:]...)
	}
	return patched
}

// DoString is like Do but for strings.
func DoString(contents string, deltas ...Delta) string {
	return string(Do([]byte(contents), deltas...))
}

// Transform returns a function, for use with strbytes.Buffer.MutateResize,
// that applies the supplied deltas to the View's contents. It fails
// without modifying the View if any of the deltas is out of range.
func Transform(deltas ...Delta) func(*strbytes.View) error {
	return func(v *strbytes.View) error {
		if err := Validate(v.Len(), deltas...); err != nil {
			return err
		}
		contents := make([]byte, v.Len())
		if _, err := v.ReadAt(contents, 0); err != nil {
			return err
		}
		patched := Do(contents, deltas...)
		if err := v.Resize(len(patched)); err != nil {
			return err
		}
		_, err := v.WriteAt(patched, 0)
		return err
	}
}

// Apply applies the supplied deltas to buf as a single mutation.
func Apply(buf *strbytes.Buffer, deltas ...Delta) error {
	return buf.MutateResize(Transform(deltas...))
}
