// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package utf8check provides a UTF-8 validator that, unlike utf8.Valid,
// reports where validation failed and how long the offending sequence is.
package utf8check

import "encoding/binary"

// Result describes the outcome of validating a byte slice.
type Result struct {
	// ValidUpTo is the length of the longest valid UTF-8 prefix.
	ValidUpTo int
	// ErrorLen is the number of bytes in the invalid sequence that starts
	// at ValidUpTo. It is zero if the input is valid or if it ends in the
	// middle of an otherwise valid sequence.
	ErrorLen int
	valid    bool
}

// Valid returns true if the entire input was valid UTF-8.
func (r Result) Valid() bool {
	return r.valid
}

// Incomplete returns true if the input is invalid only because it ends
// part way through a multi-byte sequence.
func (r Result) Incomplete() bool {
	return !r.valid && r.ErrorLen == 0
}

const (
	locb = 0x80 // lowest continuation byte
	hicb = 0xBF // highest continuation byte
)

// acceptRange is the valid range for the second byte of a sequence.
type acceptRange struct {
	lo, hi byte
}

// secondByte returns the number of bytes in the sequence introduced by
// lead and the range its second byte must fall in. A size of zero means
// lead can never start a sequence.
func secondByte(lead byte) (int, acceptRange) {
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		return 2, acceptRange{locb, hicb}
	case lead == 0xE0:
		return 3, acceptRange{0xA0, hicb} // overlong
	case lead >= 0xE1 && lead <= 0xEC, lead == 0xEE, lead == 0xEF:
		return 3, acceptRange{locb, hicb}
	case lead == 0xED:
		return 3, acceptRange{locb, 0x9F} // surrogates
	case lead == 0xF0:
		return 4, acceptRange{0x90, hicb} // overlong
	case lead >= 0xF1 && lead <= 0xF3:
		return 4, acceptRange{locb, hicb}
	case lead == 0xF4:
		return 4, acceptRange{locb, 0x8F} // > U+10FFFF
	}
	return 0, acceptRange{}
}

func isContinuation(c byte) bool {
	return c >= locb && c <= hicb
}

const asciiMask = 0x8080808080808080

// Validate scans b from the start and returns the first position at which
// it is not valid UTF-8.
func Validate(b []byte) Result {
	n := len(b)
	i := 0
	for i < n {
		for i+8 <= n && binary.LittleEndian.Uint64(b[i:])&asciiMask == 0 {
			i += 8
		}
		if i >= n {
			break
		}
		lead := b[i]
		if lead < 0x80 {
			i++
			continue
		}
		size, accept := secondByte(lead)
		if size == 0 {
			return Result{ValidUpTo: i, ErrorLen: 1}
		}
		if i+1 >= n {
			return Result{ValidUpTo: i}
		}
		if c := b[i+1]; c < accept.lo || c > accept.hi {
			return Result{ValidUpTo: i, ErrorLen: 1}
		}
		for j := 2; j < size; j++ {
			if i+j >= n {
				return Result{ValidUpTo: i}
			}
			if !isContinuation(b[i+j]) {
				return Result{ValidUpTo: i, ErrorLen: j}
			}
		}
		i += size
	}
	return Result{ValidUpTo: n, valid: true}
}

// ValidString is like Validate but for a string.
func ValidString(s string) Result {
	return Validate([]byte(s))
}
