// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package utf8gen generates random valid UTF-8 text and random invalid
// byte sequences for use in tests.
package utf8gen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Random generates random text and invalid byte sequences.
type Random struct {
	options
	r *rand.Rand
}

type options struct {
	includeControl bool
	seed           int64
}

// Option represents an option to NewRandom.
type Option func(o *options)

// IncludeControl controls whether control characters can be included
// in the generated strings.
func IncludeControl(v bool) Option {
	return func(o *options) {
		o.includeControl = v
	}
}

// WithSeed sets the seed for the random number generator, the current
// time is used by default.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// NewRandom returns a new instance of Random.
func NewRandom(opts ...Option) *Random {
	r := &Random{}
	r.seed = time.Now().UnixNano()
	for _, fn := range opts {
		fn(&r.options)
	}
	r.r = rand.New(rand.NewSource(r.seed))
	return r
}

// Seed returns the seed in use, so that failing tests can be reproduced.
func (r *Random) Seed() int64 {
	return r.seed
}

// Intn is rand.Intn on the underlying generator.
func (r *Random) Intn(n int) int {
	return r.r.Intn(n)
}

type runeRange struct {
	lo, hi rune
}

// encoded lengths 1 through 4, with Latin and CJK in the middle.
var runeRanges = []runeRange{
	{0, 127},
	{248, 696},
	{0x4E00, 0x9FFF},
	{0x1D000, 0x1D0F5},
}

func (r *Random) genInRange(rr runeRange) rune {
	for {
		c := r.r.Int31n(rr.hi-rr.lo) + rr.lo
		if r.includeControl || !unicode.IsControl(c) {
			return c
		}
	}
}

// WithRuneLen generates a string of nRunes runes each of which is
// encoded using nBytes (1-4) bytes.
func (r *Random) WithRuneLen(nBytes, nRunes int) string {
	if nBytes < 1 || nBytes > 4 {
		panic(fmt.Sprintf("unsupported rune length: %v", nBytes))
	}
	sb := &strings.Builder{}
	for i := 0; i < nRunes; i++ {
		sb.WriteRune(r.genInRange(runeRanges[nBytes-1]))
	}
	return sb.String()
}

// AllRuneLens generates a string of nRunes runes whose encoded lengths
// are chosen at random.
func (r *Random) AllRuneLens(nRunes int) string {
	sb := &strings.Builder{}
	for i := 0; i < nRunes; i++ {
		sb.WriteRune(r.genInRange(runeRanges[r.r.Intn(len(runeRanges))]))
	}
	return sb.String()
}

// Kind identifies a class of invalid UTF-8 byte sequence.
type Kind int

const (
	BadLead       Kind = iota // a byte that never starts a sequence: C0, C1, F5..FF
	Continuation              // a continuation byte with no lead byte
	Overlong                  // an over long encoding of a smaller code point
	Surrogate                 // a UTF-16 surrogate, U+D800..U+DFFF
	TooLarge                  // a code point above U+10FFFF
	BadContinuation           // a lead byte followed by a non-continuation byte
	numKinds
)

func (k Kind) String() string {
	switch k {
	case BadLead:
		return "bad-lead"
	case Continuation:
		return "continuation"
	case Overlong:
		return "overlong"
	case Surrogate:
		return "surrogate"
	case TooLarge:
		return "too-large"
	case BadContinuation:
		return "bad-continuation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds returns all of the supported kinds of invalid sequence.
func Kinds() []Kind {
	k := make([]Kind, numKinds)
	for i := range k {
		k[i] = Kind(i)
	}
	return k
}

func (r *Random) cont() byte {
	return byte(0x80 + r.r.Intn(0x40))
}

// Invalid returns a byte sequence of the requested kind. The sequence is
// invalid wherever it appears and whatever follows it.
func (r *Random) Invalid(k Kind) []byte {
	switch k {
	case BadLead:
		leads := []byte{0xC0, 0xC1, 0xF5, 0xF6, 0xF7, 0xF8, 0xFB, 0xFC, 0xFE, 0xFF}
		return []byte{leads[r.r.Intn(len(leads))]}
	case Continuation:
		return []byte{r.cont()}
	case Overlong:
		switch r.r.Intn(2) {
		case 0:
			return []byte{0xE0, byte(0x80 + r.r.Intn(0x20)), r.cont()}
		default:
			return []byte{0xF0, byte(0x80 + r.r.Intn(0x10)), r.cont(), r.cont()}
		}
	case Surrogate:
		return []byte{0xED, byte(0xA0 + r.r.Intn(0x20)), r.cont()}
	case TooLarge:
		return []byte{0xF4, byte(0x90 + r.r.Intn(0x30)), r.cont(), r.cont()}
	case BadContinuation:
		return []byte{byte(0xC2 + r.r.Intn(0x1E)), byte(r.r.Intn(0x80))}
	}
	panic(fmt.Sprintf("unsupported kind: %v", k))
}

// Corrupt overwrites the bytes of b starting at a randomly selected rune
// boundary with an invalid sequence of a randomly selected kind, that fits
// within b. It returns the offset of the invalid sequence, or -1 if b is
// empty.
func (r *Random) Corrupt(b []byte) int {
	if len(b) == 0 {
		return -1
	}
	var starts []int
	for i, c := range b {
		if c&0xC0 != 0x80 {
			starts = append(starts, i)
		}
	}
	for {
		off := starts[r.r.Intn(len(starts))]
		seq := r.Invalid(Kind(r.r.Intn(int(numKinds))))
		if off+len(seq) <= len(b) {
			copy(b[off:], seq)
			return off
		}
	}
}
