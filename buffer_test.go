// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strbytes_test

import (
	"bytes"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/strbytes"
)

func TestNew(t *testing.T) {
	for i, tc := range []struct {
		input  string
		offset int
		valid  bool
	}{
		{"", 0, true},
		{"abc", 0, true},
		{"Hello 世界", 0, true},
		{"a\xffb", 1, false},
		{"abc\xe2\x82", 3, false},
	} {
		buf, err := strbytes.New(tc.input)
		if tc.valid {
			if err != nil {
				t.Errorf("%v: unexpected error: %v", i, err)
				continue
			}
			if got, want := buf.String(), tc.input; got != want {
				t.Errorf("%v: got %q, want %q", i, got, want)
			}
			if got, want := buf.Len(), len(tc.input); got != want {
				t.Errorf("%v: got %v, want %v", i, got, want)
			}
			continue
		}
		var ierr *strbytes.InvalidUTF8Error
		if !errors.As(err, &ierr) {
			t.Errorf("%v: unexpected error: %v", i, err)
			continue
		}
		if got, want := ierr.Offset, tc.offset; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if buf != nil {
			t.Errorf("%v: expected a nil buffer", i)
		}
	}
}

func TestMustNew(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, strbytes.ErrInvalidUTF8) {
			t.Errorf("unexpected panic: %v", r)
		}
	}()
	strbytes.MustNew("\xc0")
}

func TestBufferCopies(t *testing.T) {
	input := []byte("abc")
	buf, err := strbytes.FromBytes(input)
	if err != nil {
		t.Fatal(err)
	}
	input[0] = 0xFF
	if got, want := buf.String(), "abc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	out := buf.Bytes()
	out[0] = 0xFF
	if got, want := buf.String(), "abc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	dst := buf.AppendTo([]byte(">"))
	if got, want := dst, []byte(">abc"); !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	cpy := buf.Clone()
	if err := cpy.Mutate(func(v *strbytes.View) error { return v.Set(0, 'A') }); err != nil {
		t.Fatal(err)
	}
	if got, want := cpy.String(), "Abc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := buf.String(), "abc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReset(t *testing.T) {
	buf := strbytes.MustNew("abc")
	if err := buf.Reset(); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.Len(), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := buf.MutateResize(func(v *strbytes.View) error {
		return v.Splice(0, 0, []byte("xyz"))
	}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "xyz"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
