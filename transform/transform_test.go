// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package transform_test

import (
	"fmt"
	"testing"

	"cloudeng.io/errors"
	"cloudeng.io/strbytes"
	"cloudeng.io/strbytes/internal/utf8gen"
	"cloudeng.io/strbytes/transform"
)

func ExampleChain() {
	buf := strbytes.MustNew("Lorem ipsum dolor sit amet")
	err := buf.Mutate(transform.Chain(
		transform.ReplaceASCII(' ', '-'),
		transform.ASCIIUpper,
	))
	fmt.Println(buf, err)
	// Output:
	// LOREM-IPSUM-DOLOR-SIT-AMET <nil>
}

func TestASCIICase(t *testing.T) {
	for i, tc := range []struct {
		input, upper, lower string
	}{
		{"", "", ""},
		{"abc", "ABC", "abc"},
		{"Hello, World!", "HELLO, WORLD!", "hello, world!"},
		{"café Ünïcode", "CAFé ÜNïCODE", "café Ünïcode"},
		{"Hello 世界", "HELLO 世界", "hello 世界"},
	} {
		buf := strbytes.MustNew(tc.input)
		if err := buf.Mutate(transform.ASCIIUpper); err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if got, want := buf.String(), tc.upper; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
		buf = strbytes.MustNew(tc.input)
		if err := buf.Mutate(transform.ASCIILower); err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if got, want := buf.String(), tc.lower; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}
}

func TestReplaceASCII(t *testing.T) {
	buf := strbytes.MustNew("a b\tc d")
	if err := buf.Mutate(transform.ReplaceASCII(' ', '_')); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "a_b\tc_d"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for _, fn := range []transform.Func{
		transform.ReplaceASCII(0xC3, 'a'),
		transform.ReplaceASCII('a', 0xC3),
	} {
		err := buf.Mutate(fn)
		if !errors.Is(err, transform.ErrNotASCII) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if got, want := buf.String(), "a_b\tc_d"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReverseRunes(t *testing.T) {
	for i, tc := range []struct {
		input, output string
	}{
		{"", ""},
		{"a", "a"},
		{"Hello 世界", "界世 olleH"},
		{"世界文中", "中文界世"},
		{"世界h文中", "中文h界世"},
		{"a\U0001F600b", "b\U0001F600a"},
	} {
		buf := strbytes.MustNew(tc.input)
		if err := buf.Mutate(transform.ReverseRunes); err != nil {
			t.Fatalf("%v: %v", i, err)
		}
		if got, want := buf.String(), tc.output; got != want {
			t.Errorf("%v: got %q, want %q", i, got, want)
		}
	}

	gen := utf8gen.NewRandom()
	for _, s := range []string{
		gen.WithRuneLen(1, 1033),
		gen.WithRuneLen(2, 1033),
		gen.WithRuneLen(3, 1033),
		gen.WithRuneLen(4, 1033),
		gen.AllRuneLens(1033),
	} {
		buf := strbytes.MustNew(s)
		twice := transform.Chain(transform.ReverseRunes, transform.ReverseRunes)
		if err := buf.Mutate(twice); err != nil {
			t.Fatalf("seed %v: %v", gen.Seed(), err)
		}
		if got, want := buf.String(), s; got != want {
			t.Errorf("seed %v: reverse failed for %q", gen.Seed(), s)
		}
	}
}

func TestRewrite(t *testing.T) {
	fn, err := transform.ParseRewrite("s/colou?r/hue/", "s%ü%ue%")
	if err != nil {
		t.Fatal(err)
	}
	buf := strbytes.MustNew("colour and color")
	if err := buf.MutateResize(fn); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "hue and hue"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Only the first matching rule is applied.
	buf = strbytes.MustNew("Tschüss, color")
	if err := buf.MutateResize(fn); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "Tschüss, hue"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	buf = strbytes.MustNew("Tschüss")
	if err := buf.MutateResize(fn); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "Tschuess"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// No match, no change, even on a fixed length view.
	buf = strbytes.MustNew("nothing")
	if err := buf.Mutate(fn); err != nil {
		t.Fatal(err)
	}

	// Length changing rewrites require MutateResize.
	buf = strbytes.MustNew("color")
	if err := buf.Mutate(fn); !errors.Is(err, strbytes.ErrFixedLength) {
		t.Errorf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "color"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := transform.ParseRewrite("s/a/b"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestChainAtomic(t *testing.T) {
	buf := strbytes.MustNew("abc")
	boom := errors.New("boom")
	err := buf.Mutate(transform.Chain(
		transform.ASCIIUpper,
		func(*strbytes.View) error { return boom },
	))
	if !errors.Is(err, boom) {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "abc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
