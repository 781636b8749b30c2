// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package edit

import (
	"slices"
	"testing"
)

func TestSort(t *testing.T) {
	ins := Insert
	rpl := Replace
	del := Delete
	j := func(ds ...Delta) []Delta {
		return ds
	}
	for i, tc := range []struct {
		before, after []Delta
	}{
		{
			j(ins(11, "a"), ins(11, "b")),
			j(ins(11, "a"), ins(11, "b"))},
		{
			j(ins(11, "b"), ins(11, "a")),
			j(ins(11, "b"), ins(11, "a"))},
		{
			j(rpl(11, 2, "b"), rpl(11, 2, "a")),
			j(rpl(11, 2, "b"), rpl(11, 2, "a"))},
		{
			j(ins(11, "ii"), del(11, 2), rpl(11, 2, "rr")),
			j(del(11, 2), rpl(11, 2, "rr"), ins(11, "ii"))},
		{
			j(rpl(11, 2, "rr"), ins(11, "ii"), del(11, 2)),
			j(del(11, 2), rpl(11, 2, "rr"), ins(11, "ii"))},
		{
			j(ins(11, "ii"), ins(11, "jj"), rpl(11, 2, "rr"), del(11, 2)),
			j(del(11, 2), rpl(11, 2, "rr"), ins(11, "ii"), ins(11, "jj"))},
		{
			j(ins(13, "ii"), ins(11, "jj"), rpl(11, 2, "rr"), del(11, 2)),
			j(del(11, 2), rpl(11, 2, "rr"), ins(11, "jj"), ins(13, "ii"))},
		{
			j(ins(11, "jj"), rpl(12, 2, "rr"), del(13, 2)),
			j(ins(11, "jj"), rpl(12, 2, "rr"), del(13, 2))},
		{
			j(ins(13, "jj"), rpl(12, 2, "rr"), del(11, 2)),
			j(del(11, 2), rpl(12, 2, "rr"), ins(13, "jj"))},
	} {
		before := slices.Clone(tc.before)
		if got, want := sortDeltas(tc.before), tc.after; !slices.Equal(got, want) {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		if got, want := tc.before, before; !slices.Equal(got, want) {
			t.Errorf("%v: input was modified: got %v, want %v", i, got, want)
		}
	}
}

func TestOverwrite(t *testing.T) {
	for i, tc := range []struct {
		a, b, want string
	}{
		{"", "", ""},
		{"abc", "", "abc"},
		{"abc", "x", "xbc"},
		{"abc", "xyz", "xyz"},
		{"ab", "xyz", "xyz"},
	} {
		if got := overwrite(tc.a, tc.b); got != tc.want {
			t.Errorf("%v: got %q, want %q", i, got, tc.want)
		}
	}
}
