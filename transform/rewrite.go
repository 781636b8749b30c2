// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package transform

import (
	"cloudeng.io/strbytes"
	"cloudeng.io/text/textutil"
)

// Rewrite returns a Func that applies the first of rules that matches
// the View's contents. Rules are of the form s/<match>/<replacement>/ as
// parsed by textutil.NewRewriteRules. Since a rewrite will generally change
// the length of the contents it should be used with MutateResize.
func Rewrite(rules textutil.RewriteRules) Func {
	return func(v *strbytes.View) error {
		contents, err := readAll(v)
		if err != nil {
			return err
		}
		rewritten := rules.ReplaceAllStringFirst(string(contents))
		if rewritten == string(contents) {
			return nil
		}
		return replaceAll(v, []byte(rewritten))
	}
}

// ParseRewrite is a convenience function that parses the supplied rules
// and returns the corresponding Rewrite Func.
func ParseRewrite(rules ...string) (Func, error) {
	rw, err := textutil.NewRewriteRules(rules...)
	if err != nil {
		return nil, err
	}
	return Rewrite(rw), nil
}
