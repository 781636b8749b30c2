// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"cloudeng.io/errors"
	"cloudeng.io/strbytes/transform"
)

// Step represents a single transformation in a config file.
type Step struct {
	Op    string   `yaml:"op"`
	From  string   `yaml:"from"`
	To    string   `yaml:"to"`
	Rules []string `yaml:"rules"`
}

// Config represents the sequence of steps to be applied to each file.
type Config struct {
	Steps []Step `yaml:"steps"`
}

// Transform returns the transform.Func for the step.
func (s Step) Transform() (transform.Func, error) {
	switch s.Op {
	case "upper":
		return transform.ASCIIUpper, nil
	case "lower":
		return transform.ASCIILower, nil
	case "reverse":
		return transform.ReverseRunes, nil
	case "replace":
		from, err := asciiFlag("from", s.From)
		if err != nil {
			return nil, err
		}
		to, err := asciiFlag("to", s.To)
		if err != nil {
			return nil, err
		}
		return transform.ReplaceASCII(from, to), nil
	case "rewrite":
		if len(s.Rules) == 0 {
			return nil, fmt.Errorf("rewrite: no rules specified")
		}
		return transform.ParseRewrite(s.Rules...)
	}
	return nil, fmt.Errorf("unsupported op: %q", s.Op)
}

// Transform returns a single transform.Func that applies all of the
// steps in order. All invalid steps are reported.
func (c Config) Transform() (transform.Func, error) {
	if len(c.Steps) == 0 {
		return nil, fmt.Errorf("no steps specified")
	}
	errs := &errors.M{}
	fns := make([]transform.Func, 0, len(c.Steps))
	for i, step := range c.Steps {
		fn, err := step.Transform()
		if err != nil {
			errs.Append(fmt.Errorf("step %d: %w", i, err))
			continue
		}
		fns = append(fns, fn)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return transform.Chain(fns...), nil
}

// Resizes returns true if any of the steps may change the length
// of the contents.
func (c Config) Resizes() bool {
	for _, step := range c.Steps {
		if step.Op == "rewrite" {
			return true
		}
	}
	return false
}
