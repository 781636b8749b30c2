// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package strbytes provides safe, temporary access to the bytes of a UTF-8
// string. A Buffer holds text that is always valid UTF-8. Its bytes can be
// read and written directly, but only from within a transform passed to one
// of its Mutate methods. Once the transform returns, the bytes are validated
// and accepted only if they are valid UTF-8; otherwise the Buffer is left
// exactly as it was and an error describing the first invalid byte sequence
// is returned. No unsafe conversions are used.
//
//	buf := strbytes.MustNew("Lorem ipsum dolor sit amet")
//	err := buf.Mutate(func(v *strbytes.View) error {
//	    for i, c := range v.All() {
//	        if c == ' ' {
//	            v.Set(i, '-')
//	        }
//	    }
//	    return nil
//	})
//	// buf.String() == "Lorem-ipsum-dolor-sit-amet"
//
// Each mutation is a transaction: the transform operates on a private copy
// of the bytes which replaces the Buffer's contents only after successful
// validation. Mutate requires that the length of the bytes is unchanged,
// MutateResize allows the length to change. MutateBytes and
// MutateBytesResize provide the same guarantees for transforms that
// prefer to work with a []byte.
package strbytes
