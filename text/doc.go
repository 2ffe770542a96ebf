/*
Package text implements a growable, owned buffer of UTF-8 encoded text.

A Buffer always holds valid UTF-8. Its length is counted in bytes, not in
characters: for text outside of ASCII the two numbers differ, and every
position handed to or returned from this package is a byte offset. Slicing
a buffer never splits a multi-byte character; offsets which do not fall on
a character boundary are rejected.

Buffers may be iterated in three units:

	Bytes()      raw bytes
	Chars()      Unicode scalar values (runes)
	Graphemes()  user-perceived characters, per UAX #29

Concat consumes its first argument: the buffer handed in is moved into the
result and must not be used afterwards.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package text

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}
