/*
Package seq implements a growable, owned sequence of homogeneous elements.

A Sequence stores its elements contiguously in insertion order. Appending is
amortized O(1). Elements may be accessed by index, either with Index, which
treats an index beyond the length as a fatal error, or with Get, which
reports absence.

Access follows the borrow rules of package ownership: while a Ref to an
element is held, or while the sequence is being iterated, the sequence may
not grow.

	s := seq.Of(1, 2, 3, 4, 5)
	first, _ := s.Borrow(0)
	s.Append(6)          // fatal: first still borrows s
	first.Release()
	s.Append(6)          // fine

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}
