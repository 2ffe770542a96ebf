/*
Package assoc implements an owned associative map from unique keys to values.

Insert always overwrites, and hands the previous value back to the caller.
The Entry API inserts only if a key is absent and never overwrites:

	scores := assoc.New[string, int]()
	scores.Insert("Blue", 10)
	scores.Insert("Blue", 25)          // overwrites, returns 10
	scores.EntryOrInsert("Yellow", 50) // inserts
	scores.EntryOrInsert("Blue", 50)   // leaves 25 in place

The iteration order of a map is unspecified and must not be relied upon.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package assoc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}
