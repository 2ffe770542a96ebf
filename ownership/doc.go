/*
Package ownership tracks who may touch a container, and how.

Every container of this module embeds a State. A State knows three things:
whether the container has been moved away from its current handle, how many
shared borrows are outstanding, and whether an exclusive borrow is held.
The rules are the familiar ones:

	any number of shared borrows  XOR  exactly one exclusive borrow

and a moved value may not be used again, not even for reading. Violations
are fatal: they panic with a *Violation, which unwraps to one of the
sentinel errors of this package. Recover may be used to turn such a
panic into an error value, e.g. in tests.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ownership

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}
