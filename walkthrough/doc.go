/*
Package walkthrough prints a guided tour of the collections module.

Each section exercises one container and writes one line per observed
result, e.g.

	The third element of v is 3!
	s5 is now 'Hello, world!'

Output goes to an io.Writer. Section headings are colored if the Config
asks for it, which ConfigFromTerminal does for interactive terminals.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package walkthrough

import (
	"github.com/npillmayer/collections"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return collections.T()
}
