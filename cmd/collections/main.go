// Command collections prints a walkthrough of owned containers and the
// ownership and borrowing rules for them.
package main

import (
	"os"

	"github.com/npillmayer/collections/walkthrough"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	if err := walkthrough.Run(os.Stdout, walkthrough.ConfigFromTerminal()); err != nil {
		gtrace.CoreTracer.Errorf("walkthrough: %v", err)
		os.Exit(1)
	}
}
