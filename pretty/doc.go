/*
Package pretty renders the node structure of an R*-tree as a colorized
outline, for exploring small trees on a terminal.

BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in the rtree package.

*/
package pretty

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
