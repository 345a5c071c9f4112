/*
Package dataset loads rectangle datasets from plain text files into an
R*-tree.

Files are parsed line by line, each line holding the four corner
coordinates of a 2-dimensional rectangle followed by an optional tag:

	0 0 15 20 first rectangle
	-2 -1 1 2 second rectangle

Parsing runs asynchronously; parsed records are published in batches
through a broadcaster, so multiple consumers can observe the progress of a
long-running load.

BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in the rtree package.

*/
package dataset

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
