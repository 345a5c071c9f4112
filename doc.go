/*
Package rtree implements a generic in-memory R*-tree: a height-balanced,
multi-way spatial index over axis-aligned bounding boxes in N dimensions.

R-trees organize spatial objects by grouping nearby bounding boxes under
common directory nodes, so that point queries only descend into subtrees
whose extent contains the query point. The R*-variant (Beckmann, Kriegel,
Schneider, Seeger 1990) improves on Guttman's original insertion heuristics
by choosing insertion paths by overlap increase and by splitting overfull
nodes along the axis with the minimum sum of margins.

A tree is parameterized by a numeric coordinate type K and a payload type V:

	tree, err := rtree.New[float64, string](rtree.Config{})
	if err != nil { … }
	tree.Insert(geom.Point[float64]{0, 0}, geom.Point[float64]{15, 20}, "first")

	res, err := tree.Search(geom.Point[float64]{6, 6})
	for box, v := range res.Range() {
		…
	}

Trees are single-threaded data structures: concurrent mutation is not
supported, and mutating the tree invalidates outstanding search results.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package rtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
