package rtree

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import (
	"slices"

	"github.com/npillmayer/rtree/geom"
)

// minValuePos tracks the position of the minimum in a sequence of candidate
// costs. The first candidate with the minimal value wins.
type minValuePos[K geom.Scalar] struct {
	value K
	pos   int
	count int
}

func (m *minValuePos[K]) assign(value K, pos int) {
	if m.count == 0 || value < m.value {
		m.value = value
		m.pos = pos
	}
	m.count++
}

// splitNode performs an R*-style split of an overfull directory store:
// the split axis is the one with the minimum sum of half-margins over all
// candidate distributions, and the distribution along that axis is the one
// with the minimum overlap between the two groups.
//
// The node must hold MaxFanout+1 children on entry. Splits cascade upward
// when the parent overflows in turn.
func (t *Tree[K, V]) splitNode(ns *nodeStore[K, V]) {
	dir := ns.dir
	children := dir.children

	t.sortBySplitAxis(children)

	dist := t.pickOptimalDistribution(children)
	group1Size := t.cfg.MinFanout - 1 + dist

	// Move the children of group 2 into a brand-new sibling node of the
	// same type as the node being split.
	sibling := newLeafDirectory[K, V](t.cfg.Dimensions)
	sibling.typ = ns.typ
	sibling.dir.children = append(sibling.dir.children, children[group1Size:]...)
	sibling.count = len(sibling.dir.children)
	t.pack(&sibling)

	// Shrink the original node down to group 1.
	for i := group1Size; i < len(children); i++ {
		children[i] = nodeStore[K, V]{}
	}
	dir.children = children[:group1Size]
	ns.count = group1Size
	t.pack(ns)

	T().Debugf("rtree: split into %d + %d children", ns.count, sibling.count)

	if ns.isRoot() {
		// Allocate a new non-leaf root and move the original root and the
		// new sibling in as its two children.
		oldRoot := t.root
		t.root = newNonleafDirectory[K, V](t.cfg.Dimensions)
		t.root.dir.children = append(t.root.dir.children, oldRoot, sibling)
		t.root.count = 2
		t.pack(&t.root)
		// Both children moved into fresh storage; their subtrees' back
		// references all point at stale locations.
		t.root.invalidateChildPointers()
		t.root.resetParentPointers()
		return
	}

	// Place the new sibling under the same parent as ns. Appending may
	// reallocate the parent's child slice, which moves every sibling of ns
	// and leaves every back reference below the parent stale.
	parent := ns.parent
	sibling.parent = parent
	parent.dir.children = append(parent.dir.children, sibling)
	parent.count++
	parentBoxChanged := t.pack(parent)

	parent.invalidateChildPointers()
	parent.resetParentPointers()

	if parent.count > t.cfg.MaxFanout {
		// The parent node is overfull. Split it and keep working upward.
		t.splitNode(parent)
	} else if parentBoxChanged {
		// The extent of the parent node has changed. Propagate upward.
		t.packUpward(parent)
	}
}

// sortBySplitAxis picks the split axis with the minimum sum of half-margins
// and leaves the children sorted along it.
func (t *Tree[K, V]) sortBySplitAxis(children []nodeStore[K, V]) {
	var minMarginDim minValuePos[K]

	for dim := 0; dim < t.cfg.Dimensions; dim++ {
		t.sortByDimension(dim, children)

		var sumOfMargins K
		for dist := 1; dist <= t.cfg.maxDistributions(); dist++ {
			// The first group contains MinFanout-1+dist entries, the second
			// group the rest.
			cut := t.cfg.MinFanout - 1 + dist
			bb1 := boundingBoxOfStores(children[:cut])
			bb2 := boundingBoxOfStores(children[cut:])
			sumOfMargins += geom.HalfMargin(bb1) + geom.HalfMargin(bb2)
		}
		T().Debugf("rtree: split axis %d has margin sum %v", dim, sumOfMargins)
		minMarginDim.assign(sumOfMargins, dim)
	}

	t.sortByDimension(minMarginDim.pos, children)
}

// sortByDimension stably sorts children by the lower, then the upper box
// coordinate of the given axis. Sorting reorders the child storage, so the
// back references of all grandchildren become stale.
func (t *Tree[K, V]) sortByDimension(dim int, children []nodeStore[K, V]) {
	slices.SortStableFunc(children, func(a, b nodeStore[K, V]) int {
		switch {
		case a.box.Start[dim] < b.box.Start[dim]:
			return -1
		case a.box.Start[dim] > b.box.Start[dim]:
			return 1
		case a.box.End[dim] < b.box.End[dim]:
			return -1
		case a.box.End[dim] > b.box.End[dim]:
			return 1
		}
		return 0
	})
	for i := range children {
		children[i].validPointer = false
	}
}

// pickOptimalDistribution returns the 1-based distribution index with the
// minimum overlap between the two groups along the already chosen axis.
func (t *Tree[K, V]) pickOptimalDistribution(children []nodeStore[K, V]) int {
	var minOverlapDist minValuePos[K]

	for dist := 1; dist <= t.cfg.maxDistributions(); dist++ {
		cut := t.cfg.MinFanout - 1 + dist
		bb1 := boundingBoxOfStores(children[:cut])
		bb2 := boundingBoxOfStores(children[cut:])
		overlap := geom.Intersection(bb1, bb2)
		minOverlapDist.assign(overlap, dist)
	}
	return minOverlapDist.pos
}
