package rtree

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import (
	"fmt"

	"github.com/npillmayer/rtree/geom"
)

// insertNode places a prepared node store into the leaf directory chosen by
// the insertion path, splitting the leaf if it overflows. It is shared
// between the public Insert and the orphan re-insertion of erase.
func (t *Tree[K, V]) insertNode(ns nodeStore[K, V]) error {
	nsBox := ns.box
	dirNs, err := t.findNodeForInsertion(nsBox)
	if err != nil {
		return err
	}
	dir := dirNs.dir

	// Link the new entry into the chosen leaf. The children of a leaf are
	// value nodes, which have no children of their own, so the reallocation
	// of the child slice leaves no back reference to fix up.
	ns.parent = dirNs
	dir.children = append(dir.children, ns)
	dirNs.count++

	if dirNs.count > t.cfg.MaxFanout {
		t.splitNode(dirNs)
		return nil
	}

	if dirNs.count == 1 {
		dirNs.box = nsBox.Clone()
	} else {
		geom.EnlargeToFit(&dirNs.box, nsBox)
	}

	// Propagate the bounding box update up the tree all the way to the root.
	bb := dirNs.box
	for p := dirNs.parent; p != nil; p = p.parent {
		geom.EnlargeToFit(&p.box, bb)
	}
	return nil
}

// findNodeForInsertion descends from the root and picks the leaf directory
// that should receive a box.
//
// At a level that contains at least one leaf directory, candidates are
// ranked by overlap increase cost, with area enlargement and area as
// strictly subordinate tie-breakers. At a level of non-leaf directories
// only, candidates are ranked by area enlargement with area as tie-breaker.
func (t *Tree[K, V]) findNodeForInsertion(bb geom.Rect[K]) (*nodeStore[K, V], error) {
	dst := &t.root

	for level := 0; level < t.cfg.MaxDepth; level++ {
		if dst.typ == DirectoryLeaf {
			return dst, nil
		}
		children := dst.dir.children

		hasLeafDir := false
		for i := range children {
			if children[i].typ == DirectoryLeaf {
				hasLeafDir = true
				break
			}
		}

		if hasLeafDir {
			// Compare the amounts of overlap increase.
			var minOverlap, minEnlargement, minArea K
			var picked *nodeStore[K, V]

			for i := range children {
				cand := &children[i]
				overlap := t.overlapCost(bb, cand.dir)
				enlargement := geom.AreaEnlargement(cand.box, bb)
				area := geom.Area(cand.box)

				pickThis := false
				switch {
				case picked == nil:
					pickThis = true
				case overlap < minOverlap:
					pickThis = true
				case overlap == minOverlap && enlargement < minEnlargement:
					pickThis = true
				case overlap == minOverlap && enlargement == minEnlargement && area < minArea:
					pickThis = true
				}
				if pickThis {
					minOverlap = overlap
					minEnlargement = enlargement
					minArea = area
					picked = cand
				}
			}
			dst = picked
			continue
		}

		// Compare the costs of area enlargements.
		var minEnlargement, minArea K
		var picked *nodeStore[K, V]

		for i := range children {
			cand := &children[i]
			enlargement := geom.AreaEnlargement(cand.box, bb)
			area := geom.Area(cand.box)

			pickThis := false
			switch {
			case picked == nil:
				pickThis = true
			case enlargement < minEnlargement:
				pickThis = true
			case enlargement == minEnlargement && area < minArea:
				pickThis = true
			}
			if pickThis {
				minEnlargement = enlargement
				minArea = area
				picked = cand
			}
		}
		dst = picked
	}

	return nil, fmt.Errorf("%w: no leaf found within %d levels", ErrTreeTooDeep, t.cfg.MaxDepth)
}

// overlapCost sums the intersection volumes of bb with every entry of a
// candidate directory.
func (t *Tree[K, V]) overlapCost(bb geom.Rect[K], dir *directoryNode[K, V]) K {
	var cost K
	for i := range dir.children {
		cost += geom.Intersection(dir.children[i].box, bb)
	}
	return cost
}
