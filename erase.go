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

// Erase removes the value the cursor is positioned at.
//
// The enclosing leaf directory either keeps enough children and merely has
// its ancestor extents shrunk, or it underflows and is dissolved, with its
// surviving children re-inserted through the ordinary insertion path.
// Dissolving a leaf whose non-root parent would underflow in turn is not
// supported: such an erase fails with ErrUnderflowAtAncestor and leaves the
// tree unchanged. The root is exempt from the lower fanout bound.
//
// Erasing invalidates the search results the cursor belongs to, as well as
// any other outstanding search results.
func (t *Tree[K, V]) Erase(cur *Cursor[K, V]) error {
	ns := cur.store()
	if ns == nil || ns.typ != Value {
		return fmt.Errorf("%w: cursor is not positioned at a value node", ErrUnknownNodeType)
	}
	bbErased := ns.box
	dirNs := ns.parent

	willUnderflow := !dirNs.isRoot() && dirNs.count-1 < t.cfg.MinFanout
	if willUnderflow && !dirNs.parent.isRoot() && dirNs.parent.count-1 < t.cfg.MinFanout {
		// Dissolving the leaf would underflow its parent as well. Reducing
		// the tree and re-inserting from higher levels is not implemented;
		// bail out before touching anything.
		return fmt.Errorf("%w: dissolving leaf %v would underflow its parent",
			ErrUnderflowAtAncestor, dirNs.box)
	}

	// Remove the entry from the leaf directory. This shifts the surviving
	// siblings within the child storage.
	dir := dirNs.dir
	idx := indexOfStore(dir.children, ns)
	if idx < 0 {
		return fmt.Errorf("%w: cursor refers to a node no longer in the tree", ErrUnknownNodeType)
	}
	dir.children = append(dir.children[:idx], dir.children[idx+1:]...)
	dir.children = clearTail(dir.children)
	dirNs.count--
	dirNs.validPointer = false
	dirNs.resetParentPointers()

	T().Debugf("rtree: erased value with box %v from leaf with %d remaining", bbErased, dirNs.count)

	if !willUnderflow {
		t.shrinkTreeUpward(dirNs, bbErased)
		t.size--
		return nil
	}

	// Dissolve the leaf directory and re-insert all its surviving children.
	orphans := dir.children
	dir.children = nil

	childNs := dirNs
	parentNs := dirNs.parent
	pdir := parentNs.dir
	idx = indexOfStore(pdir.children, childNs)
	pdir.children = append(pdir.children[:idx], pdir.children[idx+1:]...)
	pdir.children = clearTail(pdir.children)
	parentNs.count--
	parentNs.invalidateChildPointers()
	parentNs.resetParentPointers()
	t.pack(parentNs)
	t.packUpward(parentNs)

	if parentNs.isRoot() && parentNs.count == 0 {
		// The dissolved leaf was the root's only child. A childless
		// non-leaf root cannot receive insertions; start over with an
		// empty leaf root.
		t.root = newLeafDirectory[K, V](t.cfg.Dimensions)
	}

	for len(orphans) > 0 {
		orphan := orphans[len(orphans)-1]
		orphans = orphans[:len(orphans)-1]
		orphan.parent = nil
		if err := t.insertNode(orphan); err != nil {
			return err
		}
	}
	t.size--
	return nil
}

// shrinkTreeUpward repacks the extent of ns if the removed box may have been
// on its outer envelope, and recurses upward for as long as extents keep
// changing.
func (t *Tree[K, V]) shrinkTreeUpward(ns *nodeStore[K, V], bbAffected geom.Rect[K]) {
	if ns == nil {
		return
	}
	if !ns.box.ContainsAtBoundary(bbAffected) {
		return
	}
	originalBox := ns.box
	if !t.pack(ns) {
		// The extent hasn't changed. There is no point going upward.
		return
	}
	t.shrinkTreeUpward(ns.parent, originalBox)
}

// indexOfStore locates a node store inside a child sequence by identity.
func indexOfStore[K geom.Scalar, V any](children []nodeStore[K, V], ns *nodeStore[K, V]) int {
	for i := range children {
		if &children[i] == ns {
			return i
		}
	}
	return -1
}

// clearTail zeroes the slot beyond the last element so that removed entries
// do not keep payloads alive through the backing array.
func clearTail[K geom.Scalar, V any](children []nodeStore[K, V]) []nodeStore[K, V] {
	if cap(children) > len(children) {
		children[:len(children)+1][len(children)] = nodeStore[K, V]{}
	}
	return children
}
