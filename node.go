package rtree

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import (
	"github.com/npillmayer/rtree/geom"
)

// NodeType discriminates the payload of a tree node.
type NodeType int8

const (
	// Unspecified marks a node store without a payload.
	Unspecified NodeType = iota
	// DirectoryLeaf is a directory node whose children are value nodes.
	DirectoryLeaf
	// DirectoryNonleaf is a directory node whose children are directories.
	DirectoryNonleaf
	// Value is a node carrying a user payload.
	Value
)

func (nt NodeType) String() string {
	switch nt {
	case Unspecified:
		return "unspecified"
	case DirectoryLeaf:
		return "directory-leaf"
	case DirectoryNonleaf:
		return "directory-nonleaf"
	case Value:
		return "value"
	}
	return "???"
}

// nodeStore is the uniform handle for all tree nodes. It carries the node's
// type tag, the tight extent of its subtree (or the value's own box), a
// non-owning back reference to the enclosing node store, and the payload
// selected by the tag.
//
// Children are held by value in a contiguous slice, so any reorder or
// reallocation of a child sequence leaves the parent fields of the moved
// elements' own children stale. validPointer tracks this: it is false
// whenever the subtree below this store may hold stale parent fields, and
// resetParentPointers re-establishes them before they are dereferenced.
type nodeStore[K geom.Scalar, V any] struct {
	typ          NodeType
	box          geom.Rect[K]
	parent       *nodeStore[K, V]
	dir          *directoryNode[K, V]
	val          *valueNode[V]
	count        int
	validPointer bool
}

// directoryNode owns an ordered sequence of child node stores.
type directoryNode[K geom.Scalar, V any] struct {
	children []nodeStore[K, V]
}

// valueNode carries an opaque user payload.
type valueNode[V any] struct {
	value V
}

func newLeafDirectory[K geom.Scalar, V any](dim int) nodeStore[K, V] {
	return nodeStore[K, V]{
		typ: DirectoryLeaf,
		box: geom.EmptyRect[K](dim),
		dir: &directoryNode[K, V]{},
	}
}

func newNonleafDirectory[K geom.Scalar, V any](dim int) nodeStore[K, V] {
	return nodeStore[K, V]{
		typ: DirectoryNonleaf,
		box: geom.EmptyRect[K](dim),
		dir: &directoryNode[K, V]{},
	}
}

func newValueNode[K geom.Scalar, V any](box geom.Rect[K], value V) nodeStore[K, V] {
	return nodeStore[K, V]{
		typ:          Value,
		box:          box,
		val:          &valueNode[V]{value: value},
		validPointer: true,
	}
}

func (ns *nodeStore[K, V]) isDirectory() bool {
	return ns.typ == DirectoryLeaf || ns.typ == DirectoryNonleaf
}

func (ns *nodeStore[K, V]) isRoot() bool {
	return ns.parent == nil
}

// resetParentPointers re-establishes the parent back references of the
// subtree below ns. Subtrees whose validPointer flag is still set are
// skipped; the walk clears the flag of every store it fixes up.
func (ns *nodeStore[K, V]) resetParentPointers() {
	if ns.validPointer {
		return
	}
	if !ns.isDirectory() {
		return
	}
	for i := range ns.dir.children {
		child := &ns.dir.children[i]
		child.parent = ns
		child.resetParentPointers()
	}
	ns.validPointer = true
}

// invalidateChildPointers marks ns and every direct child as holding
// potentially stale back references. Used after the child slice of ns has
// been reallocated, which moves every child and thereby leaves all
// grandchildren's parent fields pointing at the old storage.
func (ns *nodeStore[K, V]) invalidateChildPointers() {
	ns.validPointer = false
	for i := range ns.dir.children {
		ns.dir.children[i].validPointer = false
	}
}

// calcExtent computes the tight enclosing box of the children. The
// directory must not be empty.
func (d *directoryNode[K, V]) calcExtent() geom.Rect[K] {
	return boundingBoxOfStores(d.children)
}

func boundingBoxOfStores[K geom.Scalar, V any](children []nodeStore[K, V]) geom.Rect[K] {
	bb := children[0].box.Clone()
	for i := 1; i < len(children); i++ {
		geom.EnlargeToFit(&bb, children[i].box)
	}
	return bb
}

// pack recomputes the tight extent of a directory store from its children
// and reports whether the extent changed. An empty directory resets to the
// all-zero box.
func (t *Tree[K, V]) pack(ns *nodeStore[K, V]) bool {
	if !ns.isDirectory() {
		return false
	}
	var newBox geom.Rect[K]
	if len(ns.dir.children) == 0 {
		newBox = geom.EmptyRect[K](t.cfg.Dimensions)
	} else {
		newBox = ns.dir.calcExtent()
	}
	changed := !newBox.Equal(ns.box)
	ns.box = newBox
	return changed
}

// packUpward repacks the ancestor chain of ns, stopping as soon as an
// ancestor's extent no longer changes.
func (t *Tree[K, V]) packUpward(ns *nodeStore[K, V]) {
	propagate := true
	for p := ns.parent; propagate && p != nil; p = p.parent {
		propagate = t.pack(p)
	}
}
