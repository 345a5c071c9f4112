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

// Tree is an in-memory R*-tree over axis-aligned bounding boxes with
// coordinate type K and payload type V.
//
// A tree must be created with New. Trees are not safe for concurrent
// mutation; concurrent reads without a writer are fine.
type Tree[K geom.Scalar, V any] struct {
	cfg  Config
	root nodeStore[K, V]
	size int
}

// New creates an empty tree with validated configuration. The root starts
// out as an empty leaf directory.
func New[K geom.Scalar, V any](cfg Config) (*Tree[K, V], error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K, V]{cfg: cfg}
	t.root = newLeafDirectory[K, V](cfg.Dimensions)
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config {
	return t.cfg
}

// Empty reports whether the tree holds no values.
func (t *Tree[K, V]) Empty() bool {
	return t.root.count == 0
}

// Size returns the number of values stored in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Extent returns the bounding box of the root, i.e. the tight extent of
// everything stored in the tree. An empty tree has an all-zero extent.
func (t *Tree[K, V]) Extent() geom.Rect[K] {
	return t.root.box.Clone()
}

// Height returns the number of directory levels in the tree. An empty tree
// has height 1 (the root leaf directory).
func (t *Tree[K, V]) Height() int {
	h := 1
	for ns := &t.root; ns.typ == DirectoryNonleaf; {
		h++
		ns = &ns.dir.children[0]
	}
	return h
}

// Insert stores a value under the bounding box spanned by the two corner
// points. Both points must have the configured dimensionality.
func (t *Tree[K, V]) Insert(start, end geom.Point[K], value V) error {
	if len(start) != t.cfg.Dimensions || len(end) != t.cfg.Dimensions {
		return fmt.Errorf("%w: corner points of dimensionality %d/%d in a %d-dimensional tree",
			geom.ErrDimensionMismatch, len(start), len(end), t.cfg.Dimensions)
	}
	T().Debugf("rtree: insert box %v", geom.NewRect(start, end))
	box := geom.NewRect(start.Clone(), end.Clone())
	ns := newValueNode[K, V](box, value)
	if err := t.insertNode(ns); err != nil {
		return err
	}
	t.size++
	return nil
}

// NodeInfo describes a node during a Walk traversal.
type NodeInfo[K geom.Scalar] struct {
	Type  NodeType
	Box   geom.Rect[K]
	Level int
}

// Walk visits every node of the tree in pre-order, directories before their
// children.
func (t *Tree[K, V]) Walk(visitor func(NodeInfo[K])) {
	t.walkDescend(&t.root, 0, visitor)
}

func (t *Tree[K, V]) walkDescend(ns *nodeStore[K, V], level int, visitor func(NodeInfo[K])) {
	visitor(NodeInfo[K]{Type: ns.typ, Box: ns.box.Clone(), Level: level})
	if !ns.isDirectory() {
		return
	}
	for i := range ns.dir.children {
		t.walkDescend(&ns.dir.children[i], level+1, visitor)
	}
}
