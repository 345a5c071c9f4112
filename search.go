package rtree

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import (
	"fmt"
	"iter"

	"github.com/npillmayer/rtree/geom"
)

// SearchResults collects the value nodes matched by a point query, in the
// traversal order of the tree at the time of the call.
//
// Results borrow from the tree: mutating the tree invalidates them.
type SearchResults[K geom.Scalar, V any] struct {
	store []*nodeStore[K, V]
}

// Search returns all values whose bounding box contains pt, pruning every
// subtree whose extent does not contain the point.
func (t *Tree[K, V]) Search(pt geom.Point[K]) (*SearchResults[K, V], error) {
	if len(pt) != t.cfg.Dimensions {
		return nil, fmt.Errorf("%w: point of dimensionality %d in a %d-dimensional tree",
			geom.ErrDimensionMismatch, len(pt), t.cfg.Dimensions)
	}
	results := &SearchResults[K, V]{}
	if err := t.searchDescend(pt, &t.root, results); err != nil {
		return nil, err
	}
	return results, nil
}

func (t *Tree[K, V]) searchDescend(pt geom.Point[K], ns *nodeStore[K, V], results *SearchResults[K, V]) error {
	if !ns.box.Contains(pt) {
		return nil
	}
	switch ns.typ {
	case DirectoryLeaf, DirectoryNonleaf:
		for i := range ns.dir.children {
			if err := t.searchDescend(pt, &ns.dir.children[i], results); err != nil {
				return err
			}
		}
	case Value:
		results.store = append(results.store, ns)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownNodeType, ns.typ)
	}
	return nil
}

// Len returns the number of matched values.
func (r *SearchResults[K, V]) Len() int {
	return len(r.store)
}

// Cursor returns a cursor positioned before the first match.
func (r *SearchResults[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{results: r, pos: -1}
}

// Range iterates over the matches in collection order, yielding box and
// value pairs.
func (r *SearchResults[K, V]) Range() iter.Seq2[geom.Rect[K], V] {
	return func(yield func(geom.Rect[K], V) bool) {
		for _, ns := range r.store {
			if !yield(ns.box.Clone(), ns.val.value) {
				return
			}
		}
	}
}

// RangeBackward iterates over the matches in reverse collection order.
func (r *SearchResults[K, V]) RangeBackward() iter.Seq2[geom.Rect[K], V] {
	return func(yield func(geom.Rect[K], V) bool) {
		for i := len(r.store) - 1; i >= 0; i-- {
			ns := r.store[i]
			if !yield(ns.box.Clone(), ns.val.value) {
				return
			}
		}
	}
}

// Cursor is a bidirectional position within search results. A fresh cursor
// sits before the first match; Next and Prev move it and report whether it
// still points at a match.
type Cursor[K geom.Scalar, V any] struct {
	results *SearchResults[K, V]
	pos     int
}

// Next advances the cursor and reports whether it points at a match.
func (c *Cursor[K, V]) Next() bool {
	if c.pos < len(c.results.store) {
		c.pos++
	}
	return c.pos < len(c.results.store)
}

// Prev moves the cursor backward and reports whether it points at a match.
func (c *Cursor[K, V]) Prev() bool {
	if c.pos >= 0 {
		c.pos--
	}
	return c.pos >= 0
}

// Box returns the bounding box of the match under the cursor.
func (c *Cursor[K, V]) Box() geom.Rect[K] {
	return c.store().box.Clone()
}

// Value returns the value of the match under the cursor.
func (c *Cursor[K, V]) Value() V {
	return c.store().val.value
}

func (c *Cursor[K, V]) store() *nodeStore[K, V] {
	if c == nil || c.results == nil || c.pos < 0 || c.pos >= len(c.results.store) {
		return nil
	}
	return c.results.store[c.pos]
}
