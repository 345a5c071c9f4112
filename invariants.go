package rtree

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/rtree/geom"
)

// IntegrityMode selects how CheckIntegrity reports violations.
type IntegrityMode int8

const (
	// IntegritySilent fails fast, returning an error for the first
	// violation found.
	IntegritySilent IntegrityMode = iota
	// IntegrityVerbose writes every node and every violation to the sink
	// and only returns after the whole tree has been visited.
	IntegrityVerbose
)

// CheckIntegrity validates the structural invariants of the tree: the root
// and parent laws, parent/child type laws, containment of child extents,
// child counts, tight extents, and the fanout bounds of non-root
// directories.
//
// In verbose mode every node and every violation is written to out; the
// check is intentionally strict and meant for tests and debugging.
func (t *Tree[K, V]) CheckIntegrity(mode IntegrityMode, out io.Writer) error {
	if mode == IntegrityVerbose && out == nil {
		out = os.Stdout
	}
	switch t.root.typ {
	case DirectoryLeaf, DirectoryNonleaf:
		// Good.
	default:
		return fmt.Errorf("%w: the root node must be a directory node", ErrIntegrity)
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: the root node must not have a parent", ErrIntegrity)
	}

	c := integrityCheck[K, V]{tree: t, mode: mode, out: out}
	if err := c.descend(&t.root, nil, 0); err != nil {
		return err
	}
	if c.violations > 0 {
		return fmt.Errorf("%w: tree contains %d violation(s)", ErrIntegrity, c.violations)
	}
	return nil
}

type integrityCheck[K geom.Scalar, V any] struct {
	tree       *Tree[K, V]
	mode       IntegrityMode
	out        io.Writer
	violations int
}

func (c *integrityCheck[K, V]) report(level int, format string, args ...interface{}) error {
	if c.mode == IntegritySilent {
		return fmt.Errorf("%w: "+format, append([]interface{}{ErrIntegrity}, args...)...)
	}
	fmt.Fprintf(c.out, "%s* %s\n", strings.Repeat("    ", level), fmt.Sprintf(format, args...))
	c.violations++
	return nil
}

func (c *integrityCheck[K, V]) descend(ns, parent *nodeStore[K, V], level int) error {
	if c.mode == IntegrityVerbose {
		fmt.Fprintf(c.out, "%snode: %p; parent: %p; type: %v; extent: %v\n",
			strings.Repeat("    ", level), ns, ns.parent, ns.typ, ns.box)
	}

	if parent != nil {
		if ns.parent != parent {
			if err := c.report(level, "the parent pointer does not point to the real parent (expected %p, stored %p)",
				parent, ns.parent); err != nil {
				return err
			}
		}
		if !parent.box.ContainsRect(ns.box) {
			if err := c.report(level, "the extent of the child %v is not within the extent of the parent %v",
				ns.box, parent.box); err != nil {
				return err
			}
		}
		switch ns.typ {
		case DirectoryLeaf, DirectoryNonleaf:
			if parent.typ != DirectoryNonleaf {
				if err := c.report(level, "parent of a %v node must be non-leaf", ns.typ); err != nil {
					return err
				}
			}
		case Value:
			if parent.typ != DirectoryLeaf {
				if err := c.report(level, "parent of a value node must be a leaf directory"); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %v", ErrUnknownNodeType, ns.typ)
		}
	}

	switch ns.typ {
	case DirectoryLeaf, DirectoryNonleaf:
		if ns.count != len(ns.dir.children) {
			if err := c.report(level, "incorrect child count (stored %d, actual %d)",
				ns.count, len(ns.dir.children)); err != nil {
				return err
			}
		}
		if parent != nil {
			if ns.count < c.tree.cfg.MinFanout || ns.count > c.tree.cfg.MaxFanout {
				if err := c.report(level, "child count %d outside fanout bounds [%d, %d]",
					ns.count, c.tree.cfg.MinFanout, c.tree.cfg.MaxFanout); err != nil {
					return err
				}
			}
		}
		if len(ns.dir.children) > 0 {
			expected := ns.dir.calcExtent()
			if !expected.Equal(ns.box) {
				if err := c.report(level, "the extent %v does not equal the truly tight extent %v",
					ns.box, expected); err != nil {
					return err
				}
			}
		}
		for i := range ns.dir.children {
			if err := c.descend(&ns.dir.children[i], ns, level+1); err != nil {
				return err
			}
		}
	case Value:
		// Do nothing.
	default:
		return fmt.Errorf("%w: %v", ErrUnknownNodeType, ns.typ)
	}
	return nil
}
