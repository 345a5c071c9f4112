package rtree

/*
BSD 3-Clause License

Copyright (c) 2021–22, Norbert Pillmayer

Please refer to the license text in doc.go.

*/

import (
	"fmt"
	"io"

	"github.com/npillmayer/rtree/geom"
)

type nodeids[K geom.Scalar, V any] struct {
	idTable map[*nodeStore[K, V]]int
	max     int
}

func newtable[K geom.Scalar, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*nodeStore[K, V]]int),
		max:     1,
	}
}

func (ids nodeids[K, V]) find(node *nodeStore[K, V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[K, V]) alloc(node *nodeStore[K, V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[K geom.Scalar, V any](t *Tree[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	var descend func(ns *nodeStore[K, V])
	descend = func(ns *nodeStore[K, V]) {
		id := ids.alloc(ns)
		label := fmt.Sprintf("%v\\n%v", ns.typ, ns.box)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(ns.typ))
		if !ns.isDirectory() {
			return
		}
		for i := range ns.dir.children {
			child := &ns.dir.children[i]
			descend(child)
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.find(child))
		}
	}
	descend(&t.root)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(nt NodeType) string {
	switch nt {
	case DirectoryNonleaf:
		return "shape=box style=filled fillcolor=lightblue"
	case DirectoryLeaf:
		return "shape=box style=filled fillcolor=lightyellow"
	case Value:
		return "shape=ellipse"
	}
	return "shape=ellipse style=dotted"
}
