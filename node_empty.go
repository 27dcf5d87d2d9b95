// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

// NodeEmpty is the terminal and initial shape: no values, no children. A
// fresh tree has a single NodeEmpty root and pruning on delete collapses
// exhausted subtrees back to it.
type NodeEmpty[T any] struct {
	id uint64
}

func (n *NodeEmpty[T]) getId() uint64 {
	return n.id
}

func (n *NodeEmpty[T]) setId(id uint64) {
	n.id = id
}

func (n *NodeEmpty[T]) getKind() nodeKind {
	return emptyKind
}

func (n *NodeEmpty[T]) getRefs() map[string]T {
	return nil
}

func (n *NodeEmpty[T]) setRefs(map[string]T) {
}

func (n *NodeEmpty[T]) getEdges() map[byte]Node[T] {
	return nil
}

func (n *NodeEmpty[T]) setEdges(map[byte]Node[T]) {
}

func (n *NodeEmpty[T]) clone() Node[T] {
	return &NodeEmpty[T]{id: n.id}
}

func (n *NodeEmpty[T]) Values() (map[string]T, bool) {
	return nil, false
}

// Iterator is used to return an Iterator at
// the given node to walk the tree
func (n *NodeEmpty[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		stack: []nodeFrame[T]{{node: n}},
	}
}

func (n *NodeEmpty[T]) PathIterator(path []byte) *PathIterator[T] {
	return &PathIterator[T]{
		node: n,
		path: path,
	}
}
