// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	"golang.org/x/exp/maps"
)

// NodeBranch is a non-terminal node: a mapping from single character to
// child node, with no values stored at this exact key. The edge map is
// non-empty by construction.
type NodeBranch[T any] struct {
	id    uint64
	edges map[byte]Node[T]
}

func (n *NodeBranch[T]) getId() uint64 {
	return n.id
}

func (n *NodeBranch[T]) setId(id uint64) {
	n.id = id
}

func (n *NodeBranch[T]) getKind() nodeKind {
	return branchKind
}

func (n *NodeBranch[T]) getRefs() map[string]T {
	return nil
}

func (n *NodeBranch[T]) setRefs(map[string]T) {
}

func (n *NodeBranch[T]) getEdges() map[byte]Node[T] {
	return n.edges
}

func (n *NodeBranch[T]) setEdges(edges map[byte]Node[T]) {
	n.edges = edges
}

// clone deep-copies the edge map; the child nodes themselves stay shared.
func (n *NodeBranch[T]) clone() Node[T] {
	return &NodeBranch[T]{
		id:    n.id,
		edges: maps.Clone(n.edges),
	}
}

func (n *NodeBranch[T]) Values() (map[string]T, bool) {
	return nil, false
}

// Iterator is used to return an Iterator at
// the given node to walk the tree
func (n *NodeBranch[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		stack: []nodeFrame[T]{{node: n}},
	}
}

func (n *NodeBranch[T]) PathIterator(path []byte) *PathIterator[T] {
	return &PathIterator[T]{
		node: n,
		path: path,
	}
}
