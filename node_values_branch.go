// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	"golang.org/x/exp/maps"
)

// NodeValuesBranch holds both values at this exact key and further
// branching beyond it.
type NodeValuesBranch[T any] struct {
	id    uint64
	refs  map[string]T
	edges map[byte]Node[T]
}

func (n *NodeValuesBranch[T]) getId() uint64 {
	return n.id
}

func (n *NodeValuesBranch[T]) setId(id uint64) {
	n.id = id
}

func (n *NodeValuesBranch[T]) getKind() nodeKind {
	return valuesBranchKind
}

func (n *NodeValuesBranch[T]) getRefs() map[string]T {
	return n.refs
}

func (n *NodeValuesBranch[T]) setRefs(refs map[string]T) {
	n.refs = refs
}

func (n *NodeValuesBranch[T]) getEdges() map[byte]Node[T] {
	return n.edges
}

func (n *NodeValuesBranch[T]) setEdges(edges map[byte]Node[T]) {
	n.edges = edges
}

// clone deep-copies both maps; the child nodes themselves stay shared.
func (n *NodeValuesBranch[T]) clone() Node[T] {
	return &NodeValuesBranch[T]{
		id:    n.id,
		refs:  maps.Clone(n.refs),
		edges: maps.Clone(n.edges),
	}
}

func (n *NodeValuesBranch[T]) Values() (map[string]T, bool) {
	if len(n.refs) == 0 {
		return nil, false
	}
	return n.refs, true
}

// Iterator is used to return an Iterator at
// the given node to walk the tree
func (n *NodeValuesBranch[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		stack: []nodeFrame[T]{{node: n}},
	}
}

func (n *NodeValuesBranch[T]) PathIterator(path []byte) *PathIterator[T] {
	return &PathIterator[T]{
		node: n,
		path: path,
	}
}
