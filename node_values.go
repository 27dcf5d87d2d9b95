// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	"golang.org/x/exp/maps"
)

// NodeValues is a terminal node holding values only: a mapping from
// reference identifier to stored value, with no further branching.
type NodeValues[T any] struct {
	id   uint64
	refs map[string]T
}

func (n *NodeValues[T]) getId() uint64 {
	return n.id
}

func (n *NodeValues[T]) setId(id uint64) {
	n.id = id
}

func (n *NodeValues[T]) getKind() nodeKind {
	return valuesKind
}

func (n *NodeValues[T]) getRefs() map[string]T {
	return n.refs
}

func (n *NodeValues[T]) setRefs(refs map[string]T) {
	n.refs = refs
}

func (n *NodeValues[T]) getEdges() map[byte]Node[T] {
	return nil
}

func (n *NodeValues[T]) setEdges(map[byte]Node[T]) {
}

// clone deep-copies the value-mapping so a written node may be mutated
// without aliasing nodes reachable from earlier roots.
func (n *NodeValues[T]) clone() Node[T] {
	return &NodeValues[T]{
		id:   n.id,
		refs: maps.Clone(n.refs),
	}
}

func (n *NodeValues[T]) Values() (map[string]T, bool) {
	if len(n.refs) == 0 {
		return nil, false
	}
	return n.refs, true
}

// Iterator is used to return an Iterator at
// the given node to walk the tree
func (n *NodeValues[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		stack: []nodeFrame[T]{{node: n}},
	}
}

func (n *NodeValues[T]) PathIterator(path []byte) *PathIterator[T] {
	return &PathIterator[T]{
		node: n,
		path: path,
	}
}
