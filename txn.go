// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	"golang.org/x/exp/maps"
)

// Txn batches any number of inserts and deletes into one new tree. Nodes
// carry monotonically increasing ids; a node whose id is at or below the
// watermark captured at Txn start belongs to the snapshot and is cloned
// before the first write, while nodes created inside the transaction are
// mutated in place.
type Txn[T any] struct {
	root Node[T]
	snap Node[T]

	oldMaxNodeId uint64
	maxNodeId    uint64
	oldSize      uint64
	size         uint64
}

// Txn starts a new transaction that can be used to mutate the tree
func (t *Tree[T]) Txn() *Txn[T] {
	return &Txn[T]{
		root:         t.root,
		snap:         t.root,
		oldMaxNodeId: t.maxNodeId,
		maxNodeId:    t.maxNodeId,
		oldSize:      t.size,
		size:         t.size,
	}
}

func (t *Txn[T]) writeNode(n Node[T]) Node[T] {
	if n.getId() > t.oldMaxNodeId {
		return n
	}
	nc := n.clone()
	t.maxNodeId++
	nc.setId(t.maxNodeId)
	return nc
}

func (t *Txn[T]) allocNode(kind nodeKind) Node[T] {
	var n Node[T]
	switch kind {
	case emptyKind:
		n = &NodeEmpty[T]{}
	case valuesKind:
		n = &NodeValues[T]{}
	case branchKind:
		n = &NodeBranch[T]{}
	case valuesBranchKind:
		n = &NodeValuesBranch[T]{}
	default:
		panic("unknown node kind")
	}
	t.maxNodeId++
	n.setId(t.maxNodeId)
	return n
}

// Insert stores value under ref at key, returning the value previously
// stored under that ref and whether one existed.
func (t *Txn[T]) Insert(key []byte, ref string, value T) (T, bool) {
	newRoot, old, existed := t.recursiveInsert(t.root, key, ref, value, 0)
	t.root = newRoot
	return old, existed
}

func (t *Txn[T]) recursiveInsert(node Node[T], key []byte, ref string, value T, depth int) (Node[T], T, bool) {
	var zero T

	if depth == len(key) {
		refs := node.getRefs()
		old, existed := refs[ref]
		if len(refs) == 0 {
			// key transitions from absent to present
			t.size++
		}
		switch node.getKind() {
		case emptyKind:
			nv := t.allocNode(valuesKind)
			nv.setRefs(map[string]T{ref: value})
			return nv, zero, false
		case branchKind:
			nvb := t.allocNode(valuesBranchKind)
			nvb.setRefs(map[string]T{ref: value})
			nvb.setEdges(maps.Clone(node.getEdges()))
			return nvb, zero, false
		default:
			node = t.writeNode(node)
			node.getRefs()[ref] = value
			return node, old, existed
		}
	}

	c := key[depth]
	switch node.getKind() {
	case emptyKind:
		nb := t.allocNode(branchKind)
		nb.setEdges(map[byte]Node[T]{c: t.newSuffix(key, depth+1, ref, value)})
		return nb, zero, false
	case valuesKind:
		nvb := t.allocNode(valuesBranchKind)
		nvb.setRefs(maps.Clone(node.getRefs()))
		nvb.setEdges(map[byte]Node[T]{c: t.newSuffix(key, depth+1, ref, value)})
		return nvb, zero, false
	default:
		child, ok := node.getEdges()[c]
		if !ok {
			node = t.writeNode(node)
			node.getEdges()[c] = t.newSuffix(key, depth+1, ref, value)
			return node, zero, false
		}
		newChild, old, existed := t.recursiveInsert(child, key, ref, value, depth+1)
		if newChild != child {
			node = t.writeNode(node)
			node.getEdges()[c] = newChild
		}
		return node, old, existed
	}
}

// newSuffix materializes the single-child chain for the key characters from
// depth onward, terminating in a Values node. Built only once the point of
// divergence is known, so each insert allocates O(len(key)) nodes at most.
func (t *Txn[T]) newSuffix(key []byte, depth int, ref string, value T) Node[T] {
	t.size++
	n := t.allocNode(valuesKind)
	n.setRefs(map[string]T{ref: value})
	for i := len(key) - 1; i >= depth; i-- {
		nb := t.allocNode(branchKind)
		nb.setEdges(map[byte]Node[T]{key[i]: n})
		n = nb
	}
	return n
}

// Delete removes ref from the value-mapping at key, returning the value it
// held and whether it was found. Missing keys and refs are a no-op.
func (t *Txn[T]) Delete(key []byte, ref string) (T, bool) {
	newRoot, old, found := t.recursiveDelete(t.root, key, ref, 0)
	if newRoot == nil {
		t.root = t.allocNode(emptyKind)
	} else {
		t.root = newRoot
	}
	return old, found
}

// recursiveDelete returns the replacement node, or nil when the subtree
// collapsed away entirely. Emptied value-mappings are pruned eagerly:
// ValuesBranch collapses to Branch, Values to nothing, and a Branch whose
// last edge vanished collapses to nothing as well. None of this changes
// what Get, Has or Expand observe.
func (t *Txn[T]) recursiveDelete(node Node[T], key []byte, ref string, depth int) (Node[T], T, bool) {
	var zero T

	if depth == len(key) {
		refs := node.getRefs()
		old, ok := refs[ref]
		if !ok {
			return node, zero, false
		}
		if len(refs) == 1 {
			t.size--
			if node.getKind() == valuesBranchKind {
				nb := t.allocNode(branchKind)
				nb.setEdges(maps.Clone(node.getEdges()))
				return nb, old, true
			}
			return nil, old, true
		}
		node = t.writeNode(node)
		delete(node.getRefs(), ref)
		return node, old, true
	}

	c := key[depth]
	child, ok := node.getEdges()[c]
	if !ok {
		return node, zero, false
	}
	newChild, old, found := t.recursiveDelete(child, key, ref, depth+1)
	if !found {
		return node, zero, false
	}
	if newChild == nil {
		if len(node.getEdges()) == 1 {
			if node.getKind() == valuesBranchKind {
				nv := t.allocNode(valuesKind)
				nv.setRefs(maps.Clone(node.getRefs()))
				return nv, old, true
			}
			return nil, old, true
		}
		node = t.writeNode(node)
		delete(node.getEdges(), c)
		return node, old, true
	}
	if newChild != child {
		node = t.writeNode(node)
		node.getEdges()[c] = newChild
	}
	return node, old, true
}

// Get is used to look up a specific key, returning
// the value-mapping and if it was found
func (t *Txn[T]) Get(key []byte) (map[string]T, bool) {
	return t.GetTree().Get(key)
}

func (t *Txn[T]) Root() Node[T] {
	return t.root
}

func (t *Txn[T]) GetTree() *Tree[T] {
	return &Tree[T]{
		root:      t.root,
		size:      t.size,
		maxNodeId: t.maxNodeId,
	}
}

// GetSnapTree returns the tree as it was when the transaction started.
func (t *Txn[T]) GetSnapTree() *Tree[T] {
	return &Tree[T]{
		root:      t.snap,
		size:      t.oldSize,
		maxNodeId: t.maxNodeId,
	}
}

// Commit is used to finalize the transaction and return a new tree.
func (t *Txn[T]) Commit() *Tree[T] {
	return t.GetTree()
}
