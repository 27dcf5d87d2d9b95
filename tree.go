// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

// Tree is a persistent trie mapping byte-sequence keys to a set of
// independently identified values. Each key holds a value-mapping from
// reference identifier to value, so one key can point at several distinct
// records. Every update returns a new root and leaves every previously
// returned root untouched; unmodified subtrees are shared between versions.
type Tree[T any] struct {
	root      Node[T]
	size      uint64
	maxNodeId uint64
}

// WalkFn is used when walking the tree. Takes a key and its value-mapping,
// returning if iteration should be terminated.
type WalkFn[T any] func(k []byte, refs map[string]T) bool

func New[T any]() *Tree[T] {
	return &Tree[T]{root: &NodeEmpty[T]{}}
}

// Len is used to return the number of present keys in the tree
func (t *Tree[T]) Len() int {
	return int(t.size)
}

// Insert stores value under ref at key and returns the new tree along with
// the value previously stored under that ref and whether one existed.
// Re-inserting an existing ref at the same key overwrites its value.
func (t *Tree[T]) Insert(key []byte, ref string, value T) (*Tree[T], T, bool) {
	txn := t.Txn()
	old, existed := txn.Insert(key, ref, value)
	return txn.Commit(), old, existed
}

// Delete removes ref from the value-mapping at key and returns the new tree
// along with the removed value and whether it was found. Deleting a missing
// key or ref yields a tree with identical contents.
func (t *Tree[T]) Delete(key []byte, ref string) (*Tree[T], T, bool) {
	txn := t.Txn()
	old, found := txn.Delete(key, ref)
	return txn.Commit(), old, found
}

// GetNode returns the subtree rooted exactly at key. The empty key is never
// found: the root is not addressable as a node at a key.
func (t *Tree[T]) GetNode(key []byte) (Node[T], bool) {
	if len(key) == 0 {
		return nil, false
	}
	n := t.root
	for depth := 0; depth < len(key); depth++ {
		child, ok := n.getEdges()[key[depth]]
		if !ok {
			return nil, false
		}
		n = child
	}
	return n, true
}

// Get returns the value-mapping stored at key. A key whose node exists but
// carries no values, such as a pure branch, is not found. The returned map
// must not be modified.
func (t *Tree[T]) Get(key []byte) (map[string]T, bool) {
	n, ok := t.GetNode(key)
	if !ok {
		return nil, false
	}
	return n.Values()
}

// Has reports whether key holds a non-empty value-mapping.
func (t *Tree[T]) Has(key []byte) bool {
	_, ok := t.Get(key)
	return ok
}

// ValueCount returns the number of values stored at key, or 0 if absent.
func (t *Tree[T]) ValueCount(key []byte) int {
	refs, ok := t.Get(key)
	if !ok {
		return 0
	}
	return len(refs)
}

// Expand returns every present key reachable from prefix, the prefix itself
// included when present. Keys come back in ascending byte order. The result
// is empty when no node exists for the prefix.
func (t *Tree[T]) Expand(prefix []byte) [][]byte {
	if _, ok := t.GetNode(prefix); !ok {
		return nil
	}
	iter := t.root.Iterator()
	iter.SeekPrefix(prefix)

	var out [][]byte
	for {
		key, _, ok := iter.Next()
		if !ok {
			break
		}
		out = append(out, key)
	}
	return out
}

// Root returns the root node of the tree which can be used for richer
// query operations.
func (t *Tree[T]) Root() Node[T] {
	return t.root
}

// Walk is used to walk the tree
func (t *Tree[T]) Walk(fn WalkFn[T]) {
	recursiveWalk(t.root, nil, fn)
}

// recursiveWalk is used to do a pre-order walk of a node
// recursively. Returns true if the walk should be aborted
func recursiveWalk[T any](n Node[T], key []byte, fn WalkFn[T]) bool {
	if refs, ok := n.Values(); ok && fn(key, refs) {
		return true
	}
	edges := n.getEdges()
	for _, c := range sortedEdgeKeys(edges) {
		if recursiveWalk(edges[c], appendKey(key, c), fn) {
			return true
		}
	}
	return false
}
