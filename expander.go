// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultExpanderSize = 8192

// Expander memoizes Expand results for one tree snapshot. A Tree is
// immutable, so a cached expansion never goes stale; callers replacing the
// root build a fresh Expander for the new snapshot.
type Expander[T any] struct {
	tree  *Tree[T]
	cache *lru.Cache[string, [][]byte]
}

// NewExpander wraps tree with an LRU of the given size; a size of zero or
// less picks a default.
func NewExpander[T any](tree *Tree[T], size int) (*Expander[T], error) {
	if size <= 0 {
		size = defaultExpanderSize
	}
	cache, err := lru.New[string, [][]byte](size)
	if err != nil {
		return nil, err
	}
	return &Expander[T]{tree: tree, cache: cache}, nil
}

// Tree returns the snapshot this expander serves.
func (e *Expander[T]) Tree() *Tree[T] {
	return e.tree
}

// Expand behaves exactly like Tree.Expand. The returned slices are shared
// with the cache and must not be modified.
func (e *Expander[T]) Expand(prefix []byte) [][]byte {
	if out, ok := e.cache.Get(string(prefix)); ok {
		return out
	}
	out := e.tree.Expand(prefix)
	e.cache.Add(string(prefix), out)
	return out
}
