// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

// PathIterator is used to iterate over the present keys lying on the path
// from the node down to a specified key: every prefix of the key, the key
// itself included, that carries a non-empty value-mapping.
type PathIterator[T any] struct {
	path  []byte
	depth int
	node  Node[T]
}

func (i *PathIterator[T]) Next() ([]byte, map[string]T, bool) {
	for i.node != nil {
		n := i.node
		key := append([]byte(nil), i.path[:i.depth]...)

		if i.depth < len(i.path) {
			child, ok := n.getEdges()[i.path[i.depth]]
			if ok {
				i.node = child
				i.depth++
			} else {
				i.node = nil
			}
		} else {
			i.node = nil
		}

		if refs, ok := n.Values(); ok {
			return key, refs, true
		}
	}
	return nil, nil, false
}
