// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

// Iterator walks every present key reachable from the node it was created
// at, depth first, yielding keys in ascending byte order.
type Iterator[T any] struct {
	stack []nodeFrame[T]
}

type nodeFrame[T any] struct {
	node Node[T]
	key  []byte
}

// SeekPrefix restricts the iteration to the subtree below prefix. Yielded
// keys are full keys, prefix included. Seeking a prefix with no node leaves
// the iterator exhausted.
func (i *Iterator[T]) SeekPrefix(prefix []byte) {
	if len(i.stack) == 0 {
		return
	}
	n := i.stack[0].node
	for depth := 0; depth < len(prefix); depth++ {
		child, ok := n.getEdges()[prefix[depth]]
		if !ok {
			i.stack = nil
			return
		}
		n = child
	}
	i.stack = []nodeFrame[T]{{node: n, key: append([]byte(nil), prefix...)}}
}

// Next returns the next present key with its value-mapping, and false once
// the iteration is exhausted.
func (i *Iterator[T]) Next() ([]byte, map[string]T, bool) {
	// Iterate through the stack until it's empty
	for len(i.stack) > 0 {
		f := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]

		// Children pushed in descending order so they pop ascending.
		edges := f.node.getEdges()
		keys := sortedEdgeKeys(edges)
		for idx := len(keys) - 1; idx >= 0; idx-- {
			c := keys[idx]
			i.stack = append(i.stack, nodeFrame[T]{
				node: edges[c],
				key:  appendKey(f.key, c),
			})
		}

		if refs, ok := f.node.Values(); ok {
			return f.key, refs, true
		}
	}
	return nil, nil, false
}
