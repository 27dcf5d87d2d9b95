// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

const (
	emptyKind nodeKind = iota
	valuesKind
	branchKind
	valuesBranchKind
)

type nodeKind int

// Node is one position in the trie. The concrete shape encodes which of the
// value-mapping and the child edges exist, so the absent case costs no
// allocation: Empty has neither, Values only the mapping, Branch only edges,
// ValuesBranch both.
type Node[T any] interface {
	getId() uint64
	setId(uint64)
	getKind() nodeKind
	getRefs() map[string]T
	setRefs(map[string]T)
	getEdges() map[byte]Node[T]
	setEdges(map[byte]Node[T])
	clone() Node[T]

	// Values returns the value-mapping stored at this node. The second
	// return is false when the shape carries no mapping or the mapping is
	// empty. The returned map must not be modified by the caller.
	Values() (map[string]T, bool)

	Iterator() *Iterator[T]
	PathIterator([]byte) *PathIterator[T]
}
