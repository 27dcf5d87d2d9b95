// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// sortedEdgeKeys returns the edge characters of a children mapping in
// ascending order. Go randomizes map iteration, so traversals sort the
// edges to make repeated walks of the same snapshot agree.
func sortedEdgeKeys[T any](edges map[byte]Node[T]) []byte {
	keys := maps.Keys(edges)
	slices.Sort(keys)
	return keys
}

// appendKey returns a fresh key slice extended by one character. Frames on
// an iterator stack must not share backing arrays.
func appendKey(key []byte, c byte) []byte {
	out := make([]byte, len(key)+1)
	copy(out, key)
	out[len(key)] = c
	return out
}
