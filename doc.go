// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package reftrie implements a persistent, structure-sharing trie mapping
// byte-sequence keys to sets of named values. A key holds a value-mapping
// from reference identifier to value, so one key can index several distinct
// records, in the manner of an inverted index.
//
// All operations are pure: Insert and Delete return a new root and never
// modify a node reachable from a previously returned root. Any number of
// readers may traverse their own snapshots without locking; writers that
// must converge on a single canonical root coordinate outside this package,
// for example with a compare-and-swap of the current root.
package reftrie
