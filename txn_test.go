// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTxn_BatchedOperations(t *testing.T) {
	t.Parallel()

	base := New[int]()
	base, _, _ = base.Insert([]byte("keep"), "r1", 1)
	base, _, _ = base.Insert([]byte("drop"), "r2", 2)

	txn := base.Txn()
	txn.Insert([]byte("add/one"), "r3", 3)
	txn.Insert([]byte("add/two"), "r4", 4)
	old, found := txn.Delete([]byte("drop"), "r2")
	require.True(t, found)
	require.Equal(t, 2, old)

	// uncommitted state is visible through the txn
	refs, ok := txn.Get([]byte("add/one"))
	require.True(t, ok)
	require.Equal(t, map[string]int{"r3": 3}, refs)

	tr := txn.Commit()
	require.Equal(t, []string{"add/one", "add/two", "keep"}, collectKeys(tr))
	require.Equal(t, 3, tr.Len())

	// the base tree saw none of it
	require.Equal(t, []string{"drop", "keep"}, collectKeys(base))
	require.Equal(t, 2, base.Len())
}

func TestTxn_SnapshotTree(t *testing.T) {
	t.Parallel()

	base := New[int]()
	base, _, _ = base.Insert([]byte("a"), "r1", 1)

	txn := base.Txn()
	txn.Insert([]byte("b"), "r2", 2)

	snap := txn.GetSnapTree()
	require.Equal(t, []string{"a"}, collectKeys(snap))
	require.Equal(t, 1, snap.Len())
	require.Equal(t, []string{"a", "b"}, collectKeys(txn.GetTree()))
}

func TestTxn_WriteNodeReuse(t *testing.T) {
	t.Parallel()

	base := New[int]()
	base, _, _ = base.Insert([]byte("x"), "r1", 1)

	// two writes to the same key within one txn must clone the node once
	// and mutate it in place afterwards
	txn := base.Txn()
	txn.Insert([]byte("x"), "r2", 2)
	root := txn.Root()
	txn.Insert([]byte("x"), "r3", 3)
	require.True(t, root == txn.Root())

	tr := txn.Commit()
	require.Equal(t, 3, tr.ValueCount([]byte("x")))
	require.Equal(t, 1, base.ValueCount([]byte("x")))
}

func TestTxn_DeleteToEmpty(t *testing.T) {
	t.Parallel()

	base := New[int]()
	base, _, _ = base.Insert([]byte("only"), "r1", 1)

	txn := base.Txn()
	_, found := txn.Delete([]byte("only"), "r1")
	require.True(t, found)

	tr := txn.Commit()
	require.Equal(t, 0, tr.Len())
	require.Equal(t, emptyKind, tr.Root().getKind())
	require.True(t, base.Has([]byte("only")))
}
