// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package reftrie

import (
	"slices"
	"sort"
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestIterateSeekPrefix(t *testing.T) {
	tr := New[any]()

	keys := []string{
		"foo/bar/baz",
		"foo/baz/bar",
		"foo/zip/zap",
		"foobar",
		"zipzap",
	}
	for _, k := range keys {
		tr, _, _ = tr.Insert([]byte(k), "r", nil)
	}
	if tr.Len() != len(keys) {
		t.Fatalf("bad len: %v %v", tr.Len(), len(keys))
	}

	type exp struct {
		inp string
		out []string
	}
	cases := []exp{
		{
			"",
			keys,
		},
		{
			"f",
			[]string{
				"foo/bar/baz",
				"foo/baz/bar",
				"foo/zip/zap",
				"foobar",
			},
		},
		{
			"foo",
			[]string{
				"foo/bar/baz",
				"foo/baz/bar",
				"foo/zip/zap",
				"foobar",
			},
		},
		{
			"foob",
			[]string{"foobar"},
		},
		{
			"foo/",
			[]string{"foo/bar/baz", "foo/baz/bar", "foo/zip/zap"},
		},
		{
			"foo/b",
			[]string{"foo/bar/baz", "foo/baz/bar"},
		},
		{
			"foo/ba",
			[]string{"foo/bar/baz", "foo/baz/bar"},
		},
		{
			"foo/bar",
			[]string{"foo/bar/baz"},
		},
		{
			"foo/bar/baz",
			[]string{"foo/bar/baz"},
		},
		{
			"foo/bar/bazoo",
			[]string{},
		},
		{
			"z",
			[]string{"zipzap"},
		},
	}

	for idx, test := range cases {
		iter := tr.Root().Iterator()
		if test.inp != "" {
			iter.SeekPrefix([]byte(test.inp))
		}

		// Consume all the keys
		var out []string
		for {
			key, _, ok := iter.Next()
			if !ok {
				break
			}
			out = append(out, string(key))
		}
		if !slices.Equal(out, test.out) {
			t.Fatalf("mis-match: %d %v %v", idx, out, test.out)
		}
	}
}

type readableString string

func TestExpandFuzz(t *testing.T) {
	tr := New[any]()
	var set []string

	// Each call adds a new random key to the trie and a plain sorted list of
	// the same keys, then asserts that Expand over a random prefix produces
	// the same set as filtering the list by that prefix.

	trieAddAndExpand := func(newKey, prefix readableString) []string {
		tr, _, _ = tr.Insert([]byte(newKey), "r", nil)

		result := []string{}
		for _, k := range tr.Expand([]byte(prefix)) {
			result = append(result, string(k))
		}
		return result
	}

	sliceAddSortAndFilter := func(newKey, prefix readableString) []string {
		set = append(set, string(newKey))
		sort.Strings(set)

		// Expand of the empty prefix is empty since the root is not
		// addressable as a node at a key.
		result := []string{}
		if prefix == "" {
			return result
		}
		for i, k := range set {
			if i > 0 && set[i-1] == k {
				continue
			}
			if strings.HasPrefix(k, string(prefix)) {
				result = append(result, k)
			}
		}
		return result
	}

	if err := quick.CheckEqual(trieAddAndExpand, sliceAddSortAndFilter, nil); err != nil {
		t.Error(err)
	}
}

func TestPathIterator(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	tr, _, _ = tr.Insert([]byte("f"), "r1", 1)
	tr, _, _ = tr.Insert([]byte("fo"), "r2", 2)
	tr, _, _ = tr.Insert([]byte("foobar"), "r3", 3)
	tr, _, _ = tr.Insert([]byte("foozip"), "r4", 4)

	iter := tr.Root().PathIterator([]byte("foobar"))
	var out []string
	for {
		key, refs, ok := iter.Next()
		if !ok {
			break
		}
		require.NotEmpty(t, refs)
		out = append(out, string(key))
	}
	require.Equal(t, []string{"f", "fo", "foobar"}, out)
}

func TestPathIterator_StopsAtDivergence(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	tr, _, _ = tr.Insert([]byte("ab"), "r1", 1)
	tr, _, _ = tr.Insert([]byte("abcd"), "r2", 2)

	iter := tr.Root().PathIterator([]byte("abzz"))
	var out []string
	for {
		key, _, ok := iter.Next()
		if !ok {
			break
		}
		out = append(out, string(key))
	}
	require.Equal(t, []string{"ab"}, out)
}

func TestPathIterator_IncludesRootValues(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	tr, _, _ = tr.Insert(nil, "r0", 0)
	tr, _, _ = tr.Insert([]byte("a"), "r1", 1)

	iter := tr.Root().PathIterator([]byte("a"))
	var out []string
	for {
		key, _, ok := iter.Next()
		if !ok {
			break
		}
		out = append(out, string(key))
	}
	require.Equal(t, []string{"", "a"}, out)
}

func TestIterator_EmptyTree(t *testing.T) {
	t.Parallel()

	tr := New[int]()
	iter := tr.Root().Iterator()
	_, _, ok := iter.Next()
	require.False(t, ok)

	iter = tr.Root().Iterator()
	iter.SeekPrefix([]byte("a"))
	_, _, ok = iter.Next()
	require.False(t, ok)
}
