package bitset_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/valvenet/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet64_InsertRemoveContains(t *testing.T) {
	var s bitset.Set64
	require.True(t, s.IsEmpty())

	s.Insert(0)
	s.Insert(63)
	s.Insert(7)
	assert.True(t, s.Contains(0))
	assert.True(t, s.Contains(7))
	assert.True(t, s.Contains(63))
	assert.False(t, s.Contains(1))
	assert.Equal(t, 3, s.Len())

	assert.True(t, s.Remove(7), "7 was present")
	assert.False(t, s.Remove(7), "second removal reports absence")
	assert.False(t, s.Contains(7))
	assert.Equal(t, 2, s.Len())
}

func TestSet64_OutOfRangePanics(t *testing.T) {
	var s bitset.Set64
	assert.Panics(t, func() { s.Insert(64) })
	assert.Panics(t, func() { s.Insert(-1) })
	assert.Panics(t, func() { _ = s.Contains(100) })
	assert.Panics(t, func() { bitset.Full(65) })
}

func TestSet64_Full(t *testing.T) {
	assert.Equal(t, bitset.Set64(0), bitset.Full(0))
	assert.Equal(t, bitset.Of(0, 1, 2), bitset.Full(3))
	assert.Equal(t, 64, bitset.Full(64).Len())
}

func TestSet64_Difference(t *testing.T) {
	a := bitset.Of(1, 4, 9, 40)
	assert.True(t, a.Difference(a).IsEmpty())
	assert.Equal(t, a, a.Difference(0))
	assert.Equal(t, bitset.Of(1, 40), a.Difference(bitset.Of(4, 9, 12)))
	assert.Equal(t, bitset.Of(1, 4, 9, 12, 40), a.Union(bitset.Of(12)))
}

func TestSet64_Equality(t *testing.T) {
	a := bitset.Of(3, 5)
	var b bitset.Set64
	b.Insert(5)
	b.Insert(3)
	require.Equal(t, a, b)

	m := map[bitset.Set64]int{a: 1}
	assert.Equal(t, 1, m[b])
}

func TestSet64_AllSubsets(t *testing.T) {
	cases := []bitset.Set64{
		0,
		bitset.Of(5),
		bitset.Of(0, 2),
		bitset.Of(1, 3, 8, 20, 63),
		bitset.Full(10),
	}
	for _, s := range cases {
		subsets := s.AllSubsets(nil)
		require.Len(t, subsets, 1<<s.Len(), "set %v", s)

		seen := make(map[bitset.Set64]bool, len(subsets))
		for _, sub := range subsets {
			require.False(t, seen[sub], "duplicate subset %v of %v", sub, s)
			seen[sub] = true
			require.True(t, sub.Difference(s).IsEmpty(), "%v is not a subset of %v", sub, s)
		}
		assert.True(t, seen[0], "empty subset missing for %v", s)
		assert.True(t, seen[s], "full subset missing for %v", s)
	}
}

func TestSet64_AllSubsetsOrderAndReuse(t *testing.T) {
	s := bitset.Of(1, 2)
	got := s.AllSubsets(nil)
	assert.Equal(t, []bitset.Set64{0, bitset.Of(2), bitset.Of(1), bitset.Of(1, 2)}, got)

	// appending keeps the existing prefix intact
	buf := []bitset.Set64{bitset.Of(9)}
	buf = s.AllSubsets(buf)
	require.Len(t, buf, 5)
	assert.Equal(t, bitset.Of(9), buf[0])

	again := s.AllSubsets(got[:0])
	assert.Equal(t, []bitset.Set64{0, bitset.Of(2), bitset.Of(1), bitset.Of(1, 2)}, again)
}

func TestSet64_ElementsAndString(t *testing.T) {
	s := bitset.Of(12, 0, 63)
	assert.Equal(t, []int{0, 12, 63}, slices.Collect(s.Elements()))
	assert.Equal(t, "{0 12 63}", s.String())
	assert.Equal(t, "{}", bitset.Set64(0).String())
}
