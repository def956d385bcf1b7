package jarray_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/jarray/jarray"
)

func fromSlice[T any](vals ...T) *jarray.Array[T] {
	a := jarray.New(jarray.Config[T]{})
	for _, v := range vals {
		a.PushBack(v)
	}
	return a
}

// TestSortThreeStrings pushes b, a, c and sorts the whole range.
func TestSortThreeStrings(t *testing.T) {
	t.Parallel()

	a := fromSlice("b", "a", "c")
	require.Equal(t, 3, a.Len())
	require.Equal(t, 4, a.Cap())

	jarray.Sort(a.Begin(), a.End())

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(a.Values()))
}

func TestSortTrivialRanges(t *testing.T) {
	t.Parallel()

	t.Run("Empty", func(t *testing.T) {
		var a jarray.Array[int]
		assert.NotPanics(t, func() { jarray.Sort(a.Begin(), a.End()) })
		assert.True(t, a.IsEmpty())
	})

	t.Run("Single", func(t *testing.T) {
		a := fromSlice(42)
		jarray.Sort(a.Begin(), a.End())
		assert.Equal(t, []int{42}, slices.Collect(a.Values()))
	})

	t.Run("EmptySubrange", func(t *testing.T) {
		a := fromSlice(3, 2, 1)
		mid := a.Begin().Add(1)
		jarray.Sort(mid, mid)
		assert.Equal(t, []int{3, 2, 1}, slices.Collect(a.Values()))
	})
}

// TestSortIdempotent checks that sorting a sorted range leaves it unchanged.
func TestSortIdempotent(t *testing.T) {
	t.Parallel()

	a := fromSlice(5, 1, 4, 1, 5, 9, 2, 6)
	jarray.Sort(a.Begin(), a.End())
	once := slices.Collect(a.Values())

	jarray.Sort(a.Begin(), a.End())

	assert.Equal(t, once, slices.Collect(a.Values()))
	assert.True(t, jarray.IsSorted(a.Begin(), a.End()))
}

// TestSortMatchesSlices compares against slices.Sort on random input.
func TestSortMatchesSlices(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{2, 3, 7, 16, 100, 1025} {
		want := make([]int, n)
		for i := range want {
			want[i] = rng.Intn(50)
		}
		a := fromSlice(want...)
		slices.Sort(want)

		jarray.Sort(a.Begin(), a.End())

		require.Equal(t, want, slices.Collect(a.Values()), "n=%d", n)
	}
}

func TestSortFuncDescending(t *testing.T) {
	t.Parallel()

	a := fromSlice("Minase Iori", "Futaba An", "Kamiya Nao")
	desc := func(x, y string) bool { return x > y }

	jarray.SortFunc(a.Begin(), a.End(), desc)

	assert.Equal(t, []string{"Minase Iori", "Kamiya Nao", "Futaba An"}, slices.Collect(a.Values()))
	assert.True(t, jarray.IsSortedFunc(a.Begin(), a.End(), desc))
	assert.False(t, jarray.IsSorted(a.Begin(), a.End()))
}

// TestSortSubrange sorts only the middle of the array.
func TestSortSubrange(t *testing.T) {
	t.Parallel()

	a := fromSlice(9, 5, 3, 4, 1, 0)

	jarray.Sort(a.Begin().Add(1), a.End().Sub(1))

	assert.Equal(t, []int{9, 1, 3, 4, 5, 0}, slices.Collect(a.Values()))
}

func TestIterSwap(t *testing.T) {
	t.Parallel()

	a := fromSlice("x", "y", "z")
	jarray.IterSwap(a.Begin(), a.End().Sub(1))

	assert.Equal(t, "[z y x]", a.String())
}
