package jarray

import (
	"cmp"
	"sort"
)

// rangeView exposes [first, first+n) as a sort.Interface using only
// iterator operations.
type rangeView[T any] struct {
	first Iterator[T]
	n     int
	less  func(a, b T) bool
}

func (r rangeView[T]) Len() int           { return r.n }
func (r rangeView[T]) Less(i, j int) bool { return r.less(*r.first.At(i), *r.first.At(j)) }
func (r rangeView[T]) Swap(i, j int)      { IterSwap(r.first.Add(i), r.first.Add(j)) }

func newRangeView[T any](first, last Iterator[T], less func(a, b T) bool) rangeView[T] {
	return rangeView[T]{first: first, n: Distance(first, last), less: less}
}

// Sort sorts [first, last) in ascending order. Ranges of fewer than two
// elements are left untouched.
func Sort[T cmp.Ordered](first, last Iterator[T]) {
	SortFunc(first, last, cmp.Less[T])
}

// SortFunc sorts [first, last) in place using less as the strict weak
// ordering. The sort is not stable.
func SortFunc[T any](first, last Iterator[T], less func(a, b T) bool) {
	r := newRangeView(first, last, less)
	if r.n < 2 {
		return
	}
	sort.Sort(r)
}

// IsSorted reports whether [first, last) is in ascending order.
func IsSorted[T cmp.Ordered](first, last Iterator[T]) bool {
	return IsSortedFunc(first, last, cmp.Less[T])
}

// IsSortedFunc reports whether [first, last) is sorted according to less.
func IsSortedFunc[T any](first, last Iterator[T], less func(a, b T) bool) bool {
	return sort.IsSorted(newRangeView(first, last, less))
}

// IterSwap exchanges the elements a and b point at.
func IterSwap[T any](a, b Iterator[T]) {
	pa, pb := a.Ptr(), b.Ptr()
	*pa, *pb = *pb, *pa
}
