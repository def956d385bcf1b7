// Package jarray provides Array, a contiguous growable sequence with a
// doubling growth policy, and Iterator, a random-access position into it.
//
// The zero value of Array is empty and ready to use:
//
//	var a jarray.Array[string]
//	a.PushBack("b")
//	a.PushBack("a")
//	jarray.Sort(a.Begin(), a.End())
//
// Array is not safe for concurrent use.
package jarray

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
)

// Config holds optional collaborators for an Array. Every field may be left
// zero.
type Config[T any] struct {
	// Copy produces the copy stored on PushBack and on every reallocation.
	// If nil, elements are copied by assignment.
	Copy func(T) T

	// Destroy is called on every live element removed from a buffer, in
	// order from last to first. If nil, slots are only zeroed.
	Destroy func(*T)

	// Observer is notified of reallocations. If nil, nothing is reported.
	Observer GrowthObserver

	// Logger receives a DEBUG record per reallocation and release. If nil,
	// the Array never logs.
	Logger *slog.Logger
}

// Array is a contiguous, dynamically-growable sequence of T.
//
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are allocated
// but hold the zero value. Capacity is always 0 or a power of two and never
// shrinks except through Free.
type Array[T any] struct {
	data []T
	cfg  Config[T]
}

// New returns an empty Array using cfg. No buffer is allocated until the
// first PushBack.
func New[T any](cfg Config[T]) *Array[T] {
	return &Array[T]{cfg: cfg}
}

// PushBack appends a copy of v. When the Array is full it first reallocates
// to twice its size (or 1 slot when empty), invalidating every outstanding
// Iterator.
func (a *Array[T]) PushBack(v T) {
	if len(a.data) == cap(a.data) {
		a.grow()
	}
	a.data = append(a.data, a.copyOf(v))
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return len(a.data) }

// IsEmpty reports whether the Array holds no elements.
func (a *Array[T]) IsEmpty() bool { return len(a.data) == 0 }

// Cap returns the number of allocated slots.
func (a *Array[T]) Cap() int { return cap(a.data) }

// Begin returns an Iterator on the first live slot.
func (a *Array[T]) Begin() Iterator[T] {
	return a.iteratorAt(0)
}

// End returns an Iterator one past the last live slot.
func (a *Array[T]) End() Iterator[T] {
	return a.iteratorAt(len(a.data))
}

func (a *Array[T]) iteratorAt(pos int) Iterator[T] {
	return Iterator[T]{buf: a.data[:cap(a.data)], pos: pos}
}

// At returns the element at index i. It panics if i is out of range.
func (a *Array[T]) At(i int) T { return a.data[i] }

// All yields index/element pairs over [Begin(), End()).
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for it, end := a.Begin(), a.End(); it.Less(end); it.Inc() {
			if !yield(it.Pos(), it.Get()) {
				return
			}
		}
	}
}

// Values yields the elements of [Begin(), End()) in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Swap exchanges the contents of a and other without copying elements.
// Each Array keeps its own Config. Iterators stay valid and follow the
// buffer they were taken from.
func (a *Array[T]) Swap(other *Array[T]) {
	a.data, other.data = other.data, a.data
}

// Free destroys every live element from last to first and releases the
// buffer. The Array is left empty and may be reused. Calling Free on an
// empty or already freed Array is a no-op apart from logging.
func (a *Array[T]) Free() {
	capacity := cap(a.data)
	a.destroy(a.data)
	a.data = nil

	if ro, ok := a.cfg.Observer.(ReleaseObserver); ok {
		ro.ObserveRelease(capacity)
	}
	if a.cfg.Logger != nil {
		a.cfg.Logger.Debug("jarray: released buffer", "capacity", capacity)
	}
}

// String renders the live elements as [e0 e1 ...].
func (a *Array[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range a.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}

// grow moves the live elements into a buffer of twice their count.
func (a *Array[T]) grow() {
	n := len(a.data)
	newCap := 1
	if n > 0 {
		newCap = 2 * n
	}

	next := make([]T, n, newCap)
	for i, v := range a.data {
		next[i] = a.copyOf(v)
	}

	oldCap := cap(a.data)
	a.destroy(a.data)
	a.data = next

	if a.cfg.Observer != nil {
		a.cfg.Observer.ObserveGrowth(GrowthEvent{OldCap: oldCap, NewCap: newCap, Moved: n})
	}
	if a.cfg.Logger != nil {
		a.cfg.Logger.Debug("jarray: reallocated",
			"old_capacity", oldCap, "new_capacity", newCap, "moved", n)
	}
}

func (a *Array[T]) copyOf(v T) T {
	if a.cfg.Copy != nil {
		return a.cfg.Copy(v)
	}
	return v
}

// destroy runs the destructor over buf from last to first and zeroes each
// slot so the old backing array keeps no references alive.
func (a *Array[T]) destroy(buf []T) {
	var zero T
	for i := len(buf) - 1; i >= 0; i-- {
		if a.cfg.Destroy != nil {
			a.cfg.Destroy(&buf[i])
		}
		buf[i] = zero
	}
}
