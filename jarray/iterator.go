package jarray

// Iterator is a random-access position in an Array's buffer.
//
// An Iterator does not own the buffer and does not keep the Array's
// contents valid: any PushBack that reallocates invalidates every Iterator
// previously obtained from that Array. Using an invalidated Iterator, one
// outside [Begin(), End()) for dereference, or comparing Iterators from
// different Arrays is undefined. Release builds do not detect any of this;
// builds tagged jarraydebug panic on the cases they can see.
//
// The zero Iterator behaves like Begin() of an empty Array.
type Iterator[T any] struct {
	buf []T // full capacity extent of the buffer
	pos int
}

// Get returns the element at the current position (*it).
func (it Iterator[T]) Get() T { return *it.Ptr() }

// Set stores v at the current position (*it = v).
func (it Iterator[T]) Set(v T) { *it.Ptr() = v }

// Ptr returns a pointer to the element at the current position (it->).
func (it Iterator[T]) Ptr() *T {
	assertInRange(it.pos, len(it.buf))
	return &it.buf[it.pos]
}

// At returns a pointer to the element n slots away (it[n]).
func (it Iterator[T]) At(n int) *T { return it.Add(n).Ptr() }

// Pos returns the slot index of the position.
func (it Iterator[T]) Pos() int { return it.pos }

// Inc moves one slot forward and returns it (++it).
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// Dec moves one slot backward and returns it (--it).
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// PostInc moves one slot forward and returns the previous position (it++).
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// PostDec moves one slot backward and returns the previous position (it--).
func (it *Iterator[T]) PostDec() Iterator[T] {
	prev := *it
	it.pos--
	return prev
}

// Advance moves n slots forward (it += n). n may be negative.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	return it
}

// Retreat moves n slots backward (it -= n).
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	it.pos -= n
	return it
}

// Add returns a copy moved n slots forward (it + n).
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy moved n slots backward (it - n).
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.Retreat(n)
	return it
}

// Distance returns the signed number of slots from other to it (it - other).
func (it Iterator[T]) Distance(other Iterator[T]) int {
	assertSameBuffer(it.buf, other.buf)
	return it.pos - other.pos
}

// Compare returns -1, 0 or +1 as it is before, at or after other.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	switch d := it.Distance(other); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}

func (it Iterator[T]) Equal(other Iterator[T]) bool     { return it.Compare(other) == 0 }
func (it Iterator[T]) NotEqual(other Iterator[T]) bool  { return it.Compare(other) != 0 }
func (it Iterator[T]) Less(other Iterator[T]) bool      { return it.Compare(other) < 0 }
func (it Iterator[T]) LessEq(other Iterator[T]) bool    { return it.Compare(other) <= 0 }
func (it Iterator[T]) Greater(other Iterator[T]) bool   { return it.Compare(other) > 0 }
func (it Iterator[T]) GreaterEq(other Iterator[T]) bool { return it.Compare(other) >= 0 }

// Distance returns last - first, the number of elements in [first, last).
func Distance[T any](first, last Iterator[T]) int {
	return last.Distance(first)
}
