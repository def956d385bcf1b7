//go:build jarraydebug

package jarray

import "fmt"

func assertInRange(pos, n int) {
	if pos < 0 || pos >= n {
		panic(fmt.Errorf("%w: position %d, %d slots", ErrOutOfRange, pos, n))
	}
}

func assertSameBuffer[T any](a, b []T) {
	if base(a) != base(b) {
		panic(ErrForeignIterator)
	}
}

// base identifies a buffer by the address of its first slot.
func base[T any](buf []T) *T {
	if cap(buf) == 0 {
		return nil
	}
	return &buf[:1][0]
}
