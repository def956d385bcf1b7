//go:build !jarraydebug

package jarray

func assertInRange(int, int) {}

func assertSameBuffer[T any](_, _ []T) {}
