package jarray

import "errors"

// Precondition violations. They are only raised, as panic values, by
// builds tagged jarraydebug.
var (
	ErrOutOfRange      = errors.New("jarray: iterator dereferenced outside its buffer")
	ErrForeignIterator = errors.New("jarray: iterators belong to different buffers")
)
