package jarray

// GrowthEvent describes one reallocation.
type GrowthEvent struct {
	OldCap int // slots before the reallocation
	NewCap int // slots after the reallocation
	Moved  int // live elements copied into the new buffer
}

// GrowthObserver is notified every time an Array reallocates.
type GrowthObserver interface {
	ObserveGrowth(GrowthEvent)
}

// ReleaseObserver is an optional extension of GrowthObserver, notified
// when Free releases a buffer of the given capacity.
type ReleaseObserver interface {
	ObserveRelease(capacity int)
}

// ObserverFunc adapts a function to a GrowthObserver.
type ObserverFunc func(GrowthEvent)

func (f ObserverFunc) ObserveGrowth(e GrowthEvent) { f(e) }
