// Package PriorityQueues orders entries by (Priority, Arrival), lowest first. Arrival is a
// per-queue counter assigned on Insert, so entries with equal priority leave in the order they
// came in, whatever the backing.
package PriorityQueues

import "golang.org/x/exp/constraints"

// Entry is what a PriorityQueue hands back. Arrival is assigned by the queue; the first Insert
// gets 0.
type Entry[P constraints.Ordered, V any] struct {
	Priority P
	Arrival  uint64
	Value    V
}

// Before reports whether e leaves the queue before o.
func (e Entry[P, V]) Before(o Entry[P, V]) bool {
	return e.Priority < o.Priority || (e.Priority == o.Priority && e.Arrival < o.Arrival)
}

type PriorityQueue[P constraints.Ordered, V any] interface {
	Insert(priority P, value V)
	// Peek returns the lowest entry without removing it, or *EmptyContainerError.
	Peek() (Entry[P, V], error)
	// Extract removes and returns the lowest entry, or *EmptyContainerError.
	Extract() (Entry[P, V], error)
	Size() uint
	Empty() bool
}

// OrderedPriorityQueue can also be walked in extraction order without extracting.
type OrderedPriorityQueue[P constraints.Ordered, V any] interface {
	PriorityQueue[P, V]
	Range(f func(Entry[P, V]) bool)
}

// arrivals hands out Arrival values.
type arrivals uint64

func (a *arrivals) next() (n uint64) {
	n = uint64(*a)
	*a++
	return
}
