package PriorityQueues

import (
	"slices"

	"golang.org/x/exp/constraints"

	lin "github.com/g-m-twostay/go-linear"
)

// sortedPQ keeps content sorted by Entry.Before after every mutation, so the lowest entry is
// always content[0].
type sortedPQ[P constraints.Ordered, V any] struct {
	content []Entry[P, V]
	arrived arrivals
}

// MakeSorted returns a queue that places each entry by a linear scan. Insert is O(n); Peek and
// Extract are O(1).
func MakeSorted[P constraints.Ordered, V any]() OrderedPriorityQueue[P, V] {
	return &sortedPQ[P, V]{}
}

func (u *sortedPQ[P, V]) Size() uint {
	return uint(len(u.content))
}

func (u *sortedPQ[P, V]) Empty() bool {
	return len(u.content) == 0
}

// Insert scans past every entry that leaves before the new one and inserts there.
// Time: O(n); Space: O(1) amortized
func (u *sortedPQ[P, V]) Insert(priority P, value V) {
	e := Entry[P, V]{priority, u.arrived.next(), value}
	i := 0
	for i < len(u.content) && u.content[i].Before(e) {
		i++
	}
	u.content = slices.Insert(u.content, i, e)
}

// Time: O(1); Space: O(1)
func (u *sortedPQ[P, V]) Peek() (Entry[P, V], error) {
	if u.Empty() {
		return Entry[P, V]{}, &lin.EmptyContainerError{Op: "Peek"}
	}
	return u.content[0], nil
}

// Time: O(1); Space: O(1)
func (u *sortedPQ[P, V]) Extract() (Entry[P, V], error) {
	if u.Empty() {
		return Entry[P, V]{}, &lin.EmptyContainerError{Op: "Extract"}
	}
	e := u.content[0]
	u.content[0] = Entry[P, V]{}
	u.content = u.content[1:]
	return e, nil
}

func (u *sortedPQ[P, V]) Range(f func(Entry[P, V]) bool) {
	for _, e := range u.content {
		if !f(e) {
			return
		}
	}
}
