package PriorityQueues

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	lin "github.com/g-m-twostay/go-linear"
)

// DefaultDegree is used by MakeTree when given a degree below 2.
const DefaultDegree = 32

// treePQ never replaces: Arrival makes every key distinct.
type treePQ[P constraints.Ordered, V any] struct {
	t       *btree.BTreeG[Entry[P, V]]
	arrived arrivals
}

// MakeTree returns a queue backed by a B-tree of the given degree. Insert and Extract are
// O(log n), and Range walks in extraction order.
func MakeTree[P constraints.Ordered, V any](degree int) OrderedPriorityQueue[P, V] {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &treePQ[P, V]{t: btree.NewG[Entry[P, V]](degree, Entry[P, V].Before)}
}

func (u *treePQ[P, V]) Size() uint {
	return uint(u.t.Len())
}

func (u *treePQ[P, V]) Empty() bool {
	return u.t.Len() == 0
}

// Time: O(log n); Space: O(1) amortized
func (u *treePQ[P, V]) Insert(priority P, value V) {
	u.t.ReplaceOrInsert(Entry[P, V]{priority, u.arrived.next(), value})
}

func (u *treePQ[P, V]) Peek() (Entry[P, V], error) {
	e, ok := u.t.Min()
	if !ok {
		return Entry[P, V]{}, &lin.EmptyContainerError{Op: "Peek"}
	}
	return e, nil
}

// Time: O(log n); Space: O(1)
func (u *treePQ[P, V]) Extract() (Entry[P, V], error) {
	e, ok := u.t.DeleteMin()
	if !ok {
		return Entry[P, V]{}, &lin.EmptyContainerError{Op: "Extract"}
	}
	return e, nil
}

func (u *treePQ[P, V]) Range(f func(Entry[P, V]) bool) {
	u.t.Ascend(btree.ItemIteratorG[Entry[P, V]](f))
}
