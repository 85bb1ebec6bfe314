package PriorityQueues

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"

	lin "github.com/g-m-twostay/go-linear"
)

type heapPQ[P constraints.Ordered, V any] struct {
	h       *binaryheap.Heap
	arrived arrivals
}

// MakeHeap returns a queue backed by a binary min-heap. Insert and Extract are O(log n).
func MakeHeap[P constraints.Ordered, V any]() PriorityQueue[P, V] {
	var cmp utils.Comparator = func(a, b interface{}) int {
		x, y := a.(Entry[P, V]), b.(Entry[P, V])
		switch {
		case x.Before(y):
			return -1
		case y.Before(x):
			return 1
		}
		return 0
	}
	return &heapPQ[P, V]{h: binaryheap.NewWith(cmp)}
}

func (u *heapPQ[P, V]) Size() uint {
	return uint(u.h.Size())
}

func (u *heapPQ[P, V]) Empty() bool {
	return u.h.Empty()
}

// Time: O(log n); Space: O(1) amortized
func (u *heapPQ[P, V]) Insert(priority P, value V) {
	u.h.Push(Entry[P, V]{priority, u.arrived.next(), value})
}

func (u *heapPQ[P, V]) Peek() (Entry[P, V], error) {
	e, ok := u.h.Peek()
	if !ok {
		return Entry[P, V]{}, &lin.EmptyContainerError{Op: "Peek"}
	}
	return e.(Entry[P, V]), nil
}

// Time: O(log n); Space: O(1)
func (u *heapPQ[P, V]) Extract() (Entry[P, V], error) {
	e, ok := u.h.Pop()
	if !ok {
		return Entry[P, V]{}, &lin.EmptyContainerError{Op: "Extract"}
	}
	return e.(Entry[P, V]), nil
}
