package Lists

import (
	"fmt"
	"strings"

	lin "github.com/g-m-twostay/go-linear"
)

// LinkedList is a singly linked list holding only a head reference. Operations at the front
// are O(1); anything positional walks the chain from head.
// The zero value is an empty list ready to use.
type LinkedList[T comparable] struct {
	head *lin.Node[T]
	sz   uint
}

func MakeLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// Size returns the number of elements.
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) Size() uint {
	return u.sz
}

// Empty reports whether the list holds no elements.
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) Empty() bool {
	return u.head == nil
}

// at returns the node at pos, which must be in [0, sz).
func (u *LinkedList[T]) at(pos int) *lin.Node[T] {
	cur := u.head
	for ; pos > 0; pos-- {
		cur = cur.Nx
	}
	return cur
}

// PushFront inserts v as the first element.
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) PushFront(v T) {
	u.head = lin.NewNode(v).Link(u.head)
	u.sz++
}

// PushBack appends v after the last element. The list keeps no tail, so the chain is walked.
// Time: O(n); Space: O(1)
func (u *LinkedList[T]) PushBack(v T) {
	if u.head == nil {
		u.head = lin.NewNode(v)
	} else {
		u.head.Last().Nx = lin.NewNode(v)
	}
	u.sz++
}

// Insert places v so that it ends up at index pos. pos must be in [0, Size()]; inserting at
// Size() is the same as PushBack.
// Time: O(pos); Space: O(1)
func (u *LinkedList[T]) Insert(pos int, v T) error {
	if pos < 0 || uint(pos) > u.sz {
		return &lin.InvalidPositionError{Pos: pos, Size: u.sz}
	}
	if pos == 0 {
		u.PushFront(v)
		return nil
	}
	prev := u.at(pos - 1)
	prev.Nx = lin.NewNode(v).Link(prev.Nx)
	u.sz++
	return nil
}

// PopFront removes and returns the first element.
// Time: O(1); Space: O(1)
func (u *LinkedList[T]) PopFront() (T, error) {
	if u.head == nil {
		return *new(T), &lin.EmptyContainerError{Op: "PopFront"}
	}
	n := u.head
	u.head = n.Detach()
	u.sz--
	return n.V, nil
}

// PopBack removes and returns the last element.
// Time: O(n); Space: O(1)
func (u *LinkedList[T]) PopBack() (T, error) {
	if u.head == nil {
		return *new(T), &lin.EmptyContainerError{Op: "PopBack"}
	}
	if u.head.Nx == nil {
		return u.PopFront()
	}
	prev := u.head
	for prev.Nx.Nx != nil {
		prev = prev.Nx
	}
	v := prev.Nx.V
	prev.Nx = nil
	u.sz--
	return v, nil
}

// RemoveAt removes and returns the element at pos, which must be in [0, Size()).
// Time: O(pos); Space: O(1)
func (u *LinkedList[T]) RemoveAt(pos int) (T, error) {
	if u.head == nil {
		return *new(T), &lin.EmptyContainerError{Op: "RemoveAt"}
	}
	if pos < 0 || uint(pos) >= u.sz {
		return *new(T), &lin.InvalidPositionError{Pos: pos, Size: u.sz}
	}
	if pos == 0 {
		return u.PopFront()
	}
	prev := u.at(pos - 1)
	n := prev.Nx
	prev.Nx = n.Detach()
	u.sz--
	return n.V, nil
}

// Remove unlinks the first element equal to v. It returns false if there is none.
// Time: O(n); Space: O(1)
func (u *LinkedList[T]) Remove(v T) bool {
	if u.head == nil {
		return false
	}
	if u.head.V == v {
		u.head = u.head.Detach()
		u.sz--
		return true
	}
	for prev := u.head; prev.Nx != nil; prev = prev.Nx {
		if prev.Nx.V == v {
			prev.Nx = prev.Nx.Detach()
			u.sz--
			return true
		}
	}
	return false
}

// Find returns the index of the first element equal to v, or -1.
// Time: O(n); Space: O(1)
func (u *LinkedList[T]) Find(v T) int {
	i, found := 0, -1
	u.head.Walk(func(n *lin.Node[T]) bool {
		if n.V == v {
			found = i
			return false
		}
		i++
		return true
	})
	return found
}

// Get returns the element at pos without removing it.
// Time: O(pos); Space: O(1)
func (u *LinkedList[T]) Get(pos int) (T, error) {
	if pos < 0 || uint(pos) >= u.sz {
		return *new(T), &lin.InvalidPositionError{Pos: pos, Size: u.sz}
	}
	return u.at(pos).V, nil
}

// Range calls f on each element from front to back until f returns false.
func (u *LinkedList[T]) Range(f func(T) bool) {
	u.head.Walk(func(n *lin.Node[T]) bool {
		return f(n.V)
	})
}

// Slice copies the elements into a new slice, front first.
func (u *LinkedList[T]) Slice() []T {
	s := make([]T, 0, u.sz)
	u.Range(func(v T) bool {
		s = append(s, v)
		return true
	})
	return s
}

// Clear drops every element.
func (u *LinkedList[T]) Clear() {
	for u.head != nil {
		u.head = u.head.Detach()
	}
	u.sz = 0
}

func (u *LinkedList[T]) String() string {
	if u.head == nil {
		return "[]"
	}
	var sb strings.Builder
	u.head.Walk(func(n *lin.Node[T]) bool {
		if n != u.head {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, n.V)
		return true
	})
	return sb.String()
}
