package Queues

import lin "github.com/g-m-twostay/go-linear"

// linkedQ owns its chain from head; tail aliases the last node so Enqueue needn't walk.
// tail is nil iff head is nil.
type linkedQ[T any] struct {
	head, tail *lin.Node[T]
	sz         uint
}

func MakeLinkedQueue[T any]() GrowableQueue[T] {
	return &linkedQ[T]{}
}

func (c *linkedQ[T]) Empty() bool {
	return c.head == nil
}

func (c *linkedQ[T]) Size() uint {
	return c.sz
}

// Time: O(1); Space: O(1)
func (c *linkedQ[T]) Enqueue(item T) {
	n := lin.NewNode(item)
	if c.tail == nil {
		c.head = n
	} else {
		c.tail.Nx = n
	}
	c.tail = n
	c.sz++
}

// Time: O(1); Space: O(1)
func (c *linkedQ[T]) Dequeue() (T, error) {
	if c.head == nil {
		return *new(T), &lin.EmptyContainerError{Op: "Dequeue"}
	}
	n := c.head
	if c.head = n.Detach(); c.head == nil {
		c.tail = nil
	}
	c.sz--
	return n.V, nil
}

func (c *linkedQ[T]) Front() (T, error) {
	if c.head == nil {
		return *new(T), &lin.EmptyContainerError{Op: "Front"}
	}
	return c.head.V, nil
}
