package Stacks

import lin "github.com/g-m-twostay/go-linear"

// linkedStack owns its chain through top; each Push allocates one node and each Pop releases one.
type linkedStack[T any] struct {
	top *lin.Node[T]
	sz  uint
}

func MakeLinkedStack[T any]() Stack[T] {
	return &linkedStack[T]{}
}

func (this *linkedStack[T]) Empty() bool {
	return this.top == nil
}

func (this *linkedStack[T]) Size() uint {
	return this.sz
}

// Time: O(1); Space: O(1)
func (this *linkedStack[T]) Push(item T) {
	this.top = lin.NewNode(item).Link(this.top)
	this.sz++
}

// Time: O(1); Space: O(1)
func (this *linkedStack[T]) Pop() (T, error) {
	if this.top == nil {
		return *new(T), &lin.EmptyContainerError{Op: "Pop"}
	}
	n := this.top
	this.top = n.Detach()
	this.sz--
	return n.V, nil
}

func (this *linkedStack[T]) Peek() (T, error) {
	if this.top == nil {
		return *new(T), &lin.EmptyContainerError{Op: "Peek"}
	}
	return this.top.V, nil
}

func (this *linkedStack[T]) Clear() {
	for this.top != nil {
		this.top = this.top.Detach()
	}
	this.sz = 0
}
