package Stacks

import lin "github.com/g-m-twostay/go-linear"

type arrStack[T any] struct {
	content []T
}

// MakeArrayStack returns a Stack backed by a growable slice with room for initCap items
// before its first reallocation.
func MakeArrayStack[T any](initCap uint) Stack[T] {
	return &arrStack[T]{make([]T, 0, initCap)}
}

func (this *arrStack[T]) Empty() bool {
	return len(this.content) == 0
}

func (this *arrStack[T]) Size() uint {
	return uint(len(this.content))
}

// Time: O(1) amortized; Space: O(1) amortized
func (this *arrStack[T]) Push(item T) {
	this.content = append(this.content, item)
}

// Time: O(1); Space: O(1)
func (this *arrStack[T]) Pop() (T, error) {
	if this.Empty() {
		return *new(T), &lin.EmptyContainerError{Op: "Pop"}
	}
	last := len(this.content) - 1
	t := this.content[last]
	this.content[last] = *new(T)
	this.content = this.content[:last]
	return t, nil
}

func (this *arrStack[T]) Peek() (T, error) {
	if this.Empty() {
		return *new(T), &lin.EmptyContainerError{Op: "Peek"}
	}
	return this.content[len(this.content)-1], nil
}

// Clear keeps the backing array but zeroes it so nothing stays reachable.
func (this *arrStack[T]) Clear() {
	clear(this.content)
	this.content = this.content[:0]
}
