package Queues

import lin "github.com/g-m-twostay/go-linear"

// circArrQ is a fixed capacity ring buffer. tail == (head+sz) % len(content) always holds, and
// slots outside [head, head+sz) are zeroed.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeCircularQueue returns a BoundedQueue that never reallocates. A capacity of 0 gives a queue
// that is always both empty and full.
func MakeCircularQueue[T any](capacity uint) BoundedQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, capacity)}
}

func (this *circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) Full() bool {
	return this.sz == uint(len(this.content))
}

func (this *circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Cap() uint {
	return uint(len(this.content))
}

// Time: O(1); Space: O(1)
func (this *circArrQ[T]) Enqueue(item T) error {
	if this.Full() {
		return &lin.FullContainerError{Cap: this.Cap()}
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
	return nil
}

// Time: O(1); Space: O(1)
func (this *circArrQ[T]) Dequeue() (T, error) {
	if this.Empty() {
		return *new(T), &lin.EmptyContainerError{Op: "Dequeue"}
	}
	t := this.content[this.head]
	this.content[this.head] = *new(T)
	this.head = (this.head + 1) % uint(len(this.content))
	this.sz--
	return t, nil
}

func (this *circArrQ[T]) Front() (T, error) {
	if this.Empty() {
		return *new(T), &lin.EmptyContainerError{Op: "Front"}
	}
	return this.content[this.head], nil
}
