package Queues

import lin "github.com/g-m-twostay/go-linear"

// sliceQ keeps items in arrival order at content[0:]. Dequeue shifts the remaining items down,
// so the backing array is reused instead of creeping forward.
type sliceQ[T any] struct {
	content []T
}

// MakeSliceQueue returns a GrowableQueue backed by a slice with room for initCap items.
// Dequeue is O(n); use MakeLinkedQueue or MakeCircularQueue when that matters.
func MakeSliceQueue[T any](initCap uint) GrowableQueue[T] {
	return &sliceQ[T]{make([]T, 0, initCap)}
}

func (this *sliceQ[T]) Empty() bool {
	return len(this.content) == 0
}

func (this *sliceQ[T]) Size() uint {
	return uint(len(this.content))
}

// Time: O(1) amortized; Space: O(1) amortized
func (this *sliceQ[T]) Enqueue(item T) {
	this.content = append(this.content, item)
}

// Time: O(n); Space: O(1)
func (this *sliceQ[T]) Dequeue() (T, error) {
	if this.Empty() {
		return *new(T), &lin.EmptyContainerError{Op: "Dequeue"}
	}
	t := this.content[0]
	last := copy(this.content, this.content[1:])
	this.content[last] = *new(T)
	this.content = this.content[:last]
	return t, nil
}

func (this *sliceQ[T]) Front() (T, error) {
	if this.Empty() {
		return *new(T), &lin.EmptyContainerError{Op: "Front"}
	}
	return this.content[0], nil
}
