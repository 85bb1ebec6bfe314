package Stacks

// Stack is a LIFO container. Every implementation here is observably equivalent: the same trace
// of calls returns the same results regardless of backing.
type Stack[T any] interface {
	// Push puts item on top.
	Push(item T)
	// Pop removes and returns the top item, or *EmptyContainerError if there is none.
	Pop() (T, error)
	// Peek returns the top item without removing it, or *EmptyContainerError if there is none.
	Peek() (T, error)
	Size() uint
	Empty() bool
	Clear()
}
