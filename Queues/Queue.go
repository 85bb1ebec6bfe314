package Queues

// Queue is the read side shared by every FIFO container in this package. Enqueue differs between
// unbounded and bounded queues, so it lives in GrowableQueue and BoundedQueue.
type Queue[T any] interface {
	// Dequeue removes and returns the oldest item, or *EmptyContainerError if there is none.
	Dequeue() (T, error)
	// Front returns the oldest item without removing it, or *EmptyContainerError if there is none.
	Front() (T, error)
	Size() uint
	Empty() bool
}

// GrowableQueue never rejects an item.
type GrowableQueue[T any] interface {
	Queue[T]
	Enqueue(item T)
}

// BoundedQueue holds at most Cap items. Enqueue on a full queue returns *FullContainerError and
// leaves the queue unchanged.
type BoundedQueue[T any] interface {
	Queue[T]
	Enqueue(item T) error
	Full() bool
	Cap() uint
}
