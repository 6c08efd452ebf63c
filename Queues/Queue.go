package Queues

// Queue is a first in, first out container.
type Queue[T any] interface {
	// Push item to the back.
	Push(item T)
	// Pop removes and returns the front item, or *EmptyQueueError when there is none.
	Pop() (T, error)
	// Peek returns the front item without removing it, or the zero value when empty.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue stored in a slice used as a ring, which grows as items
// are pushed.
type ArrayQueue[T any] interface {
	Queue[T]
	// Shrink the backing slice to fit the items held.
	Shrink()
	// Clear drops every item and keeps the backing slice.
	Clear()
	// Size is the number of items held.
	Size() uint
	resize(newLen uint)
}

// EmptyQueueError is returned by Pop on an empty queue.
type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
