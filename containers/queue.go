package containers

// Queue is a FIFO container. Elements enter at the back and leave from the
// front. A head index shifted through the backing slice keeps Dequeue
// amortized O(1); the slice is released once the queue drains completely.
//
// Dequeue and Peek require a non-empty queue and panic when it is violated,
// same as Stack.
type Queue[T any] struct {
	items []T
	head  int
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends value at the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	q.items = append(q.items, value)
}

// Dequeue removes and returns the front element.
// It panics if the queue is empty.
func (q *Queue[T]) Dequeue() T {
	if q.IsEmpty() {
		panic("cannot dequeue from an empty queue")
	}

	front := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = nil
		q.head = 0
	}
	return front
}

// Peek returns the front element without removing it.
// It panics if the queue is empty.
func (q *Queue[T]) Peek() T {
	if q.IsEmpty() {
		panic("cannot peek into an empty queue")
	}
	return q.items[q.head]
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.items)
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return len(q.items) - q.head
}
