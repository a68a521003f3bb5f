package containers

// Stack is a LIFO container backed by a slice. The zero value is an empty
// stack ready to use.
//
// Pop and Peek require a non-empty stack. Violating that precondition is a
// bug in the caller, so both panic instead of returning a zero value.
type Stack[T any] struct {
	items []T
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push appends value at the top of the stack.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// Pop removes and returns the top element.
// It panics if the stack is empty.
func (s *Stack[T]) Pop() T {
	if len(s.items) == 0 {
		panic("cannot pop from an empty stack")
	}

	top := s.items[len(s.items)-1]
	var zero T
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top
}

// Peek returns the top element without removing it.
// It panics if the stack is empty.
func (s *Stack[T]) Peek() T {
	if len(s.items) == 0 {
		panic("cannot peek into an empty stack")
	}
	return s.items[len(s.items)-1]
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int {
	return len(s.items)
}
