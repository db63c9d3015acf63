package adorn

// Stack is a LIFO of plain values.
type Stack[T any] struct {
	items []T
}

// Push adds v on top.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top value. ok is false on an empty stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	last := len(s.items) - 1
	v = s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return v, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of values on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// noDivType is pushed for a div without a type attribute.
const noDivType = "#none"

// jumpState is what a jump tag saves on entry and restores on exit.
type jumpState struct {
	melder      any
	isFirstWord bool
}
