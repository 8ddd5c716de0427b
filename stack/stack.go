package stack

// node is a single element in the chain. Each node owns its successor;
// the bottom node's next is nil.
type node[T any] struct {
	data T
	next *node[T]
}

// Stack is an unbounded LIFO container backed by a singly-linked chain of
// nodes. The zero value is ready to use, but callers should prefer New.
// Stack is not safe for concurrent use; see the shared package for the
// exclusivity wrapper.
type Stack[T any] struct {
	top *node[T]
	len int
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push inserts v as the new top element. O(1).
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{data: v, next: s.top}
	s.len++
}

// Pop removes and returns the top element. The second return value is
// false when the stack is empty; popping an empty stack is not an error.
// O(1).
func (s *Stack[T]) Pop() (T, bool) {
	if s.top == nil {
		var zero T
		return zero, false
	}
	n := s.top
	s.top = n.next
	s.len--
	return n.data, true
}

// Len returns the number of elements currently on the stack.
func (s *Stack[T]) Len() int {
	return s.len
}
