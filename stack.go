package postfix

import (
	"iter"
	"strings"
)

// Stack is a last-in first-out sequence. The zero value is an empty stack.
type Stack[T any] struct {
	v []T
}

// Push adds x to the top of the stack.
func (s *Stack[T]) Push(x T) {
	s.v = append(s.v, x)
}

// Pop removes the top of the stack and returns it. Panics if the stack is
// empty.
func (s *Stack[T]) Pop() T {
	if len(s.v) == 0 {
		panic("postfix: pop from empty stack")
	}
	var zero T
	r := s.v[len(s.v)-1]
	s.v[len(s.v)-1] = zero
	s.v = s.v[:len(s.v)-1]
	return r
}

// Peek returns the top of the stack without removing it. Panics if the stack
// is empty.
func (s *Stack[T]) Peek() T {
	if len(s.v) == 0 {
		panic("postfix: peek on empty stack")
	}
	return s.v[len(s.v)-1]
}

// Empty returns whether the stack has no elements.
func (s *Stack[T]) Empty() bool {
	return len(s.v) == 0
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return len(s.v)
}

// Queue is a first-in first-out sequence. The zero value is an empty queue.
type Queue[T any] struct {
	v    []T
	head int
}

// NewQueue creates a queue holding xs in order.
func NewQueue[T any](xs ...T) *Queue[T] {
	return &Queue[T]{v: append([]T(nil), xs...)}
}

// Enqueue adds x to the back of the queue.
func (q *Queue[T]) Enqueue(x T) {
	if q.head > 0 && q.head == len(q.v) {
		// Everything has been dequeued; reuse the backing array.
		q.v = q.v[:0]
		q.head = 0
	}
	q.v = append(q.v, x)
}

// Dequeue removes the front of the queue and returns it. Panics if the queue
// is empty.
func (q *Queue[T]) Dequeue() T {
	if q.head == len(q.v) {
		panic("postfix: dequeue from empty queue")
	}
	var zero T
	r := q.v[q.head]
	q.v[q.head] = zero
	q.head++
	return r
}

// Empty returns whether the queue has no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == len(q.v)
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return len(q.v) - q.head
}

// All yields the elements of the queue from front to back without removing
// them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range q.v[q.head:] {
			if !yield(x) {
				return
			}
		}
	}
}

// Texts returns the text of each token in q, front to back.
func Texts(q *Queue[Token]) []string {
	r := make([]string, 0, q.Len())
	for tok := range q.All() {
		r = append(r, tok.Text)
	}
	return r
}

// Format formats the tokens in q separated by spaces, e.g. "10 20 3 * +".
// The queue is not modified.
func Format(q *Queue[Token]) string {
	return strings.Join(Texts(q), " ")
}
