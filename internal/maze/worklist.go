package maze

// Worklist is a collection of pending items. Its removal order decides the
// traversal order of Traverse.
type Worklist[T any] interface {
	// IsEmpty reports whether no items remain.
	IsEmpty() bool
	// Add inserts an item.
	Add(item T)
	// RemoveNext removes and returns the next item.
	// It must not be called on an empty worklist.
	RemoveNext() T
}

// Stack returns the most recently added item first.
type Stack[T any] struct {
	items []T
}

// IsEmpty reports whether the stack is empty.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Add pushes item on top of the stack.
func (s *Stack[T]) Add(item T) {
	s.items = append(s.items, item)
}

// RemoveNext pops the top of the stack.
func (s *Stack[T]) RemoveNext() T {
	last := len(s.items) - 1
	item := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return item
}

// Queue returns the earliest added item first.
type Queue[T any] struct {
	items []T
	head  int
}

// IsEmpty reports whether the queue is empty.
func (q *Queue[T]) IsEmpty() bool {
	return q.head == len(q.items)
}

// Add appends item to the back of the queue.
func (q *Queue[T]) Add(item T) {
	q.items = append(q.items, item)
}

// RemoveNext takes the item at the front of the queue.
func (q *Queue[T]) RemoveNext() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item
}

// NewWorklist returns a stack for DepthFirst and a queue for BreadthFirst.
func NewWorklist[T any](mode Mode) Worklist[T] {
	if mode == BreadthFirst {
		return &Queue[T]{}
	}
	return &Stack[T]{}
}
