package types

// Queue is a FIFO with unlimited capacity.
// not thread safe
type Queue[T any] struct {
	data []T
}

func (q *Queue[T]) Len() int {
	return len(q.data)
}

func (q *Queue[T]) Push(v T) {
	q.data = append(q.data, v)
}

// Pop returns false on empty
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.data) == 0 {
		return zero, false
	}
	v := q.data[0]
	q.data[0] = zero
	q.data = q.data[1:]
	return v, true
}

// Drain calls fn for every queued value in order and leaves the queue empty.
// Values pushed by fn are drained too. fn must not call Pop.
func (q *Queue[T]) Drain(fn func(T)) {
	for i := 0; i < len(q.data); i++ {
		fn(q.data[i])
	}
	// keep the backing array for the next frame
	clear(q.data)
	q.data = q.data[:0]
}
