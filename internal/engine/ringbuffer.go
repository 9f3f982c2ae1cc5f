package engine

// RingBuffer is a generic fixed-capacity circular buffer. It is not safe for
// concurrent use; the watch view owns its buffers from a single goroutine.
type RingBuffer[T any] struct {
	items []T
	head  int
	count int
}

// NewRingBuffer creates a new RingBuffer with the given capacity. A
// capacity below one is raised to one.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{items: make([]T, capacity)}
}

// Add inserts an item, overwriting the oldest if full.
func (r *RingBuffer[T]) Add(item T) {
	r.items[r.head] = item
	r.head = (r.head + 1) % len(r.items)
	if r.count < len(r.items) {
		r.count++
	}
}

// Len returns the number of items currently in the buffer.
func (r *RingBuffer[T]) Len() int {
	return r.count
}

// All returns all items in order from oldest to newest.
func (r *RingBuffer[T]) All() []T {
	result := make([]T, r.count)
	start := (r.head - r.count + len(r.items)) % len(r.items)
	for i := range result {
		result[i] = r.items[(start+i)%len(r.items)]
	}
	return result
}

// Last returns the most recently added item.
func (r *RingBuffer[T]) Last() (T, bool) {
	var zero T
	if r.count == 0 {
		return zero, false
	}
	return r.items[(r.head-1+len(r.items))%len(r.items)], true
}

// Series projects the buffered items, oldest first, into float values.
func Series[T any](r *RingBuffer[T], fn func(T) float64) []float64 {
	out := make([]float64, 0, r.count)
	for _, item := range r.All() {
		out = append(out, fn(item))
	}
	return out
}
