// Package testutil holds test doubles shared across packages.
package testutil

// QueueRandom returns queued values from Intn, then falls back to a
// rotating counter so rejection loops always terminate.
type QueueRandom struct {
	values []int
	next   int
	spin   int
}

// NewQueueRandom creates a QueueRandom preloaded with values.
func NewQueueRandom(values ...int) *QueueRandom {
	return &QueueRandom{values: values}
}

// Queue appends values to the queue.
func (r *QueueRandom) Queue(values ...int) {
	r.values = append(r.values, values...)
}

// Remaining returns how many queued values have not been consumed.
func (r *QueueRandom) Remaining() int {
	return len(r.values) - r.next
}

// Intn returns the next queued value modulo n.
func (r *QueueRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if r.next < len(r.values) {
		v := r.values[r.next]
		r.next++
		return ((v % n) + n) % n
	}
	r.spin++
	return r.spin % n
}
