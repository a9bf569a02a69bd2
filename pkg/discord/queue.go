/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package discord

import "sync"

// Queue is an unbounded FIFO. Push never blocks, which is what lets the
// dispatch path hand an event off without waiting on the consumer; the
// cost is that an unread queue grows until Drain or TryPop catches up.
type Queue[T any] struct {
	mu    sync.Mutex
	items []T
}

// Push appends v to the tail of the queue.
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	q.mu.Unlock()
}

// TryPop removes and returns the head of the queue. The second return
// is false when the queue is empty.
func (q *Queue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Drain removes and returns everything queued, in arrival order.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := q.items
	q.items = nil
	return items
}
