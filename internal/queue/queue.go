// internal/queue/queue.go

// Package queue holds the write buffers sitting between the simulation
// tick and the storage backend. A tick pushes its output here; the flush
// drains everything accumulated since the last one in a single batch.
package queue

import "sync"

// Buffer collects items until the next drain. Safe for concurrent use.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
}

// NewBuffer creates an empty buffer.
func NewBuffer[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// Push appends items in arrival order.
func (b *Buffer[T]) Push(items ...T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, items...)
}

// Len returns the number of buffered items.
func (b *Buffer[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Drain returns everything buffered so far and leaves the buffer empty.
// Concurrent drains never hand out the same item twice.
func (b *Buffer[T]) Drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	drained := b.items
	b.items = make([]T, 0, cap(b.items))
	return drained
}
