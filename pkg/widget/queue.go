package widget

import "slices"

// Queue is a FIFO of type-erased messages sent by widgets.
type Queue struct {
	items []any
}

// Push appends msg.
func (q *Queue) Push(msg any) {
	q.items = append(q.items, msg)
}

// Len returns the number of queued messages.
func (q *Queue) Len() int {
	return len(q.items)
}

// All returns a copy of the queued messages in order.
func (q *Queue) All() []any {
	out := make([]any, len(q.items))
	copy(out, q.items)
	return out
}

// Clear drops every message.
func (q *Queue) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// Drain calls fn for every message of type T, in order, and removes those
// messages. Messages of other types stay queued in their original order.
// fn must not push to q.
func Drain[T any](q *Queue, fn func(T)) {
	kept := q.items[:0]
	for _, item := range q.items {
		if msg, ok := item.(T); ok {
			fn(msg)
			continue
		}
		kept = append(kept, item)
	}
	clear(q.items[len(kept):])
	q.items = kept
}

// Pop removes and returns the first message of type T.
func Pop[T any](q *Queue) (T, bool) {
	for i, item := range q.items {
		if msg, ok := item.(T); ok {
			q.items = slices.Delete(q.items, i, i+1)
			return msg, true
		}
	}
	var zero T
	return zero, false
}
