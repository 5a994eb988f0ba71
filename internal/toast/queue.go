package toast

import "github.com/colonyops/courtside/internal/core/notify"

// Queue is an unbounded FIFO of notifications waiting for the display slot.
// It is not safe for concurrent use; the engine guards it.
type Queue struct {
	items []notify.Notification
}

// Enqueue appends n to the back of the queue.
func (q *Queue) Enqueue(n notify.Notification) {
	q.items = append(q.items, n)
}

// Dequeue removes and returns the notification that has waited longest.
func (q *Queue) Dequeue() (notify.Notification, bool) {
	if len(q.items) == 0 {
		return notify.Notification{}, false
	}

	n := q.items[0]
	q.items[0] = notify.Notification{}
	q.items = q.items[1:]

	// Release the backing array once drained so a burst does not pin memory.
	if len(q.items) == 0 {
		q.items = nil
	}
	return n, true
}

// Len returns the number of waiting notifications.
func (q *Queue) Len() int {
	return len(q.items)
}

// Reset drops every waiting notification.
func (q *Queue) Reset() {
	q.items = nil
}
