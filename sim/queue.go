// Implements the WaitQueue, which holds all requests still owed service in a run.
// Requests are enqueued in batch order; round-robin re-enqueues unfinished requests at the tail.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue represents a FIFO queue of requests waiting for the server.
// A WaitQueue is owned by exactly one Engine for the duration of a run.
type WaitQueue struct {
	queue []*Request // FIFO queue of requests
}

// Enqueue adds a request to the back of the wait queue.
func (wq *WaitQueue) Enqueue(r *Request) {
	if r == nil {
		panic("Enqueue: req must not be nil")
	}
	wq.queue = append(wq.queue, r)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of requests in the queue.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the request at the front of the queue without removing it.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Peek() *Request {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
func (wq *WaitQueue) Items() []*Request {
	return wq.queue
}

// Dequeue removes and returns the request at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Request {
	if len(wq.queue) == 0 {
		return nil
	}
	req := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return req
}

// RemoveAt removes and returns the request at index i, preserving the
// relative order of the remaining requests. Panics if i is out of range.
func (wq *WaitQueue) RemoveAt(i int) *Request {
	if i < 0 || i >= len(wq.queue) {
		panic(fmt.Sprintf("RemoveAt: index %d out of range [0,%d)", i, len(wq.queue)))
	}
	req := wq.queue[i]
	copy(wq.queue[i:], wq.queue[i+1:])
	wq.queue[len(wq.queue)-1] = nil
	wq.queue = wq.queue[:len(wq.queue)-1]
	return req
}
