package engine

import "sync"

// FrameQueue is a FrameClock whose callbacks are run by the owning surface once per frame.
// Surfaces embed it and call RunDue from their event loop. The zero value is ready to use.
type FrameQueue struct {
	mu      sync.Mutex
	pending []FrameCallback
}

var _ FrameClock = &FrameQueue{}

func (q *FrameQueue) RequestFrame(cb FrameCallback) {
	if cb == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, cb)
}

// Pending returns the number of callbacks waiting for the next frame.
//
// Returns:
//   - int: queued callbacks
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// RunDue runs the callbacks requested before this call, in request order. Callbacks requested
// while they run are kept for the next call.
//
// Parameters:
//   - timestamp: the frame timestamp in milliseconds passed to every callback
//
// Returns:
//   - int: the number of callbacks run
func (q *FrameQueue) RunDue(timestamp float64) int {
	q.mu.Lock()
	due := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, cb := range due {
		cb(timestamp)
	}
	return len(due)
}
