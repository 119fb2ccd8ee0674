package engine

import "sync"

type resizeObserver struct {
	id uint64
	cb func([]ResizeObservation)
}

// ResizeQueue is a ResizeSource that collects observations as they happen and delivers them as
// one batch when the owning surface calls Flush. The zero value is ready to use.
type ResizeQueue struct {
	mu        sync.Mutex
	nextID    uint64
	observers []resizeObserver
	pending   []ResizeObservation
}

var _ ResizeSource = &ResizeQueue{}

func (q *ResizeQueue) ObserveResize(cb func(batch []ResizeObservation)) func() {
	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.observers = append(q.observers, resizeObserver{id: id, cb: cb})
	q.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			q.mu.Lock()
			defer q.mu.Unlock()
			for i, o := range q.observers {
				if o.id == id {
					q.observers = append(q.observers[:i:i], q.observers[i+1:]...)
					return
				}
			}
		})
	}
}

// Push records an observation for the next batch.
//
// Parameters:
//   - o: the observation
func (q *ResizeQueue) Push(o ResizeObservation) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, o)
}

// Flush delivers the pending observations as one batch to every observer, in registration
// order. Nothing is delivered when no observation is pending.
//
// Returns:
//   - int: the size of the delivered batch
func (q *ResizeQueue) Flush() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	observers := append([]resizeObserver(nil), q.observers...)
	q.mu.Unlock()

	if len(batch) == 0 {
		return 0
	}
	for _, o := range observers {
		if o.cb != nil {
			o.cb(batch)
		}
	}
	return len(batch)
}
