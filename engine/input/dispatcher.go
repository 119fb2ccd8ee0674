package input

import "sync"

type subscription struct {
	id      uint64
	handler Handler
}

// Dispatcher is an ordered registry of Handlers. Surfaces embed one to implement Subscribe and
// call its Dispatch methods from their native event callbacks.
type Dispatcher struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
	locked bool
}

// Subscribe registers h and returns a detach function.
//
// Parameters:
//   - h: the callbacks to register
//
// Returns:
//   - func(): removes h; later calls are no-ops
func (d *Dispatcher) Subscribe(h Handler) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, handler: h})
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			for i, s := range d.subs {
				if s.id == id {
					d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Len returns the number of registered handlers.
//
// Returns:
//   - int: the handler count
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

// PointerLocked reports the lock state last set with SetPointerLocked.
//
// Returns:
//   - bool: true if pointer lock is active
func (d *Dispatcher) PointerLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locked
}

// SetPointerLocked records whether the owning surface has captured the pointer.
//
// Parameters:
//   - locked: the new lock state
func (d *Dispatcher) SetPointerLocked(locked bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locked = locked
}

// snapshot copies the handler list so callbacks run without the lock held and may detach
// themselves (or others) while being dispatched.
func (d *Dispatcher) snapshot() []Handler {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Handler, len(d.subs))
	for i, s := range d.subs {
		out[i] = s.handler
	}
	return out
}

// DispatchPointerDown delivers e to every PointerDown callback in subscription order.
func (d *Dispatcher) DispatchPointerDown(e PointerEvent) {
	for _, h := range d.snapshot() {
		if h.PointerDown != nil {
			h.PointerDown(e)
		}
	}
}

// DispatchPointerMove delivers e to every PointerMove callback in subscription order.
func (d *Dispatcher) DispatchPointerMove(e PointerEvent) {
	for _, h := range d.snapshot() {
		if h.PointerMove != nil {
			h.PointerMove(e)
		}
	}
}

// DispatchPointerUp delivers e to every PointerUp callback in subscription order.
func (d *Dispatcher) DispatchPointerUp(e PointerEvent) {
	for _, h := range d.snapshot() {
		if h.PointerUp != nil {
			h.PointerUp(e)
		}
	}
}

// DispatchWheel delivers e to every Wheel callback in subscription order.
//
// Returns:
//   - bool: true if any handler called PreventDefault
func (d *Dispatcher) DispatchWheel(e *WheelEvent) bool {
	for _, h := range d.snapshot() {
		if h.Wheel != nil {
			h.Wheel(e)
		}
	}
	return e.DefaultPrevented()
}

var _ Surface = &Dispatcher{}
