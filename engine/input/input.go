// Package input defines the pointer and wheel event model shared by platform windows and the
// controllers that consume them.
package input

// PointerEvent describes a pointer press, release, or move on a surface.
type PointerEvent struct {
	// X and Y are the pointer position in surface coordinates (pixels from the top-left corner).
	X, Y float64

	// MovementX and MovementY are the raw movement since the previous move event.
	// They are only meaningful while the surface reports pointer lock.
	MovementX, MovementY float64

	// IsPrimary is true for the primary pointer (the left mouse button, or the first touch).
	IsPrimary bool

	// Button is the platform button index that triggered a down/up event, or -1 for moves.
	Button int
}

// WheelEvent describes a scroll wheel movement.
type WheelEvent struct {
	// DeltaY is the vertical scroll amount in wheel units. Positive values scroll away from the
	// content (down); one notch of a typical wheel is 120 units.
	DeltaY float64

	defaultPrevented bool
}

// PreventDefault marks the event as handled so the surface does not apply its own behavior.
func (e *WheelEvent) PreventDefault() {
	e.defaultPrevented = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
//
// Returns:
//   - bool: true if the event was marked handled
func (e *WheelEvent) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Handler groups the callbacks a listener wants to receive. Nil fields are skipped.
type Handler struct {
	PointerDown func(e PointerEvent)
	PointerMove func(e PointerEvent)
	PointerUp   func(e PointerEvent)
	Wheel       func(e *WheelEvent)
}

// Surface is an input event source, typically a window.
type Surface interface {
	// Subscribe registers a handler and returns a function that removes it again.
	// The returned function is safe to call more than once.
	//
	// Parameters:
	//   - h: the callbacks to register
	//
	// Returns:
	//   - func(): detaches the handler
	Subscribe(h Handler) (detach func())

	// PointerLocked reports whether the pointer is currently locked (captured) by the surface,
	// in which case move events carry raw movement deltas.
	//
	// Returns:
	//   - bool: true if pointer lock is active
	PointerLocked() bool
}
