package engine

import (
	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
)

// FrameCallback is invoked once per display refresh with a timestamp in milliseconds since the
// frame clock started.
type FrameCallback func(timestamp float64)

// FrameClock schedules display-aligned callbacks.
type FrameClock interface {
	// RequestFrame schedules cb to run once on the next frame. Callbacks requested while frame
	// callbacks are running are deferred to the following frame.
	//
	// Parameters:
	//   - cb: the callback to run
	RequestFrame(cb FrameCallback)
}

// ResizeObservation is one measurement of the drawable area. Platforms fill in the most precise
// measurement they support; Size picks the best one available.
type ResizeObservation struct {
	// DevicePixelContentBox is the exact size in physical pixels, when known.
	DevicePixelContentBox *common.Size
	// ContentBox is the size in logical units, when known.
	ContentBox *common.Size
	// ContentRect is the coarse fallback measurement, always set.
	ContentRect common.Size
}

// Size returns the most precise size carried by the observation.
//
// Returns:
//   - common.Size: device pixel size, else content box, else content rect
func (o ResizeObservation) Size() common.Size {
	switch {
	case o.DevicePixelContentBox != nil:
		return *o.DevicePixelContentBox
	case o.ContentBox != nil:
		return *o.ContentBox
	default:
		return o.ContentRect
	}
}

// ResizeSource delivers batches of size observations of the drawable area.
type ResizeSource interface {
	// ObserveResize registers cb to receive observation batches. Batches are delivered from Poll.
	//
	// Parameters:
	//   - cb: receives each batch in observation order
	//
	// Returns:
	//   - func(): stops observing
	ObserveResize(cb func(batch []ResizeObservation)) (stop func())
}

// Surface is the presentation target the engine drives: an input source with a frame clock
// and resize notifications.
type Surface interface {
	input.Surface
	FrameClock
	ResizeSource

	// DrawableSize returns the current drawable size in pixels.
	DrawableSize() common.Size

	// Poll processes pending platform events, delivers resize batches, then runs due frame
	// callbacks.
	//
	// Returns:
	//   - bool: false once the surface has been closed
	Poll() bool
}
