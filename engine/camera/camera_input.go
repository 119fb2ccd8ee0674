package camera

import (
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
)

// dragState tracks an in-progress primary pointer drag.
type dragState struct {
	moving       bool
	lastX, lastY float64
}

func (c *orbitCameraImpl) Element() input.Surface {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.element
}

func (c *orbitCameraImpl) SetElement(s input.Surface) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.element == s {
		return
	}
	if c.detach != nil {
		c.detach()
		c.detach = nil
	}
	c.element = s
	c.drag = dragState{}
	if s == nil {
		return
	}
	c.detach = s.Subscribe(c.handlerFor(s))
}

// handlerFor builds the pointer and wheel callbacks bound to surface s.
// Callbacks take the mutex themselves; the surface invokes them without any camera lock held.
func (c *orbitCameraImpl) handlerFor(s input.Surface) input.Handler {
	return input.Handler{
		PointerDown: func(e input.PointerEvent) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if e.IsPrimary {
				c.drag.moving = true
			}
			c.drag.lastX, c.drag.lastY = e.X, e.Y
		},
		PointerMove: func(e input.PointerEvent) {
			locked := s.PointerLocked()

			c.mu.Lock()
			defer c.mu.Unlock()
			if locked {
				c.orbit(float32(e.MovementX)*OrbitSensitivity, float32(e.MovementY)*OrbitSensitivity)
				return
			}
			if !c.drag.moving {
				return
			}
			dx := e.X - c.drag.lastX
			dy := e.Y - c.drag.lastY
			c.drag.lastX, c.drag.lastY = e.X, e.Y
			c.orbit(float32(dx)*OrbitSensitivity, float32(dy)*OrbitSensitivity)
		},
		PointerUp: func(e input.PointerEvent) {
			c.mu.Lock()
			defer c.mu.Unlock()
			if e.IsPrimary {
				c.drag.moving = false
			}
		},
		Wheel: func(e *input.WheelEvent) {
			c.mu.Lock()
			c.setDistance(c.distance + float32(e.DeltaY)*c.distanceStep)
			c.mu.Unlock()
			e.PreventDefault()
		},
	}
}
