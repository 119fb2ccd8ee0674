package camera

import (
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// OrbitCameraOption is a functional option for configuring an OrbitCamera.
type OrbitCameraOption func(*orbitCameraImpl)

// WithOrbit sets the initial pitch and yaw. The values are taken as given, without clamping.
//
// Parameters:
//   - orbitX: pitch in radians
//   - orbitY: yaw in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the orbit angles
func WithOrbit(orbitX, orbitY float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.orbitX = orbitX
		c.orbitY = orbitY
	}
}

// WithOrbitXBounds sets the pitch limits.
//
// Parameters:
//   - min, max: pitch limits in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the pitch limits
func WithOrbitXBounds(min, max float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.minOrbitX, c.maxOrbitX = min, max
	}
}

// WithOrbitYBounds sets the yaw limits.
//
// Parameters:
//   - min, max: yaw limits in radians
//
// Returns:
//   - OrbitCameraOption: functional option to set the yaw limits
func WithOrbitYBounds(min, max float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.minOrbitY, c.maxOrbitY = min, max
	}
}

// WithConstrainXOrbit selects clamping (true) or wrapping (false) for pitch.
//
// Returns:
//   - OrbitCameraOption: functional option to set the pitch policy
func WithConstrainXOrbit(constrain bool) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.constrainXOrbit = constrain
	}
}

// WithConstrainYOrbit selects clamping (true) or wrapping (false) for yaw.
//
// Returns:
//   - OrbitCameraOption: functional option to set the yaw policy
func WithConstrainYOrbit(constrain bool) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.constrainYOrbit = constrain
	}
}

// WithDistance sets the initial pivot-to-eye distance. The value is taken as given, without clamping.
//
// Parameters:
//   - distance: the distance along the view axis
//
// Returns:
//   - OrbitCameraOption: functional option to set the distance
func WithDistance(distance float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.distance = distance
	}
}

// WithDistanceBounds sets the distance limits.
//
// Parameters:
//   - min, max: distance limits
//
// Returns:
//   - OrbitCameraOption: functional option to set the distance limits
func WithDistanceBounds(min, max float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.minDistance, c.maxDistance = min, max
	}
}

// WithConstrainDistance enables or disables distance clamping.
//
// Returns:
//   - OrbitCameraOption: functional option to set the distance policy
func WithConstrainDistance(constrain bool) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.constrainDistance = constrain
	}
}

// WithDistanceStep sets the distance change per wheel unit.
//
// Parameters:
//   - step: distance per wheel unit
//
// Returns:
//   - OrbitCameraOption: functional option to set the wheel step
func WithDistanceStep(step float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.distanceStep = step
	}
}

// WithTarget sets the orbit pivot.
//
// Parameters:
//   - x, y, z: pivot in world space
//
// Returns:
//   - OrbitCameraOption: functional option to set the pivot
func WithTarget(x, y, z float32) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.target = mgl32.Vec3{x, y, z}
	}
}

// WithElement attaches the camera to an input surface once every other option has been applied.
//
// Parameters:
//   - s: the surface to listen to
//
// Returns:
//   - OrbitCameraOption: functional option to attach the camera
func WithElement(s input.Surface) OrbitCameraOption {
	return func(c *orbitCameraImpl) {
		c.pendingElement = s
	}
}
