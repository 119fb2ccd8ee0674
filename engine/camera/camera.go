package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// OrbitSensitivity converts pointer movement (pixels) into orbit radians.
	OrbitSensitivity float32 = 0.025

	// DefaultDistanceStep converts wheel units into a change of orbit distance.
	DefaultDistanceStep float32 = 0.005
)

type orbitCameraImpl struct {
	mu *sync.Mutex

	orbitX    float32 // pitch, radians
	orbitY    float32 // yaw, radians
	maxOrbitX float32
	minOrbitX float32
	maxOrbitY float32
	minOrbitY float32

	constrainXOrbit bool
	constrainYOrbit bool

	distance          float32
	maxDistance       float32
	minDistance       float32
	distanceStep      float32
	constrainDistance bool

	target mgl32.Vec3

	// Derived state, valid while dirty is false.
	cameraMat mgl32.Mat4
	viewMat   mgl32.Mat4
	position  mgl32.Vec3
	dirty     bool

	element        input.Surface
	pendingElement input.Surface
	detach         func()
	drag           dragState
}

// OrbitCamera is a camera parameterized by yaw and pitch around a pivot point plus a distance
// along the view axis. The camera matrix and its inverse (the view matrix) are recomputed lazily
// on the first read after any mutation.
type OrbitCamera interface {
	// Orbit adds xDelta to the yaw (OrbitY) and yDelta to the pitch (OrbitX), then clamps or
	// wraps each angle according to its constrain flag. Calling Orbit(0, 0) does nothing.
	//
	// Parameters:
	//   - xDelta: yaw change in radians
	//   - yDelta: pitch change in radians
	Orbit(xDelta, yDelta float32)

	// OrbitX returns the pitch angle in radians.
	//
	// Returns:
	//   - float32: pitch in radians
	OrbitX() float32

	// OrbitY returns the yaw angle in radians.
	//
	// Returns:
	//   - float32: yaw in radians
	OrbitY() float32

	// OrbitXBounds returns the pitch limits used while ConstrainXOrbit is set.
	//
	// Returns:
	//   - min, max: pitch limits in radians
	OrbitXBounds() (min, max float32)

	// SetOrbitXBounds sets the pitch limits. The current pitch is not re-clamped until the next Orbit.
	//
	// Parameters:
	//   - min, max: pitch limits in radians
	SetOrbitXBounds(min, max float32)

	// OrbitYBounds returns the yaw limits used while ConstrainYOrbit is set.
	//
	// Returns:
	//   - min, max: yaw limits in radians
	OrbitYBounds() (min, max float32)

	// SetOrbitYBounds sets the yaw limits. The current yaw is not re-clamped until the next Orbit.
	//
	// Parameters:
	//   - min, max: yaw limits in radians
	SetOrbitYBounds(min, max float32)

	// ConstrainXOrbit reports whether pitch is clamped (true) or wrapped into [-π, π) (false).
	ConstrainXOrbit() bool

	// SetConstrainXOrbit selects clamping (true) or wrapping (false) for pitch.
	SetConstrainXOrbit(constrain bool)

	// ConstrainYOrbit reports whether yaw is clamped (true) or wrapped into [-π, π) (false).
	ConstrainYOrbit() bool

	// SetConstrainYOrbit selects clamping (true) or wrapping (false) for yaw.
	SetConstrainYOrbit(constrain bool)

	// Distance returns the pivot-to-eye distance.
	//
	// Returns:
	//   - float32: the distance along the view axis
	Distance() float32

	// SetDistance sets the pivot-to-eye distance, clamped to the distance bounds while
	// ConstrainDistance is set.
	//
	// Parameters:
	//   - distance: the new distance
	SetDistance(distance float32)

	// DistanceBounds returns the distance limits used while ConstrainDistance is set.
	//
	// Returns:
	//   - min, max: distance limits
	DistanceBounds() (min, max float32)

	// SetDistanceBounds sets the distance limits. The current distance is not re-clamped until the
	// next SetDistance.
	//
	// Parameters:
	//   - min, max: distance limits
	SetDistanceBounds(min, max float32)

	// ConstrainDistance reports whether SetDistance clamps to the distance bounds.
	ConstrainDistance() bool

	// SetConstrainDistance enables or disables distance clamping.
	SetConstrainDistance(constrain bool)

	// DistanceStep returns the distance change per wheel unit.
	DistanceStep() float32

	// SetDistanceStep sets the distance change per wheel unit.
	SetDistanceStep(step float32)

	// Target returns a copy of the orbit pivot.
	//
	// Returns:
	//   - mgl32.Vec3: the pivot in world space
	Target() mgl32.Vec3

	// SetTarget moves the orbit pivot.
	//
	// Parameters:
	//   - target: the pivot in world space
	SetTarget(target mgl32.Vec3)

	// Position returns the world-space eye position, recomputing derived state if needed.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// ViewMatrix returns the world-to-view matrix, recomputing derived state if needed.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix (column-major)
	ViewMatrix() mgl32.Mat4

	// CameraMatrix returns the view-to-world matrix, recomputing derived state if needed.
	//
	// Returns:
	//   - mgl32.Mat4: the camera matrix (column-major)
	CameraMatrix() mgl32.Mat4

	// Element returns the input surface the camera listens to, or nil.
	//
	// Returns:
	//   - input.Surface: the attached surface
	Element() input.Surface

	// SetElement attaches the camera's pointer and wheel handlers to s, detaching them from the
	// previously attached surface first. Passing nil only detaches.
	//
	// Parameters:
	//   - s: the surface to listen to
	SetElement(s input.Surface)
}

var _ OrbitCamera = &orbitCameraImpl{}

// NewOrbitCamera creates an OrbitCamera 5 units from the origin looking down -Z, with pitch
// clamped to ±π/2, yaw wrapped, and distance clamped to [1, 10].
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrbitCamera: the newly created camera
func NewOrbitCamera(options ...OrbitCameraOption) OrbitCamera {
	c := &orbitCameraImpl{
		mu:                &sync.Mutex{},
		maxOrbitX:         common.Pi * 0.5,
		minOrbitX:         -common.Pi * 0.5,
		maxOrbitY:         common.Pi,
		minOrbitY:         -common.Pi,
		constrainXOrbit:   true,
		constrainYOrbit:   false,
		distance:          5,
		maxDistance:       10,
		minDistance:       1,
		distanceStep:      DefaultDistanceStep,
		constrainDistance: true,
		dirty:             true,
	}
	for _, option := range options {
		option(c)
	}
	if c.pendingElement != nil {
		c.SetElement(c.pendingElement)
		c.pendingElement = nil
	}
	return c
}

func (c *orbitCameraImpl) Orbit(xDelta, yDelta float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orbit(xDelta, yDelta)
}

// orbit applies the yaw/pitch policy. Caller must hold the mutex.
func (c *orbitCameraImpl) orbit(xDelta, yDelta float32) {
	if xDelta == 0 && yDelta == 0 {
		return
	}

	c.orbitY += xDelta
	if c.constrainYOrbit {
		c.orbitY = common.Clamp(c.orbitY, c.minOrbitY, c.maxOrbitY)
	} else {
		c.orbitY = common.WrapAngle(c.orbitY)
	}

	c.orbitX += yDelta
	if c.constrainXOrbit {
		c.orbitX = common.Clamp(c.orbitX, c.minOrbitX, c.maxOrbitX)
	} else {
		c.orbitX = common.WrapAngle(c.orbitX)
	}

	c.dirty = true
}

func (c *orbitCameraImpl) OrbitX() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orbitX
}

func (c *orbitCameraImpl) OrbitY() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orbitY
}

func (c *orbitCameraImpl) OrbitXBounds() (min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minOrbitX, c.maxOrbitX
}

func (c *orbitCameraImpl) SetOrbitXBounds(min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minOrbitX, c.maxOrbitX = min, max
}

func (c *orbitCameraImpl) OrbitYBounds() (min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minOrbitY, c.maxOrbitY
}

func (c *orbitCameraImpl) SetOrbitYBounds(min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minOrbitY, c.maxOrbitY = min, max
}

func (c *orbitCameraImpl) ConstrainXOrbit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.constrainXOrbit
}

func (c *orbitCameraImpl) SetConstrainXOrbit(constrain bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constrainXOrbit = constrain
}

func (c *orbitCameraImpl) ConstrainYOrbit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.constrainYOrbit
}

func (c *orbitCameraImpl) SetConstrainYOrbit(constrain bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constrainYOrbit = constrain
}

func (c *orbitCameraImpl) Distance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distance
}

func (c *orbitCameraImpl) SetDistance(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setDistance(distance)
}

// setDistance applies the distance policy. Caller must hold the mutex.
func (c *orbitCameraImpl) setDistance(distance float32) {
	c.distance = distance
	if c.constrainDistance {
		c.distance = common.Clamp(c.distance, c.minDistance, c.maxDistance)
	}
	c.dirty = true
}

func (c *orbitCameraImpl) DistanceBounds() (min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.minDistance, c.maxDistance
}

func (c *orbitCameraImpl) SetDistanceBounds(min, max float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.minDistance, c.maxDistance = min, max
}

func (c *orbitCameraImpl) ConstrainDistance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.constrainDistance
}

func (c *orbitCameraImpl) SetConstrainDistance(constrain bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.constrainDistance = constrain
}

func (c *orbitCameraImpl) DistanceStep() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.distanceStep
}

func (c *orbitCameraImpl) SetDistanceStep(step float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.distanceStep = step
}

func (c *orbitCameraImpl) Target() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *orbitCameraImpl) SetTarget(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = target
	c.dirty = true
}

func (c *orbitCameraImpl) Position() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
	return c.position
}

func (c *orbitCameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
	return c.viewMat
}

func (c *orbitCameraImpl) CameraMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateMatrices()
	return c.cameraMat
}

// updateMatrices rebuilds the camera matrix, view matrix, and eye position when dirty.
// The camera matrix is T(target) * Ry(-orbitY) * Rx(-orbitX) * T(0, 0, distance).
// Caller must hold the mutex.
func (c *orbitCameraImpl) updateMatrices() {
	if !c.dirty {
		return
	}

	m := mgl32.Translate3D(c.target[0], c.target[1], c.target[2])
	m = m.Mul4(mgl32.HomogRotate3DY(-c.orbitY))
	m = m.Mul4(mgl32.HomogRotate3DX(-c.orbitX))
	m = m.Mul4(mgl32.Translate3D(0, 0, c.distance))

	c.cameraMat = m
	c.viewMat = m.Inv()
	c.position = common.TransformPoint(m, mgl32.Vec3{})
	c.dirty = false
}
