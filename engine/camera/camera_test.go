package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func vecNear(a, b mgl32.Vec3, tol float32) bool {
	for i := range 3 {
		if float32(math.Abs(float64(a[i]-b[i]))) > tol {
			return false
		}
	}
	return true
}

func TestDefaultPosition(t *testing.T) {
	c := NewOrbitCamera()
	if got, want := c.Position(), (mgl32.Vec3{0, 0, 5}); !vecNear(got, want, eps) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
	if got := c.Distance(); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestQuarterYawPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Orbit(math.Pi/2, 0)

	// Rotating the eye by -orbitY about +Y carries +Z onto -X.
	want := mgl32.Vec3{-5, 0, 0}
	if got := c.Position(); !vecNear(got, want, eps) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
	if got := c.Position().Len(); math.Abs(float64(got-5)) > eps {
		t.Errorf("|Position()| = %v, want 5", got)
	}
}

func TestPitchRaisesEye(t *testing.T) {
	c := NewOrbitCamera()
	c.Orbit(0, math.Pi/4)
	p := c.Position()
	if want := float32(5 * math.Sin(math.Pi/4)); math.Abs(float64(p[1]-want)) > eps {
		t.Errorf("positive pitch should raise the eye to y=%v, got %v", want, p[1])
	}
	if got := p.Len(); math.Abs(float64(got-5)) > eps {
		t.Errorf("|Position()| = %v, want 5", got)
	}
}

func TestViewMatrixRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := NewOrbitCamera(WithConstrainXOrbit(false))
	for range 200 {
		c.Orbit(rng.Float32()*4-2, rng.Float32()*4-2)
		c.SetDistance(rng.Float32() * 12)
		c.SetTarget(mgl32.Vec3{rng.Float32()*10 - 5, rng.Float32()*10 - 5, rng.Float32()*10 - 5})

		eye := common.TransformPoint(c.ViewMatrix().Inv(), mgl32.Vec3{})
		if !vecNear(eye, c.Position(), 1e-3) {
			t.Fatalf("inverse(view) * origin = %v, Position() = %v", eye, c.Position())
		}
		if toOrigin := common.TransformPoint(c.ViewMatrix(), c.Position()); !vecNear(toOrigin, mgl32.Vec3{}, 1e-3) {
			t.Fatalf("view * Position() = %v, want origin", toOrigin)
		}
	}
}

func TestConstrainedPitchStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := NewOrbitCamera(WithOrbitXBounds(-1, 0.5))
	for range 1000 {
		c.Orbit(0, rng.Float32()*2-1)
		if x := c.OrbitX(); x < -1 || x > 0.5 {
			t.Fatalf("OrbitX() = %v outside [-1, 0.5]", x)
		}
	}
}

func TestUnconstrainedYawWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := NewOrbitCamera()
	for range 5000 {
		c.Orbit(rng.Float32()*3, 0)
		if y := c.OrbitY(); y < -common.Pi || y >= common.Pi {
			t.Fatalf("OrbitY() = %v outside [-π, π)", y)
		}
	}
	for range 5000 {
		c.Orbit(-rng.Float32()*3, 0)
		if y := c.OrbitY(); y < -common.Pi || y >= common.Pi {
			t.Fatalf("OrbitY() = %v outside [-π, π)", y)
		}
	}
}

func TestConstrainedYawClamps(t *testing.T) {
	c := NewOrbitCamera(WithConstrainYOrbit(true), WithOrbitYBounds(-0.5, 0.5))
	c.Orbit(3, 0)
	if got := c.OrbitY(); got != 0.5 {
		t.Errorf("OrbitY() = %v, want 0.5", got)
	}
	c.Orbit(-10, 0)
	if got := c.OrbitY(); got != -0.5 {
		t.Errorf("OrbitY() = %v, want -0.5", got)
	}
}

func TestUnconstrainedPitchWraps(t *testing.T) {
	c := NewOrbitCamera(WithConstrainXOrbit(false))
	c.Orbit(0, 4)
	if got, want := c.OrbitX(), 4-common.TwoPi; math.Abs(float64(got-want)) > eps {
		t.Errorf("OrbitX() = %v, want %v", got, want)
	}
}

func TestZeroOrbitIsNoOp(t *testing.T) {
	c := NewOrbitCamera(WithOrbit(0.2, 0.3)).(*orbitCameraImpl)
	before := c.ViewMatrix()
	if c.dirty {
		t.Fatal("reading ViewMatrix must clear the dirty flag")
	}

	c.Orbit(0, 0)
	if c.dirty {
		t.Error("Orbit(0, 0) marked the camera dirty")
	}
	if c.ViewMatrix() != before {
		t.Error("Orbit(0, 0) changed the view matrix")
	}
}

func TestMutatorsMarkDirty(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c OrbitCamera)
	}{
		{"orbit", func(c OrbitCamera) { c.Orbit(0.1, 0) }},
		{"distance", func(c OrbitCamera) { c.SetDistance(3) }},
		{"target", func(c OrbitCamera) { c.SetTarget(mgl32.Vec3{1, 2, 3}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			before := c.Position()
			tt.mutate(c)
			if !c.(*orbitCameraImpl).dirty {
				t.Fatal("mutator did not mark the camera dirty")
			}
			if c.Position() == before {
				t.Error("Position() did not change after mutation")
			}
		})
	}
}

func TestDistanceClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want float32
	}{
		{"below", 0.25, 1},
		{"above", 42, 10},
		{"inside", 7.5, 7.5},
		{"negative", -3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewOrbitCamera()
			c.SetDistance(tt.in)
			if got := c.Distance(); got != tt.want {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceUnconstrained(t *testing.T) {
	c := NewOrbitCamera(WithConstrainDistance(false))
	c.SetDistance(100)
	if got := c.Distance(); got != 100 {
		t.Errorf("Distance() = %v, want 100", got)
	}
	if got, want := c.Position(), (mgl32.Vec3{0, 0, 100}); !vecNear(got, want, eps) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestTargetOffsetsPosition(t *testing.T) {
	c := NewOrbitCamera(WithTarget(1, 2, 3))
	if got, want := c.Position(), (mgl32.Vec3{1, 2, 8}); !vecNear(got, want, eps) {
		t.Errorf("Position() = %v, want %v", got, want)
	}
	tgt := c.Target()
	tgt[0] = 99
	if c.Target()[0] != 1 {
		t.Error("Target() must return a copy")
	}
}

func TestNaNDeltaPropagates(t *testing.T) {
	c := NewOrbitCamera()
	c.Orbit(float32(math.NaN()), 0)
	if !math.IsNaN(float64(c.OrbitY())) {
		t.Errorf("OrbitY() = %v, want NaN", c.OrbitY())
	}
}

func TestDragOrbits(t *testing.T) {
	var surface input.Dispatcher
	c := NewOrbitCamera(WithElement(&surface))

	surface.DispatchPointerDown(input.PointerEvent{X: 10, Y: 10, IsPrimary: true})
	surface.DispatchPointerMove(input.PointerEvent{X: 14, Y: 12})

	if got, want := c.OrbitY(), 4*OrbitSensitivity; math.Abs(float64(got-want)) > eps {
		t.Errorf("OrbitY() = %v, want %v", got, want)
	}
	if got, want := c.OrbitX(), 2*OrbitSensitivity; math.Abs(float64(got-want)) > eps {
		t.Errorf("OrbitX() = %v, want %v", got, want)
	}

	surface.DispatchPointerUp(input.PointerEvent{X: 14, Y: 12, IsPrimary: true})
	surface.DispatchPointerMove(input.PointerEvent{X: 40, Y: 40})
	if got, want := c.OrbitY(), 4*OrbitSensitivity; math.Abs(float64(got-want)) > eps {
		t.Errorf("move after release changed OrbitY to %v", got)
	}
}

func TestNonPrimaryPointerDoesNotDrag(t *testing.T) {
	var surface input.Dispatcher
	c := NewOrbitCamera(WithElement(&surface))

	surface.DispatchPointerDown(input.PointerEvent{X: 0, Y: 0, IsPrimary: false})
	surface.DispatchPointerMove(input.PointerEvent{X: 30, Y: 0})
	if got := c.OrbitY(); got != 0 {
		t.Errorf("OrbitY() = %v, want 0", got)
	}
}

func TestPointerLockUsesMovement(t *testing.T) {
	var surface input.Dispatcher
	surface.SetPointerLocked(true)
	c := NewOrbitCamera(WithElement(&surface))

	surface.DispatchPointerMove(input.PointerEvent{X: 500, Y: 500, MovementX: -8})
	if got, want := c.OrbitY(), -8*OrbitSensitivity; math.Abs(float64(got-want)) > eps {
		t.Errorf("OrbitY() = %v, want %v", got, want)
	}
}

func TestWheelAdjustsDistance(t *testing.T) {
	var surface input.Dispatcher
	c := NewOrbitCamera(WithElement(&surface))

	prevented := surface.DispatchWheel(&input.WheelEvent{DeltaY: 120})
	if !prevented {
		t.Error("wheel event was not marked handled")
	}
	if got, want := c.Distance(), float32(5+120*DefaultDistanceStep); math.Abs(float64(got-want)) > eps {
		t.Errorf("Distance() = %v, want %v", got, want)
	}

	surface.DispatchWheel(&input.WheelEvent{DeltaY: -1e6})
	if got := c.Distance(); got != 1 {
		t.Errorf("Distance() = %v, want clamp to 1", got)
	}
}

func TestReattachDetachesPreviousSurface(t *testing.T) {
	var first, second input.Dispatcher
	c := NewOrbitCamera(WithElement(&first))
	if first.Len() != 1 {
		t.Fatalf("first.Len() = %d, want 1", first.Len())
	}

	c.SetElement(&second)
	if first.Len() != 0 {
		t.Errorf("first surface still has %d listeners", first.Len())
	}
	if second.Len() != 1 {
		t.Errorf("second.Len() = %d, want 1", second.Len())
	}
	if c.Element() != &second {
		t.Error("Element() did not return the new surface")
	}

	first.DispatchPointerDown(input.PointerEvent{X: 0, Y: 0, IsPrimary: true})
	first.DispatchPointerMove(input.PointerEvent{X: 50, Y: 50})
	first.DispatchWheel(&input.WheelEvent{DeltaY: 500})
	if c.OrbitX() != 0 || c.OrbitY() != 0 || c.Distance() != 5 {
		t.Errorf("old surface still drives the camera: orbit=(%v,%v) distance=%v", c.OrbitX(), c.OrbitY(), c.Distance())
	}

	c.SetElement(&second)
	if second.Len() != 1 {
		t.Errorf("re-attaching the same surface duplicated listeners: %d", second.Len())
	}

	c.SetElement(nil)
	if second.Len() != 0 || c.Element() != nil {
		t.Error("SetElement(nil) did not detach")
	}
}
