package engine

import (
	"context"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
)

// App receives the lifecycle hooks of an engine. All hooks run on the goroutine calling Run.
type App interface {
	// OnInit is called once after the device, the frame uniform buffer and its bind group exist,
	// before the first resize and the first frame. A returned error fails initialization.
	//
	// Parameters:
	//   - ctx: the context passed to Run
	//   - device: the initialized device
	//
	// Returns:
	//   - error: a non-nil error aborts startup
	OnInit(ctx context.Context, device renderer.Device) error

	// OnResize is called after every non-zero size change once render targets are reallocated.
	//
	// Parameters:
	//   - device: the device
	//   - size: the new drawable size
	OnResize(device renderer.Device, size common.Size)

	// OnFrame is called once per frame after the frame uniforms have been uploaded.
	//
	// Parameters:
	//   - device: the device
	//   - surface: the presentable surface
	//   - timestamp: milliseconds since the frame clock started
	OnFrame(device renderer.Device, surface renderer.SurfaceContext, timestamp float64)
}

// BaseApp implements App with no-op hooks. Embed it to override only the hooks you need.
type BaseApp struct{}

var _ App = BaseApp{}

func (BaseApp) OnInit(context.Context, renderer.Device) error { return nil }

func (BaseApp) OnResize(renderer.Device, common.Size) {}

func (BaseApp) OnFrame(renderer.Device, renderer.SurfaceContext, float64) {}
