package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/camera"
	"github.com/Carmen-Shannon/oxy-demo/engine/diagnostics"
	"github.com/Carmen-Shannon/oxy-demo/engine/profiler"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrAlreadyStarted is returned by Run when the engine has been run before.
var ErrAlreadyStarted = errors.New("engine: already started")

// engine implements the Engine interface.
// Coordinates device initialization, resize handling and the frame loop. Everything below the
// state field is touched only by the goroutine running Run.
type engine struct {
	instance renderer.Instance
	surface  Surface
	app      App
	camera   camera.OrbitCamera
	logger   *slog.Logger

	fov  float32
	near float32
	far  float32

	sampleCount    renderer.MSAASampleCount
	colorFormat    renderer.TextureFormat
	depthFormat    renderer.TextureFormat
	clearColor     renderer.Color
	presentMode    renderer.PresentMode
	adapterOptions renderer.AdapterOptions

	banner diagnostics.ErrorBanner
	stats  diagnostics.StatsMonitor

	profiler         *profiler.Profiler
	profilingEnabled bool
	now              func() time.Time

	state atomic.Int32

	size       common.Size
	projection mgl32.Mat4
	uniform    GPUFrameUniform

	device      renderer.Device
	surfaceCtx  renderer.SurfaceContext
	frameBuffer renderer.Buffer
	frameLayout renderer.BindGroupLayout
	frameGroup  renderer.BindGroup
	targets     renderTargets
}

// Engine drives a WebGPU demo: it acquires the device asynchronously, keeps size dependent
// render targets in step with the drawable, uploads the per-frame uniform block and calls the
// App hooks once per frame.
type Engine interface {
	// Run initializes the device and runs the frame loop until the surface closes or ctx is
	// cancelled. Initialization failures are shown through the error banner, move the engine to
	// StateFailed and are returned.
	//
	// Parameters:
	//   - ctx: cancels initialization and stops the loop
	//
	// Returns:
	//   - error: the initialization error, ctx.Err() on cancellation, or nil when the surface closed
	Run(ctx context.Context) error

	// State returns the lifecycle state. Safe to call from any goroutine.
	//
	// Returns:
	//   - State: the current state
	State() State

	// Device returns the device, or nil before initialization completes.
	//
	// Returns:
	//   - renderer.Device: the device
	Device() renderer.Device

	// SurfaceContext returns the presentable surface of the instance.
	//
	// Returns:
	//   - renderer.SurfaceContext: the surface
	SurfaceContext() renderer.SurfaceContext

	// FrameBindGroupLayout returns the layout of the frame uniform bind group: one uniform buffer
	// at binding 0 visible to vertex and fragment stages.
	//
	// Returns:
	//   - renderer.BindGroupLayout: the layout, nil before initialization
	FrameBindGroupLayout() renderer.BindGroupLayout

	// FrameBindGroup returns the bind group holding the frame uniform buffer.
	//
	// Returns:
	//   - renderer.BindGroup: the bind group, nil before initialization
	FrameBindGroup() renderer.BindGroup

	// FrameUniformBuffer returns the 144-byte frame uniform buffer.
	//
	// Returns:
	//   - renderer.Buffer: the buffer, nil before initialization
	FrameUniformBuffer() renderer.Buffer

	// ProjectionMatrix returns the current projection matrix (depth range [0, 1]).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// Size returns the last accepted drawable size.
	//
	// Returns:
	//   - common.Size: the size in pixels
	Size() common.Size

	// FrameMs returns the average frame time over the last 20 frames, or 0 until 20 were recorded.
	//
	// Returns:
	//   - float64: milliseconds
	FrameMs() float64

	// Camera returns the orbit camera feeding the view matrix and eye position.
	//
	// Returns:
	//   - camera.OrbitCamera: the camera
	Camera() camera.OrbitCamera

	// ColorFormat returns the color format of the surface and the multisample target.
	//
	// Returns:
	//   - renderer.TextureFormat: the color format
	ColorFormat() renderer.TextureFormat

	// DepthFormat returns the format of the depth target.
	//
	// Returns:
	//   - renderer.TextureFormat: the depth format
	DepthFormat() renderer.TextureFormat

	// SampleCount returns the multisample count of the render targets.
	//
	// Returns:
	//   - renderer.MSAASampleCount: the sample count
	SampleCount() renderer.MSAASampleCount

	// ClearColor returns the color the default render pass clears to.
	//
	// Returns:
	//   - renderer.Color: the clear color
	ClearColor() renderer.Color

	// DefaultRenderPassDescriptor returns a render pass targeting the current drawable. With
	// multisampling the drawable is the resolve target of the multisample color target, otherwise
	// it is drawn to directly. The depth target is cleared to 1.
	//
	// Returns:
	//   - renderer.RenderPassDescriptor: the descriptor
	//   - error: error if the drawable could not be acquired or targets are not allocated
	DefaultRenderPassDescriptor() (renderer.RenderPassDescriptor, error)

	// SetError replaces the error banner. A nil err only clears it.
	//
	// Parameters:
	//   - err: the error to show, or nil
	//   - context: what was being attempted, e.g. "initializing WebGPU"
	SetError(err error, context string)

	// Release destroys the render targets, frame resources and the device.
	Release()
}

// NewEngine creates a new Engine drawing to surface through instance.
// Defaults: fov π/2, near 0.01, far 128, 4× MSAA, depth24plus, opaque black clear color,
// the device's preferred color format and an orbit camera attached to surface.
//
// Parameters:
//   - instance: the graphics backend
//   - surface: the window or canvas to drive
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(instance renderer.Instance, surface Surface, options ...EngineBuilderOption) Engine {
	e := &engine{
		instance:    instance,
		surface:     surface,
		app:         BaseApp{},
		fov:         math.Pi * 0.5,
		near:        0.01,
		far:         128,
		sampleCount: renderer.MSAA4x,
		depthFormat: renderer.TextureFormatDepth24Plus,
		clearColor:  renderer.Color{R: 0, G: 0, B: 0, A: 1},
		presentMode: renderer.PresentModeVSync,
		now:         time.Now,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.logger == nil {
		e.logger = common.Logger()
	}
	if e.camera == nil {
		e.camera = camera.NewOrbitCamera(camera.WithElement(surface))
	}
	if e.banner == nil {
		e.banner = diagnostics.NewLogBanner(e.logger)
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger), profiler.WithClock(e.now))
	}
	if instance != nil {
		e.surfaceCtx = instance.Surface()
	}
	e.updateProjection()

	return e
}

func (e *engine) Run(ctx context.Context) error {
	if !e.state.CompareAndSwap(int32(StateUninitialized), int32(StateInitializing)) {
		return ErrAlreadyStarted
	}

	stopResize := e.surface.ObserveResize(e.handleResizeBatch)
	defer stopResize()

	results := make(chan initResult, 1)
	pool := worker.NewDynamicWorkerPool(1, 1, time.Second)
	initialSize := e.surface.DrawableSize()
	pool.SubmitTask(worker.Task{
		ID: 0,
		Do: func() (any, error) {
			res := e.initialize(ctx, initialSize)
			results <- res
			return nil, res.err
		},
	})

	pending := results
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-pending:
			pending = nil
			if err := e.start(ctx, res); err != nil {
				e.SetError(err, "initializing WebGPU")
				e.state.Store(int32(StateFailed))
				return err
			}
		default:
		}

		if !e.surface.Poll() {
			return nil
		}
	}
}

// start installs the initialization result, runs the App init hook, forces a resize with the
// current size and schedules the first frame.
func (e *engine) start(ctx context.Context, res initResult) error {
	if res.err != nil {
		return res.err
	}

	e.device = res.device
	e.colorFormat = res.colorFormat
	e.frameBuffer = res.buffer
	e.frameLayout = res.layout
	e.frameGroup = res.group

	if e.stats != nil {
		e.stats.AddGraph("frameMs", 0, 2, e.FrameMs)
	}

	if err := e.app.OnInit(ctx, e.device); err != nil {
		return fmt.Errorf("engine: app init: %w", err)
	}

	e.state.Store(int32(StateRunning))

	size := e.size
	if size.Empty() {
		size = e.surface.DrawableSize()
	}
	e.resize(size)

	e.surface.RequestFrame(e.frame)
	return nil
}

// frame runs one tick of the frame loop. It re-arms itself before doing any work.
func (e *engine) frame(timestamp float64) {
	e.surface.RequestFrame(e.frame)

	frameStart := e.now()

	e.uniform.Projection = e.projection
	e.uniform.View = e.camera.ViewMatrix()
	e.uniform.Eye = e.camera.Position()
	e.uniform.Time = float32(timestamp)

	if err := e.device.WriteBuffer(e.frameBuffer, 0, e.uniform.Marshal()); err != nil {
		e.logger.Warn("frame uniform upload failed", "error", err)
	}

	e.app.OnFrame(e.device, e.surfaceCtx, timestamp)

	e.profiler.Record(e.now().Sub(frameStart))

	if e.surfaceCtx != nil {
		e.surfaceCtx.Present()
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
	if t, ok := e.stats.(diagnostics.Ticker); ok {
		t.Tick()
	}
}

// updateProjection recomputes the projection from the stored size and lens settings.
func (e *engine) updateProjection() {
	e.projection = common.PerspectiveZO(e.fov, e.size.Aspect(), e.near, e.far)
	e.uniform.Projection = e.projection
}

func (e *engine) State() State {
	return State(e.state.Load())
}

func (e *engine) Device() renderer.Device {
	return e.device
}

func (e *engine) SurfaceContext() renderer.SurfaceContext {
	return e.surfaceCtx
}

func (e *engine) FrameBindGroupLayout() renderer.BindGroupLayout {
	return e.frameLayout
}

func (e *engine) FrameBindGroup() renderer.BindGroup {
	return e.frameGroup
}

func (e *engine) FrameUniformBuffer() renderer.Buffer {
	return e.frameBuffer
}

func (e *engine) ProjectionMatrix() mgl32.Mat4 {
	return e.projection
}

func (e *engine) Size() common.Size {
	return e.size
}

func (e *engine) FrameMs() float64 {
	return e.profiler.FrameMs()
}

func (e *engine) Camera() camera.OrbitCamera {
	return e.camera
}

func (e *engine) ColorFormat() renderer.TextureFormat {
	return e.colorFormat
}

func (e *engine) DepthFormat() renderer.TextureFormat {
	return e.depthFormat
}

func (e *engine) SampleCount() renderer.MSAASampleCount {
	return e.sampleCount
}

func (e *engine) ClearColor() renderer.Color {
	return e.clearColor
}

func (e *engine) SetError(err error, context string) {
	e.banner.Clear()
	if err == nil {
		return
	}
	title, detail := diagnostics.BannerText(err, context)
	e.banner.Show(title, detail)
}

func (e *engine) Release() {
	e.targets.release()
	if e.frameGroup != nil {
		e.frameGroup.Release()
		e.frameGroup = nil
	}
	if e.frameLayout != nil {
		e.frameLayout.Release()
		e.frameLayout = nil
	}
	if e.frameBuffer != nil {
		e.frameBuffer.Release()
		e.frameBuffer = nil
	}
	if e.device != nil {
		e.device.Release()
		e.device = nil
	}
}
