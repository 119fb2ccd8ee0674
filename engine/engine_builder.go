package engine

import (
	"log/slog"

	"github.com/Carmen-Shannon/oxy-demo/engine/camera"
	"github.com/Carmen-Shannon/oxy-demo/engine/diagnostics"
	"github.com/Carmen-Shannon/oxy-demo/engine/profiler"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithApp sets the lifecycle hooks the engine calls.
//
// Parameters:
//   - app: the application hooks
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithApp(app App) EngineBuilderOption {
	return func(e *engine) {
		if app != nil {
			e.app = app
		}
	}
}

// WithCamera replaces the default orbit camera. The camera is used as-is; attach it to an input
// surface yourself if it should react to the pointer.
//
// Parameters:
//   - c: the camera
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCamera(c camera.OrbitCamera) EngineBuilderOption {
	return func(e *engine) {
		e.camera = c
	}
}

// WithFov sets the vertical field of view of the projection in radians (default π/2).
//
// Parameters:
//   - fov: vertical field of view in radians
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFov(fov float32) EngineBuilderOption {
	return func(e *engine) {
		e.fov = fov
	}
}

// WithNear sets the near clip distance (default 0.01).
//
// Parameters:
//   - near: near clip distance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithNear(near float32) EngineBuilderOption {
	return func(e *engine) {
		e.near = near
	}
}

// WithFar sets the far clip distance (default 128). A non-finite value gives an infinite
// projection.
//
// Parameters:
//   - far: far clip distance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithFar(far float32) EngineBuilderOption {
	return func(e *engine) {
		e.far = far
	}
}

// WithSampleCount sets the MSAA sample count of the render targets (default 4×).
//
// Parameters:
//   - count: the sample count
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSampleCount(count renderer.MSAASampleCount) EngineBuilderOption {
	return func(e *engine) {
		if count == 0 {
			count = renderer.MSAAOff
		}
		e.sampleCount = count
	}
}

// WithColorFormat overrides the surface color format. By default the device's preferred format
// is used.
//
// Parameters:
//   - format: the color format
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithColorFormat(format renderer.TextureFormat) EngineBuilderOption {
	return func(e *engine) {
		e.colorFormat = format
	}
}

// WithDepthFormat sets the depth target format (default depth24plus).
//
// Parameters:
//   - format: the depth format
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDepthFormat(format renderer.TextureFormat) EngineBuilderOption {
	return func(e *engine) {
		e.depthFormat = format
	}
}

// WithClearColor sets the color the default render pass clears to (default opaque black).
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClearColor(c renderer.Color) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = c
	}
}

// WithPresentMode sets how frames are presented (default vsync).
//
// Parameters:
//   - mode: the present mode
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPresentMode(mode renderer.PresentMode) EngineBuilderOption {
	return func(e *engine) {
		e.presentMode = mode
	}
}

// WithAdapterOptions sets the options used when requesting the adapter.
//
// Parameters:
//   - opts: adapter options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithAdapterOptions(opts renderer.AdapterOptions) EngineBuilderOption {
	return func(e *engine) {
		e.adapterOptions = opts
	}
}

// WithLogger sets the logger used by the engine. Defaults to the shared logger.
//
// Parameters:
//   - l: the logger
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(l *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		e.logger = l
	}
}

// WithProfiling enables or disables periodic performance stats in the log.
// Frame times are always recorded for FrameMs.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler replaces the frame time profiler.
//
// Parameters:
//   - p: the profiler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithErrorBanner sets where initialization errors are shown. Defaults to a log banner.
//
// Parameters:
//   - b: the banner
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithErrorBanner(b diagnostics.ErrorBanner) EngineBuilderOption {
	return func(e *engine) {
		e.banner = b
	}
}

// WithStatsMonitor sets the monitor the "frameMs" graph is registered with.
//
// Parameters:
//   - m: the monitor
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithStatsMonitor(m diagnostics.StatsMonitor) EngineBuilderOption {
	return func(e *engine) {
		e.stats = m
	}
}
