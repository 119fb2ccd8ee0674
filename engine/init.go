package engine

import (
	"context"
	"fmt"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
)

// initResult carries the device and frame resources from the init task to the loop goroutine.
type initResult struct {
	device      renderer.Device
	colorFormat renderer.TextureFormat
	buffer      renderer.Buffer
	layout      renderer.BindGroupLayout
	group       renderer.BindGroup
	err         error
}

// initialize acquires the adapter and device, configures the surface and creates the frame
// uniform buffer and bind group. It runs on a worker goroutine and touches no engine state
// besides the options fixed at construction.
//
// Parameters:
//   - ctx: cancels adapter and device requests
//   - size: the drawable size when Run started, used for the first surface configuration
//
// Returns:
//   - initResult: the created resources, or the first error encountered
func (e *engine) initialize(ctx context.Context, size common.Size) initResult {
	if e.instance == nil {
		return initResult{err: fmt.Errorf("engine: requesting adapter: %w", renderer.ErrNoAdapter)}
	}

	adapter, err := e.instance.RequestAdapter(ctx, e.adapterOptions)
	if err != nil {
		return initResult{err: fmt.Errorf("engine: requesting adapter: %w", err)}
	}
	if adapter == nil {
		return initResult{err: fmt.Errorf("engine: requesting adapter: %w", renderer.ErrNoAdapter)}
	}
	e.logger.Info("adapter selected", "adapter", adapter.Name())

	device, err := adapter.RequestDevice(ctx)
	if err != nil {
		return initResult{err: fmt.Errorf("engine: requesting device: %w", err)}
	}
	if device == nil {
		return initResult{err: fmt.Errorf("engine: requesting device: %w", renderer.ErrNoDevice)}
	}

	res := initResult{device: device}
	fail := func(err error) initResult {
		if res.group != nil {
			res.group.Release()
		}
		if res.layout != nil {
			res.layout.Release()
		}
		if res.buffer != nil {
			res.buffer.Release()
		}
		device.Release()
		return initResult{err: err}
	}

	res.colorFormat = common.Coalesce(e.colorFormat, device.PreferredColorFormat(), renderer.TextureFormatBGRA8Unorm)

	if !size.Empty() && e.surfaceCtx != nil {
		if err := e.surfaceCtx.Configure(device, e.surfaceConfig(res.colorFormat, size)); err != nil {
			return fail(fmt.Errorf("engine: configuring surface: %w", err))
		}
	}

	res.buffer, err = device.CreateBuffer(renderer.BufferDescriptor{
		Label: "Frame Uniforms",
		Size:  FrameUniformSize,
		Usage: renderer.BufferUsageUniform | renderer.BufferUsageCopyDst,
	})
	if err != nil {
		return fail(fmt.Errorf("engine: creating frame uniform buffer: %w", err))
	}

	res.layout, res.group, err = device.CreateUniformBindGroup(renderer.UniformBindGroupDescriptor{
		Label:      "Frame",
		Buffer:     res.buffer,
		Visibility: renderer.ShaderStageVertex | renderer.ShaderStageFragment,
	})
	if err != nil {
		return fail(fmt.Errorf("engine: creating frame bind group: %w", err))
	}

	return res
}

// surfaceConfig builds the surface configuration for the given format and size.
func (e *engine) surfaceConfig(format renderer.TextureFormat, size common.Size) renderer.SurfaceConfiguration {
	return renderer.SurfaceConfiguration{
		Format:      format,
		AlphaMode:   renderer.AlphaModeOpaque,
		PresentMode: e.presentMode,
		Width:       size.Width,
		Height:      size.Height,
	}
}
