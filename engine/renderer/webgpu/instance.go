// Package webgpu implements the renderer contracts on top of wgpu-native through
// github.com/cogentcore/webgpu.
package webgpu

import (
	"context"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

type instanceImpl struct {
	mu       *sync.Mutex
	instance *wgpu.Instance
	surface  *surfaceImpl
}

var _ renderer.Instance = &instanceImpl{}

// NewInstance creates a wgpu instance and a presentable surface from a platform descriptor,
// e.g. one built with wgpuglfw.GetSurfaceDescriptor. Must be called on the thread owning the
// window.
//
// Parameters:
//   - surfaceDescriptor: the platform surface descriptor
//
// Returns:
//   - renderer.Instance: the instance
func NewInstance(surfaceDescriptor *wgpu.SurfaceDescriptor) renderer.Instance {
	instance := wgpu.CreateInstance(nil)
	return &instanceImpl{
		mu:       &sync.Mutex{},
		instance: instance,
		surface: &surfaceImpl{
			mu:      &sync.Mutex{},
			surface: instance.CreateSurface(surfaceDescriptor),
		},
	}
}

func (i *instanceImpl) RequestAdapter(ctx context.Context, opts renderer.AdapterOptions) (renderer.Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	a, err := i.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    i.surface.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", renderer.ErrNoAdapter, err)
	}
	if a == nil {
		return nil, renderer.ErrNoAdapter
	}

	i.surface.setAdapter(a)
	return &adapterImpl{adapter: a, surface: i.surface, fallback: opts.ForceFallbackAdapter}, nil
}

func (i *instanceImpl) Surface() renderer.SurfaceContext {
	return i.surface
}

type adapterImpl struct {
	adapter  *wgpu.Adapter
	surface  *surfaceImpl
	fallback bool
}

var _ renderer.Adapter = &adapterImpl{}

func (a *adapterImpl) RequestDevice(ctx context.Context) (renderer.Device, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d, err := a.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: wgpu.DefaultLimits(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", renderer.ErrNoDevice, err)
	}
	if d == nil {
		return nil, renderer.ErrNoDevice
	}

	common.Logger().Debug("device created", "fallback", a.fallback)
	return &deviceImpl{
		mu:      &sync.Mutex{},
		adapter: a.adapter,
		device:  d,
		queue:   d.GetQueue(),
		surface: a.surface,
	}, nil
}

func (a *adapterImpl) Name() string {
	if a.fallback {
		return "wgpu (fallback)"
	}
	return "wgpu"
}
