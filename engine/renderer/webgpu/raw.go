package webgpu

import (
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

// RawDevice returns the native device and queue behind d, for building pipelines and
// submitting commands.
//
// Parameters:
//   - d: a device created by this backend
//
// Returns:
//   - *wgpu.Device: the native device
//   - *wgpu.Queue: the device queue
//   - error: ErrForeignResource for devices from another backend
func RawDevice(d renderer.Device) (*wgpu.Device, *wgpu.Queue, error) {
	impl, ok := d.(*deviceImpl)
	if !ok || impl == nil {
		return nil, nil, ErrForeignResource
	}
	return impl.device, impl.queue, nil
}

// RawBindGroupLayout returns the native bind group layout behind l.
func RawBindGroupLayout(l renderer.BindGroupLayout) (*wgpu.BindGroupLayout, error) {
	impl, ok := l.(*bindGroupLayoutImpl)
	if !ok || impl == nil {
		return nil, ErrForeignResource
	}
	return impl.layout, nil
}

// RawBindGroup returns the native bind group behind g.
func RawBindGroup(g renderer.BindGroup) (*wgpu.BindGroup, error) {
	impl, ok := g.(*bindGroupImpl)
	if !ok || impl == nil {
		return nil, ErrForeignResource
	}
	return impl.group, nil
}

// RawBuffer returns the native buffer behind b.
func RawBuffer(b renderer.Buffer) (*wgpu.Buffer, error) {
	impl, ok := b.(*bufferImpl)
	if !ok || impl == nil {
		return nil, ErrForeignResource
	}
	return impl.buffer, nil
}

// RawTextureView returns the native view behind v. A nil view maps to nil without error.
func RawTextureView(v renderer.TextureView) (*wgpu.TextureView, error) {
	if v == nil {
		return nil, nil
	}
	impl, ok := v.(*textureViewImpl)
	if !ok || impl == nil {
		return nil, ErrForeignResource
	}
	return impl.view, nil
}
