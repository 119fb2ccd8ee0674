package webgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrForeignResource is returned when a resource created by another backend is passed in.
var ErrForeignResource = errors.New("webgpu: resource not created by this backend")

type deviceImpl struct {
	mu      *sync.Mutex
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue
	surface *surfaceImpl
}

var _ renderer.Device = &deviceImpl{}

func (d *deviceImpl) PreferredColorFormat() renderer.TextureFormat {
	if d.surface == nil || d.surface.surface == nil {
		return renderer.TextureFormatUndefined
	}
	capabilities := d.surface.surface.GetCapabilities(d.adapter)
	if len(capabilities.Formats) == 0 {
		return renderer.TextureFormatUndefined
	}
	return fromTextureFormat(capabilities.Formats[0])
}

func (d *deviceImpl) CreateBuffer(desc renderer.BufferDescriptor) (renderer.Buffer, error) {
	buf, err := d.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: desc.Label,
		Size:  desc.Size,
		Usage: toBufferUsage(desc.Usage),
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: creating buffer %q: %w", desc.Label, err)
	}
	return &bufferImpl{buffer: buf, size: desc.Size}, nil
}

func (d *deviceImpl) CreateUniformBindGroup(desc renderer.UniformBindGroupDescriptor) (renderer.BindGroupLayout, renderer.BindGroup, error) {
	buf, ok := desc.Buffer.(*bufferImpl)
	if !ok || buf == nil {
		return nil, nil, ErrForeignResource
	}

	entry := wgpu.BindGroupLayoutEntry{
		Binding:    0,
		Visibility: toShaderStage(desc.Visibility),
	}
	entry.Buffer.Type = wgpu.BufferBindingTypeUniform
	entry.Buffer.MinBindingSize = buf.size

	layout, err := d.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   desc.Label + " BindGroupLayout",
		Entries: []wgpu.BindGroupLayoutEntry{entry},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("webgpu: creating bind group layout %q: %w", desc.Label, err)
	}

	group, err := d.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  desc.Label + " BindGroup",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  buf.buffer,
				Offset:  0,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		layout.Release()
		return nil, nil, fmt.Errorf("webgpu: creating bind group %q: %w", desc.Label, err)
	}

	return &bindGroupLayoutImpl{layout: layout}, &bindGroupImpl{group: group}, nil
}

func (d *deviceImpl) CreateTexture(desc renderer.TextureDescriptor) (renderer.Texture, error) {
	sampleCount := uint32(desc.SampleCount)
	if sampleCount == 0 {
		sampleCount = 1
	}
	tex, err := d.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: desc.Label,
		Size: wgpu.Extent3D{
			Width:              uint32(desc.Width),
			Height:             uint32(desc.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     wgpu.TextureDimension2D,
		Format:        toTextureFormat(desc.Format),
		Usage:         toTextureUsage(desc.Usage),
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: creating texture %q: %w", desc.Label, err)
	}
	return &textureImpl{texture: tex}, nil
}

func (d *deviceImpl) WriteBuffer(buf renderer.Buffer, offset uint64, data []byte) error {
	b, ok := buf.(*bufferImpl)
	if !ok || b == nil {
		return ErrForeignResource
	}
	if offset+uint64(len(data)) > b.size {
		return fmt.Errorf("webgpu: write of %d bytes at %d overflows %d byte buffer", len(data), offset, b.size)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue.WriteBuffer(b.buffer, offset, data)
	return nil
}

func (d *deviceImpl) Release() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.queue != nil {
		d.queue.Release()
		d.queue = nil
	}
	if d.device != nil {
		d.device.Release()
		d.device = nil
	}
}

type bufferImpl struct {
	buffer *wgpu.Buffer
	size   uint64
}

func (b *bufferImpl) Size() uint64 { return b.size }

func (b *bufferImpl) Release() {
	if b.buffer != nil {
		b.buffer.Release()
		b.buffer = nil
	}
}

type textureImpl struct {
	texture *wgpu.Texture
}

func (t *textureImpl) CreateView() (renderer.TextureView, error) {
	view, err := t.texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("webgpu: creating texture view: %w", err)
	}
	return &textureViewImpl{view: view}, nil
}

func (t *textureImpl) Release() {
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

type textureViewImpl struct {
	view *wgpu.TextureView
}

func (v *textureViewImpl) Release() {
	if v.view != nil {
		v.view.Release()
		v.view = nil
	}
}

type bindGroupLayoutImpl struct {
	layout *wgpu.BindGroupLayout
}

func (l *bindGroupLayoutImpl) Release() {
	if l.layout != nil {
		l.layout.Release()
		l.layout = nil
	}
}

type bindGroupImpl struct {
	group *wgpu.BindGroup
}

func (g *bindGroupImpl) Release() {
	if g.group != nil {
		g.group.Release()
		g.group = nil
	}
}
