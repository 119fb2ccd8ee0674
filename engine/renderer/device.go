package renderer

import (
	"context"
	"errors"
)

var (
	// ErrNoAdapter is returned when no GPU adapter satisfies the request.
	ErrNoAdapter = errors.New("renderer: no suitable GPU adapter")

	// ErrNoDevice is returned when the adapter cannot provide a device.
	ErrNoDevice = errors.New("renderer: GPU device unavailable")
)

// AdapterOptions tunes adapter selection.
type AdapterOptions struct {
	// ForceFallbackAdapter requests a CPU/software adapter instead of hardware.
	ForceFallbackAdapter bool
}

// Instance is the entry point of a graphics backend. It owns the presentable surface.
type Instance interface {
	// RequestAdapter selects a GPU adapter compatible with the instance's surface.
	//
	// Parameters:
	//   - ctx: cancels the request
	//   - opts: selection options
	//
	// Returns:
	//   - Adapter: the selected adapter
	//   - error: ErrNoAdapter (wrapped) when none is available
	RequestAdapter(ctx context.Context, opts AdapterOptions) (Adapter, error)

	// Surface returns the presentable surface owned by this instance.
	//
	// Returns:
	//   - SurfaceContext: the surface
	Surface() SurfaceContext
}

// Adapter is a physical or software GPU.
type Adapter interface {
	// RequestDevice opens a logical device on the adapter.
	//
	// Parameters:
	//   - ctx: cancels the request
	//
	// Returns:
	//   - Device: the opened device
	//   - error: ErrNoDevice (wrapped) when the device cannot be created
	RequestDevice(ctx context.Context) (Device, error)

	// Name returns a human readable adapter description for logs.
	Name() string
}

// BufferDescriptor describes a GPU buffer.
type BufferDescriptor struct {
	Label string
	Size  uint64
	Usage BufferUsage
}

// TextureDescriptor describes a 2D GPU texture.
type TextureDescriptor struct {
	Label       string
	Width       int
	Height      int
	SampleCount MSAASampleCount
	Format      TextureFormat
	Usage       TextureUsage
}

// UniformBindGroupDescriptor describes a bind group holding a single uniform buffer at binding 0.
type UniformBindGroupDescriptor struct {
	Label      string
	Buffer     Buffer
	Visibility ShaderStage
}

// Device creates GPU resources and uploads data.
type Device interface {
	// PreferredColorFormat returns the native color format for presentation.
	PreferredColorFormat() TextureFormat

	// CreateBuffer allocates a GPU buffer.
	CreateBuffer(desc BufferDescriptor) (Buffer, error)

	// CreateUniformBindGroup creates a bind group layout with one uniform buffer entry at binding 0,
	// and a bind group binding desc.Buffer to it.
	CreateUniformBindGroup(desc UniformBindGroupDescriptor) (BindGroupLayout, BindGroup, error)

	// CreateTexture allocates a 2D texture.
	CreateTexture(desc TextureDescriptor) (Texture, error)

	// WriteBuffer queues a write of data into buf at the given byte offset.
	WriteBuffer(buf Buffer, offset uint64, data []byte) error

	// Release destroys the device.
	Release()
}

// Buffer is a GPU buffer.
type Buffer interface {
	Size() uint64
	Release()
}

// Texture is a GPU texture.
type Texture interface {
	// CreateView creates a default view over the whole texture.
	CreateView() (TextureView, error)
	Release()
}

// TextureView is a view over a texture, usable as a render attachment.
type TextureView interface {
	Release()
}

// BindGroupLayout describes the shape of a bind group.
type BindGroupLayout interface {
	Release()
}

// BindGroup binds resources for shaders.
type BindGroup interface {
	Release()
}

// SurfaceConfiguration configures a presentable surface for a device.
type SurfaceConfiguration struct {
	Format      TextureFormat
	AlphaMode   AlphaMode
	PresentMode PresentMode
	Width       int
	Height      int
}

// SurfaceContext is the presentable drawable, the equivalent of a canvas WebGPU context.
type SurfaceContext interface {
	// Configure (re)configures the surface for device at the given size.
	Configure(device Device, cfg SurfaceConfiguration) error

	// CurrentTextureView returns a view of the drawable texture for the current frame. The view may
	// change identity between frames; within one frame repeated calls return the same view.
	CurrentTextureView() (TextureView, error)

	// Present shows the current frame and releases its texture. It is a no-op if no texture was
	// acquired since the last Present.
	Present()
}
