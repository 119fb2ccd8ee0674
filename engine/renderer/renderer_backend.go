package renderer

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing. This aligns the frame loop with the
	// display refresh.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4; higher values (8, 16) are adapter-dependent and may not be available.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1).
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing. This is the default.
	MSAA4x MSAASampleCount = 4

	// MSAA8x enables 8× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA8x MSAASampleCount = 8

	// MSAA16x enables 16× multisample anti-aliasing. Adapter-dependent; not all hardware supports this.
	MSAA16x MSAASampleCount = 16
)

// Enabled reports whether the count requires an offscreen multisample color target.
//
// Returns:
//   - bool: true for counts above 1
func (c MSAASampleCount) Enabled() bool {
	return c > 1
}

// TextureFormat identifies a texel format. Backends map these onto their native enums.
type TextureFormat uint32

const (
	TextureFormatUndefined TextureFormat = iota
	TextureFormatBGRA8Unorm
	TextureFormatBGRA8UnormSrgb
	TextureFormatRGBA8Unorm
	TextureFormatRGBA8UnormSrgb
	TextureFormatDepth24Plus
	TextureFormatDepth24PlusStencil8
	TextureFormatDepth32Float
)

var textureFormatNames = map[TextureFormat]string{
	TextureFormatUndefined:           "undefined",
	TextureFormatBGRA8Unorm:          "bgra8unorm",
	TextureFormatBGRA8UnormSrgb:      "bgra8unorm-srgb",
	TextureFormatRGBA8Unorm:          "rgba8unorm",
	TextureFormatRGBA8UnormSrgb:      "rgba8unorm-srgb",
	TextureFormatDepth24Plus:         "depth24plus",
	TextureFormatDepth24PlusStencil8: "depth24plus-stencil8",
	TextureFormatDepth32Float:        "depth32float",
}

func (f TextureFormat) String() string {
	if name, ok := textureFormatNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsDepth reports whether the format holds depth data.
//
// Returns:
//   - bool: true for depth (and depth-stencil) formats
func (f TextureFormat) IsDepth() bool {
	switch f {
	case TextureFormatDepth24Plus, TextureFormatDepth24PlusStencil8, TextureFormatDepth32Float:
		return true
	}
	return false
}

// TextureUsage is a bit set of the ways a texture may be used.
type TextureUsage uint32

const (
	TextureUsageCopySrc TextureUsage = 1 << iota
	TextureUsageCopyDst
	TextureUsageTextureBinding
	TextureUsageRenderAttachment
)

// BufferUsage is a bit set of the ways a buffer may be used.
type BufferUsage uint32

const (
	BufferUsageCopyDst BufferUsage = 1 << iota
	BufferUsageUniform
	BufferUsageVertex
	BufferUsageIndex
	BufferUsageStorage
)

// ShaderStage is a bit set of shader stages a binding is visible to.
type ShaderStage uint32

const (
	ShaderStageVertex ShaderStage = 1 << iota
	ShaderStageFragment
	ShaderStageCompute
)

// AlphaMode selects how the surface composites with the desktop.
type AlphaMode int

const (
	// AlphaModeOpaque ignores the alpha channel when presenting.
	AlphaModeOpaque AlphaMode = iota
	// AlphaModePremultiplied composites with premultiplied alpha.
	AlphaModePremultiplied
)

// LoadOp selects what happens to an attachment at the start of a render pass.
type LoadOp int

const (
	LoadOpClear LoadOp = iota
	LoadOpLoad
)

// StoreOp selects what happens to an attachment at the end of a render pass.
type StoreOp int

const (
	StoreOpStore StoreOp = iota
	StoreOpDiscard
)

// Color is an RGBA clear color.
type Color struct {
	R, G, B, A float64
}
