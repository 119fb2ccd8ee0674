package webgpu

import (
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

var textureFormats = map[renderer.TextureFormat]wgpu.TextureFormat{
	renderer.TextureFormatUndefined:           wgpu.TextureFormatUndefined,
	renderer.TextureFormatBGRA8Unorm:          wgpu.TextureFormatBGRA8Unorm,
	renderer.TextureFormatBGRA8UnormSrgb:      wgpu.TextureFormatBGRA8UnormSrgb,
	renderer.TextureFormatRGBA8Unorm:          wgpu.TextureFormatRGBA8Unorm,
	renderer.TextureFormatRGBA8UnormSrgb:      wgpu.TextureFormatRGBA8UnormSrgb,
	renderer.TextureFormatDepth24Plus:         wgpu.TextureFormatDepth24Plus,
	renderer.TextureFormatDepth24PlusStencil8: wgpu.TextureFormatDepth24PlusStencil8,
	renderer.TextureFormatDepth32Float:        wgpu.TextureFormatDepth32Float,
}

func toTextureFormat(f renderer.TextureFormat) wgpu.TextureFormat {
	return textureFormats[f]
}

// fromTextureFormat maps a native format back, or returns Undefined for formats the renderer
// contract does not name.
func fromTextureFormat(f wgpu.TextureFormat) renderer.TextureFormat {
	for k, v := range textureFormats {
		if v == f {
			return k
		}
	}
	return renderer.TextureFormatUndefined
}

func toTextureUsage(u renderer.TextureUsage) wgpu.TextureUsage {
	var out wgpu.TextureUsage
	if u&renderer.TextureUsageCopySrc != 0 {
		out |= wgpu.TextureUsageCopySrc
	}
	if u&renderer.TextureUsageCopyDst != 0 {
		out |= wgpu.TextureUsageCopyDst
	}
	if u&renderer.TextureUsageTextureBinding != 0 {
		out |= wgpu.TextureUsageTextureBinding
	}
	if u&renderer.TextureUsageRenderAttachment != 0 {
		out |= wgpu.TextureUsageRenderAttachment
	}
	return out
}

func toBufferUsage(u renderer.BufferUsage) wgpu.BufferUsage {
	var out wgpu.BufferUsage
	if u&renderer.BufferUsageCopyDst != 0 {
		out |= wgpu.BufferUsageCopyDst
	}
	if u&renderer.BufferUsageUniform != 0 {
		out |= wgpu.BufferUsageUniform
	}
	if u&renderer.BufferUsageVertex != 0 {
		out |= wgpu.BufferUsageVertex
	}
	if u&renderer.BufferUsageIndex != 0 {
		out |= wgpu.BufferUsageIndex
	}
	if u&renderer.BufferUsageStorage != 0 {
		out |= wgpu.BufferUsageStorage
	}
	return out
}

func toShaderStage(s renderer.ShaderStage) wgpu.ShaderStage {
	var out wgpu.ShaderStage
	if s&renderer.ShaderStageVertex != 0 {
		out |= wgpu.ShaderStageVertex
	}
	if s&renderer.ShaderStageFragment != 0 {
		out |= wgpu.ShaderStageFragment
	}
	if s&renderer.ShaderStageCompute != 0 {
		out |= wgpu.ShaderStageCompute
	}
	return out
}

func toPresentMode(m renderer.PresentMode) wgpu.PresentMode {
	switch m {
	case renderer.PresentModeVSync:
		return wgpu.PresentModeFifo
	case renderer.PresentModeUncapped:
		fallthrough
	default:
		return wgpu.PresentModeImmediate
	}
}

func toLoadOp(op renderer.LoadOp) wgpu.LoadOp {
	if op == renderer.LoadOpLoad {
		return wgpu.LoadOpLoad
	}
	return wgpu.LoadOpClear
}

func toStoreOp(op renderer.StoreOp) wgpu.StoreOp {
	if op == renderer.StoreOpDiscard {
		return wgpu.StoreOpDiscard
	}
	return wgpu.StoreOpStore
}

// ConvertRenderPass translates a render pass descriptor into its wgpu form. Views must have been
// created by this backend.
//
// Parameters:
//   - desc: the backend-neutral descriptor
//
// Returns:
//   - *wgpu.RenderPassDescriptor: the native descriptor
//   - error: ErrForeignResource if a view came from another backend
func ConvertRenderPass(desc renderer.RenderPassDescriptor) (*wgpu.RenderPassDescriptor, error) {
	out := &wgpu.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: make([]wgpu.RenderPassColorAttachment, 0, len(desc.ColorAttachments)),
	}

	for _, c := range desc.ColorAttachments {
		view, err := RawTextureView(c.View)
		if err != nil {
			return nil, err
		}
		resolve, err := RawTextureView(c.ResolveTarget)
		if err != nil {
			return nil, err
		}
		out.ColorAttachments = append(out.ColorAttachments, wgpu.RenderPassColorAttachment{
			View:          view,
			ResolveTarget: resolve,
			LoadOp:        toLoadOp(c.LoadOp),
			StoreOp:       toStoreOp(c.StoreOp),
			ClearValue: wgpu.Color{
				R: c.ClearValue.R, G: c.ClearValue.G, B: c.ClearValue.B, A: c.ClearValue.A,
			},
		})
	}

	if ds := desc.DepthStencilAttachment; ds != nil {
		view, err := RawTextureView(ds.View)
		if err != nil {
			return nil, err
		}
		out.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            view,
			DepthLoadOp:     toLoadOp(ds.DepthLoadOp),
			DepthStoreOp:    toStoreOp(ds.DepthStoreOp),
			DepthClearValue: ds.DepthClearValue,
		}
	}

	return out, nil
}
