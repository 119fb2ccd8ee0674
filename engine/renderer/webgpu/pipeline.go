package webgpu

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

// RenderPipelineConfig describes a render pipeline compiled from a single WGSL module holding
// both the vertex and fragment entry points.
type RenderPipelineConfig struct {
	Label            string
	Source           string
	BindGroupLayouts []renderer.BindGroupLayout
	ColorFormat      renderer.TextureFormat
	DepthFormat      renderer.TextureFormat
	SampleCount      renderer.MSAASampleCount
	CullBackFaces    bool
}

// RenderPipeline is a compiled render pipeline and the objects it owns.
type RenderPipeline struct {
	pipeline *wgpu.RenderPipeline
	layout   *wgpu.PipelineLayout
	module   *wgpu.ShaderModule
}

// NewRenderPipeline compiles cfg.Source and builds a triangle-list pipeline with depth testing
// against cfg.DepthFormat (skipped when undefined).
//
// Parameters:
//   - device: a device created by this backend
//   - cfg: the pipeline description
//
// Returns:
//   - *RenderPipeline: the pipeline
//   - error: error if the source or any native object is invalid
func NewRenderPipeline(device renderer.Device, cfg RenderPipelineConfig) (*RenderPipeline, error) {
	d, _, err := RawDevice(device)
	if err != nil {
		return nil, err
	}

	vsEntry, fsEntry, err := EntryPoints(cfg.Source)
	if err != nil {
		return nil, err
	}

	module, err := d.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: cfg.Label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: cfg.Source,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("webgpu: compiling %q: %w", cfg.Label, err)
	}

	bindGroupLayouts := make([]*wgpu.BindGroupLayout, 0, len(cfg.BindGroupLayouts))
	for g, l := range cfg.BindGroupLayouts {
		raw, rawErr := RawBindGroupLayout(l)
		if rawErr != nil {
			module.Release()
			return nil, fmt.Errorf("webgpu: bind group layout %d: %w", g, rawErr)
		}
		bindGroupLayouts = append(bindGroupLayouts, raw)
	}

	layout, err := d.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            cfg.Label,
		BindGroupLayouts: bindGroupLayouts,
	})
	if err != nil {
		module.Release()
		return nil, fmt.Errorf("webgpu: creating pipeline layout %q: %w", cfg.Label, err)
	}

	cullMode := wgpu.CullModeNone
	if cfg.CullBackFaces {
		cullMode = wgpu.CullModeBack
	}
	sampleCount := uint32(cfg.SampleCount)
	if sampleCount == 0 {
		sampleCount = 1
	}

	var depthStencil *wgpu.DepthStencilState
	if cfg.DepthFormat != renderer.TextureFormatUndefined {
		depthStencil = &wgpu.DepthStencilState{
			Format:            toTextureFormat(cfg.DepthFormat),
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		}
	}

	created, err := d.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  cfg.Label + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: vsEntry,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: fsEntry,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    toTextureFormat(cfg.ColorFormat),
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: depthStencil,
	})
	if err != nil {
		layout.Release()
		module.Release()
		return nil, fmt.Errorf("webgpu: creating render pipeline %q: %w", cfg.Label, err)
	}

	return &RenderPipeline{pipeline: created, layout: layout, module: module}, nil
}

// Raw returns the native pipeline for SetPipeline.
func (p *RenderPipeline) Raw() *wgpu.RenderPipeline {
	return p.pipeline
}

// Release destroys the pipeline, its layout and its shader module.
func (p *RenderPipeline) Release() {
	if p.pipeline != nil {
		p.pipeline.Release()
		p.pipeline = nil
	}
	if p.layout != nil {
		p.layout.Release()
		p.layout = nil
	}
	if p.module != nil {
		p.module.Release()
		p.module = nil
	}
}

// EncodeRenderPass records one render pass through record and submits it to the device queue.
//
// Parameters:
//   - device: a device created by this backend
//   - desc: the render pass attachments
//   - record: issues draw commands into the pass
//
// Returns:
//   - error: error if the descriptor or the command encoder is invalid
func EncodeRenderPass(device renderer.Device, desc renderer.RenderPassDescriptor, record func(pass *wgpu.RenderPassEncoder)) error {
	d, queue, err := RawDevice(device)
	if err != nil {
		return err
	}
	rp, err := ConvertRenderPass(desc)
	if err != nil {
		return err
	}

	encoder, err := d.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("webgpu: creating command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(rp)
	if record != nil {
		record(pass)
	}
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		return fmt.Errorf("webgpu: finishing command encoder: %w", err)
	}
	queue.Submit(commandBuffer)

	commandBuffer.Release()
	encoder.Release()
	return nil
}
