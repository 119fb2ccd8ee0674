package main

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/oxy-demo/engine"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer/shader"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer/webgpu"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/cube.wgsl
var cubeSource string

// cubeVertexCount is six faces of two triangles each.
const cubeVertexCount = 36

// cubeApp draws a procedurally generated cube with the frame uniforms of its engine.
type cubeApp struct {
	engine.BaseApp

	engine    engine.Engine
	pipeline  *webgpu.RenderPipeline
	frameBind *wgpu.BindGroup
}

var _ engine.App = &cubeApp{}

func (a *cubeApp) OnInit(_ context.Context, device renderer.Device) error {
	frameBind, err := webgpu.RawBindGroup(a.engine.FrameBindGroup())
	if err != nil {
		return fmt.Errorf("cube: frame bind group: %w", err)
	}

	source, err := shader.NewPreProcessor(
		shader.WithStruct("frame", engine.GPUFrameUniformSource, engine.GPUFrameUniformType),
	).Process(cubeSource)
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}

	pipeline, err := webgpu.NewRenderPipeline(device, webgpu.RenderPipelineConfig{
		Label:            "Cube",
		Source:           source,
		BindGroupLayouts: []renderer.BindGroupLayout{a.engine.FrameBindGroupLayout()},
		ColorFormat:      a.engine.ColorFormat(),
		DepthFormat:      a.engine.DepthFormat(),
		SampleCount:      a.engine.SampleCount(),
	})
	if err != nil {
		return fmt.Errorf("cube: %w", err)
	}

	a.pipeline = pipeline
	a.frameBind = frameBind
	return nil
}

func (a *cubeApp) OnFrame(device renderer.Device, _ renderer.SurfaceContext, _ float64) {
	desc, err := a.engine.DefaultRenderPassDescriptor()
	if err != nil {
		// Nothing to draw into yet, typically a minimized window.
		return
	}

	err = webgpu.EncodeRenderPass(device, desc, func(pass *wgpu.RenderPassEncoder) {
		pass.SetPipeline(a.pipeline.Raw())
		pass.SetBindGroup(0, a.frameBind, nil)
		pass.Draw(cubeVertexCount, 1, 0, 0)
	})
	if err != nil {
		a.engine.SetError(err, "drawing the cube")
	}
}

func (a *cubeApp) release() {
	if a.pipeline != nil {
		a.pipeline.Release()
		a.pipeline = nil
	}
}
