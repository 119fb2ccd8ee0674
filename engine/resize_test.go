package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
)

// startedEngine returns an engine that completed initialization and its first forced resize
// at 800x600, without running the loop.
func startedEngine(t *testing.T, options ...EngineBuilderOption) (*engine, *fakeInstance, *recordingApp) {
	t.Helper()
	log := &callLog{}
	inst := newFakeInstance(log)
	app := &recordingApp{log: log}
	e := NewEngine(inst, newFakeSurface(0), append([]EngineBuilderOption{WithApp(app)}, options...)...).(*engine)

	res := e.initialize(context.Background(), common.Size{})
	if err := e.start(context.Background(), res); err != nil {
		t.Fatalf("start() = %v", err)
	}
	return e, inst, app
}

func sizePtr(w, h int) *common.Size {
	return &common.Size{Width: w, Height: h}
}

func TestResizeObservationSize(t *testing.T) {
	tests := []struct {
		name string
		obs  ResizeObservation
		want common.Size
	}{
		{
			"device pixels preferred",
			ResizeObservation{DevicePixelContentBox: sizePtr(1600, 1200), ContentBox: sizePtr(800, 600), ContentRect: common.Size{Width: 799, Height: 599}},
			common.Size{Width: 1600, Height: 1200},
		},
		{
			"content box fallback",
			ResizeObservation{ContentBox: sizePtr(800, 600), ContentRect: common.Size{Width: 799, Height: 599}},
			common.Size{Width: 800, Height: 600},
		},
		{
			"content rect fallback",
			ResizeObservation{ContentRect: common.Size{Width: 799, Height: 599}},
			common.Size{Width: 799, Height: 599},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.obs.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestZeroSizedResizeIgnored(t *testing.T) {
	e, inst, app := startedEngine(t)
	proj := e.ProjectionMatrix()
	textures := len(inst.device.texturesCreated())

	for _, size := range []common.Size{{Width: 0, Height: 600}, {Width: 800, Height: 0}, {}} {
		e.handleResizeBatch([]ResizeObservation{{ContentRect: size}})
	}
	e.handleResizeBatch(nil)

	if e.ProjectionMatrix() != proj {
		t.Error("projection changed on a zero-sized resize")
	}
	if got := len(inst.device.texturesCreated()); got != textures {
		t.Errorf("%d textures created, want %d", got, textures)
	}
	if got := e.Size(); got != (common.Size{Width: 800, Height: 600}) {
		t.Errorf("Size() = %v, want 800x600", got)
	}
	if len(app.resizes) != 1 {
		t.Errorf("OnResize called %d times, want 1", len(app.resizes))
	}
}

func TestResizeBatchCoalesced(t *testing.T) {
	e, inst, app := startedEngine(t)
	e.handleResizeBatch([]ResizeObservation{
		{ContentRect: common.Size{Width: 300, Height: 200}},
		{ContentRect: common.Size{Width: 640, Height: 480}},
		{ContentRect: common.Size{Width: 0, Height: 0}},
	})

	want := common.Size{Width: 640, Height: 480}
	if got := e.Size(); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
	if len(app.resizes) != 2 || app.resizes[1] != want {
		t.Errorf("OnResize sizes = %v, want [800x600 640x480]", app.resizes)
	}
	wantProj := common.PerspectiveZO(e.fov, 640.0/480.0, e.near, e.far)
	if e.ProjectionMatrix() != wantProj {
		t.Errorf("ProjectionMatrix() = %v, want %v", e.ProjectionMatrix(), wantProj)
	}
	cfg := inst.surface.lastConfig()
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("surface configured at %dx%d, want 640x480", cfg.Width, cfg.Height)
	}
}

func TestResizeBeforeDevice(t *testing.T) {
	log := &callLog{}
	inst := newFakeInstance(log)
	app := &recordingApp{log: log}
	e := NewEngine(inst, newFakeSurface(0), WithApp(app)).(*engine)

	e.handleResizeBatch([]ResizeObservation{{ContentRect: common.Size{Width: 1024, Height: 512}}})

	if got := e.Size(); got != (common.Size{Width: 1024, Height: 512}) {
		t.Errorf("Size() = %v, want 1024x512", got)
	}
	if e.ProjectionMatrix() != common.PerspectiveZO(e.fov, 2, e.near, e.far) {
		t.Error("projection not updated before the device exists")
	}
	if n := len(inst.device.texturesCreated()); n != 0 {
		t.Errorf("%d textures created without a device", n)
	}
	if len(app.resizes) != 0 {
		t.Error("OnResize called without a device")
	}
}

func TestRenderTargetsReallocated(t *testing.T) {
	e, inst, _ := startedEngine(t)
	first := inst.device.texturesCreated()
	if len(first) != 2 {
		t.Fatalf("%d textures after first resize, want 2", len(first))
	}

	e.handleResizeBatch([]ResizeObservation{{ContentRect: common.Size{Width: 320, Height: 240}}})

	for _, tex := range first {
		if !tex.released || !tex.view.released {
			t.Errorf("texture %q or its view not released on resize", tex.desc.Label)
		}
	}
	all := inst.device.texturesCreated()
	if len(all) != 4 {
		t.Fatalf("%d textures total, want 4", len(all))
	}
	color, depth := all[2].desc, all[3].desc
	if color.Width != 320 || color.Height != 240 || color.SampleCount != renderer.MSAA4x || color.Format != e.ColorFormat() {
		t.Errorf("color target = %+v", color)
	}
	if depth.Width != 320 || depth.Height != 240 || depth.SampleCount != renderer.MSAA4x || depth.Format != renderer.TextureFormatDepth24Plus {
		t.Errorf("depth target = %+v", depth)
	}
}

func TestDefaultRenderPassMultisampled(t *testing.T) {
	e, inst, _ := startedEngine(t, WithClearColor(renderer.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}))
	textures := inst.device.texturesCreated()
	msaaView, depthView := textures[0].view, textures[1].view

	pass, err := e.DefaultRenderPassDescriptor()
	if err != nil {
		t.Fatalf("DefaultRenderPassDescriptor() = %v", err)
	}
	if len(pass.ColorAttachments) != 1 {
		t.Fatalf("%d color attachments, want 1", len(pass.ColorAttachments))
	}
	color := pass.ColorAttachments[0]
	drawable, _ := inst.surface.CurrentTextureView()
	if color.View != msaaView || color.ResolveTarget != drawable {
		t.Errorf("color attachment view/resolve = %v/%v, want msaa/drawable", color.View, color.ResolveTarget)
	}
	if color.LoadOp != renderer.LoadOpClear || color.StoreOp != renderer.StoreOpDiscard {
		t.Errorf("color ops = %v/%v, want clear/discard", color.LoadOp, color.StoreOp)
	}
	if color.ClearValue != (renderer.Color{R: 0.1, G: 0.2, B: 0.3, A: 1}) {
		t.Errorf("clear value = %+v", color.ClearValue)
	}
	ds := pass.DepthStencilAttachment
	if ds == nil || ds.View != depthView || ds.DepthClearValue != 1 || ds.DepthLoadOp != renderer.LoadOpClear || ds.DepthStoreOp != renderer.StoreOpDiscard {
		t.Errorf("depth attachment = %+v", ds)
	}

	inst.surface.Present()
	next, err := e.DefaultRenderPassDescriptor()
	if err != nil {
		t.Fatalf("DefaultRenderPassDescriptor() = %v", err)
	}
	if next.ColorAttachments[0].ResolveTarget == color.ResolveTarget {
		t.Error("resolve target not refreshed for the next drawable")
	}
	if next.ColorAttachments[0].View != msaaView {
		t.Error("multisample view changed between frames")
	}
	if got := len(inst.device.texturesCreated()); got != 2 {
		t.Errorf("%d textures created, want render targets reused", got)
	}
}

func TestDefaultRenderPassSingleSampled(t *testing.T) {
	e, inst, _ := startedEngine(t, WithSampleCount(renderer.MSAAOff))
	textures := inst.device.texturesCreated()
	if len(textures) != 1 || !textures[0].desc.Format.IsDepth() {
		t.Fatalf("textures = %d, want only the depth target", len(textures))
	}

	pass, err := e.DefaultRenderPassDescriptor()
	if err != nil {
		t.Fatalf("DefaultRenderPassDescriptor() = %v", err)
	}
	color := pass.ColorAttachments[0]
	drawable, _ := inst.surface.CurrentTextureView()
	if color.View != drawable || color.ResolveTarget != nil {
		t.Errorf("color attachment view/resolve = %v/%v, want drawable/nil", color.View, color.ResolveTarget)
	}
	if color.StoreOp != renderer.StoreOpStore {
		t.Errorf("StoreOp = %v, want store", color.StoreOp)
	}
}

func TestDefaultRenderPassBeforeTargets(t *testing.T) {
	e := NewEngine(newFakeInstance(&callLog{}), newFakeSurface(0))
	if _, err := e.DefaultRenderPassDescriptor(); !errors.Is(err, ErrNoRenderTargets) {
		t.Errorf("DefaultRenderPassDescriptor() = %v, want ErrNoRenderTargets", err)
	}
}
