package engine

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
)

// ErrNoRenderTargets is returned by DefaultRenderPassDescriptor before the first resize after
// initialization.
var ErrNoRenderTargets = errors.New("engine: render targets not allocated")

// ErrNoSurface is returned by DefaultRenderPassDescriptor when the instance has no surface.
var ErrNoSurface = errors.New("engine: no surface")

// renderTargets holds the size dependent textures and the cached render pass descriptor.
type renderTargets struct {
	msaaColor     renderer.Texture
	msaaColorView renderer.TextureView
	depth         renderer.Texture
	depthView     renderer.TextureView
	pass          *renderer.RenderPassDescriptor
}

// release destroys all textures and views and forgets the render pass descriptor.
func (t *renderTargets) release() {
	if t.msaaColorView != nil {
		t.msaaColorView.Release()
		t.msaaColorView = nil
	}
	if t.msaaColor != nil {
		t.msaaColor.Release()
		t.msaaColor = nil
	}
	if t.depthView != nil {
		t.depthView.Release()
		t.depthView = nil
	}
	if t.depth != nil {
		t.depth.Release()
		t.depth = nil
	}
	t.pass = nil
}

// allocateRenderTargets releases the previous targets and creates new ones at size: a
// multisample color target when the sample count is above 1, and always a depth target.
func (e *engine) allocateRenderTargets(size common.Size) error {
	t := &e.targets
	t.release()

	if e.sampleCount.Enabled() {
		tex, err := e.device.CreateTexture(renderer.TextureDescriptor{
			Label:       "MSAA Color Target",
			Width:       size.Width,
			Height:      size.Height,
			SampleCount: e.sampleCount,
			Format:      e.colorFormat,
			Usage:       renderer.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("creating multisample color target: %w", err)
		}
		t.msaaColor = tex
		if t.msaaColorView, err = tex.CreateView(); err != nil {
			t.release()
			return fmt.Errorf("creating multisample color view: %w", err)
		}
	}

	tex, err := e.device.CreateTexture(renderer.TextureDescriptor{
		Label:       "Depth Target",
		Width:       size.Width,
		Height:      size.Height,
		SampleCount: e.sampleCount,
		Format:      e.depthFormat,
		Usage:       renderer.TextureUsageRenderAttachment,
	})
	if err != nil {
		t.release()
		return fmt.Errorf("creating depth target: %w", err)
	}
	t.depth = tex
	if t.depthView, err = tex.CreateView(); err != nil {
		t.release()
		return fmt.Errorf("creating depth view: %w", err)
	}

	color := renderer.RenderPassColorAttachment{
		View:       t.msaaColorView,
		ClearValue: e.clearColor,
		LoadOp:     renderer.LoadOpClear,
		StoreOp:    renderer.StoreOpStore,
	}
	if e.sampleCount.Enabled() {
		color.StoreOp = renderer.StoreOpDiscard
	}

	t.pass = &renderer.RenderPassDescriptor{
		Label:            "Default Render Pass",
		ColorAttachments: []renderer.RenderPassColorAttachment{color},
		DepthStencilAttachment: &renderer.RenderPassDepthStencilAttachment{
			View:            t.depthView,
			DepthClearValue: 1.0,
			DepthLoadOp:     renderer.LoadOpClear,
			DepthStoreOp:    renderer.StoreOpDiscard,
		},
	}

	e.logger.Debug("render targets allocated", "size", size.String(), "samples", int(e.sampleCount))
	return nil
}

func (e *engine) DefaultRenderPassDescriptor() (renderer.RenderPassDescriptor, error) {
	pass := e.targets.pass
	if pass == nil {
		return renderer.RenderPassDescriptor{}, ErrNoRenderTargets
	}
	if e.surfaceCtx == nil {
		return renderer.RenderPassDescriptor{}, ErrNoSurface
	}

	view, err := e.surfaceCtx.CurrentTextureView()
	if err != nil {
		return renderer.RenderPassDescriptor{}, fmt.Errorf("engine: acquiring drawable: %w", err)
	}

	if e.sampleCount.Enabled() {
		pass.ColorAttachments[0].ResolveTarget = view
	} else {
		pass.ColorAttachments[0].View = view
	}

	out := *pass
	out.ColorAttachments = append([]renderer.RenderPassColorAttachment(nil), pass.ColorAttachments...)
	return out, nil
}
