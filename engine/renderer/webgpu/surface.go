package webgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrSurfaceNotConfigured is returned when a drawable is requested before Configure.
var ErrSurfaceNotConfigured = errors.New("webgpu: surface not configured")

type surfaceImpl struct {
	mu         *sync.Mutex
	surface    *wgpu.Surface
	adapter    *wgpu.Adapter
	configured bool

	// Drawable acquired for the current frame, released by Present.
	frameTexture *wgpu.Texture
	frameView    *textureViewImpl
}

var _ renderer.SurfaceContext = &surfaceImpl{}

func (s *surfaceImpl) setAdapter(a *wgpu.Adapter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.adapter = a
}

func (s *surfaceImpl) Configure(device renderer.Device, cfg renderer.SurfaceConfiguration) error {
	d, ok := device.(*deviceImpl)
	if !ok || d == nil {
		return ErrForeignResource
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("webgpu: cannot configure surface at %dx%d", cfg.Width, cfg.Height)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A held drawable belongs to the old configuration.
	s.releaseFrame()

	capabilities := s.surface.GetCapabilities(d.adapter)
	alpha := wgpu.CompositeAlphaModeOpaque
	if len(capabilities.AlphaModes) > 0 {
		alpha = capabilities.AlphaModes[0]
	}
	for _, m := range capabilities.AlphaModes {
		if (cfg.AlphaMode == renderer.AlphaModeOpaque) == (m == wgpu.CompositeAlphaModeOpaque) {
			alpha = m
			break
		}
	}

	s.surface.Configure(d.adapter, d.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      toTextureFormat(cfg.Format),
		Width:       uint32(cfg.Width),
		Height:      uint32(cfg.Height),
		PresentMode: toPresentMode(cfg.PresentMode),
		AlphaMode:   alpha,
	})
	s.configured = true

	common.Logger().Debug("surface configured", "format", cfg.Format.String(), "width", cfg.Width, "height", cfg.Height)
	return nil
}

func (s *surfaceImpl) CurrentTextureView() (renderer.TextureView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.configured {
		return nil, ErrSurfaceNotConfigured
	}
	if s.frameView != nil {
		return s.frameView, nil
	}

	tex, err := s.surface.GetCurrentTexture()
	if err != nil {
		return nil, fmt.Errorf("webgpu: acquiring surface texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("webgpu: creating surface view: %w", err)
	}

	s.frameTexture = tex
	s.frameView = &textureViewImpl{view: view}
	return s.frameView, nil
}

func (s *surfaceImpl) Present() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.frameTexture == nil {
		return
	}
	s.surface.Present()
	s.releaseFrame()
}

// releaseFrame drops the drawable acquired for the current frame. Callers hold s.mu.
func (s *surfaceImpl) releaseFrame() {
	if s.frameView != nil {
		s.frameView.Release()
		s.frameView = nil
	}
	if s.frameTexture != nil {
		s.frameTexture.Release()
		s.frameTexture = nil
	}
}
