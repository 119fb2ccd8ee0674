package window

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine"
	"github.com/Carmen-Shannon/oxy-demo/engine/diagnostics"
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window is a native window the engine can present to and drive.
// It delivers pointer, wheel, frame and resize events from its Poll loop.
type Window interface {
	engine.Surface

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common.Key*)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key code (see common.Key*)
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetPointerLock captures or releases the cursor. While captured the cursor is hidden and
	// pointer moves report unbounded relative movement.
	//
	// Parameters:
	//   - locked: true to capture the cursor
	SetPointerLock(locked bool)

	// SetTitle replaces the base window title.
	//
	// Parameters:
	//   - title: the new title
	SetTitle(title string)

	// Banner returns an error banner that reports through the title bar.
	//
	// Returns:
	//   - diagnostics.ErrorBanner: the title bar banner
	Banner() diagnostics.ErrorBanner

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still open.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never opened
	Close() error
}

// engineWindow is the implementation of the Window interface.
// Input dispatch, the frame queue and the resize queue are embedded; the GLFW side feeds them.
type engineWindow struct {
	input.Dispatcher
	engine.FrameQueue
	engine.ResizeQueue

	mu *sync.Mutex

	// title is the base window title displayed in the title bar.
	title string

	// bannerText is appended to the title while an error is shown.
	bannerText string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	// width and height are the requested window size, replaced by the framebuffer size once open.
	width  int
	height int

	// start is the origin of frame timestamps.
	start time.Time

	logger *slog.Logger

	internalWindow *glfwWindow

	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow opens a GLFW window with no client graphics API attached.
// Must be called from the main goroutine with the OS thread locked.
//
// Parameters:
//   - options: optional builder options
//
// Returns:
//   - Window: the opened window
//   - error: error if GLFW fails to initialize or create the window
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		mu:        &sync.Mutex{},
		title:     "oxy demo",
		maxWidth:  glfwDontCare,
		maxHeight: glfwDontCare,
		minWidth:  320,
		minHeight: 200,
		width:     1280,
		height:    720,
	}

	for _, opt := range options {
		opt(w)
	}
	w.logger = common.Coalesce(w.logger, common.Logger())

	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("window: %w", err)
	}
	w.start = time.Now()
	return w, nil
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetPointerLock(locked bool) {
	if w.internalWindow == nil {
		return
	}
	platformSetPointerLock(w, locked)
	w.SetPointerLocked(locked)
}

func (w *engineWindow) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
	w.refreshTitle()
}

func (w *engineWindow) Banner() diagnostics.ErrorBanner {
	return &titleBanner{window: w}
}

// ObserveResize registers cb and queues an observation of the current size, so the first batch
// arrives on the next Poll the way a freshly attached observer would see it.
func (w *engineWindow) ObserveResize(cb func(batch []engine.ResizeObservation)) func() {
	stop := w.ResizeQueue.ObserveResize(cb)
	if w.internalWindow != nil {
		w.Push(platformObservation(w))
	}
	return stop
}

func (w *engineWindow) DrawableSize() common.Size {
	if w.internalWindow == nil {
		return common.Size{}
	}
	return platformDrawableSize(w)
}

// Poll processes pending window events, delivers the resize batch gathered from them, then runs
// the frame callbacks that were queued before this call.
func (w *engineWindow) Poll() bool {
	if w.internalWindow == nil {
		return false
	}
	platformProcessMessages(w, w.Pending() > 0)
	if !platformIsRunningCheck(w) {
		return false
	}
	w.Flush()
	w.RunDue(w.timestamp())
	return platformIsRunningCheck(w)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return w.internalWindow != nil && platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	if w.internalWindow == nil {
		return fmt.Errorf("window: not initialized")
	}
	platformCloseWindow(w)
	w.internalWindow = nil
	return nil
}

// timestamp returns milliseconds since the window opened.
func (w *engineWindow) timestamp() float64 {
	return float64(time.Since(w.start).Microseconds()) / 1000
}

func (w *engineWindow) refreshTitle() {
	w.mu.Lock()
	title := composeTitle(w.title, w.bannerText)
	w.mu.Unlock()
	if w.internalWindow != nil {
		platformSetTitle(w, title)
	}
}

func composeTitle(base, banner string) string {
	if banner == "" {
		return base
	}
	return base + " | " + banner
}
