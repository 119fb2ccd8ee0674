package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine"
	"github.com/Carmen-Shannon/oxy-demo/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// glfwDontCare is GLFW_DONT_CARE, used for unbounded size limits.
const glfwDontCare = -1

// wheelNotch converts GLFW scroll offsets (one per notch) into wheel units.
const wheelNotch = 120

// idleWait bounds how long Poll blocks when no frame callback is queued.
const idleWait = 1.0 / 60

// glfwWindow holds the GLFW-specific window state.
type glfwWindow struct {
	window  *glfw.Window
	running bool

	// last cursor position, for movement deltas
	lastX, lastY float64
	hasLast      bool
}

// newPlatformWindow creates the GLFW window with input callbacks and stores it as the internal window.
//
// GLFW reference: https://www.glfw.org/docs/latest/window_guide.html
// go-gl/glfw: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw
func newPlatformWindow(w *engineWindow) error {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initializing GLFW: %w", err)
	}

	// WebGPU provides its own graphics API, so disable OpenGL context creation.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("creating GLFW window: %w", err)
	}
	win.SetSizeLimits(w.minWidth, w.minHeight, w.maxWidth, w.maxHeight)

	gw := &glfwWindow{
		window:  win,
		running: true,
	}
	w.internalWindow = gw

	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			// Escape releases a captured cursor before it closes the window.
			if w.PointerLocked() {
				w.SetPointerLock(false)
				return
			}
			gw.running = false
			win.SetShouldClose(true)
			return
		}
		switch action {
		case glfw.Press, glfw.Repeat:
			if w.onKeyDown != nil {
				w.onKeyDown(uint32(key))
			}
		case glfw.Release:
			if w.onKeyUp != nil {
				w.onKeyUp(uint32(key))
			}
		}
	})

	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		// GLFW reports positive yoff when scrolling up; wheel events use positive for down.
		w.DispatchWheel(&input.WheelEvent{DeltaY: -yoff * wheelNotch})
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		e := input.PointerEvent{
			X:         x,
			Y:         y,
			IsPrimary: button == glfw.MouseButtonLeft,
			Button:    int(button),
		}
		switch action {
		case glfw.Press:
			w.DispatchPointerDown(e)
		case glfw.Release:
			w.DispatchPointerUp(e)
		}
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		e := input.PointerEvent{X: x, Y: y, IsPrimary: true, Button: -1}
		if gw.hasLast {
			e.MovementX = x - gw.lastX
			e.MovementY = y - gw.lastY
		}
		gw.lastX, gw.lastY, gw.hasLast = x, y, true
		w.DispatchPointerMove(e)
	})

	// Framebuffer size is the pixel-exact measurement; window size is the logical fallback.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, _, _ int) {
		w.Push(platformObservation(w))
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return nil
}

// platformObservation measures the window the way a device-pixel resize observer would.
func platformObservation(w *engineWindow) engine.ResizeObservation {
	gw := w.internalWindow
	fbw, fbh := gw.window.GetFramebufferSize()
	ww, wh := gw.window.GetSize()
	device := common.Size{Width: fbw, Height: fbh}
	return engine.ResizeObservation{
		DevicePixelContentBox: &device,
		ContentRect:           common.Size{Width: ww, Height: wh},
	}
}

func platformDrawableSize(w *engineWindow) common.Size {
	fbw, fbh := w.internalWindow.window.GetFramebufferSize()
	return common.Size{Width: fbw, Height: fbh}
}

func platformSetPointerLock(w *engineWindow, locked bool) {
	gw := w.internalWindow
	mode := glfw.CursorNormal
	if locked {
		mode = glfw.CursorDisabled
	}
	gw.window.SetInputMode(glfw.CursorMode, mode)
	// The virtual cursor jumps when the mode changes.
	gw.hasLast = false
}

func platformSetTitle(w *engineWindow, title string) {
	w.internalWindow.window.SetTitle(title)
}

// platformGetSurfaceDescriptor creates a platform-appropriate wgpu.SurfaceDescriptor from the GLFW window.
// Uses the wgpuglfw bridge package which has per-platform implementations (Windows, X11, Wayland, macOS).
//
// Reference: https://pkg.go.dev/github.com/cogentcore/webgpu/wgpuglfw#GetSurfaceDescriptor
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.internalWindow.window)
}

// platformIsRunningCheck returns whether the GLFW window is still active.
func platformIsRunningCheck(w *engineWindow) bool {
	gw := w.internalWindow
	return gw != nil && gw.running && !gw.window.ShouldClose()
}

// platformCloseWindow destroys the GLFW window and terminates the GLFW library.
func platformCloseWindow(w *engineWindow) {
	gw := w.internalWindow
	gw.running = false
	gw.window.SetShouldClose(true)
	gw.window.Destroy()
	glfw.Terminate()
}

// platformProcessMessages handles pending GLFW events. With no frame queued it waits briefly for
// input instead of spinning.
//
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#PollEvents
func platformProcessMessages(_ *engineWindow, framePending bool) {
	if framePending {
		glfw.PollEvents()
		return
	}
	glfw.WaitEventsTimeout(idleWait)
}
