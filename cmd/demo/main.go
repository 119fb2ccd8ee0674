// Command demo orbits a procedurally generated cube with the oxy demo scaffold.
//
// Drag with the left mouse button to orbit, scroll to zoom, press L to capture the cursor and
// Esc to release it or quit.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/oxy-demo/common"
	"github.com/Carmen-Shannon/oxy-demo/engine"
	"github.com/Carmen-Shannon/oxy-demo/engine/diagnostics"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer"
	"github.com/Carmen-Shannon/oxy-demo/engine/renderer/webgpu"
	"github.com/Carmen-Shannon/oxy-demo/engine/window"
)

func init() {
	// GLFW and the native surface must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	msaa := flag.Int("msaa", 4, "MSAA sample count (1, 4, 8 or 16)")
	vsync := flag.Bool("vsync", true, "wait for vertical sync when presenting")
	profile := flag.Bool("profile", false, "log FPS and heap statistics every second")
	fallback := flag.Bool("fallback", false, "force the software fallback adapter")
	debug := flag.Bool("debug", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	common.SetLogger(logger)

	sampleCount := renderer.MSAASampleCount(*msaa)
	switch sampleCount {
	case renderer.MSAAOff, renderer.MSAA4x, renderer.MSAA8x, renderer.MSAA16x:
	default:
		logger.Error("unsupported -msaa value", "msaa", *msaa)
		os.Exit(2)
	}

	if err := run(*width, *height, sampleCount, *vsync, *profile, *fallback); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func run(width, height int, msaa renderer.MSAASampleCount, vsync, profile, fallback bool) error {
	win, err := window.NewWindow(
		window.WithTitle("oxy demo | cube"),
		window.WithSize(width, height),
	)
	if err != nil {
		return err
	}
	defer win.Close()

	presentMode := renderer.PresentModeUncapped
	if vsync {
		presentMode = renderer.PresentModeVSync
	}

	app := &cubeApp{}
	e := engine.NewEngine(
		webgpu.NewInstance(win.SurfaceDescriptor()),
		win,
		engine.WithApp(app),
		engine.WithSampleCount(msaa),
		engine.WithPresentMode(presentMode),
		engine.WithAdapterOptions(renderer.AdapterOptions{ForceFallbackAdapter: fallback}),
		engine.WithProfiling(profile),
		engine.WithErrorBanner(win.Banner()),
		engine.WithStatsMonitor(diagnostics.NewGraphMonitor(diagnostics.WithLogInterval(5*time.Second))),
	)
	app.engine = e
	defer e.Release()
	defer app.release()

	win.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyL {
			win.SetPointerLock(!win.PointerLocked())
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = e.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
