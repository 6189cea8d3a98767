// Command trigon opens a transparent window and renders a spinning
// triangle. Escape closes the window, F1 toggles the UV debug shader,
// the mouse wheel fades the background in and out.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/xorbits/trigon/glint"
	"github.com/xorbits/trigon/glm"
	"github.com/xorbits/trigon/gpu"
	"github.com/xorbits/trigon/render"
	"github.com/xorbits/trigon/settings"
	"github.com/xorbits/trigon/surface"
)

func main() {
	log := setupLogging()

	if err := run(log); err != nil {
		log.Error("trigon failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func setupLogging() *slog.Logger {
	level := slog.LevelInfo

	switch strings.ToLower(os.Getenv("TRIGON_LOG")) {
	case "trace":
		level = surface.LevelTrace
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	slog.SetDefault(log)
	return log
}

func run(log *slog.Logger) error {
	cfg := settings.Load(log)

	win, err := glint.NewWindow(glint.Options{
		Width:       cfg.Window.Width,
		Height:      cfg.Window.Height,
		Title:       cfg.Window.Title,
		Transparent: cfg.Window.Transparent,
		Profile:     cfg.Debug.Profile,
	})
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	defer win.Terminate()

	ctx, err := gpu.New(win, gpu.Options{
		PowerPreference:      gpu.PowerPreferenceOf(cfg.Graphics.GPUPreference),
		ForceFallbackAdapter: cfg.Graphics.ForceFallbackAdapter,
	})
	if err != nil {
		return fmt.Errorf("initialize wgpu: %w", err)
	}

	defer ctx.Release()

	stopPolling := make(chan struct{})
	defer close(stopPolling)
	go ctx.PollLoop(stopPolling)

	nego := surface.NewNegotiator[*gpu.Frame](ctx, log)

	binding, err := nego.Bind(win)
	if err != nil {
		return err
	}

	config, err := nego.Negotiate(binding, win, surface.Options{
		VSync: cfg.Graphics.VSync,
	})
	if err != nil {
		return err
	}

	surf, err := surface.New(ctx, win, binding, config, log)
	if err != nil {
		return err
	}

	// the binding must go before the window does
	defer surf.Destroy()

	renderer, err := render.New(ctx)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	defer renderer.Release()

	var (
		value   float32
		showUV  bool
		visible bool
	)

	win.OnKeyPressed(func(key glint.Key) {
		switch key {
		case glint.KeyEscape:
			win.Close()
		case glint.KeyF1:
			showUV = !showUV
		}
	})

	win.OnScroll(func(dx, dy float32) {
		value = glm.Clamp(value+dx+dy, 0, 10)
		log.Debug("Background value changed", slog.Any("value", value))
	})

	win.OnResize(func(width, height uint32) {
		if width == 0 || height == 0 {
			// minimized; the next real size arrives with restore
			return
		}

		if err := surf.Resized(width, height); err != nil {
			log.Error("Failed to resize surface", slog.Any("error", err))
			win.Close()
		}
	})

	boot := time.Now()

	return win.Run(func() error {
		frame, err := surf.Acquire()
		if err != nil {
			return fmt.Errorf("acquire frame: %w", err)
		}

		view, err := frame.View()
		if err != nil {
			frame.Discard()
			return err
		}

		width, height := surf.Size()

		err = renderer.Frame(view, render.FrameOptions{
			Format:          wgpu.TextureFormat(surf.Format()),
			Width:           width,
			Height:          height,
			Uptime:          time.Since(boot),
			BackgroundAlpha: float64(value) / 10,
			ShowUV:          showUV,
		})
		if err != nil {
			frame.Discard()
			return fmt.Errorf("render frame: %w", err)
		}

		frame.Present()

		// keep the window hidden until there is a first frame to show
		if !visible {
			visible = true
			win.SetVisible(true)
		}

		return nil
	})
}
