// Package main is the interactive part radar: it flies the demo rocket in a
// window and reloads the viewer settings whenever the config file changes.
package main

import (
	"context"
	"fmt"
	"image"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/partradar/internal/config"
	"github.com/Faultbox/partradar/internal/demo"
	"github.com/Faultbox/partradar/internal/engine/debug"
	"github.com/Faultbox/partradar/internal/engine/framebuffer"
	"github.com/Faultbox/partradar/internal/engine/input"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/settings"
	"github.com/Faultbox/partradar/internal/engine/viewer"
	"github.com/Faultbox/partradar/internal/engine/window"
	"github.com/Faultbox/partradar/internal/logger"
)

const (
	zoomStep    = 1.25
	gridSpacing = 5
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Part Radar ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("radar error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("radar closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	fb, err := framebuffer.New(int32(cfg.Window.Width), int32(cfg.Window.Height))
	if err != nil {
		return err
	}
	defer fb.Destroy()

	rocket := demo.New(demo.Layout{
		Stages:         cfg.Demo.Stages,
		Boosters:       cfg.Demo.Boosters,
		ThrottlePeriod: cfg.Demo.ThrottlePeriod,
		Altitude:       cfg.Demo.Altitude,
	})
	v := viewer.New(rocket, cfg.Viewer)

	// Hot reload: the watcher runs on its own goroutine and hands configs to
	// the render loop, which owns the viewer.
	reloads := make(chan *config.Config, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if path := config.FilePath(); path != "" {
		log := logger.Named(logger.Config)
		go func() {
			err := config.Watch(ctx, path,
				func(c *config.Config) { config.Offer(reloads, c) },
				func(err error) { log.Warn("config reload failed", zap.Error(err)) },
			)
			if err != nil {
				log.Warn("config watch stopped", zap.Error(err))
			}
		}()
	}

	h := &hud{
		v:     v,
		shots: debug.NewScreenshotCapture("screenshots", "radar"),
	}
	in := input.New()

	var frameLimit time.Duration
	if cfg.Window.FPSLimit > 0 {
		frameLimit = time.Second / time.Duration(cfg.Window.FPSLimit)
	}

	var (
		dst   *image.RGBA
		frame uint64
		last  = time.Now()
	)
	for {
		frameStart := time.Now()
		if in.Update() {
			return nil
		}

		select {
		case c := <-reloads:
			logger.Info("config reloaded")
			v.SetBase(c.Viewer)
			v.ForceRedraw()
		default:
		}

		w, hgt := win.DrawableSize()
		for _, e := range in.Events() {
			h.handle(e, w, hgt)
		}

		if dst == nil || dst.Rect.Dx() != w || dst.Rect.Dy() != hgt {
			dst = image.NewRGBA(image.Rect(0, 0, w, hgt))
		}

		now := time.Now()
		rocket.Advance(now.Sub(last).Seconds())
		last = now

		v.DrawCall(dst, frame, rocket.Clock())
		frame++

		framebuffer.Clear(0, 0, 0, 1)
		fb.Upload(dst)
		fb.Present(int32(w), int32(hgt))
		win.SwapBuffers()

		if frameLimit > 0 {
			if d := frameLimit - time.Since(frameStart); d > 0 {
				time.Sleep(d)
			}
		}
	}
}

// hud applies input actions to the viewer.
type hud struct {
	v     *viewer.Viewer
	shots *debug.ScreenshotCapture
	bbox  bool
	grid  bool
}

func (h *hud) handle(e input.Event, w, ht int) {
	b := h.v.Base()
	switch e.Action {
	case input.ActionScreenshot:
		name, err := h.shots.CaptureFromImage(h.v.Image())
		if err != nil {
			logger.Warn("screenshot failed", zap.Error(err))
			return
		}
		logger.Info("screenshot saved", zap.String("file", name))
		return
	case input.ActionCyclePlane:
		b.Plane = (b.Plane + 1) % (settings.PlaneLive + 1)
	case input.ActionCycleSpin:
		b.SpinSpeed = (b.SpinSpeed + 1) % (settings.SpinLudicrous + 1)
	case input.ActionCycleAxis:
		b.SpinAxis = (b.SpinAxis + 1) % (settings.AxisZ + 1)
	case input.ActionToggleAutoCenter:
		b.AutoCenter = !b.AutoCenter
	case input.ActionCenter:
		h.v.NilOffset(w, ht)
	case input.ActionPan:
		h.v.ManualOffset(e.DX, e.DY)
	case input.ActionZoomIn:
		h.v.SetScale(h.v.ScreenTransform().Scale * zoomStep)
	case input.ActionZoomOut:
		h.v.SetScale(h.v.ScreenTransform().Scale / zoomStep)
	case input.ActionToggleBBox:
		h.bbox = !h.bbox
		h.overlays()
	case input.ActionToggleGrid:
		h.grid = !h.grid
		h.overlays()
	case input.ActionResize, input.ActionForceRedraw:
	default:
		return
	}
	if b != h.v.Base() {
		logger.Debug("settings changed", zap.Stringer("plane", b.Plane), zap.Stringer("spin", b.SpinSpeed))
		h.v.SetBase(b)
	}
	h.v.ForceRedraw()
}

func (h *hud) overlays() {
	var o []viewer.Overlay
	if h.grid {
		o = append(o, debug.GridOverlay(gridSpacing))
	}
	if h.bbox {
		o = append(o, debug.BBoxOverlay(palette.Yellow))
	}
	h.v.SetOverlays(o...)
}
