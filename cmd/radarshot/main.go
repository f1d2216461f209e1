// Package main renders the demo rocket headlessly and writes the radar
// frames as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"github.com/Faultbox/partradar/internal/config"
	"github.com/Faultbox/partradar/internal/demo"
	"github.com/Faultbox/partradar/internal/engine/debug"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/internal/engine/settings"
	"github.com/Faultbox/partradar/internal/engine/viewer"
	"github.com/Faultbox/partradar/internal/logger"
)

var (
	flagFrames = flag.Int("frames", 120, "Number of frames to simulate")
	flagEvery  = flag.Int("every", 30, "Write every Nth frame")
	flagFPS    = flag.Float64("fps", 60, "Simulated frames per second")
	flagOut    = flag.String("out", "radarshots", "Output directory")
	flagDump   = flag.Bool("dump", false, "Dump the effective settings of the first frame")
	flagFocus  = flag.String("focus", "", "Frame only parts whose id starts with this prefix")
	flagBBox   = flag.Bool("bbox", false, "Outline the framed box")
	flagGrid   = flag.Float64("grid", 0, "Draw a reference grid with this spacing in meters")
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

	if *flagEvery < 1 || *flagFPS <= 0 {
		logger.Error("-every and -fps must be positive")
		os.Exit(1)
	}

	rocket := demo.New(demo.Layout{
		Stages:         cfg.Demo.Stages,
		Boosters:       cfg.Demo.Boosters,
		ThrottlePeriod: cfg.Demo.ThrottlePeriod,
		Altitude:       cfg.Demo.Altitude,
	})

	var opts []viewer.Option
	if *flagBBox {
		opts = append(opts, viewer.WithOverlay(debug.BBoxOverlay(palette.Yellow)))
	}
	if *flagGrid > 0 {
		opts = append(opts, viewer.WithOverlay(debug.GridOverlay(float32(*flagGrid))))
	}
	var ov *settings.Overrides
	if *flagFocus != "" {
		ov = &settings.Overrides{Focus: focus(rocket.Snapshot(), *flagFocus)}
		opts = append(opts, viewer.WithOverrides(ov))
		logger.Info("framing subset", zap.String("prefix", *flagFocus), zap.Int("parts", len(ov.Focus)))
	}
	v := viewer.New(rocket, cfg.Viewer, opts...)

	if *flagDump {
		ctx := settings.FrameContext{Snapshot: rocket.Snapshot()}
		dumper := spew.NewDefaultConfig()
		dumper.DisableCapacities = true
		dumper.DisablePointerAddresses = true
		fmt.Println(dumper.Sdump(cfg, settings.Resolve(cfg.Viewer, ov, ctx)))
	}

	shots := debug.NewScreenshotCapture(*flagOut, "radar")
	dst := image.NewRGBA(image.Rect(0, 0, cfg.Window.Width, cfg.Window.Height))
	dt := 1 / *flagFPS
	written := 0
	for f := 0; f < *flagFrames; f++ {
		rocket.Advance(dt)
		v.DrawCall(dst, uint64(f), rocket.Clock())
		if err := v.LastFault(); err != nil {
			logger.Warn("frame fault", logger.Frame(uint64(f)), zap.Error(err))
		}
		if f%*flagEvery != 0 {
			continue
		}
		name, err := shots.CaptureFrame(dst, uint64(f))
		if err != nil {
			logger.Error("failed to write frame", zap.Error(err))
			os.Exit(1)
		}
		written++
		logger.Debug("frame written", zap.String("file", name), logger.Stage(rocket.ActiveStage()))
	}

	logger.Info("done",
		zap.Int("frames", *flagFrames),
		zap.Int("written", written),
		zap.Uint64("redraws", v.Redraws()),
		zap.String("dir", *flagOut),
	)
}

// focus picks the parts whose id starts with prefix.
func focus(snap *scene.Snapshot, prefix string) []*scene.Node {
	var out []*scene.Node
	for _, p := range snap.AllParts() {
		if strings.HasPrefix(p.ID, prefix) {
			out = append(out, p)
		}
	}
	return out
}
