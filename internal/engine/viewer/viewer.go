// Package viewer is the radar engine's entry point. The host calls DrawCall
// once per rendered frame; the viewer decides whether to redraw, walks the
// assembly, frames it, draws it and copies the result onto the host surface.
package viewer

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/partradar/internal/engine/autoframe"
	"github.com/Faultbox/partradar/internal/engine/canvas"
	"github.com/Faultbox/partradar/internal/engine/emitter"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/projector"
	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/internal/engine/scheduler"
	"github.com/Faultbox/partradar/internal/engine/settings"
	"github.com/Faultbox/partradar/internal/engine/walker"
	"github.com/Faultbox/partradar/internal/logger"
	"github.com/Faultbox/partradar/pkg/math"
)

// Viewer renders one assembly. It is not safe for concurrent use; the host
// drives it from its render loop.
type Viewer struct {
	host      scene.Host
	base      settings.Base
	overrides *settings.Overrides

	screen autoframe.Transform
	sched  scheduler.Scheduler
	policy *palette.Policy
	walker *walker.Walker
	frame  *walker.Frame
	target canvas.Target
	log    *zap.Logger

	overlays []Overlay

	redraws   uint64
	lastFault error
}

// Overlay draws on top of a finished redraw, before the frame's queues are
// dropped.
type Overlay func(c canvas.Canvas, f *walker.Frame, screen autoframe.Transform)

// Option configures a Viewer.
type Option func(*Viewer)

// WithMeshCache lets the host keep renderer lists between frames.
func WithMeshCache(c scene.MeshCacheProvider) Option {
	return func(v *Viewer) { v.walker = walker.New(c, v.policy) }
}

// WithOverrides installs an override set at construction.
func WithOverrides(o *settings.Overrides) Option {
	return func(v *Viewer) { v.overrides = o }
}

// WithOverlay appends a debug overlay.
func WithOverlay(o Overlay) Option {
	return func(v *Viewer) { v.overlays = append(v.overlays, o) }
}

// WithLogger replaces the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *Viewer) { v.log = l }
}

// New creates a viewer reading from host.
func New(host scene.Host, base settings.Base, opts ...Option) *Viewer {
	policy := &palette.Policy{}
	v := &Viewer{
		host:   host,
		base:   base,
		screen: autoframe.Transform{OffsetX: base.OffsetX, OffsetY: base.OffsetY, Scale: autoframe.ClampScale(base.Scale)},
		policy: policy,
		walker: walker.New(nil, policy),
		frame:  walker.NewFrame(),
		log:    logger.Named(logger.Viewer),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// DrawCall renders frameNo if the latency tier allows and always copies the
// internal image onto dst. elapsed is the host clock in seconds and drives
// the spin. It reports whether a redraw happened.
func (v *Viewer) DrawCall(dst draw.Image, frameNo uint64, elapsed float64) bool {
	if dst == nil {
		return false
	}
	size := dst.Bounds().Size()
	if v.target.Ensure(size) {
		v.log.Debug("render target allocated", zap.Int("width", size.X), zap.Int("height", size.Y))
		v.sched.Force()
	}
	redrawn := v.sched.Next(frameNo, v.base.Latency)
	if redrawn {
		v.restartDraw(frameNo, elapsed)
	}
	v.target.BlitTo(dst)
	return redrawn
}

// restartDraw runs one full redraw. Faults never escape: the frame is
// logged, its queues dropped and the image left blank.
func (v *Viewer) restartDraw(frameNo uint64, elapsed float64) {
	v.redraws++
	c := v.target.Raster()
	err := v.draw(c, frameNo, elapsed)
	v.frame.Clear()
	if err != nil {
		v.lastFault = err
		c.Clear()
		v.log.Warn("redraw failed", logger.Frame(frameNo), zap.Error(err))
		return
	}
	v.lastFault = nil
}

func (v *Viewer) draw(c *canvas.Raster, frameNo uint64, elapsed float64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.WithStack(fmt.Errorf("panic during redraw: %v", r))
		}
	}()

	var snap *scene.Snapshot
	if v.host != nil {
		snap = v.host.Snapshot()
	}
	ctx := settings.FrameContext{Frame: frameNo, Elapsed: elapsed, Snapshot: snap}
	eff := settings.Resolve(v.base, v.overrides, ctx)
	if !eff.ScreenVisible {
		return nil
	}
	c.Clear()
	if snap == nil {
		return nil
	}

	root := math.Identity()
	if snap.Root != nil {
		root = snap.Root.World
	}
	v.frame.Begin(projector.New(eff.Plane, eff.SpinAxis, eff.SpinSpeed, elapsed, root, snap.Vessel))
	v.policy.BeginFrame(snap.TotalStages)
	if err := v.walker.Walk(v.frame, snap, &eff, frameNo); err != nil {
		return err
	}
	if eff.AutoCenter {
		size := c.Size()
		v.screen = autoframe.Centerise(v.frame.Box, autoframe.Params{
			Width:         size.X,
			Height:        size.Y,
			Margin:        eff.Margin,
			CenterOnRootH: eff.CenterOnRootH,
			CenterOnRootV: eff.CenterOnRootV,
			Rescale:       eff.Rescale,
		}, v.screen)
	}
	emitter.Emit(c, v.frame, v.screen, eff.BoxMode)
	for _, o := range v.overlays {
		o(c, v.frame, v.screen)
	}
	v.policy.EndFrame()
	return nil
}

// NilOffset puts the screen origin at the center of a w x h canvas.
func (v *Viewer) NilOffset(w, h int) {
	v.screen.OffsetX = w / 2
	v.screen.OffsetY = h / 2
}

// ManualOffset shifts the screen origin by dx, dy pixels.
func (v *Viewer) ManualOffset(dx, dy int) {
	v.screen.OffsetX += dx
	v.screen.OffsetY += dy
}

// SetScale sets the zoom, clamped to the allowed range.
func (v *Viewer) SetScale(s float32) {
	v.screen.Scale = autoframe.ClampScale(s)
}

// SetOverlays replaces the debug overlays.
func (v *Viewer) SetOverlays(o ...Overlay) {
	v.overlays = o
}

// ForceRedraw makes the next DrawCall redraw regardless of latency.
func (v *Viewer) ForceRedraw() {
	v.sched.Force()
}

// SetOverrides replaces the override set; nil restores the base settings.
func (v *Viewer) SetOverrides(o *settings.Overrides) {
	v.overrides = o
}

// SetBase replaces the base settings. The screen transform is kept.
func (v *Viewer) SetBase(b settings.Base) {
	v.base = b
}

// Base returns the current base settings.
func (v *Viewer) Base() settings.Base {
	return v.base
}

// ScreenTransform returns the current offset and scale.
func (v *Viewer) ScreenTransform() autoframe.Transform {
	return v.screen
}

// Image returns the internal render target, nil before the first DrawCall.
func (v *Viewer) Image() *image.RGBA {
	if r := v.target.Raster(); r != nil {
		return r.Image()
	}
	return nil
}

// Redraws returns how many full redraws have run.
func (v *Viewer) Redraws() uint64 {
	return v.redraws
}

// LastFault returns the error of the most recent redraw, nil if it succeeded.
func (v *Viewer) LastFault() error {
	return v.lastFault
}
