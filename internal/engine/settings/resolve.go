package settings

import (
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/scene"
)

// Source says where a toggle's value comes from.
type Source int

const (
	// FromBase reuses the base configuration value.
	FromBase Source = iota
	// FromStatic uses the override's own value.
	FromStatic
	// FromFunc calls the override's callback every redraw.
	FromFunc
)

// FrameContext is handed to override callbacks.
type FrameContext struct {
	Frame    uint64
	Elapsed  float64 // seconds since the host clock started
	Snapshot *scene.Snapshot
}

// Resolved is the per-toggle override. The zero value defers to the base.
type Resolved[T any] struct {
	source Source
	value  T
	fn     func(FrameContext) T
}

// AsBase defers to the base configuration.
func AsBase[T any]() Resolved[T] {
	return Resolved[T]{}
}

// Static pins the toggle to v.
func Static[T any](v T) Resolved[T] {
	return Resolved[T]{source: FromStatic, value: v}
}

// Computed asks fn for the value on every redraw. A nil fn defers to the base.
func Computed[T any](fn func(FrameContext) T) Resolved[T] {
	if fn == nil {
		return Resolved[T]{}
	}
	return Resolved[T]{source: FromFunc, fn: fn}
}

// Source reports how the toggle resolves.
func (r Resolved[T]) Source() Source {
	return r.source
}

// Resolve returns the effective value. Callback results are trusted as-is.
func (r Resolved[T]) Resolve(base T, ctx FrameContext) T {
	switch r.source {
	case FromStatic:
		return r.value
	case FromFunc:
		return r.fn(ctx)
	default:
		return base
	}
}

// Overrides replaces individual toggles of the base configuration.
type Overrides struct {
	SpinSpeed Resolved[float32] // degrees per second
	SpinAxis  Resolved[Axis]
	Plane     Resolved[Plane]

	ShowEngines Resolved[bool]
	ShowCoM     Resolved[bool]
	Ground      Resolved[GroundMode]
	ShowAxes    Resolved[bool]

	FillMode Resolved[palette.Mode]
	WireMode Resolved[palette.Mode]
	BoxMode  Resolved[palette.Mode]
	FillDull Resolved[bool]
	WireDull Resolved[bool]
	BoxDull  Resolved[bool]

	AutoCenter    Resolved[bool]
	CenterOnRootH Resolved[bool]
	CenterOnRootV Resolved[bool]
	Rescale       Resolved[Rescale]
	Margin        Resolved[float32] // canvas fraction

	// Focus restricts which parts feed the auto-framing box. Empty means all.
	Focus []*scene.Node
}

// StaticFrom pins every toggle to the values of b.
func StaticFrom(b Base) *Overrides {
	return &Overrides{
		SpinSpeed:     Static(b.SpinSpeed.DegreesPerSecond()),
		SpinAxis:      Static(b.SpinAxis),
		Plane:         Static(b.Plane),
		ShowEngines:   Static(b.ShowEngines),
		ShowCoM:       Static(b.ShowCoM),
		Ground:        Static(b.Ground),
		ShowAxes:      Static(b.ShowAxes),
		FillMode:      Static(b.FillMode),
		WireMode:      Static(b.WireMode),
		BoxMode:       Static(b.BoxMode),
		FillDull:      Static(b.FillDull),
		WireDull:      Static(b.WireDull),
		BoxDull:       Static(b.BoxDull),
		AutoCenter:    Static(b.AutoCenter),
		CenterOnRootH: Static(b.CenterOnRootH),
		CenterOnRootV: Static(b.CenterOnRootV),
		Rescale:       Static(b.Rescale),
		Margin:        Static(b.Margin.Multiplier()),
	}
}

// Effective is the flattened result for one redraw.
type Effective struct {
	SpinSpeed float32
	SpinAxis  Axis
	Plane     Plane

	ShowEngines bool
	ShowCoM     bool
	Ground      GroundMode
	ShowAxes    bool

	FillMode palette.Mode
	WireMode palette.Mode
	BoxMode  palette.Mode
	FillDull bool
	WireDull bool
	BoxDull  bool

	AutoCenter    bool
	CenterOnRootH bool
	CenterOnRootV bool
	Rescale       Rescale
	Margin        float32

	Latency           Latency
	ScreenVisible     bool
	GroundMaxAltitude float64

	focus map[*scene.Node]struct{}
}

// Resolve flattens base and ov for the current frame. A nil ov yields the
// base values.
func Resolve(base Base, ov *Overrides, ctx FrameContext) Effective {
	if ov == nil {
		ov = &Overrides{}
	}
	e := Effective{
		SpinSpeed: ov.SpinSpeed.Resolve(base.SpinSpeed.DegreesPerSecond(), ctx),
		SpinAxis:  ov.SpinAxis.Resolve(base.SpinAxis, ctx),
		Plane:     ov.Plane.Resolve(base.Plane, ctx),

		ShowEngines: ov.ShowEngines.Resolve(base.ShowEngines, ctx),
		ShowCoM:     ov.ShowCoM.Resolve(base.ShowCoM, ctx),
		Ground:      ov.Ground.Resolve(base.Ground, ctx),
		ShowAxes:    ov.ShowAxes.Resolve(base.ShowAxes, ctx),

		FillMode: ov.FillMode.Resolve(base.FillMode, ctx),
		WireMode: ov.WireMode.Resolve(base.WireMode, ctx),
		BoxMode:  ov.BoxMode.Resolve(base.BoxMode, ctx),
		FillDull: ov.FillDull.Resolve(base.FillDull, ctx),
		WireDull: ov.WireDull.Resolve(base.WireDull, ctx),
		BoxDull:  ov.BoxDull.Resolve(base.BoxDull, ctx),

		AutoCenter:    ov.AutoCenter.Resolve(base.AutoCenter, ctx),
		CenterOnRootH: ov.CenterOnRootH.Resolve(base.CenterOnRootH, ctx),
		CenterOnRootV: ov.CenterOnRootV.Resolve(base.CenterOnRootV, ctx),
		Rescale:       ov.Rescale.Resolve(base.Rescale, ctx),
		Margin:        ov.Margin.Resolve(base.Margin.Multiplier(), ctx),

		Latency:           base.Latency,
		ScreenVisible:     base.ScreenVisible,
		GroundMaxAltitude: base.GroundMaxAltitude,
	}
	if len(ov.Focus) > 0 {
		e.focus = make(map[*scene.Node]struct{}, len(ov.Focus))
		for _, n := range ov.Focus {
			e.focus[n] = struct{}{}
		}
	}
	return e
}

// InFocus reports whether n contributes to the auto-framing box.
func (e *Effective) InFocus(n *scene.Node) bool {
	if len(e.focus) == 0 {
		return true
	}
	_, ok := e.focus[n]
	return ok
}
