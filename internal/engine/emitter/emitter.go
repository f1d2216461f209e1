// Package emitter turns a walked frame into canvas primitives. The screen
// offset and scale are applied here, at draw time, so a transform computed
// after the walk still affects the same redraw.
package emitter

import (
	"github.com/Faultbox/partradar/internal/engine/autoframe"
	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/canvas"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/walker"
	"github.com/Faultbox/partradar/pkg/math"
)

const (
	// overlayZ is the depth overlays are drawn at, above flattened meshes.
	overlayZ = 0.1
	// iconPixels is half the on-screen size of an icon.
	iconPixels = 6
)

// Emitter draws frames onto a canvas.
type Emitter struct {
	c      canvas.Canvas
	screen math.Mat4
	scale  float32
}

// Emit draws f in the fixed pass order: part geometry, engine overlays,
// part outlines, center of mass, ground, axes. Outlines are skipped
// entirely when boxMode is hidden.
func Emit(c canvas.Canvas, f *walker.Frame, screen autoframe.Transform, boxMode palette.Mode) {
	e := &Emitter{c: c, screen: screen.Matrix(), scale: screen.Scale}
	e.geometry(f.Geometry)
	e.engines(f.Cones, f.EngineIcons)
	if boxMode != palette.ModeHide {
		e.rects(f.Rects)
	}
	if f.CoM != nil {
		e.icon(*f.CoM)
	}
	if f.Ground != nil {
		e.ground(f.Ground)
	}
	if f.Axes != nil {
		e.axes(f.Axes)
	}
}

// geometry draws each mesh as a full fill pass followed by a full wire pass.
func (e *Emitter) geometry(gs []walker.Geometry) {
	var pts []math.Vec2
	for _, g := range gs {
		m := e.screen.Mul(g.Transform)
		pts = pts[:0]
		for i := 0; i < g.Mesh.TriangleCount(); i++ {
			a, b, c := g.Mesh.Triangle(i)
			pts = append(pts, m.MulPointAffine(a).XY(), m.MulPointAffine(b).XY(), m.MulPointAffine(c).XY())
		}
		if g.Fill.Visible() {
			for i := 0; i+2 < len(pts); i += 3 {
				e.c.Triangle(pts[i], pts[i+1], pts[i+2], g.Fill)
			}
		}
		if g.Wire.Visible() {
			for i := 0; i+2 < len(pts); i += 3 {
				e.c.Line(pts[i], pts[i+1], g.Wire)
				e.c.Line(pts[i+1], pts[i+2], g.Wire)
				e.c.Line(pts[i+2], pts[i], g.Wire)
			}
		}
	}
}

func (e *Emitter) engines(cones []walker.Cone, icons []walker.Icon) {
	for _, c := range cones {
		ring := c.Ring
		for i := range ring {
			next := ring[(i+1)%len(ring)]
			e.line(ring[i], next, c.Color)
		}
		for _, p := range ring {
			e.line(p, c.Tip, c.Color)
		}
		for _, p := range ring {
			e.line(p, c.Nozzle, c.Color)
		}
	}
	for _, ic := range icons {
		e.icon(ic)
	}
}

func (e *Emitter) rects(rs []walker.PartRect) {
	for _, r := range rs {
		// invisible outlines must not cover visible ones
		if !r.Color.Visible() {
			continue
		}
		e.rect(r.Rect, r.Color)
	}
}

func (e *Emitter) ground(g *walker.Ground) {
	e.icon(walker.Icon{Kind: walker.IconTriangleDown, Center: g.Center, Color: palette.Green})
	c := g.Corners
	e.line(c[0], c[1], g.Color)
	e.line(c[1], c[2], g.Color)
	e.line(c[2], c[3], g.Color)
	e.line(c[3], c[0], g.Color)
	e.line(c[2], c[0], g.Color)
	e.line(c[3], c[1], g.Color)
}

func (e *Emitter) axes(a *walker.Axes) {
	e.line(a.Left, a.Right, palette.Red)
	e.line(a.Up, a.Down, palette.Blue)
	e.line(a.Front, a.Back, palette.Green)
}

// line draws a segment between two screen-space points, flattened to the
// overlay depth.
func (e *Emitter) line(a, b math.Vec3, col palette.Color) {
	e.seg(a.X, a.Y, b.X, b.Y, col)
}

func (e *Emitter) seg(x1, y1, x2, y2 float32, col palette.Color) {
	p1 := e.screen.MulPointAffine(math.Vec3{X: x1, Y: y1, Z: overlayZ}).XY()
	p2 := e.screen.MulPointAffine(math.Vec3{X: x2, Y: y2, Z: overlayZ}).XY()
	e.c.Line(p1, p2, col)
}

func (e *Emitter) rect(r bounds.Rect, col palette.Color) {
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H
	e.seg(x0, y0, x1, y0, col)
	e.seg(x1, y0, x1, y1, col)
	e.seg(x1, y1, x0, y1, col)
	e.seg(x0, y1, x0, y0, col)
}
