package emitter

import (
	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/walker"
	"github.com/Faultbox/partradar/pkg/math"
)

// icon draws a black backed square with a glyph. The square is iconPixels
// from center to edge whatever the current scale.
func (e *Emitter) icon(ic walker.Icon) {
	div := float32(iconPixels)
	if e.scale > 0 {
		div /= e.scale
	}
	r := bounds.Centered(ic.Center.X, ic.Center.Y, div)
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H

	pt := func(x, y float32) math.Vec2 {
		return e.screen.MulPointAffine(math.Vec3{X: x, Y: y, Z: overlayZ}).XY()
	}
	e.c.Quad(pt(x0, y0), pt(x0, y1), pt(x1, y1), pt(x1, y0), palette.Black)

	xm, ym := (x0+x1)/2, (y0+y1)/2
	xq, yq := (x0+xm)/2, (y0+ym)/2
	x3, y3 := (xm+x1)/2, (ym+y1)/2
	col := ic.Color

	frame := func() {
		e.rect(r, col)
	}
	diamond := func() {
		e.seg(xm, y0, x1, ym, col)
		e.seg(x1, ym, xm, y1, col)
		e.seg(xm, y1, x0, ym, col)
		e.seg(x0, ym, xm, y0, col)
	}

	switch ic.Kind {
	case walker.IconSquare:
		frame()
	case walker.IconDiamond:
		diamond()
	case walker.IconSquareDiamond:
		frame()
		diamond()
	case walker.IconTriangleUp:
		e.seg(x0, y0, x1, y0, col)
		e.seg(x1, y0, xm, y1, col)
		e.seg(xm, y1, x0, y0, col)
	case walker.IconTriangleDown:
		e.seg(x0, y1, x1, y1, col)
		e.seg(x1, y1, xm, y0, col)
		e.seg(xm, y0, x0, y1, col)
	case walker.IconEngineReady:
		frame()
		e.seg(x0, ym, xm, y0, col)
		e.seg(xm, y0, x1, y1, col)
	case walker.IconEngineNoPower:
		frame()
		e.seg(xm, y0, x3, ym, col)
		e.seg(xq, ym, x3, ym, col)
		e.seg(xq, ym, xm, y1, col)
	case walker.IconEngineNoFuel:
		frame()
		e.seg(x0, y0, x1, y1, col)
		e.seg(x0, y1, x1, y0, col)
	case walker.IconEngineNoAir:
		frame()
		e.seg(xq, ym, x3, ym, col)
		e.seg(xm, yq, xm, y3, col)
		e.seg(xq, yq, x3, y3, col)
		e.seg(xq, y3, x3, yq, col)
	case walker.IconEngineActive:
		frame()
		e.seg(xm, y0, xq, y3, col)
		e.seg(xm, y0, x3, y3, col)
		e.seg(xm, y1, xq, y3, col)
		e.seg(xm, y1, x3, y3, col)
	case walker.IconEngineInactive:
		frame()
		e.seg(x0, y0, x1, y1, col)
	}
}
