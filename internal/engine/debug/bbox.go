package debug

import (
	"github.com/Faultbox/partradar/internal/engine/autoframe"
	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/canvas"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/walker"
	"github.com/Faultbox/partradar/pkg/math"
)

// DefaultBBoxPadding is the default padding, in world units, around the
// framed box.
const DefaultBBoxPadding = 0.5

// BBoxCorners returns the four screen-plane corners of box grown by padding,
// counter-clockwise from the bottom left. An empty box has no corners.
func BBoxCorners(box bounds.Box, padding float32) []math.Vec3 {
	if box.IsEmpty() {
		return nil
	}
	r := box.XYRect()
	x0, y0 := r.X-padding, r.Y-padding
	x1, y1 := r.X+r.W+padding, r.Y+r.H+padding
	return []math.Vec3{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}

// DrawBBox outlines the box the autoframer sees.
func DrawBBox(c canvas.Canvas, box bounds.Box, screen autoframe.Transform, col palette.Color, padding float32) {
	corners := BBoxCorners(box, padding)
	if corners == nil {
		return
	}
	m := screen.Matrix()
	for i := range corners {
		a := m.MulPointAffine(corners[i]).XY()
		b := m.MulPointAffine(corners[(i+1)%len(corners)]).XY()
		c.Line(a, b, col)
	}
}

// BBoxOverlay returns a viewer overlay that outlines each frame's box.
func BBoxOverlay(col palette.Color) func(canvas.Canvas, *walker.Frame, autoframe.Transform) {
	return func(c canvas.Canvas, f *walker.Frame, screen autoframe.Transform) {
		DrawBBox(c, f.Box, screen, col, DefaultBBoxPadding)
	}
}
