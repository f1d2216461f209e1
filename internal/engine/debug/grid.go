package debug

import (
	gomath "math"

	"github.com/Faultbox/partradar/internal/engine/autoframe"
	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/canvas"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/walker"
	"github.com/Faultbox/partradar/pkg/math"
)

// MaxGridLines caps the lines per direction so a tiny spacing cannot stall a redraw.
const MaxGridLines = 256

// GridSegment is one grid line in screen-plane world units.
type GridSegment struct {
	A, B math.Vec3
}

// GridLines returns a reference grid with the given spacing covering box,
// aligned to multiples of spacing. Vertical lines come first.
func GridLines(box bounds.Box, spacing float32) []GridSegment {
	if box.IsEmpty() || !(spacing > 0) {
		return nil
	}

	minX := snapDown(box.Min.X, spacing)
	minY := snapDown(box.Min.Y, spacing)
	maxX := snapUp(box.Max.X, spacing)
	maxY := snapUp(box.Max.Y, spacing)

	nx := int(gomath.Round(float64((maxX - minX) / spacing)))
	ny := int(gomath.Round(float64((maxY - minY) / spacing)))

	// Clamp bounds
	if nx > MaxGridLines {
		nx = MaxGridLines
	}
	if ny > MaxGridLines {
		ny = MaxGridLines
	}

	segments := make([]GridSegment, 0, nx+ny+2)

	// Vertical lines
	for i := 0; i <= nx; i++ {
		x := minX + float32(i)*spacing
		segments = append(segments, GridSegment{
			A: math.Vec3{X: x, Y: minY},
			B: math.Vec3{X: x, Y: maxY},
		})
	}

	// Horizontal lines
	for i := 0; i <= ny; i++ {
		y := minY + float32(i)*spacing
		segments = append(segments, GridSegment{
			A: math.Vec3{X: minX, Y: y},
			B: math.Vec3{X: maxX, Y: y},
		})
	}

	return segments
}

// DrawGrid draws GridLines through the screen transform.
func DrawGrid(c canvas.Canvas, box bounds.Box, screen autoframe.Transform, spacing float32, col palette.Color) {
	m := screen.Matrix()
	for _, s := range GridLines(box, spacing) {
		c.Line(m.MulPointAffine(s.A).XY(), m.MulPointAffine(s.B).XY(), col)
	}
}

// GridOverlay returns a viewer overlay drawing a dim reference grid every
// spacing meters over the framed box.
func GridOverlay(spacing float32) func(canvas.Canvas, *walker.Frame, autoframe.Transform) {
	col := palette.DarkGray
	return func(c canvas.Canvas, f *walker.Frame, screen autoframe.Transform) {
		DrawGrid(c, f.Box, screen, spacing, col)
	}
}

func snapDown(v, step float32) float32 {
	return float32(gomath.Floor(float64(v/step))) * step
}

func snapUp(v, step float32) float32 {
	return float32(gomath.Ceil(float64(v/step))) * step
}
