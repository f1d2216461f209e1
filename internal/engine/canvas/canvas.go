// Package canvas is the 2D surface the radar draws on. Coordinates are in
// pixels with the origin at the bottom left and y pointing up.
package canvas

import (
	"image"

	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/pkg/math"
)

// Canvas receives the radar's primitives.
type Canvas interface {
	Size() image.Point
	// Clear resets every pixel to transparent.
	Clear()
	Line(a, b math.Vec2, c palette.Color)
	Triangle(a, b, c math.Vec2, col palette.Color)
	// Quad fills the polygon a-b-c-d.
	Quad(a, b, c, d math.Vec2, col palette.Color)
}
