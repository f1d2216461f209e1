// Package bounds accumulates screen-space axis aligned boxes.
package bounds

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/partradar/pkg/math"
)

// Box is a running min/max pair. A fresh box is empty, with min at +Inf and
// max at -Inf, so the first fold sets both corners.
type Box struct {
	Min, Max math.Vec3
}

// Empty returns a box with no contributions.
func Empty() Box {
	inf := math32.Inf(1)
	return Box{
		Min: math.Vec3{X: inf, Y: inf, Z: inf},
		Max: math.Vec3{X: -inf, Y: -inf, Z: -inf},
	}
}

// Reset empties the box in place.
func (b *Box) Reset() {
	*b = Empty()
}

// IsEmpty reports whether nothing has been folded in yet.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Fold widens the box by a local box carried through m. The half extents
// go through the linear part of m and their absolute values are summed per
// axis, so a rotated box is never underestimated.
func (b *Box) Fold(local math.AABB, m math.Mat4) {
	v1 := m.Column(0).Scale(local.Extents.X)
	v2 := m.Column(1).Scale(local.Extents.Y)
	v3 := m.Column(2).Scale(local.Extents.Z)

	center := m.MulPoint(local.Center)
	ext := v1.Abs().Add(v2.Abs()).Add(v3.Abs())

	b.Min = b.Min.Min(center.Sub(ext))
	b.Max = b.Max.Max(center.Add(ext))
}

// FoldPoint widens the box to include p.
func (b *Box) FoldPoint(p math.Vec3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Merge widens the box by another. Empty boxes change nothing.
func (b *Box) Merge(o Box) {
	if o.IsEmpty() {
		return
	}
	b.Min = b.Min.Min(o.Min)
	b.Max = b.Max.Max(o.Max)
}

// Size returns max minus min.
func (b Box) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// MaxExtent returns the largest side length, or 0 for an empty box.
func (b Box) MaxExtent() float32 {
	if b.IsEmpty() {
		return 0
	}
	s := b.Size()
	return math32.Max(s.X, math32.Max(s.Y, s.Z))
}

// Contains reports whether p lies inside the box, allowing eps slack.
func (b Box) Contains(p math.Vec3, eps float32) bool {
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps &&
		p.Z >= b.Min.Z-eps && p.Z <= b.Max.Z+eps
}

// Rect is a 2D rectangle in screen space.
type Rect struct {
	X, Y, W, H float32
}

// XYRect returns the box's projection onto the screen plane.
func (b Box) XYRect() Rect {
	return Rect{X: b.Min.X, Y: b.Min.Y, W: b.Max.X - b.Min.X, H: b.Max.Y - b.Min.Y}
}

// Centered returns a size x size rectangle around (x, y).
func Centered(x, y, half float32) Rect {
	return Rect{X: x - half, Y: y - half, W: 2 * half, H: 2 * half}
}
