package canvas

import (
	"image"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/pkg/math"
)

// LineWidth is the stroke width of lines in pixels.
const LineWidth = 1

// Raster draws onto an RGBA image with an anti-aliasing rasterizer.
type Raster struct {
	img *image.RGBA
	ras vector.Rasterizer
	// scratch buffers for clipping
	poly, tmp []math.Vec2
}

// NewRaster creates a transparent w x h canvas.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image returns the backing image. Row 0 is the top of the diagram.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

func (r *Raster) Size() image.Point {
	return r.img.Rect.Size()
}

func (r *Raster) Clear() {
	clear(r.img.Pix)
}

func (r *Raster) Line(a, b math.Vec2, c palette.Color) {
	d := b.Sub(a)
	var n math.Vec2
	if d.Length() < 1e-6 {
		// a dot still shows up as one pixel
		n = math.Vec2{Y: LineWidth / 2.0}
		a = a.Sub(math.Vec2{X: LineWidth / 2.0})
		b = b.Add(math.Vec2{X: LineWidth / 2.0})
	} else {
		n = d.Normalize().Perp().Scale(LineWidth / 2.0)
	}
	r.fill(c, a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

func (r *Raster) Triangle(a, b, c math.Vec2, col palette.Color) {
	r.fill(col, a, b, c)
}

func (r *Raster) Quad(a, b, c, d math.Vec2, col palette.Color) {
	r.fill(col, a, b, c, d)
}

// fill rasterizes a convex polygon. The rasterizer only covers the
// polygon's clipped bounding box.
func (r *Raster) fill(col palette.Color, pts ...math.Vec2) {
	if !col.Visible() {
		return
	}
	size := r.Size()
	h := float32(size.Y)
	r.poly = r.poly[:0]
	for _, p := range pts {
		if !finite(p.X) || !finite(p.Y) {
			return
		}
		r.poly = append(r.poly, math.Vec2{X: p.X, Y: h - p.Y})
	}
	r.poly, r.tmp = clipPolygon(r.poly, r.tmp, float32(size.X), h)
	if len(r.poly) < 3 {
		return
	}

	lo, hi := r.poly[0], r.poly[0]
	for _, p := range r.poly[1:] {
		lo = math.Vec2{X: math32.Min(lo.X, p.X), Y: math32.Min(lo.Y, p.Y)}
		hi = math.Vec2{X: math32.Max(hi.X, p.X), Y: math32.Max(hi.Y, p.Y)}
	}
	bb := image.Rect(
		int(math32.Floor(lo.X)), int(math32.Floor(lo.Y)),
		int(math32.Ceil(hi.X)), int(math32.Ceil(hi.Y)),
	).Intersect(r.img.Rect)
	if bb.Empty() {
		return
	}

	ox, oy := float32(bb.Min.X), float32(bb.Min.Y)
	r.ras.Reset(bb.Dx(), bb.Dy())
	r.ras.DrawOp = draw.Over
	r.ras.MoveTo(r.poly[0].X-ox, r.poly[0].Y-oy)
	for _, p := range r.poly[1:] {
		r.ras.LineTo(p.X-ox, p.Y-oy)
	}
	r.ras.ClosePath()
	r.ras.Draw(r.img, bb, image.NewUniform(col.NRGBA()), image.Point{})
}

// clipPolygon clips a convex polygon to [0,w]x[0,h], one edge at a time.
func clipPolygon(poly, tmp []math.Vec2, w, h float32) ([]math.Vec2, []math.Vec2) {
	edges := [4]struct {
		inside func(p math.Vec2) bool
		cross  func(a, b math.Vec2) math.Vec2
	}{
		{func(p math.Vec2) bool { return p.X >= 0 }, func(a, b math.Vec2) math.Vec2 { return atX(a, b, 0) }},
		{func(p math.Vec2) bool { return p.X <= w }, func(a, b math.Vec2) math.Vec2 { return atX(a, b, w) }},
		{func(p math.Vec2) bool { return p.Y >= 0 }, func(a, b math.Vec2) math.Vec2 { return atY(a, b, 0) }},
		{func(p math.Vec2) bool { return p.Y <= h }, func(a, b math.Vec2) math.Vec2 { return atY(a, b, h) }},
	}
	for _, e := range edges {
		if len(poly) == 0 {
			break
		}
		tmp = tmp[:0]
		prev := poly[len(poly)-1]
		for _, cur := range poly {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					tmp = append(tmp, e.cross(prev, cur))
				}
				tmp = append(tmp, cur)
			case e.inside(prev):
				tmp = append(tmp, e.cross(prev, cur))
			}
			prev = cur
		}
		poly, tmp = tmp, poly
	}
	return poly, tmp
}

func atX(a, b math.Vec2, x float32) math.Vec2 {
	t := (x - a.X) / (b.X - a.X)
	return math.Vec2{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func atY(a, b math.Vec2, y float32) math.Vec2 {
	t := (y - a.Y) / (b.Y - a.Y)
	return math.Vec2{X: a.X + t*(b.X-a.X), Y: y}
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
