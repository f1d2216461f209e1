package canvas

import (
	"image"

	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/pkg/math"
)

// OpKind is the type of a recorded primitive.
type OpKind int

const (
	OpClear OpKind = iota
	OpLine
	OpTriangle
	OpQuad
)

// Op is one recorded primitive.
type Op struct {
	Kind   OpKind
	Points []math.Vec2
	Color  palette.Color
}

// Recorder is a Canvas that only remembers what was drawn.
type Recorder struct {
	W, H int
	Ops  []Op
}

func (r *Recorder) Size() image.Point { return image.Pt(r.W, r.H) }

func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) Line(a, b math.Vec2, c palette.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []math.Vec2{a, b}, Color: c})
}

func (r *Recorder) Triangle(a, b, c math.Vec2, col palette.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpTriangle, Points: []math.Vec2{a, b, c}, Color: col})
}

func (r *Recorder) Quad(a, b, c, d math.Vec2, col palette.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpQuad, Points: []math.Vec2{a, b, c, d}, Color: col})
}

// Count returns how many ops of kind k were recorded.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Colors returns the colors of ops of kind k, in draw order.
func (r *Recorder) Colors(k OpKind) []palette.Color {
	var out []palette.Color
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op.Color)
		}
	}
	return out
}
