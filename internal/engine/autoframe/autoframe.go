// Package autoframe derives the screen offset and scale that keep the
// projected assembly centered and sized on the canvas.
package autoframe

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/settings"
	"github.com/Faultbox/partradar/pkg/math"
)

// Scale limits.
const (
	MinScale = 1
	MaxScale = 1000
)

// Transform is the screen offset (pixels) and scale applied to every
// primitive at draw time.
type Transform struct {
	OffsetX int     `yaml:"offset_x"`
	OffsetY int     `yaml:"offset_y"`
	Scale   float32 `yaml:"scale"`
}

// Matrix returns the screen matrix: scale x and y, then offset.
func (t Transform) Matrix() math.Mat4 {
	return math.Translate(float32(t.OffsetX), float32(t.OffsetY), 0).Mul(math.Scale(t.Scale, t.Scale, 1))
}

// Params are the inputs of one Centerise call besides the box.
type Params struct {
	Width, Height int
	// Margin is the fraction of the canvas the box may fill.
	Margin        float32
	CenterOnRootH bool
	CenterOnRootV bool
	Rescale       settings.Rescale
}

// ClampScale limits s to [MinScale, MaxScale].
func ClampScale(s float32) float32 {
	return math32.Max(MinScale, math32.Min(s, MaxScale))
}

// Centerise fits box onto the canvas starting from cur. An empty box
// leaves cur untouched.
//
// Rescaling zooms out whenever the box no longer fits, but zooms in only
// once the current scale has fallen below the mode's threshold of the
// ideal one. The ideal scale is truncated to a whole number.
func Centerise(box bounds.Box, p Params, cur Transform) Transform {
	if box.IsEmpty() {
		return cur
	}
	lo, hi := box.Min, box.Max
	if p.CenterOnRootH {
		if math32.Abs(hi.X) < math32.Abs(lo.X) {
			hi.X = -lo.X
		} else {
			lo.X = -hi.X
		}
	}
	if p.CenterOnRootV {
		if math32.Abs(hi.Y) < math32.Abs(lo.Y) {
			hi.Y = -lo.Y
		} else {
			lo.Y = -hi.Y
		}
	}
	xDiff := hi.X - lo.X
	yDiff := hi.Y - lo.Y

	out := cur
	if p.Rescale != settings.RescaleOff {
		if s, ok := rescale(xDiff, yDiff, p, cur.Scale); ok {
			out.Scale = s
		}
	}
	out.OffsetX = p.Width/2 - int((lo.X+xDiff/2)*out.Scale)
	out.OffsetY = p.Height/2 - int((lo.Y+yDiff/2)*out.Scale)
	return out
}

func rescale(xDiff, yDiff float32, p Params, current float32) (float32, bool) {
	ideal := math32.Min(
		idealScale(float32(p.Width)*p.Margin, xDiff),
		idealScale(float32(p.Height)*p.Margin, yDiff),
	)
	if math32.IsNaN(ideal) {
		return 0, false
	}
	// keeps the truncation below well defined for degenerate boxes
	ideal = math32.Max(-MaxScale, math32.Min(ideal, MaxScale))
	newScale := math32.Trunc(ideal)

	diffFact := current / newScale
	if diffFact < p.Rescale.Threshold() || diffFact > 1 {
		return ClampScale(newScale), true
	}
	return 0, false
}

func idealScale(span, diff float32) float32 {
	if diff <= 0 {
		return math32.Inf(1)
	}
	return span / diff
}
