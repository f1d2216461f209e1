package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/partradar/internal/engine/autoframe"
	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/canvas"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/internal/engine/walker"
	"github.com/Faultbox/partradar/pkg/math"
)

func triangle() *scene.Mesh {
	return scene.NewMesh([]math.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, []uint32{0, 1, 2})
}

func TestGeometryFillThenWire(t *testing.T) {
	f := walker.NewFrame()
	f.Geometry = append(f.Geometry, walker.Geometry{
		Mesh: triangle(), Transform: math.Identity(), Fill: palette.Blue, Wire: palette.Red,
	})
	var rec canvas.Recorder
	Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeHide)

	require.Len(t, rec.Ops, 4)
	assert.Equal(t, canvas.OpTriangle, rec.Ops[0].Kind)
	assert.Equal(t, []palette.Color{palette.Red, palette.Red, palette.Red}, rec.Colors(canvas.OpLine))
}

func TestGeometryFillPassPrecedesWirePass(t *testing.T) {
	quad := scene.NewMesh(
		[]math.Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		[]uint32{0, 1, 2, 0, 2, 3},
	)
	f := walker.NewFrame()
	f.Geometry = append(f.Geometry, walker.Geometry{
		Mesh: quad, Transform: math.Identity(), Fill: palette.Blue, Wire: palette.Red,
	})
	var rec canvas.Recorder
	Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeHide)

	require.Len(t, rec.Ops, 8)
	for i, op := range rec.Ops {
		if i < 2 {
			assert.Equal(t, canvas.OpTriangle, op.Kind, "op %d", i)
		} else {
			assert.Equal(t, canvas.OpLine, op.Kind, "op %d", i)
		}
	}
}

func TestGeometryHiddenWire(t *testing.T) {
	f := walker.NewFrame()
	f.Geometry = append(f.Geometry, walker.Geometry{
		Mesh: triangle(), Transform: math.Identity(), Fill: palette.Clear, Wire: palette.Green,
	})
	var rec canvas.Recorder
	Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeHide)
	assert.Equal(t, 0, rec.Count(canvas.OpTriangle))
	assert.Equal(t, 3, rec.Count(canvas.OpLine))
}

func TestScreenTransformAppliedAtDrawTime(t *testing.T) {
	f := walker.NewFrame()
	f.Geometry = append(f.Geometry, walker.Geometry{
		Mesh: triangle(), Transform: math.Identity(), Fill: palette.White, Wire: palette.Clear,
	})
	var rec canvas.Recorder
	Emit(&rec, f, autoframe.Transform{OffsetX: 100, OffsetY: 50, Scale: 10}, palette.ModeHide)

	require.Equal(t, 1, rec.Count(canvas.OpTriangle))
	pts := rec.Ops[0].Points
	assert.Equal(t, math.Vec2{X: 100, Y: 50}, pts[0])
	assert.Equal(t, math.Vec2{X: 110, Y: 50}, pts[1])
	assert.Equal(t, math.Vec2{X: 100, Y: 60}, pts[2])
}

func TestRectsSkipTransparentAndHiddenMode(t *testing.T) {
	f := walker.NewFrame()
	f.Rects = []walker.PartRect{
		{Rect: bounds.Rect{W: 1, H: 1}, Color: palette.Clear},
		{Rect: bounds.Rect{W: 2, H: 2}, Color: palette.Yellow},
	}
	var rec canvas.Recorder
	Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeStage)
	assert.Equal(t, 4, rec.Count(canvas.OpLine))
	for _, c := range rec.Colors(canvas.OpLine) {
		assert.Equal(t, palette.Yellow, c)
	}

	rec = canvas.Recorder{}
	Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeHide)
	assert.Empty(t, rec.Ops)
}

func TestPassOrder(t *testing.T) {
	f := walker.NewFrame()
	f.Geometry = []walker.Geometry{{Mesh: triangle(), Transform: math.Identity(), Fill: palette.White, Wire: palette.Clear}}
	f.Cones = []walker.Cone{{Color: palette.Orange}}
	f.Rects = []walker.PartRect{{Rect: bounds.Rect{W: 1, H: 1}, Color: palette.Gray}}
	f.CoM = &walker.Icon{Kind: walker.IconSquare, Color: palette.Magenta}
	f.Ground = &walker.Ground{Color: palette.Cyan}
	f.Axes = &walker.Axes{}

	var rec canvas.Recorder
	Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeState)

	var seq []palette.Color
	for _, op := range rec.Ops {
		if op.Kind == canvas.OpLine || op.Kind == canvas.OpTriangle {
			if len(seq) == 0 || seq[len(seq)-1] != op.Color {
				seq = append(seq, op.Color)
			}
		}
	}
	assert.Equal(t, []palette.Color{
		palette.White,   // geometry
		palette.Orange,  // cone
		palette.Gray,    // outline
		palette.Magenta, // center of mass
		palette.Green,   // ground marker
		palette.Cyan,    // ground footprint
		palette.Red,     // axes
		palette.Blue,
		palette.Green,
	}, seq)
}

func TestIconSizeIsFixedInPixels(t *testing.T) {
	for _, scale := range []float32{1, 4, 25} {
		f := walker.NewFrame()
		f.CoM = &walker.Icon{Kind: walker.IconSquare, Center: math.Vec3{X: 3, Y: 3}, Color: palette.Magenta}
		var rec canvas.Recorder
		Emit(&rec, f, autoframe.Transform{Scale: scale}, palette.ModeHide)

		require.Equal(t, 1, rec.Count(canvas.OpQuad))
		q := rec.Ops[0]
		assert.Equal(t, palette.Black, q.Color)
		assert.InDelta(t, 12, q.Points[2].X-q.Points[0].X, 1e-3, "scale %v", scale)
		assert.Equal(t, 4, rec.Count(canvas.OpLine))
	}
}

func TestIconGlyphLineCounts(t *testing.T) {
	tests := []struct {
		kind  walker.IconKind
		lines int
	}{
		{walker.IconSquare, 4},
		{walker.IconDiamond, 4},
		{walker.IconSquareDiamond, 8},
		{walker.IconTriangleUp, 3},
		{walker.IconTriangleDown, 3},
		{walker.IconEngineReady, 6},
		{walker.IconEngineNoPower, 7},
		{walker.IconEngineNoFuel, 6},
		{walker.IconEngineNoAir, 8},
		{walker.IconEngineActive, 8},
		{walker.IconEngineInactive, 5},
	}
	for _, tt := range tests {
		f := walker.NewFrame()
		f.EngineIcons = []walker.Icon{{Kind: tt.kind, Color: palette.Green}}
		var rec canvas.Recorder
		Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeHide)
		assert.Equal(t, tt.lines, rec.Count(canvas.OpLine), "icon %d", tt.kind)
	}
}

func TestConeLines(t *testing.T) {
	f := walker.NewFrame()
	f.Cones = []walker.Cone{{Color: palette.Orange}}
	var rec canvas.Recorder
	Emit(&rec, f, autoframe.Transform{Scale: 1}, palette.ModeHide)
	assert.Equal(t, 12, rec.Count(canvas.OpLine))
}
