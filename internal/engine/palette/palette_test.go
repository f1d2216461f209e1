package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/pkg/math"
)

func node(st scene.PartState) *scene.Node {
	parent := scene.NewNode("parent", math.Identity())
	n := scene.NewNode("n", math.Identity())
	parent.AddChild(n)
	n.State = st
	return n
}

func TestFuelColor(t *testing.T) {
	empty := FuelColor([]scene.Resource{{Amount: 0, MaxAmount: 10}, {Amount: 0, MaxAmount: 10}})
	assert.Equal(t, Color{0.2, 0.2, 0.2, 1}, empty)

	assert.Equal(t, DarkGray, FuelColor(nil))

	c := FuelColor([]scene.Resource{{Amount: 2.01, MaxAmount: 10}})
	assert.Equal(t, float32(1), c.R)
	assert.InDelta(t, 0.402, c.G, 1e-5)

	// the near-empty tank still counts in the divisor
	half := FuelColor([]scene.Resource{{Amount: 10, MaxAmount: 10}, {Amount: 1, MaxAmount: 10}})
	assert.Equal(t, FractColor(0.5), half)
}

func TestFractColor(t *testing.T) {
	assert.Equal(t, Red, FractColor(0))
	assert.Equal(t, Color{1, 1, 0, 1}, FractColor(0.5))
	assert.Equal(t, Green, FractColor(1))
}

func TestHeatmapColorBreakpoints(t *testing.T) {
	tests := []struct {
		value float32
		want  Color
	}{
		{0, Color{0.1, 0.1, 0.1, 1}},
		{1, Color{0.1, 0.1, 1, 1}},
		{4, Color{0.1, 1, 1, 1}},
		{10, Color{0.1, 1, 0.1, 1}},
		{40, Color{1, 1, 0.1, 1}},
	}
	for _, tt := range tests {
		got := HeatmapColor(tt.value)
		assert.InDelta(t, tt.want.R, got.R, 1e-5, "value %v red", tt.value)
		assert.InDelta(t, tt.want.G, got.G, 1e-5, "value %v green", tt.value)
		assert.InDelta(t, tt.want.B, got.B, 1e-5, "value %v blue", tt.value)
	}
}

func TestGradientEnds(t *testing.T) {
	for _, n := range []int{2, 3, 5, 7, 16} {
		g := Gradient(n)
		require.Len(t, g, n)
		assert.Equal(t, Color{1, 0, 0, 1}, g[0], "n=%d first", n)
		assert.Equal(t, Color{0, 0, 1, 1}, g[n-1], "n=%d last", n)
	}
	assert.Equal(t, []Color{Red}, Gradient(1))
	assert.Nil(t, Gradient(0))

	mid := Gradient(5)[2]
	assert.Equal(t, Color{0, 1, 0, 1}, mid)
}

func TestStageGradientCached(t *testing.T) {
	var g StageGradient
	first := g.Colors(4)
	again := g.Colors(4)
	assert.Same(t, &first[0], &again[0])

	grown := g.Colors(6)
	assert.Len(t, grown, 6)
	assert.Equal(t, 6, g.Len())
}

func TestPolicyStage(t *testing.T) {
	var p Policy
	p.BeginFrame(3)

	c := p.PartColor(node(scene.PartState{InverseStage: 0}), ModeStage, false)
	assert.Equal(t, Red, c)

	// stage 3 of 3 sits at the blue end of a 4-entry gradient
	c = p.PartColor(node(scene.PartState{InverseStage: 3}), ModeStage, false)
	assert.Equal(t, Blue, c)

	// a stage beyond the host count grows the gradient this frame
	c = p.PartColor(node(scene.PartState{InverseStage: 5}), ModeStage, false)
	assert.Equal(t, Blue, c)
	assert.Len(t, p.StageColors(), 6)

	assert.Equal(t, Magenta, p.PartColor(node(scene.PartState{InverseStage: -1}), ModeStage, false))

	p.EndFrame()
	p.BeginFrame(1)
	assert.Len(t, p.StageColors(), 6, "last frame's max stage keeps the gradient size")
	p.EndFrame()
	p.BeginFrame(1)
	assert.Len(t, p.StageColors(), 2)
}

func TestPolicyModes(t *testing.T) {
	var p Policy
	root := scene.NewNode("root", math.Identity())
	assert.Equal(t, Magenta, p.PartColor(root, ModeState, false))
	assert.Equal(t, Blue, p.PartColor(node(scene.PartState{Lifecycle: scene.StateActive}), ModeState, false))
	assert.Equal(t, Gray, p.PartColor(node(scene.PartState{Lifecycle: scene.StateDead}), ModeState, false))
	assert.Equal(t, Red, p.PartColor(node(scene.PartState{Lifecycle: scene.StatePreLaunch}), ModeState, false))

	assert.Equal(t, White, p.PartColor(root, ModeNone, false))
	assert.Equal(t, Clear, p.PartColor(root, ModeHide, false))
	assert.Equal(t, Color{0.5, 0.5, 0.5, 1}, p.PartColor(root, ModeNone, true))
	assert.Equal(t, FractColor(0.75), p.PartColor(node(scene.PartState{Stall: 0.25}), ModeStall, false))
	assert.Equal(t, HeatmapColor(7), p.PartColor(node(scene.PartState{Drag: 7}), ModeDrag, false))
	assert.Equal(t, HeatmapColor(2), p.PartColor(node(scene.PartState{Lift: 2}), ModeLift, false))
}

func TestHeatColor(t *testing.T) {
	assert.Equal(t, DarkGray, HeatColor(&scene.PartState{Temperature: 500}))

	hot := HeatColor(&scene.PartState{
		Temperature: 1000, MaxTemperature: 1000,
		SkinTemperature: 10, SkinMaxTemperature: 2000,
	})
	assert.InDelta(t, 1.0, hot.R, 1e-6)
	assert.InDelta(t, 0.0, hot.B, 1e-6)

	// skin is hotter, so its own limit applies: (1000/2000)^3 = 0.125
	skin := HeatColor(&scene.PartState{
		Temperature: 10, MaxTemperature: 1000,
		SkinTemperature: 1000, SkinMaxTemperature: 2000,
	})
	assert.InDelta(t, 0.3, skin.R, 1e-6)
	assert.InDelta(t, 0.175, skin.B, 1e-6)
}

func TestEngineColor(t *testing.T) {
	assert.Equal(t, Orange, EngineColor(scene.LiquidFuel|scene.Oxidizer))
	assert.Equal(t, Color{1, 0.1, 0.1, 1}, EngineColor(scene.SolidFuel))
	assert.Equal(t, Color{0, 0.5, 1, 1}, EngineColor(scene.XenonGas|scene.ElectricCharge))
	assert.Equal(t, Magenta, EngineColor(0))
}

func TestColorNRGBA(t *testing.T) {
	got := Color{1, 0.5, -1, 2}.NRGBA()
	assert.Equal(t, uint8(255), got.R)
	assert.Equal(t, uint8(128), got.G)
	assert.Equal(t, uint8(0), got.B)
	assert.Equal(t, uint8(255), got.A)
}

func TestModeText(t *testing.T) {
	b, err := ModeFuel.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fuel", string(b))

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("stall")))
	assert.Equal(t, ModeStall, m)
}
