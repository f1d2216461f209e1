package palette

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/partradar/internal/engine/scene"
)

// nearlyEmpty is the resource amount at or below which a tank counts as empty.
// It also filters out intakes and generator buffers.
const nearlyEmpty = 2.0

// Policy colors parts. It keeps the stage counters needed for the stage
// gradient across frames; everything else is a pure function of part state.
type Policy struct {
	gradient    StageGradient
	lastMax     int
	thisMax     int
	totalStages int
}

// BeginFrame starts a redraw with the host's current stage count.
func (p *Policy) BeginFrame(totalStages int) {
	p.totalStages = totalStages
	p.thisMax = 0
}

// EndFrame remembers the highest stage seen this redraw.
func (p *Policy) EndFrame() {
	p.lastMax = p.thisMax
}

// StageColors returns the gradient sized for the stages seen so far.
func (p *Policy) StageColors() []Color {
	n := max(p.lastMax, p.totalStages, p.thisMax) + 1
	return p.gradient.Colors(n)
}

// PartColor maps a part to its color under mode, halving the channels when dull.
func (p *Policy) PartColor(n *scene.Node, mode Mode, dull bool) Color {
	c := p.color(n, mode)
	if dull {
		c = c.Dull()
	}
	return c
}

func (p *Policy) color(n *scene.Node, mode Mode) Color {
	st := &n.State
	switch mode {
	case ModeNone:
		return White
	case ModeState:
		return StateColor(n)
	case ModeStage:
		if st.InverseStage > p.thisMax {
			p.thisMax = st.InverseStage
		}
		colors := p.StageColors()
		if st.InverseStage < 0 || st.InverseStage >= len(colors) {
			return Magenta
		}
		return colors[st.InverseStage]
	case ModeHeat:
		return HeatColor(st)
	case ModeFuel:
		return FuelColor(st.Resources)
	case ModeDrag:
		return HeatmapColor(st.Drag)
	case ModeLift:
		return HeatmapColor(st.Lift)
	case ModeStall:
		return FractColor(1 - st.Stall)
	case ModeHide:
		return Clear
	default:
		return White
	}
}

// StateColor marks the root magenta and other parts by lifecycle.
func StateColor(n *scene.Node) Color {
	if n.IsRoot() {
		return Magenta
	}
	switch n.State.Lifecycle {
	case scene.StateActive:
		return Blue
	case scene.StateDeactivated:
		return Red
	case scene.StateDead:
		return Gray
	case scene.StateIdle:
		return Green
	default:
		return Red
	}
}

// HeatColor shifts from dark blue to red as the hotter of core and skin
// approaches its limit. The ratio is cubed so only parts near failure stand out.
func HeatColor(st *scene.PartState) Color {
	c := DarkGray
	if st.MaxTemperature == 0 || st.SkinMaxTemperature == 0 {
		return c
	}
	var ratio float64
	if st.Temperature > st.SkinTemperature {
		ratio = st.Temperature / st.MaxTemperature
	} else {
		ratio = st.SkinTemperature / st.SkinMaxTemperature
	}
	r := float32(ratio * ratio * ratio)
	c.B = 0.2 * (1 - r)
	c.R = 0.2 + r*0.8
	return c
}

// FuelColor averages the fill of every non-empty resource over the total
// resource count. Parts with nothing left are dark gray.
func FuelColor(resources []scene.Resource) Color {
	count := len(resources)
	empty := 0
	var total float64
	for _, r := range resources {
		if r.Amount <= nearlyEmpty {
			empty++
			continue
		}
		total += (r.Amount / r.MaxAmount) / float64(count)
	}
	if count == 0 || empty == count {
		return DarkGray
	}
	return FractColor(float32(total))
}

// EngineColor picks the exhaust color from the propellant mix.
func EngineColor(found scene.Propellants) Color {
	switch {
	case found.Has(scene.LiquidFuel | scene.Oxidizer):
		return Orange
	case found.Has(scene.SolidFuel):
		return Color{1, 0.1, 0.1, 1}
	case found.Has(scene.LiquidFuel | scene.IntakeAir):
		return Color{0.9, 0.7, 0.8, 1}
	case found.Has(scene.XenonGas | scene.ElectricCharge):
		return Color{0, 0.5, 1, 1}
	case found.Has(scene.MonoPropellant):
		return Color{0.9, 0.9, 0.9, 1}
	}
	return Magenta
}

// GroundColor tints the ground footprint by its tilt in degrees, clamped at 40.
func GroundColor(angle float32) Color {
	return FractColor(1 - math32.Min(angle, 40)/40)
}
