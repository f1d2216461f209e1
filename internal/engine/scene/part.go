package scene

import "github.com/Faultbox/partradar/pkg/math"

// Lifecycle is the activation state of a part.
type Lifecycle int

const (
	StateIdle Lifecycle = iota
	StateActive
	StateDeactivated
	StateDead
	StatePreLaunch
)

// Propellants is a set of propellant kinds.
type Propellants uint8

const (
	LiquidFuel Propellants = 1 << iota
	Oxidizer
	SolidFuel
	IntakeAir
	MonoPropellant
	XenonGas
	ElectricCharge
)

// Has reports whether every kind in k is in p.
func (p Propellants) Has(k Propellants) bool {
	return p&k == k
}

// Resource is one stored resource of a part.
type Resource struct {
	Name      string
	Amount    float64
	MaxAmount float64
}

// Engine is the thrust state of an engine part.
type Engine struct {
	// Thrust is the world transform of the thrust origin, nil when the
	// engine does not name one.
	Thrust      *math.Mat4
	MaxThrust   float32
	FinalThrust float32
	Operational bool
	// Found lists the propellants the engine consumes, Deprived those it is
	// currently starved of.
	Found    Propellants
	Deprived Propellants
}

// ThrustFraction returns FinalThrust/MaxThrust, zero for a zero-rated engine.
func (e *Engine) ThrustFraction() float32 {
	if e.MaxThrust == 0 {
		return 0
	}
	return e.FinalThrust / e.MaxThrust
}

// Starved reports whether any consumed propellant is deprived.
func (e *Engine) Starved(k Propellants) bool {
	return e.Found.Has(k) && e.Deprived.Has(k)
}

// PartState is the physical state of a part for the current frame.
type PartState struct {
	InverseStage int
	Mass         float32
	Lifecycle    Lifecycle

	Temperature        float64
	MaxTemperature     float64
	SkinTemperature    float64
	SkinMaxTemperature float64

	Resources []Resource

	Drag  float32
	Lift  float32
	Stall float32

	Engine *Engine
}
