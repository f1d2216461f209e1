package settings

import "github.com/Faultbox/partradar/internal/engine/enumtext"

// SpinSpeed is how fast the diagram turns around the spin axis.
type SpinSpeed int

const (
	SpinOff SpinSpeed = iota
	SpinSlow
	SpinMedium
	SpinFast
	SpinLudicrous
)

var (
	spinNames = []string{"off", "slow", "medium", "fast", "ludicrous"}
	spinRates = []float32{0, 5, 15, 45, 90}
)

// DegreesPerSecond returns the spin rate.
func (s SpinSpeed) DegreesPerSecond() float32 {
	if s < 0 || int(s) >= len(spinRates) {
		return 0
	}
	return spinRates[s]
}

func (s SpinSpeed) String() string                { return enumtext.String(s, spinNames) }
func (s SpinSpeed) MarshalText() ([]byte, error)  { return enumtext.Marshal(s, spinNames) }
func (s *SpinSpeed) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, spinNames, s) }

// Axis names one of the three rotation axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = []string{"x", "y", "z"}

func (a Axis) String() string                { return enumtext.String(a, axisNames) }
func (a Axis) MarshalText() ([]byte, error)  { return enumtext.Marshal(a, axisNames) }
func (a *Axis) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, axisNames, a) }

// Plane is the projection plane of the diagram.
type Plane int

const (
	PlaneFront Plane = iota
	PlaneSide
	PlaneTop
	PlaneIsometric
	// PlaneGround keeps the local horizon level.
	PlaneGround
	// PlaneLive follows the assembly's own orientation.
	PlaneLive
)

var planeNames = []string{"front", "side", "top", "isometric", "ground", "live"}

func (p Plane) String() string                { return enumtext.String(p, planeNames) }
func (p Plane) MarshalText() ([]byte, error)  { return enumtext.Marshal(p, planeNames) }
func (p *Plane) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, planeNames, p) }

// Rescale controls automatic zoom.
type Rescale int

const (
	RescaleOff Rescale = iota
	RescaleIncremental
	RescaleClose
	RescaleBest
)

var (
	rescaleNames      = []string{"off", "incremental", "close", "best"}
	rescaleThresholds = []float32{0, 0.5, 0.85, 1}
)

// Threshold returns the current/ideal scale ratio below which the diagram
// zooms in. Zooming out is never gated.
func (r Rescale) Threshold() float32 {
	if r < 0 || int(r) >= len(rescaleThresholds) {
		return 0
	}
	return rescaleThresholds[r]
}

func (r Rescale) String() string                { return enumtext.String(r, rescaleNames) }
func (r Rescale) MarshalText() ([]byte, error)  { return enumtext.Marshal(r, rescaleNames) }
func (r *Rescale) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, rescaleNames, r) }

// GroundMode selects the ground indicator.
type GroundMode int

const (
	GroundOff GroundMode = iota
	GroundNormal
	// GroundPlane measures tilt against the back axis instead of up.
	GroundPlane
)

var groundNames = []string{"off", "normal", "plane"}

func (g GroundMode) String() string                { return enumtext.String(g, groundNames) }
func (g GroundMode) MarshalText() ([]byte, error)  { return enumtext.Marshal(g, groundNames) }
func (g *GroundMode) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, groundNames, g) }

// Latency is the minimum number of frames between full redraws.
type Latency int

const (
	LatencyOff Latency = iota
	LatencyLow
	LatencyMedium
	LatencyHigh
	LatencyVeryHigh
)

var (
	latencyNames = []string{"off", "low", "medium", "high", "veryhigh"}
	latencyGaps  = []int{0, 3, 10, 30, 75}
)

// Gap returns the frame gap for the tier.
func (l Latency) Gap() int {
	if l < 0 || int(l) >= len(latencyGaps) {
		return 0
	}
	return latencyGaps[l]
}

func (l Latency) String() string                { return enumtext.String(l, latencyNames) }
func (l Latency) MarshalText() ([]byte, error)  { return enumtext.Marshal(l, latencyNames) }
func (l *Latency) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, latencyNames, l) }

// Margin is the share of the canvas the auto-framed diagram may fill.
type Margin int

const (
	MarginNone Margin = iota
	MarginSmall
	MarginMedium
	MarginLarge
	MarginHuge
)

var (
	marginNames       = []string{"none", "small", "medium", "large", "huge"}
	marginMultipliers = []float32{1, 0.95, 0.9, 0.8, 0.6}
)

// Multiplier returns the fraction of the canvas to fill.
func (m Margin) Multiplier() float32 {
	if m < 0 || int(m) >= len(marginMultipliers) {
		return 1
	}
	return marginMultipliers[m]
}

func (m Margin) String() string                { return enumtext.String(m, marginNames) }
func (m Margin) MarshalText() ([]byte, error)  { return enumtext.Marshal(m, marginNames) }
func (m *Margin) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, marginNames, m) }
