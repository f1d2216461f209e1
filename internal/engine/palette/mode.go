package palette

import "github.com/Faultbox/partradar/internal/engine/enumtext"

// Mode selects how a part is colored.
type Mode int

const (
	ModeNone Mode = iota
	ModeState
	ModeStage
	ModeHeat
	ModeFuel
	ModeDrag
	ModeLift
	ModeStall
	ModeHide
)

var modeNames = []string{"none", "state", "stage", "heat", "fuel", "drag", "lift", "stall", "hide"}

func (m Mode) String() string                { return enumtext.String(m, modeNames) }
func (m Mode) MarshalText() ([]byte, error)  { return enumtext.Marshal(m, modeNames) }
func (m *Mode) UnmarshalText(b []byte) error { return enumtext.Unmarshal(b, modeNames, m) }
