package walker

import (
	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/projector"
	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/pkg/math"
)

// IconKind selects the glyph drawn inside an icon square.
type IconKind int

const (
	IconSquare IconKind = iota
	IconDiamond
	IconSquareDiamond
	IconTriangleUp
	IconTriangleDown
	IconEngineReady
	IconEngineNoPower
	IconEngineNoFuel
	IconEngineNoAir
	IconEngineActive
	IconEngineInactive
)

// Geometry is one mesh queued for drawing. Transform maps mesh vertices to
// flattened screen space; the screen offset and scale are applied later.
type Geometry struct {
	Part      *scene.Node
	Mesh      *scene.Mesh
	Transform math.Mat4
	Fill      palette.Color
	Wire      palette.Color
}

// PartRect is the outline of one part's projected bounds.
type PartRect struct {
	Rect  bounds.Rect
	Color palette.Color
}

// Icon is a glyph centered on a screen-space point. Its size is fixed in
// pixels, so the emitter derives the extent from the current scale.
type Icon struct {
	Kind   IconKind
	Center math.Vec3
	Color  palette.Color
}

// Cone is an exhaust plume: a base ring of four points, the nozzle point and
// the tip.
type Cone struct {
	Nozzle math.Vec3
	Ring   [4]math.Vec3
	Tip    math.Vec3
	Color  palette.Color
}

// Ground is the terrain footprint under the assembly.
type Ground struct {
	Center  math.Vec3
	Corners [4]math.Vec3
	Color   palette.Color
}

// Axes are the root part's coordinate axes, as segment endpoints.
type Axes struct {
	Left, Right math.Vec3
	Up, Down    math.Vec3
	Front, Back math.Vec3
}

// Frame is the state of a single redraw. It is filled by the walker, read
// by the autoframe calculator and drained by the emitter.
type Frame struct {
	Projection projector.Projection
	Box        bounds.Box

	Geometry    []Geometry
	Rects       []PartRect
	Cones       []Cone
	EngineIcons []Icon
	CoM         *Icon
	Ground      *Ground
	Axes        *Axes
}

// NewFrame returns an empty frame.
func NewFrame() *Frame {
	return &Frame{Box: bounds.Empty()}
}

// Begin clears every queue and the box, keeping slice capacity.
func (f *Frame) Begin(p projector.Projection) {
	f.Projection = p
	f.Clear()
}

// Clear drops everything queued so far.
func (f *Frame) Clear() {
	f.Box.Reset()
	clear(f.Geometry)
	f.Geometry = f.Geometry[:0]
	f.Rects = f.Rects[:0]
	f.Cones = f.Cones[:0]
	f.EngineIcons = f.EngineIcons[:0]
	f.CoM = nil
	f.Ground = nil
	f.Axes = nil
}

// Empty reports whether nothing was queued.
func (f *Frame) Empty() bool {
	return len(f.Geometry) == 0 && len(f.Rects) == 0 && len(f.Cones) == 0 &&
		len(f.EngineIcons) == 0 && f.CoM == nil && f.Ground == nil && f.Axes == nil
}
