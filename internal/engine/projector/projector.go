// Package projector builds the world-to-screen matrices of the radar from
// the projection plane, the spin and the root part transform.
package projector

import (
	gomath "math"

	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/internal/engine/settings"
	"github.com/Faultbox/partradar/pkg/math"
)

// Flatten is the depth scale of the flattened matrix.
const Flatten = 0.001

var (
	sidePlane = math.Euler(0, 90, 0)
	topPlane  = math.Euler(90, 0, 0)
	isoPlane  = math.QuatEuler(-15, 0, 0).Mul(math.QuatEuler(0, 30, 0)).ToMat4()
	flatten   = math.Scale(1, 1, Flatten)
)

// Projection holds the matrices of one redraw.
type Projection struct {
	// WorldToScreen keeps depth; overlays use it so icon z still orders.
	WorldToScreen math.Mat4
	// Flattened collapses depth and is used for geometry and bounds.
	Flattened math.Mat4
}

// New computes the projection for the frame.
func New(plane settings.Plane, axis settings.Axis, speed float32, elapsed float64, root math.Mat4, v scene.Vessel) Projection {
	spin := SpinAngles(axis, speed, elapsed)
	w2s := PlaneMatrix(plane, v).
		Mul(math.Euler(spin.X, spin.Y, spin.Z)).
		Mul(root.Inverse())
	return Projection{
		WorldToScreen: w2s,
		Flattened:     flatten.Mul(w2s),
	}
}

// Flat maps a local-to-world matrix into flattened screen space.
func (p Projection) Flat(localToWorld math.Mat4) math.Mat4 {
	return p.Flattened.Mul(localToWorld)
}

// Deep maps a local-to-world matrix into screen space keeping depth.
func (p Projection) Deep(localToWorld math.Mat4) math.Mat4 {
	return p.WorldToScreen.Mul(localToWorld)
}

// SpinAngles returns the Euler angles (degrees) for the spin at elapsed
// seconds. Only the selected axis turns.
func SpinAngles(axis settings.Axis, speed float32, elapsed float64) math.Vec3 {
	angle := float32(gomath.Mod(elapsed*float64(speed), 360))
	switch axis {
	case settings.AxisX:
		return math.Vec3{X: angle}
	case settings.AxisY:
		return math.Vec3{Y: angle}
	case settings.AxisZ:
		return math.Vec3{Z: angle}
	}
	return math.Vec3{}
}

// PlaneMatrix returns the rotation for a projection plane. Ground and Live
// derive it from the vessel's current orientation.
func PlaneMatrix(plane settings.Plane, v scene.Vessel) math.Mat4 {
	switch plane {
	case settings.PlaneSide:
		return sidePlane
	case settings.PlaneTop:
		return topPlane
	case settings.PlaneIsometric:
		return isoPlane
	case settings.PlaneGround:
		ground := math.QuatFromTo(v.SurfaceNormalOrigin, v.SurfaceNormalHere)
		return v.SurfaceRotation.Inverse().
			Mul(ground).
			Mul(math.QuatEuler(0, 0, -90)).
			ToMat4()
	case settings.PlaneLive:
		return v.Transform
	}
	return math.Identity()
}
