// Package walker traverses an assembly snapshot once per redraw and queues
// everything the emitter draws, widening the frame's bounding box as it goes.
package walker

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/internal/engine/settings"
	"github.com/Faultbox/partradar/pkg/math"
)

// Traversal faults. Walk wraps them with the offending part.
var (
	ErrNoSnapshot  = errors.New("no snapshot")
	ErrNilNode     = errors.New("nil part")
	ErrMissingMesh = errors.New("renderer has no mesh")
)

const (
	// minThrust is the thrust fraction above which an engine counts as firing.
	minThrust = 0.01
	// pulsePeriod is the exhaust pulse cycle in frames.
	pulsePeriod = 40
	// axisLength is the half length of the drawn coordinate axes.
	axisLength = 10000
)

// Walker queues a snapshot into a Frame.
type Walker struct {
	cache  scene.MeshCacheProvider
	policy *palette.Policy
	queue  []*scene.Node
}

// New creates a walker. cache may be nil, in which case renderer lists are
// read from the nodes every frame.
func New(cache scene.MeshCacheProvider, policy *palette.Policy) *Walker {
	if policy == nil {
		policy = &palette.Policy{}
	}
	return &Walker{cache: cache, policy: policy}
}

// Policy returns the color policy the walker uses.
func (w *Walker) Policy() *palette.Policy {
	return w.policy
}

// Walk fills f from snap. f must have been started with Begin. frameNo
// drives the exhaust pulse. On error f holds whatever was queued before the
// fault; callers are expected to discard it.
func (w *Walker) Walk(f *Frame, snap *scene.Snapshot, eff *settings.Effective, frameNo uint64) error {
	if snap == nil {
		return ErrNoSnapshot
	}
	if snap.Vessel.IsEVA {
		return nil
	}
	if snap.Root == nil {
		return errors.Wrap(ErrNilNode, "root")
	}
	if err := w.walkParts(f, snap.Root, eff); err != nil {
		return err
	}
	if eff.ShowEngines {
		if err := w.queueEngines(f, snap.AllParts(), frameNo); err != nil {
			return err
		}
	}
	root := f.Projection.Deep(snap.Root.World)
	if eff.ShowCoM {
		f.CoM = &Icon{
			Kind:   IconSquareDiamond,
			Center: root.MulPointAffine(snap.Vessel.LocalCoM),
			Color:  palette.Magenta,
		}
	}
	if eff.Ground != settings.GroundOff && snap.Vessel.HeightAboveTerrain() <= eff.GroundMaxAltitude {
		w.queueGround(f, root, snap.Vessel, eff.Ground)
	}
	if eff.ShowAxes {
		f.Axes = &Axes{
			Left:  root.MulPointAffine(math.Right.Scale(-axisLength)),
			Right: root.MulPointAffine(math.Right.Scale(axisLength)),
			Up:    root.MulPointAffine(math.Up.Scale(axisLength)),
			Down:  root.MulPointAffine(math.Up.Scale(-axisLength)),
			Front: root.MulPointAffine(math.Forward.Scale(axisLength)),
			Back:  root.MulPointAffine(math.Back.Scale(axisLength)),
		}
	}
	return nil
}

// walkParts visits the assembly breadth first. Each child is enqueued
// unless it is the link back to the part's own parent.
func (w *Walker) walkParts(f *Frame, root *scene.Node, eff *settings.Effective) error {
	w.queue = append(w.queue[:0], root)
	defer func() {
		clear(w.queue)
		w.queue = w.queue[:0]
	}()
	for i := 0; i < len(w.queue); i++ {
		n := w.queue[i]
		if n == nil {
			return errors.Wrapf(ErrNilNode, "queue position %d", i)
		}
		for _, c := range n.Children {
			if c != nil && c == n.Parent {
				continue
			}
			w.queue = append(w.queue, c)
		}
		if err := w.queuePart(f, n, eff); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) queuePart(f *Frame, n *scene.Node, eff *settings.Effective) error {
	fill := w.policy.PartColor(n, eff.FillMode, eff.FillDull)
	wire := w.policy.PartColor(n, eff.WireMode, eff.WireDull)
	boxColor := w.policy.PartColor(n, eff.BoxMode, eff.BoxDull)

	part := bounds.Empty()
	for _, r := range scene.Renderers(w.cache, n) {
		if !r.Drawable() {
			continue
		}
		mesh, localToWorld, err := resolveMesh(r)
		if err != nil {
			return errors.Wrapf(err, "part %s renderer %q", n.ID, r.Name)
		}
		t := f.Projection.Flat(localToWorld)
		part.Fold(mesh.Bounds, t)
		if fill.Visible() || wire.Visible() {
			f.Geometry = append(f.Geometry, Geometry{
				Part:      n,
				Mesh:      mesh,
				Transform: t,
				Fill:      fill,
				Wire:      wire,
			})
		}
	}
	if part.IsEmpty() {
		return nil
	}
	if eff.InFocus(n) {
		f.Box.Merge(part)
	}
	f.Rects = append(f.Rects, PartRect{Rect: part.XYRect(), Color: boxColor})
	return nil
}

// resolveMesh returns the mesh to draw for r. Skins are baked fresh and
// drawn without the renderer's own scale, which the bake already applies.
func resolveMesh(r *scene.MeshRenderer) (*scene.Mesh, math.Mat4, error) {
	if !r.Skinned() {
		if r.Mesh == nil {
			return nil, math.Mat4{}, ErrMissingMesh
		}
		return r.Mesh, r.LocalToWorld, nil
	}
	baked := r.Skin.Bake()
	if baked == nil {
		return nil, math.Mat4{}, errors.Wrap(ErrMissingMesh, "skin bake")
	}
	ls := r.LocalToWorld.LossyScale()
	return baked, r.LocalToWorld.Mul(math.Scale(inv(ls.X), inv(ls.Y), inv(ls.Z))), nil
}

func inv(v float32) float32 {
	if v == 0 {
		return 1
	}
	return 1 / v
}

// queueEngines adds an exhaust cone for every firing engine and a status
// icon for every engine.
func (w *Walker) queueEngines(f *Frame, parts []*scene.Node, frameNo uint64) error {
	for _, n := range parts {
		if n == nil {
			return errors.Wrap(ErrNilNode, "engine list")
		}
		e := n.State.Engine
		if e == nil {
			continue
		}
		scale := e.ThrustFraction()
		t := f.Projection.Deep(n.World)
		if scale > minThrust && e.Thrust != nil {
			t = f.Projection.Deep(*e.Thrust)
			massSqrt := math32.Sqrt(n.State.Mass)
			scale *= massSqrt
			f.Cones = append(f.Cones, cone(t, Pulse(scale, frameNo), massSqrt, palette.EngineColor(e.Found)))
			f.Box.FoldPoint(t.MulPointAffine(math.Vec3{Z: scale + n.State.Mass}))
		}
		f.EngineIcons = append(f.EngineIcons, Icon{
			Kind:   engineIcon(e, scale),
			Center: t.MulPointAffine(math.Vec3{}),
			Color:  engineIconColor(e, scale),
		})
	}
	return nil
}

// Pulse grows scale by up to 20% and back over a 40 frame cycle.
func Pulse(scale float32, frameNo uint64) float32 {
	step := float32(frameNo % pulsePeriod)
	if step >= pulsePeriod/2 {
		step = pulsePeriod - step
	}
	return scale + scale/100*step
}

func cone(t math.Mat4, scale, offset float32, c palette.Color) Cone {
	side := scale / 4
	return Cone{
		Nozzle: t.MulPointAffine(math.Vec3{Z: offset}),
		Ring: [4]math.Vec3{
			t.MulPointAffine(math.Vec3{X: -side, Z: offset + side}),
			t.MulPointAffine(math.Vec3{Y: -side, Z: offset + side}),
			t.MulPointAffine(math.Vec3{X: side, Z: offset + side}),
			t.MulPointAffine(math.Vec3{Y: side, Z: offset + side}),
		},
		Tip:   t.MulPointAffine(math.Vec3{Z: offset + scale}),
		Color: c,
	}
}

const fuels = scene.LiquidFuel | scene.SolidFuel | scene.MonoPropellant | scene.XenonGas | scene.Oxidizer

func noFuel(e *scene.Engine) bool {
	return e.Found&e.Deprived&fuels != 0
}

func engineIcon(e *scene.Engine, scale float32) IconKind {
	switch {
	case noFuel(e):
		return IconEngineNoFuel
	case e.Starved(scene.ElectricCharge):
		return IconEngineNoPower
	case e.Starved(scene.IntakeAir):
		return IconEngineNoAir
	case scale >= minThrust:
		return IconEngineActive
	case !e.Operational:
		return IconEngineInactive
	}
	return IconEngineReady
}

func engineIconColor(e *scene.Engine, scale float32) palette.Color {
	switch engineIcon(e, scale) {
	case IconEngineNoFuel:
		return palette.Red
	case IconEngineNoPower, IconEngineNoAir:
		return palette.Cyan
	case IconEngineActive:
		return palette.Orange
	case IconEngineInactive:
		return palette.Yellow
	}
	return palette.Green
}

// queueGround places the terrain footprint below the root part. The
// footprint is as wide as the largest side of the box so far; only its
// center widens the box.
func (w *Walker) queueGround(f *Frame, root math.Mat4, v scene.Vessel, mode settings.GroundMode) {
	up := v.Position.Sub(v.BodyPosition).Normalize()
	normal := v.Transform.Inverse().MulDirection(up).Normalize()

	var perp1 math.Vec3
	if normal.Y > 0.9 || normal.Y < -0.9 {
		perp1 = math.Right.Cross(normal)
	} else {
		perp1 = math.Up.Cross(normal)
	}
	perp1 = perp1.Normalize()
	perp2 := normal.Add(perp1).Cross(normal).Normalize()

	size := f.Box.MaxExtent()
	below := normal.Scale(-float32(v.HeightAboveTerrain()))

	ref := math.Up
	if mode == settings.GroundPlane {
		ref = math.Back
	}

	g := &Ground{
		Center: root.MulPointAffine(below),
		Corners: [4]math.Vec3{
			root.MulPointAffine(below.Add(perp1.Scale(size))),
			root.MulPointAffine(below.Sub(perp1.Scale(size))),
			root.MulPointAffine(below.Add(perp2.Scale(size))),
			root.MulPointAffine(below.Sub(perp2.Scale(size))),
		},
		Color: palette.GroundColor(ref.Angle(normal)),
	}
	f.Ground = g
	f.Box.FoldPoint(g.Center)
}
