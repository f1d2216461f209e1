// Package demo flies a procedural multi-stage rocket so the radar has an
// assembly to draw without a simulator attached.
package demo

import (
	gomath "math"
	"strconv"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/internal/logger"
	"github.com/Faultbox/partradar/pkg/math"
)

// Layout shapes the rocket.
type Layout struct {
	Stages         int
	Boosters       int     // radial boosters on the first stage
	ThrottlePeriod float64 // seconds per throttle ramp
	Altitude       float64 // launch height above terrain, meters
}

// DefaultLayout is a three stage rocket with two boosters.
func DefaultLayout() Layout {
	return Layout{Stages: 3, Boosters: 2, ThrottlePeriod: 4, Altitude: 40}
}

const (
	tankRadius   = 1.25
	tankHeight   = 4
	bellHeight   = 1
	podHeight    = 2
	boosterRad   = 0.5
	boosterLen   = 5
	segments     = 12
	minThrottle  = 0.2
	stageDelay   = 0.75 // seconds between burnout and separation
	relaunchWait = 3
	climbRate    = 12 // m/s at full throttle

	coreThrust    = 200
	boosterThrust = 120
	fuelCapacity  = 360 // liquid fuel per tank; oxidizer is 1.2x
	solidCapacity = 150
	burnRate      = 40 // units/s at full throttle
)

// Shared meshes.
var (
	tankMesh    = Cylinder(tankRadius, tankHeight, segments)
	bellMesh    = Frustum(0.9, 0.4, bellHeight, segments)
	podMesh     = Cone(tankRadius, podHeight, segments)
	boosterMesh = Cylinder(boosterRad, boosterLen, segments)
	nozzleMesh  = Frustum(0.4, 0.2, 0.5, segments)
)

// part is a node and its placement relative to the vessel reference.
type part struct {
	node      *scene.Node
	local     math.Mat4
	renderers []placed
	// thrust origin relative to node; only set on engines
	thrustLocal math.Mat4
	thrust      math.Mat4
}

// placed is a renderer and its offset from the part.
type placed struct {
	r      *scene.MeshRenderer
	offset math.Mat4
}

type stage struct {
	tank     *part
	engine   *part
	boosters []*part

	burnedOut  float64 // clock time of burnout, <0 while burning
	separated  bool
	boosterOff []bool
}

// Rocket is a scene.Host flying a procedural rocket. Advance moves its
// clock; Snapshot returns the current state. It is not safe for concurrent use.
type Rocket struct {
	layout Layout
	log    *zap.Logger

	clock    float64
	pod      *part
	parts    []*part
	stages   []*stage // stages[0] fires first
	active   int
	coastAt  float64
	throttle float32
	tween    *gween.Tween
	rising   bool

	climb float64
	pitch float32 // degrees
}

// New builds a rocket on the pad.
func New(l Layout) *Rocket {
	if l.Stages < 1 {
		l.Stages = 1
	}
	if l.Boosters < 0 {
		l.Boosters = 0
	}
	if !(l.ThrottlePeriod > 0) {
		l.ThrottlePeriod = DefaultLayout().ThrottlePeriod
	}
	r := &Rocket{layout: l, log: logger.Named(logger.Demo)}
	r.build()
	return r
}

func (r *Rocket) build() {
	r.parts = r.parts[:0]
	r.stages = r.stages[:0]
	r.active = 0
	r.coastAt = -1
	r.climb = 0
	r.pitch = 0
	r.rising = true
	r.throttle = minThrottle
	r.tween = gween.New(minThrottle, 1, float32(r.layout.ThrottlePeriod), ease.InOutQuad)

	n := r.layout.Stages
	y := float32(0)
	for i := 0; i < n; i++ {
		inv := n - 1 - i
		id := "stage" + strconv.Itoa(i)

		engine := r.newPart(id+".engine", math.Translate(0, y+bellHeight/2, 0), bellMesh, inv, 1.5)
		engine.thrustLocal = math.Translate(0, -bellHeight/2, 0).Mul(math.Euler(90, 0, 0))
		engine.node.State.Engine = &scene.Engine{
			MaxThrust: coreThrust,
			Found:     scene.LiquidFuel | scene.Oxidizer,
		}
		y += bellHeight

		tank := r.newPart(id+".tank", math.Translate(0, y+tankHeight/2, 0), tankMesh, inv, 0.5)
		tank.node.State.Resources = []scene.Resource{
			{Name: "LiquidFuel", Amount: fuelCapacity, MaxAmount: fuelCapacity},
			{Name: "Oxidizer", Amount: fuelCapacity * 1.2, MaxAmount: fuelCapacity * 1.2},
		}
		y += tankHeight

		st := &stage{tank: tank, engine: engine, burnedOut: -1}
		if i == 0 {
			for b := 0; b < r.layout.Boosters; b++ {
				st.boosters = append(st.boosters, r.newBooster(b, inv))
			}
			st.boosterOff = make([]bool, len(st.boosters))
		}
		r.stages = append(r.stages, st)
	}

	r.pod = r.newPart("pod", math.Translate(0, y+podHeight/2, 0), podMesh, 0, 0.8)
	r.pod.attach(&scene.MeshRenderer{
		Name:   "antenna",
		Skin:   whip{height: 1.5, clock: &r.clock},
		Active: true,
	}, math.Translate(0, podHeight/2+0.75, 0))

	// pod -> top tank -> top engine -> next tank ... -> first engine
	parent := r.pod.node
	for i := n - 1; i >= 0; i-- {
		st := r.stages[i]
		parent.AddChild(st.tank.node)
		st.tank.node.AddChild(st.engine.node)
		for _, b := range st.boosters {
			st.tank.node.AddChild(b.node)
		}
		parent = st.engine.node
	}

	r.update(0)
}

func (r *Rocket) newPart(id string, local math.Mat4, mesh *scene.Mesh, inverseStage int, mass float32) *part {
	p := &part{node: scene.NewNode(id, local), local: local}
	p.attach(&scene.MeshRenderer{Name: id, Mesh: mesh, Active: true}, math.Identity())
	p.node.State.InverseStage = inverseStage
	p.node.State.Mass = mass
	p.node.State.Lifecycle = scene.StateIdle
	p.node.State.Temperature = 290
	p.node.State.MaxTemperature = 2000
	p.node.State.SkinTemperature = 290
	p.node.State.SkinMaxTemperature = 1200
	r.parts = append(r.parts, p)
	return p
}

func (r *Rocket) newBooster(i, inverseStage int) *part {
	angle := 2 * gomath.Pi * float64(i) / float64(r.layout.Boosters)
	dist := float64(tankRadius + boosterRad)
	x := float32(dist * gomath.Cos(angle))
	z := float32(dist * gomath.Sin(angle))
	local := math.Translate(x, bellHeight+boosterLen/2, z)

	b := r.newPart("booster"+strconv.Itoa(i), local, boosterMesh, inverseStage, 1)
	b.attach(&scene.MeshRenderer{
		Name:   b.node.ID + ".nozzle",
		Mesh:   nozzleMesh,
		Active: true,
	}, math.Translate(0, -boosterLen/2-0.25, 0))
	b.thrustLocal = math.Translate(0, -boosterLen/2-0.5, 0).Mul(math.Euler(90, 0, 0))
	b.node.State.Resources = []scene.Resource{
		{Name: "SolidFuel", Amount: solidCapacity, MaxAmount: solidCapacity},
	}
	b.node.State.Engine = &scene.Engine{
		MaxThrust: boosterThrust,
		Found:     scene.SolidFuel,
	}
	return b
}

// Clock returns the rocket's elapsed time in seconds.
func (r *Rocket) Clock() float64 {
	return r.clock
}

// Throttle returns the current core throttle in [0,1].
func (r *Rocket) Throttle() float32 {
	return r.throttle
}

// ActiveStage returns the index of the firing stage, counted from the
// bottom; it equals the stage count once everything has burned out.
func (r *Rocket) ActiveStage() int {
	return r.active
}

// Advance moves the rocket clock by dt seconds.
func (r *Rocket) Advance(dt float64) {
	if dt <= 0 {
		return
	}
	r.clock += dt

	if r.coastAt >= 0 {
		if r.clock-r.coastAt >= relaunchWait {
			r.log.Info("relaunching")
			r.build()
		}
		return
	}

	v, done := r.tween.Update(float32(dt))
	r.throttle = v
	if done {
		r.rising = !r.rising
		from, to := float32(1), float32(minThrottle)
		if r.rising {
			from, to = to, from
		}
		r.tween = gween.New(from, to, float32(r.layout.ThrottlePeriod), ease.InOutQuad)
	}

	r.update(dt)
}

// update burns propellant, handles staging and refreshes every transform.
func (r *Rocket) update(dt float64) {
	if r.active < len(r.stages) {
		st := r.stages[r.active]
		if st.burnedOut >= 0 && r.clock-st.burnedOut >= stageDelay {
			r.separate(st)
		}
	}

	var thrust float32
	for i, st := range r.stages {
		firing := i == r.active && !st.separated
		thrust += r.burnCore(st, firing, dt)
		for b, booster := range st.boosters {
			if st.boosterOff[b] {
				continue
			}
			t, empty := r.burnBooster(booster, firing, dt)
			thrust += t
			if empty {
				r.detach(booster)
				st.boosterOff[b] = true
				r.log.Info("booster separated", logger.Part(booster.node.ID))
			}
		}
	}

	r.climb += float64(thrust/coreThrust) * climbRate * dt
	r.pitch = float32(gomath.Min(r.climb/20, 45))
	r.place()
}

func (r *Rocket) burnCore(st *stage, firing bool, dt float64) float32 {
	eng := st.engine.node.State.Engine
	tank := &st.tank.node.State
	if !firing {
		eng.Operational = false
		eng.FinalThrust = 0
		if !st.separated {
			st.engine.node.State.Lifecycle = scene.StateIdle
		}
		return 0
	}
	st.engine.node.State.Lifecycle = scene.StateActive
	st.tank.node.State.Lifecycle = scene.StateActive
	eng.Operational = true

	use := float64(r.throttle) * burnRate * dt
	empty := false
	for i := range tank.Resources {
		res := &tank.Resources[i]
		res.Amount = gomath.Max(0, res.Amount-use)
		if res.Amount == 0 {
			empty = true
		}
	}
	if empty {
		eng.Deprived = eng.Found
		eng.FinalThrust = 0
		if st.burnedOut < 0 {
			st.burnedOut = r.clock
			r.log.Info("stage burned out", logger.Stage(r.active))
		}
	} else {
		eng.FinalThrust = r.throttle * eng.MaxThrust
	}
	r.heat(&st.engine.node.State, eng.FinalThrust/eng.MaxThrust, dt)
	return eng.FinalThrust
}

func (r *Rocket) burnBooster(b *part, firing bool, dt float64) (float32, bool) {
	eng := b.node.State.Engine
	if !firing {
		eng.Operational = false
		eng.FinalThrust = 0
		return 0, false
	}
	b.node.State.Lifecycle = scene.StateActive
	eng.Operational = true

	res := &b.node.State.Resources[0]
	res.Amount = gomath.Max(0, res.Amount-burnRate*dt)
	if res.Amount == 0 {
		eng.Deprived = scene.SolidFuel
		eng.FinalThrust = 0
		return 0, true
	}
	eng.FinalThrust = eng.MaxThrust
	r.heat(&b.node.State, 1, dt)
	return eng.FinalThrust, false
}

// heat moves a part's temperature toward a throttle-dependent target.
func (r *Rocket) heat(s *scene.PartState, load float32, dt float64) {
	target := 290 + float64(load)*1400
	s.Temperature += (target - s.Temperature) * gomath.Min(1, dt)
	s.Drag = load * 0.6
	s.Lift = 0.1 * load
}

func (r *Rocket) separate(st *stage) {
	st.separated = true
	r.detach(st.tank)
	for _, p := range []*part{st.tank, st.engine} {
		p.node.State.Lifecycle = scene.StateDead
	}
	r.log.Info("stage separated", logger.Stage(r.active))
	r.active++
	if r.active >= len(r.stages) {
		r.coastAt = r.clock
		r.throttle = 0
	}
}

// detach cuts p out of the assembly.
func (r *Rocket) detach(p *part) {
	parent := p.node.Parent
	if parent != nil {
		kept := parent.Children[:0]
		for _, c := range parent.Children {
			if c != p.node {
				kept = append(kept, c)
			}
		}
		parent.Children = kept
		p.node.Parent = nil
	}
	parts := r.parts[:0]
	for _, q := range r.parts {
		if !r.within(q.node, p.node) {
			parts = append(parts, q)
		}
	}
	r.parts = parts
}

// within reports whether n is top or one of its descendants.
func (r *Rocket) within(n, top *scene.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == top {
			return true
		}
	}
	return false
}

// vesselTransform places the rocket: climbing and pitching over.
func (r *Rocket) vesselTransform() math.Mat4 {
	return math.Translate(0, float32(r.climb), 0).Mul(math.Euler(0, 0, -r.pitch))
}

func (r *Rocket) place() {
	vt := r.vesselTransform()
	for _, p := range r.parts {
		p.node.World = vt.Mul(p.local)
		for _, pl := range p.renderers {
			pl.r.LocalToWorld = p.node.World.Mul(pl.offset)
		}
		if p.node.State.Engine != nil {
			p.thrust = p.node.World.Mul(p.thrustLocal)
			p.node.State.Engine.Thrust = &p.thrust
		}
	}
}

func (p *part) attach(mr *scene.MeshRenderer, offset math.Mat4) {
	p.node.AddRenderer(mr)
	p.renderers = append(p.renderers, placed{r: mr, offset: offset})
}

// Snapshot returns the rocket as the radar sees it.
func (r *Rocket) Snapshot() *scene.Snapshot {
	vt := r.vesselTransform()
	surface := math.QuatEuler(0, 0, -r.pitch)
	return &scene.Snapshot{
		Root:        r.pod.node,
		TotalStages: r.layout.Stages,
		Vessel: scene.Vessel{
			Transform:           vt,
			SurfaceRotation:     surface,
			SurfaceNormalOrigin: math.Up,
			SurfaceNormalHere:   math.Up,
			Position:            vt.Position(),
			Altitude:            r.layout.Altitude + r.climb,
			TerrainAltitude:     0,
			LocalCoM:            r.localCoM(),
		},
	}
}

// localCoM is the mass-weighted part position in pod space.
func (r *Rocket) localCoM() math.Vec3 {
	inv := r.pod.node.World.Inverse()
	var sum math.Vec3
	var mass float32
	for _, p := range r.parts {
		m := p.node.State.Mass
		for _, res := range p.node.State.Resources {
			m += float32(res.Amount) * 0.005
		}
		sum = sum.Add(inv.MulPointAffine(p.node.World.Position()).Scale(m))
		mass += m
	}
	if mass == 0 {
		return math.Vec3{}
	}
	return sum.Scale(1 / mass)
}
