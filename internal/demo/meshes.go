package demo

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/partradar/internal/engine/scene"
	"github.com/Faultbox/partradar/pkg/math"
)

// Box returns an axis-aligned box with the given half-extents, centered on
// the origin.
func Box(hx, hy, hz float32) *scene.Mesh {
	v := make([]math.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		p := math.Vec3{X: -hx, Y: -hy, Z: -hz}
		if i&1 != 0 {
			p.X = hx
		}
		if i&2 != 0 {
			p.Y = hy
		}
		if i&4 != 0 {
			p.Z = hz
		}
		v = append(v, p)
	}
	idx := []uint32{
		0, 1, 3, 0, 3, 2, // -z
		4, 6, 7, 4, 7, 5, // +z
		0, 4, 5, 0, 5, 1, // -y
		2, 3, 7, 2, 7, 6, // +y
		0, 2, 6, 0, 6, 4, // -x
		1, 5, 7, 1, 7, 3, // +x
	}
	return scene.NewMesh(v, idx)
}

// Frustum returns a capped truncated cone along Y, centered on the origin,
// with radius bottom at y=-h/2 and top at y=+h/2. A zero radius gives a cone.
func Frustum(bottom, top, h float32, segments int) *scene.Mesh {
	if segments < 3 {
		segments = 3
	}
	half := h / 2
	n := uint32(segments)

	v := make([]math.Vec3, 0, 2*segments+2)
	for _, ring := range []struct{ r, y float32 }{{bottom, -half}, {top, half}} {
		for i := 0; i < segments; i++ {
			s, c := math32.Sincos(2 * math32.Pi * float32(i) / float32(segments))
			v = append(v, math.Vec3{X: ring.r * c, Y: ring.y, Z: ring.r * s})
		}
	}
	bottomCenter := uint32(len(v))
	v = append(v, math.Vec3{Y: -half})
	topCenter := uint32(len(v))
	v = append(v, math.Vec3{Y: half})

	idx := make([]uint32, 0, 12*segments)
	for i := uint32(0); i < n; i++ {
		j := (i + 1) % n
		idx = append(idx,
			i, j, n+j, // side
			i, n+j, n+i,
			bottomCenter, j, i, // caps
			topCenter, n+i, n+j,
		)
	}
	return scene.NewMesh(v, idx)
}

// Cylinder returns a capped cylinder along Y, centered on the origin.
func Cylinder(r, h float32, segments int) *scene.Mesh {
	return Frustum(r, r, h, segments)
}

// Cone returns a cone along Y with its apex at +h/2.
func Cone(r, h float32, segments int) *scene.Mesh {
	return Frustum(r, 0, h, segments)
}

// whip is an antenna skin that sways with the rocket clock.
type whip struct {
	height float32
	clock  *float64
}

// Bake bends the antenna tip sideways by a sine of the clock.
func (w whip) Bake() *scene.Mesh {
	m := Box(0.05, w.height/2, 0.05)
	sway := 0.3 * math32.Sin(float32(*w.clock)*3)
	for i := range m.Vertices {
		if m.Vertices[i].Y > 0 {
			m.Vertices[i].X += sway
		}
	}
	m.Bounds = math.AABBFromPoints(m.Vertices)
	return m
}
