package scene

import "github.com/Faultbox/partradar/pkg/math"

// Layer is the render layer of a mesh renderer.
type Layer int

const (
	LayerDefault Layer = iota
	// LayerTransparentFX holds effects that are never drawn on the radar.
	LayerTransparentFX
)

// Mesh is an indexed triangle list with its local bounds.
type Mesh struct {
	Vertices []math.Vec3
	Indices  []uint32
	Bounds   math.AABB
}

// NewMesh creates a mesh and computes its bounds.
func NewMesh(vertices []math.Vec3, indices []uint32) *Mesh {
	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   math.AABBFromPoints(vertices),
	}
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the corners of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c math.Vec3) {
	return m.Vertices[m.Indices[i*3]], m.Vertices[m.Indices[i*3+1]], m.Vertices[m.Indices[i*3+2]]
}

// Skin is a pose-dependent mesh.
type Skin interface {
	// Bake snapshots the current pose. The result is only valid for the
	// current frame.
	Bake() *Mesh
}

// MeshRenderer places a static mesh or a skin in the world.
type MeshRenderer struct {
	Name         string
	Mesh         *Mesh
	Skin         Skin
	LocalToWorld math.Mat4
	Active       bool
	Layer        Layer
}

// Skinned reports whether the renderer draws a baked skin.
func (r *MeshRenderer) Skinned() bool {
	return r.Skin != nil
}

// Drawable reports whether the renderer takes part in the radar at all.
func (r *MeshRenderer) Drawable() bool {
	return r != nil && r.Active && r.Layer != LayerTransparentFX
}
