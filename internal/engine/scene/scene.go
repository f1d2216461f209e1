// Package scene defines the read-only snapshot of an assembly that the host
// hands to the radar engine each frame.
package scene

import "github.com/Faultbox/partradar/pkg/math"

// Node is one rigid part of the assembly.
//
// Children may include the part's own parent when the host stores the
// assembly as an undirected adjacency; walkers skip that back link.
type Node struct {
	ID        string
	Parent    *Node
	Children  []*Node
	World     math.Mat4 // local-to-world transform
	Renderers []*MeshRenderer
	State     PartState
}

// NewNode creates a part at the given world transform.
func NewNode(id string, world math.Mat4) *Node {
	return &Node{ID: id, World: world}
}

// AddChild links child under n.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AddRenderer attaches a renderer and returns it.
func (n *Node) AddRenderer(r *MeshRenderer) *MeshRenderer {
	n.Renderers = append(n.Renderers, r)
	return r
}

// IsRoot reports whether n has no parent.
func (n *Node) IsRoot() bool {
	return n.Parent == nil
}

// Parts lists root and every descendant in breadth-first order.
func Parts(root *Node) []*Node {
	if root == nil {
		return nil
	}
	out := []*Node{root}
	for i := 0; i < len(out); i++ {
		n := out[i]
		for _, c := range n.Children {
			if c != nil && c != n.Parent {
				out = append(out, c)
			}
		}
	}
	return out
}

// Vessel is the live orientation data of the assembly as a whole.
type Vessel struct {
	// Transform is the vessel reference local-to-world matrix.
	Transform math.Mat4
	// SurfaceRotation is the vessel rotation relative to the body surface frame.
	SurfaceRotation math.Quat
	// SurfaceNormalOrigin and SurfaceNormalHere are the body surface normals at
	// latitude/longitude zero and under the vessel.
	SurfaceNormalOrigin math.Vec3
	SurfaceNormalHere   math.Vec3

	Position        math.Vec3
	BodyPosition    math.Vec3
	Altitude        float64
	TerrainAltitude float64

	// LocalCoM is the center of mass in root-part local space.
	LocalCoM math.Vec3

	IsEVA bool
}

// HeightAboveTerrain returns altitude minus terrain altitude.
func (v Vessel) HeightAboveTerrain() float64 {
	return v.Altitude - v.TerrainAltitude
}

// Snapshot is everything the engine reads for one frame.
type Snapshot struct {
	Root        *Node
	Parts       []*Node // all parts; derived from Root when nil
	TotalStages int
	Vessel      Vessel
}

// AllParts returns Parts, deriving it from Root when the host left it empty.
func (s *Snapshot) AllParts() []*Node {
	if s.Parts != nil {
		return s.Parts
	}
	return Parts(s.Root)
}

// Host supplies a fresh snapshot whenever the engine redraws.
type Host interface {
	Snapshot() *Snapshot
}

// HostFunc adapts a function to Host.
type HostFunc func() *Snapshot

// Snapshot calls f.
func (f HostFunc) Snapshot() *Snapshot { return f() }
