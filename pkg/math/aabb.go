package math

// AABB is an axis-aligned box stored as center and half-extents.
type AABB struct {
	Center  Vec3
	Extents Vec3
}

// AABBFromMinMax builds a box from two opposite corners.
func AABBFromMinMax(lo, hi Vec3) AABB {
	return AABB{
		Center:  lo.Add(hi).Scale(0.5),
		Extents: hi.Sub(lo).Scale(0.5),
	}
}

// AABBFromPoints returns the tightest box around pts.
func AABBFromPoints(pts []Vec3) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return AABBFromMinMax(lo, hi)
}

// Min returns the minimum corner.
func (b AABB) Min() Vec3 {
	return b.Center.Sub(b.Extents)
}

// Max returns the maximum corner.
func (b AABB) Max() Vec3 {
	return b.Center.Add(b.Extents)
}
