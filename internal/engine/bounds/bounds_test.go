package bounds

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/Faultbox/partradar/pkg/math"
)

func TestEmptyBox(t *testing.T) {
	b := Empty()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, float32(0), b.MaxExtent())
	assert.True(t, math32.IsInf(b.Min.X, 1))
	assert.True(t, math32.IsInf(b.Max.X, -1))
}

func TestFoldPoint(t *testing.T) {
	b := Empty()
	b.FoldPoint(math.Vec3{X: 1, Y: 2, Z: 3})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, b.Min, b.Max)

	b.FoldPoint(math.Vec3{X: -1, Y: 5, Z: 0})
	assert.Equal(t, math.Vec3{X: -1, Y: 2, Z: 0}, b.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 5, Z: 3}, b.Max)
	assert.Equal(t, float32(3), b.MaxExtent())
}

func TestFoldRotatedBox(t *testing.T) {
	// a unit cube turned 45 degrees about Z spans sqrt(2) on X and Y
	local := math.AABB{Extents: math.Vec3{X: 1, Y: 1, Z: 1}}
	b := Empty()
	b.Fold(local, math.RotateZ(math32.Pi/4))

	r2 := math32.Sqrt(2)
	assert.InDelta(t, -r2, b.Min.X, 1e-5)
	assert.InDelta(t, r2, b.Max.X, 1e-5)
	assert.InDelta(t, -r2, b.Min.Y, 1e-5)
	assert.InDelta(t, 1, b.Max.Z, 1e-5)
}

func TestMergeIgnoresEmpty(t *testing.T) {
	b := Empty()
	b.FoldPoint(math.Vec3{X: 1})
	before := b
	b.Merge(Empty())
	assert.Equal(t, before, b)

	o := Empty()
	o.FoldPoint(math.Vec3{X: -2, Y: 4})
	b.Merge(o)
	assert.Equal(t, float32(-2), b.Min.X)
	assert.Equal(t, float32(4), b.Max.Y)
}

func TestFoldBoundsEveryCorner(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := Empty()
	var corners []math.Vec3
	for i := 0; i < 50; i++ {
		local := math.AABB{
			Center:  math.Vec3{X: rng.Float32()*4 - 2, Y: rng.Float32()*4 - 2, Z: rng.Float32()*4 - 2},
			Extents: math.Vec3{X: rng.Float32() * 3, Y: rng.Float32() * 3, Z: rng.Float32() * 3},
		}
		s := rng.Float32()*4 + 0.1
		m := math.Translate(rng.Float32()*20-10, rng.Float32()*20-10, 0).
			Mul(math.Euler(rng.Float32()*360, rng.Float32()*360, rng.Float32()*360)).
			Mul(math.Scale(s, s, s))
		b.Fold(local, m)

		lo, hi := local.Min(), local.Max()
		for _, c := range []math.Vec3{
			{X: lo.X, Y: lo.Y, Z: lo.Z}, {X: hi.X, Y: lo.Y, Z: lo.Z},
			{X: lo.X, Y: hi.Y, Z: lo.Z}, {X: hi.X, Y: hi.Y, Z: lo.Z},
			{X: lo.X, Y: lo.Y, Z: hi.Z}, {X: hi.X, Y: lo.Y, Z: hi.Z},
			{X: lo.X, Y: hi.Y, Z: hi.Z}, {X: hi.X, Y: hi.Y, Z: hi.Z},
		} {
			corners = append(corners, m.MulPoint(c))
		}
	}
	for _, c := range corners {
		assert.True(t, b.Contains(c, 1e-3), "corner %v outside %v", c, b)
	}
}

func TestXYRect(t *testing.T) {
	b := Empty()
	b.FoldPoint(math.Vec3{X: -1, Y: -2})
	b.FoldPoint(math.Vec3{X: 3, Y: 4})
	assert.Equal(t, Rect{X: -1, Y: -2, W: 4, H: 6}, b.XYRect())
	assert.Equal(t, Rect{X: 0, Y: 1, W: 4, H: 4}, Centered(2, 3, 2))
}
