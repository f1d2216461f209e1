package canvas

import (
	"image"
	"image/draw"
)

// Target is the internal render target. It follows the size of the surface
// it is blitted onto and is reallocated whenever that size changes.
type Target struct {
	raster *Raster
}

// Ensure makes the target match size, reporting whether it was reallocated.
func (t *Target) Ensure(size image.Point) bool {
	if t.raster != nil && t.raster.Size() == size {
		return false
	}
	t.raster = NewRaster(size.X, size.Y)
	return true
}

// Raster returns the current canvas, nil before the first Ensure.
func (t *Target) Raster() *Raster {
	return t.raster
}

// BlitTo copies the target onto dst, replacing its pixels.
func (t *Target) BlitTo(dst draw.Image) {
	if t.raster == nil || dst == nil {
		return
	}
	b := dst.Bounds()
	draw.Draw(dst, b, t.raster.img, image.Point{}, draw.Src)
}
