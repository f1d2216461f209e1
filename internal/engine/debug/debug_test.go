package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/partradar/internal/engine/autoframe"
	"github.com/Faultbox/partradar/internal/engine/bounds"
	"github.com/Faultbox/partradar/internal/engine/canvas"
	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/walker"
	"github.com/Faultbox/partradar/pkg/math"
)

func box(x0, y0, x1, y1 float32) bounds.Box {
	b := bounds.Empty()
	b.FoldPoint(math.Vec3{X: x0, Y: y0})
	b.FoldPoint(math.Vec3{X: x1, Y: y1})
	return b
}

func TestCaptureFrame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "radar")

	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.RGBA{R: 255, A: 255})

	name, err := sc.CaptureFrame(img, 42)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "radar_000042.png"), name)

	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	r, _, _, a := decoded.At(1, 2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestCaptureFromImageUsesTimestamp(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture("", "shot")
	sc.SetOutputDir(dir)
	sc.now = func() time.Time { return time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC) }

	assert.Equal(t, filepath.Join(dir, "shot_2024-03-09_14-05-07.png"), sc.GenerateFilename())

	name, err := sc.CaptureFromImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	require.NoError(t, err)
	_, err = os.Stat(name)
	assert.NoError(t, err)
}

func TestCaptureNilImage(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")
	_, err := sc.CaptureFrame(nil, 0)
	assert.Error(t, err)
}

func TestBBoxCorners(t *testing.T) {
	assert.Nil(t, BBoxCorners(bounds.Empty(), 1))

	got := BBoxCorners(box(0, 0, 2, 1), 0.5)
	assert.Equal(t, []math.Vec3{
		{X: -0.5, Y: -0.5},
		{X: 2.5, Y: -0.5},
		{X: 2.5, Y: 1.5},
		{X: -0.5, Y: 1.5},
	}, got)
}

func TestDrawBBox(t *testing.T) {
	rec := &canvas.Recorder{W: 100, H: 100}
	screen := autoframe.Transform{OffsetX: 10, OffsetY: 20, Scale: 2}

	DrawBBox(rec, box(0, 0, 2, 1), screen, palette.Yellow, 0)

	require.Len(t, rec.Ops, 4)
	assert.Equal(t, []math.Vec2{{X: 10, Y: 20}, {X: 14, Y: 20}}, rec.Ops[0].Points)
	assert.Equal(t, []math.Vec2{{X: 14, Y: 22}, {X: 10, Y: 22}}, rec.Ops[2].Points)
	assert.Equal(t, []palette.Color{palette.Yellow, palette.Yellow, palette.Yellow, palette.Yellow}, rec.Colors(canvas.OpLine))

	rec.Ops = nil
	DrawBBox(rec, bounds.Empty(), screen, palette.Yellow, 0)
	assert.Empty(t, rec.Ops)
}

func TestGridLines(t *testing.T) {
	segs := GridLines(box(-0.5, -0.5, 1.5, 0.5), 1)
	// x snaps to [-1, 2], y to [-1, 1]
	require.Len(t, segs, 4+3)
	assert.Equal(t, GridSegment{A: math.Vec3{X: -1, Y: -1}, B: math.Vec3{X: -1, Y: 1}}, segs[0])
	assert.Equal(t, GridSegment{A: math.Vec3{X: 2, Y: -1}, B: math.Vec3{X: 2, Y: 1}}, segs[3])
	assert.Equal(t, GridSegment{A: math.Vec3{X: -1, Y: 1}, B: math.Vec3{X: 2, Y: 1}}, segs[6])
}

func TestGridLinesEdgeCases(t *testing.T) {
	assert.Nil(t, GridLines(bounds.Empty(), 1))
	assert.Nil(t, GridLines(box(0, 0, 1, 1), 0))
	assert.Nil(t, GridLines(box(0, 0, 1, 1), -2))

	dense := GridLines(box(0, 0, 10, 10), 0.001)
	assert.Len(t, dense, 2*(MaxGridLines+1))
}

func TestOverlaysDrawFromFrame(t *testing.T) {
	f := walker.NewFrame()
	f.Box = box(0, 0, 1, 1)
	screen := autoframe.Transform{Scale: 1}

	rec := &canvas.Recorder{W: 10, H: 10}
	BBoxOverlay(palette.Red)(rec, f, screen)
	assert.Equal(t, 4, rec.Count(canvas.OpLine))

	rec.Ops = nil
	GridOverlay(1)(rec, f, screen)
	assert.Equal(t, 4, rec.Count(canvas.OpLine))
}
