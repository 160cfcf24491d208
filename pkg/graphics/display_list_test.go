package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPictureRecorderCopiesPaths(t *testing.T) {
	rec := &PictureRecorder{}
	canvas := rec.BeginRecording(Size{Width: 10, Height: 10})
	p := NewPath()
	p.AddRect(RectFromLTWH(0, 0, 5, 5))
	canvas.DrawPath(p, FillPaint(ColorRed))
	canvas.DrawLine(Offset{}, Offset{X: 1}, StrokePaint(ColorBlack, 1, CapButt))
	p.Transform(Translate(100, 100))
	list := rec.EndRecording()

	paths, paints := list.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, 0.0, paths[0].Commands[0].Args[0])
	assert.Equal(t, ColorRed, paints[0].Color)
	assert.Len(t, list.Lines(), 1)
	assert.Equal(t, 2, list.Len())
}

func TestDisplayListReplay(t *testing.T) {
	rec := &PictureRecorder{}
	canvas := rec.BeginRecording(Size{Width: 4, Height: 4})
	canvas.DrawRect(RectFromLTWH(0, 0, 4, 4), FillPaint(ColorWhite))
	list := rec.EndRecording()

	raster := NewRasterCanvas(4, 4)
	list.Paint(raster)
	assert.Equal(t, uint8(0xFF), raster.Image().RGBAAt(2, 2).R)
}

func TestDisplayListCounts(t *testing.T) {
	rec := &PictureRecorder{}
	canvas := rec.BeginRecording(Size{Width: 4, Height: 4})
	canvas.Save()
	canvas.Translate(1, 2)
	canvas.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorWhite))
	canvas.DrawRect(RectFromLTWH(1, 1, 1, 1), FillPaint(ColorWhite))
	canvas.Restore()
	list := rec.EndRecording()

	assert.Equal(t, 2, list.Count(OpRect))
	assert.Equal(t, 0, list.Count(OpPath))
	require.Len(t, list.Ops(), 5)
	assert.Equal(t, Offset{X: 1, Y: 2}, list.Ops()[1].A)
	assert.Equal(t, "translate", list.Ops()[1].Kind.String())
}

func TestRecorderIgnoresCallsAfterEnd(t *testing.T) {
	rec := &PictureRecorder{}
	canvas := rec.BeginRecording(Size{Width: 4, Height: 4})
	list := rec.EndRecording()
	canvas.DrawRect(RectFromLTWH(0, 0, 1, 1), FillPaint(ColorWhite))
	assert.Equal(t, 0, list.Len())
	assert.Equal(t, 0, rec.EndRecording().Len())
}
