package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterCanvasFillsRect(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.DrawRect(RectFromLTWH(5, 5, 10, 10), FillPaint(ColorRed))

	inside := c.Image().RGBAAt(10, 10)
	outside := c.Image().RGBAAt(1, 1)
	assert.Equal(t, uint8(0xFF), inside.R)
	assert.Equal(t, uint8(0xFF), inside.A)
	assert.Equal(t, uint8(0), outside.A)
}

func TestRasterCanvasClipAndRestore(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	clip := NewPath()
	clip.AddRect(RectFromLTWH(0, 0, 10, 20))

	c.Save()
	c.ClipPath(clip)
	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(ColorBlue))
	c.Restore()

	assert.Equal(t, uint8(0xFF), c.Image().RGBAAt(5, 10).A)
	assert.Equal(t, uint8(0), c.Image().RGBAAt(15, 10).A)

	c.DrawRect(RectFromLTWH(0, 0, 20, 20), FillPaint(ColorGreen))
	assert.Equal(t, uint8(0xFF), c.Image().RGBAAt(15, 10).G)
}

func TestRasterCanvasTranslateAndLine(t *testing.T) {
	c := NewRasterCanvas(20, 20)
	c.Translate(0, 10)
	c.DrawLine(Offset{X: 2, Y: 0}, Offset{X: 18, Y: 0}, StrokePaint(ColorBlack, 4, CapButt))
	assert.Equal(t, uint8(0xFF), c.Image().RGBAAt(10, 10).A)
	assert.Equal(t, uint8(0), c.Image().RGBAAt(10, 2).A)
	assert.Equal(t, Size{Width: 20, Height: 20}, c.Size())
}

func TestRasterCanvasStrokeClosesOnlyClosedSubpaths(t *testing.T) {
	corner := func(closed bool) *Path {
		p := NewPath()
		p.MoveTo(2, 2)
		p.LineTo(18, 2)
		p.LineTo(18, 18)
		if closed {
			p.Close()
		}
		return p
	}
	paint := StrokePaint(ColorBlack, 2, CapButt)

	open := NewRasterCanvas(20, 20)
	open.DrawPath(corner(false), paint)
	assert.Equal(t, uint8(0xFF), open.Image().RGBAAt(10, 2).A)
	assert.Equal(t, uint8(0xFF), open.Image().RGBAAt(17, 10).A)
	assert.Equal(t, uint8(0), open.Image().RGBAAt(10, 10).A, "open subpath has no closing edge")

	closed := NewRasterCanvas(20, 20)
	closed.DrawPath(corner(true), paint)
	assert.NotZero(t, closed.Image().RGBAAt(10, 10).A)
}

func TestColorScaleAlpha(t *testing.T) {
	c := RGBA8(10, 20, 30, 200)
	got := c.ScaleAlpha(0.5)
	assert.Equal(t, uint8(100), uint8(got>>24))
	assert.Equal(t, uint32(c)&0xFFFFFF, uint32(got)&0xFFFFFF)
	assert.Equal(t, c, FromStdColor(c.NRGBA()))
}
