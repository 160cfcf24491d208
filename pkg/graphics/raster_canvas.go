package graphics

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RasterCanvas is a CPU Canvas that rasterizes into an RGBA image using
// golang.org/x/image/vector. Fills use the rasterizer's accumulated
// coverage; strokes are expanded into filled quads before rasterizing.
type RasterCanvas struct {
	img    *image.RGBA
	z      *vector.Rasterizer
	state  rasterState
	stack  []rasterState
	bounds image.Rectangle
}

type rasterState struct {
	dx, dy float64
	clip   *image.Alpha
}

// NewRasterCanvas allocates a canvas of the given pixel size, cleared to
// transparent.
func NewRasterCanvas(width, height int) *RasterCanvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	b := image.Rect(0, 0, width, height)
	return &RasterCanvas{
		img:    image.NewRGBA(b),
		z:      vector.NewRasterizer(width, height),
		bounds: b,
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with color, ignoring clip and transform.
func (c *RasterCanvas) Clear(color Color) {
	draw.Draw(c.img, c.bounds, image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) ClipPath(path *Path) {
	mask := c.coverage(path.Flatten(0.25))
	if c.state.clip != nil {
		for i := range mask.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(c.state.clip.Pix[i]) / 0xFF)
		}
	}
	c.state.clip = mask
}

func (c *RasterCanvas) DrawRect(rect Rect, paint Paint) {
	p := NewPath()
	p.AddRect(rect)
	c.DrawPath(p, paint)
}

func (c *RasterCanvas) DrawLine(start, end Offset, paint Paint) {
	c.fill(strokeSegment(start, end, paint.StrokeWidth, paint.StrokeCap), paint.Color)
}

func (c *RasterCanvas) DrawPath(path *Path, paint Paint) {
	if path.IsEmpty() {
		return
	}
	if paint.Style == PaintStyleFill {
		c.fill(path.Flatten(0.25), paint.Color)
		return
	}
	var quads [][]Offset
	for _, sub := range path.Subpaths(0.25) {
		pts := sub.Points
		edges := len(pts) - 1
		if sub.Closed {
			edges = len(pts)
		}
		for i := 0; i < edges; i++ {
			j := (i + 1) % len(pts)
			quads = append(quads, strokeSegment(pts[i], pts[j], paint.StrokeWidth, CapSquare)...)
		}
	}
	c.fill(quads, paint.Color)
}

func (c *RasterCanvas) Size() Size {
	return Size{Width: float64(c.bounds.Dx()), Height: float64(c.bounds.Dy())}
}

func (c *RasterCanvas) fill(polys [][]Offset, color Color) {
	if len(polys) == 0 || color.Alpha() == 0 {
		return
	}
	mask := c.coverage(polys)
	if c.state.clip != nil {
		for i := range mask.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(c.state.clip.Pix[i]) / 0xFF)
		}
	}
	src := image.NewUniform(color.NRGBA())
	draw.DrawMask(c.img, c.bounds, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// coverage rasterizes polygons, translated by the current offset, into an
// alpha mask the size of the canvas.
func (c *RasterCanvas) coverage(polys [][]Offset) *image.Alpha {
	mask := image.NewAlpha(c.bounds)
	c.z.Reset(c.bounds.Dx(), c.bounds.Dy())
	c.z.DrawOp = draw.Src
	drew := false
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		c.z.MoveTo(float32(poly[0].X+c.state.dx), float32(poly[0].Y+c.state.dy))
		for _, pt := range poly[1:] {
			c.z.LineTo(float32(pt.X+c.state.dx), float32(pt.Y+c.state.dy))
		}
		c.z.ClosePath()
		drew = true
	}
	if drew {
		c.z.Draw(mask, c.bounds, image.Opaque, image.Point{})
	}
	return mask
}

// strokeSegment expands a line segment into a closed quad. Round caps are
// approximated by extending like square caps plus a half-disc polygon.
func strokeSegment(a, b Offset, width float64, strokeCap StrokeCap) [][]Offset {
	if width <= 0 {
		width = 1
	}
	dir := b.Sub(a).Normalize()
	if dir == (Offset{}) {
		return nil
	}
	half := width / 2
	n := Offset{X: -dir.Y, Y: dir.X}.Scale(half)
	if strokeCap == CapSquare {
		a = a.Sub(dir.Scale(half))
		b = b.Add(dir.Scale(half))
	}
	polys := [][]Offset{{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}}
	if strokeCap == CapRound {
		polys = append(polys, disc(a, half), disc(b, half))
	}
	return polys
}

func disc(center Offset, r float64) []Offset {
	const steps = 16
	pts := make([]Offset, steps)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / steps
		pts[i] = Offset{X: center.X + r*math.Cos(t), Y: center.Y + r*math.Sin(t)}
	}
	return pts
}
