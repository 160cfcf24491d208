package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

func startTopSite(t *testing.T, depth, length float64) site {
	t.Helper()
	f := horizontal()
	in, out := f.Travel(cut.StartTop)
	return newSite(f, f.Apex(cut.StartTop), in, out, cut.Resolved{Depth: depth, Length: length}, 100, 50)
}

func endpoints(p *graphics.Path) []graphics.Offset {
	var pts []graphics.Offset
	for _, c := range p.Commands {
		n := len(c.Args)
		if n >= 2 {
			pts = append(pts, graphics.Offset{X: c.Args[n-2], Y: c.Args[n-1]})
		}
	}
	return pts
}

func TestSiteExtents(t *testing.T) {
	s := startTopSite(t, 20, 10)
	assert.Equal(t, 10.0, s.extIn)
	assert.Equal(t, 20.0, s.extOut)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 20, 10), s.rect())

	clamped := startTopSite(t, 400, 400)
	assert.Equal(t, 50.0, clamped.extIn)
	assert.Equal(t, 100.0, clamped.extOut)
}

func TestShapeRectangleInverseSharp(t *testing.T) {
	acc := graphics.NewPath()
	shape(acc, startTopSite(t, 20, 10), cut.RectangleInverse, 0)
	assert.Equal(t, []graphics.Offset{{X: 0, Y: 10}, {X: 20, Y: 10}, {X: 20, Y: 0}}, endpoints(acc))
}

func TestShapeRectangleInverseRounded(t *testing.T) {
	acc := graphics.NewPath()
	shape(acc, startTopSite(t, 20, 10), cut.RectangleInverse, 4)
	require.Equal(t, 1, acc.Count(graphics.PathOpCubicTo))
	pts := endpoints(acc)
	require.Len(t, pts, 4)
	assert.Equal(t, graphics.Offset{X: 16, Y: 10}, pts[1])
	assert.InDelta(t, 20, pts[2].X, 1e-9)
	assert.InDelta(t, 6, pts[2].Y, 1e-9)
	assert.Equal(t, graphics.Offset{X: 20, Y: 0}, pts[3])
}

func TestShapeRectangleRoundsApex(t *testing.T) {
	acc := graphics.NewPath()
	shape(acc, startTopSite(t, 20, 10), cut.Rectangle, 4)
	pts := endpoints(acc)
	require.Len(t, pts, 4)
	assert.Equal(t, graphics.Offset{X: 0, Y: 10}, pts[0])
	assert.Equal(t, graphics.Offset{X: 0, Y: 4}, pts[1])
	assert.InDelta(t, 4, pts[2].X, 1e-9)
	assert.InDelta(t, 0, pts[2].Y, 1e-9)
	assert.Equal(t, graphics.Offset{X: 20, Y: 0}, pts[3])
}

func TestShapeRadiusLimitedByCut(t *testing.T) {
	acc := graphics.NewPath()
	shape(acc, startTopSite(t, 20, 10), cut.Rectangle, 50)
	pts := endpoints(acc)
	// Radius 10 consumes the whole length side.
	assert.Equal(t, graphics.Offset{X: 0, Y: 10}, pts[0])
	assert.InDelta(t, 10, pts[len(pts)-2].X, 1e-9)
}

func TestShapeOvalInverseIsConcave(t *testing.T) {
	acc := graphics.NewPath()
	shape(acc, startTopSite(t, 20, 20), cut.OvalInverse, 0)
	for _, poly := range acc.Flatten(0.05) {
		for _, pt := range poly {
			// Every point lies on or outside the circle around the apex.
			assert.GreaterOrEqual(t, pt.Length(), 20-0.05)
		}
	}
}

func TestShapeZeroExtentIsApex(t *testing.T) {
	acc := graphics.NewPath()
	shape(acc, startTopSite(t, 0, 10), cut.Bevel, 0)
	assert.Equal(t, []graphics.Offset{{}}, endpoints(acc))
}
