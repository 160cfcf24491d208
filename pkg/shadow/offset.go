package shadow

import (
	"math"

	"github.com/go-drift/cutlinear/pkg/graphics"
)

// miterLimit bounds how far a vertex may move, as a multiple of the offset
// distance.
const miterLimit = 2.0

// offsetPolygon moves every edge of a closed polygon outward by d and
// joins neighbouring edges with a miter. Outward is decided by the
// polygon's winding, so both clockwise and counter-clockwise input work.
func offsetPolygon(poly []graphics.Offset, d float64) []graphics.Offset {
	pts := dedupe(poly)
	n := len(pts)
	if n < 3 {
		return nil
	}
	sign := 1.0
	if signedArea(pts) < 0 {
		sign = -1
	}
	normal := func(a, b graphics.Offset) graphics.Offset {
		e := b.Sub(a).Normalize()
		return graphics.Offset{X: e.Y, Y: -e.X}.Scale(sign)
	}

	out := make([]graphics.Offset, n)
	for i := range pts {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]
		n1, n2 := normal(prev, cur), normal(cur, next)
		m := n1.Add(n2)
		if m.Length() < 1e-9 {
			out[i] = cur.Add(n1.Scale(d))
			continue
		}
		m = m.Normalize()
		cos := m.Dot(n1)
		length := d
		if cos > 1e-9 {
			length = math.Min(d/cos, d*miterLimit)
		}
		out[i] = cur.Add(m.Scale(length))
	}
	return out
}

// signedArea is positive for polygons wound clockwise on a y-down screen.
func signedArea(pts []graphics.Offset) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

func dedupe(poly []graphics.Offset) []graphics.Offset {
	out := make([]graphics.Offset, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1].Near(p) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].Near(out[0]) {
		out = out[:len(out)-1]
	}
	return out
}
