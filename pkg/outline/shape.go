package outline

import (
	"math"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

// site is a cut position in screen space: the apex, the unit directions of
// travel arriving at and leaving it, and how far the cut reaches back along
// in and forward along out.
type site struct {
	apex          graphics.Offset
	in, out       graphics.Offset
	extIn, extOut float64
}

// newSite sizes a cut at apex. Depth runs along whichever travel direction
// lies on the main axis and length along the other; both are kept within
// maxMain and maxCross.
func newSite(f cut.Frame, apex, in, out graphics.Offset, r cut.Resolved, maxMain, maxCross float64) site {
	depth := math.Min(r.Depth, math.Max(0, maxMain))
	length := math.Min(r.Length, math.Max(0, maxCross))
	s := site{apex: apex, in: in, out: out, extIn: length, extOut: depth}
	if f.IsMain(in) {
		s.extIn, s.extOut = depth, length
	}
	return s
}

func (s site) start() graphics.Offset { return s.apex.Sub(s.in.Scale(s.extIn)) }

func (s site) end() graphics.Offset { return s.apex.Add(s.out.Scale(s.extOut)) }

// inner is the corner of the cut rectangle opposite the apex.
func (s site) inner() graphics.Offset {
	return s.start().Add(s.out.Scale(s.extOut))
}

func (s site) rect() graphics.Rect {
	return graphics.RectFromPoints(s.apex, s.inner())
}

// shape appends the built-in geometry for t at s.
func shape(acc *graphics.Path, s site, t cut.Type, radius float64) {
	if s.extIn <= 0 || s.extOut <= 0 {
		acc.Point(s.apex)
		return
	}
	radius = math.Max(0, math.Min(radius, math.Min(s.extIn, s.extOut)))
	switch t {
	case cut.Oval:
		acc.EllipticArc(s.inner(), s.out.Scale(-s.extOut), s.in.Scale(s.extIn), 0, 90)
	case cut.OvalInverse:
		acc.EllipticArc(s.apex, s.in.Scale(-s.extIn), s.out.Scale(s.extOut), 0, 90)
	case cut.Rectangle:
		acc.Point(s.start())
		roundedVertex(acc, s.apex, s.in, s.out, radius)
		acc.Point(s.end())
	case cut.RectangleInverse:
		acc.Point(s.start())
		roundedVertex(acc, s.inner(), s.out, s.in, radius)
		acc.Point(s.end())
	case cut.Bevel:
		acc.Point(s.start())
		acc.Point(s.end())
	default:
		acc.Point(s.apex)
	}
}

// roundedVertex turns the path at v from direction d1 to d2, replacing the
// sharp vertex with a circular arc of radius r.
func roundedVertex(acc *graphics.Path, v, d1, d2 graphics.Offset, r float64) {
	if r <= 0 {
		acc.Point(v)
		return
	}
	center := v.Sub(d1.Scale(r)).Add(d2.Scale(r))
	acc.EllipticArc(center, d2.Scale(-r), d1.Scale(r), 0, 90)
}
