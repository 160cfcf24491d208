// Package shadow approximates a blurred drop shadow for arbitrary,
// possibly concave, outlines by stacking outward offsets of the outline
// with falling opacity.
package shadow

import (
	"math"

	"github.com/go-drift/cutlinear/pkg/graphics"
	"github.com/go-drift/cutlinear/pkg/logx"
)

// MaxLayers caps the number of offset layers in a shadow.
const MaxLayers = 12

// Spec describes the shadow drawn behind the visible area.
//
// Radius is how far the shadow spreads beyond the outline, OffsetX and
// OffsetY shift it. With AutoPadding the container reserves room for the
// shadow inside its bounds; AllowOverUserPadding lets that room overlap
// padding the user asked for instead of being added on top of it.
type Spec struct {
	Color                graphics.Color
	Radius               float64
	OffsetX              float64
	OffsetY              float64
	AutoPadding          bool
	AllowOverUserPadding bool
}

// Enabled reports whether the spec draws anything.
func (s Spec) Enabled() bool {
	return s.Radius > 0 && s.Color.Alpha() > 0
}

// Extent returns how far the shadow reaches past the outline on each side.
func Extent(s Spec) graphics.EdgeInsets {
	if !s.Enabled() {
		return graphics.EdgeInsets{}
	}
	return graphics.EdgeInsets{
		Left:   s.Radius + math.Max(0, -s.OffsetX),
		Top:    s.Radius + math.Max(0, -s.OffsetY),
		Right:  s.Radius + math.Max(0, s.OffsetX),
		Bottom: s.Radius + math.Max(0, s.OffsetY),
	}
}

// EffectivePadding returns the padding the container lays out with.
func EffectivePadding(user graphics.EdgeInsets, s Spec) graphics.EdgeInsets {
	if !s.AutoPadding {
		return user
	}
	ext := Extent(s)
	if s.AllowOverUserPadding {
		return user.Max(ext)
	}
	return user.Add(ext)
}

// LayerCount returns the number of offset steps used for radius.
func LayerCount(radius float64) int {
	if radius <= 0 {
		return 0
	}
	n := int(math.Ceil(radius / 2))
	return max(1, min(n, MaxLayers))
}

// Layer is one filled band of the shadow.
type Layer struct {
	Path *graphics.Path
	// Distance is how far this layer reaches beyond the outline.
	Distance float64
	Color    graphics.Color
}

// Shadow is a built shadow. Layers are ordered outermost first, the order
// they are painted in.
type Shadow struct {
	Layers []Layer
}

// IsEmpty reports whether the shadow has nothing to draw.
func (s *Shadow) IsEmpty() bool {
	return s == nil || len(s.Layers) == 0
}

// Bounds returns the union of all layer bounds.
func (s *Shadow) Bounds() graphics.Rect {
	var r graphics.Rect
	for i, l := range s.Layers {
		if i == 0 {
			r = l.Path.Bounds()
			continue
		}
		r = r.Union(l.Path.Bounds())
	}
	return r
}

// Paint fills every layer onto canvas, outermost first.
func (s *Shadow) Paint(canvas graphics.Canvas) {
	if s == nil {
		return
	}
	for _, l := range s.Layers {
		canvas.DrawPath(l.Path, graphics.FillPaint(l.Color))
	}
}

// Build derives the shadow of path. Layer i of n, counted from the
// outline outward, reaches i*radius/n and takes 2(n-i+1)/(n(n+1)) of the
// color's alpha, so the alpha falls off outward and the fully overlapped
// core adds up to the configured alpha.
func Build(path *graphics.Path, s Spec) *Shadow {
	out := &Shadow{}
	if !s.Enabled() || path.IsEmpty() {
		return out
	}
	polys := path.Flatten(flattenTolerance)
	if len(polys) == 0 {
		return out
	}

	n := LayerCount(s.Radius)
	shift := graphics.Translate(s.OffsetX, s.OffsetY)
	denom := float64(n * (n + 1))
	for i := n; i >= 1; i-- {
		d := s.Radius * float64(i) / float64(n)
		layer := graphics.NewPath()
		for _, poly := range polys {
			addPolygon(layer, offsetPolygon(poly, d))
		}
		if layer.IsEmpty() {
			continue
		}
		layer.Transform(shift)
		out.Layers = append(out.Layers, Layer{
			Path:     layer,
			Distance: d,
			Color:    s.Color.ScaleAlpha(2 * float64(n-i+1) / denom),
		})
	}
	logx.Logger().Debug("shadow built", "layers", len(out.Layers), "radius", s.Radius)
	return out
}

const flattenTolerance = 0.25

func addPolygon(p *graphics.Path, poly []graphics.Offset) {
	if len(poly) < 3 {
		return
	}
	p.MoveTo(poly[0].X, poly[0].Y)
	for _, pt := range poly[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
}
