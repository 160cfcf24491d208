package cut

import (
	"math"

	"github.com/go-drift/cutlinear/pkg/graphics"
)

// Dimension is a length given either in pixels or as a fraction of the
// extent it is measured against. A positive Fraction wins over Value.
type Dimension struct {
	Value    float64
	Fraction float64
}

// Px returns an absolute dimension.
func Px(v float64) Dimension { return Dimension{Value: v} }

// Fraction returns a dimension relative to the measured extent.
func Fraction(f float64) Dimension { return Dimension{Fraction: f} }

// Resolve returns the dimension in pixels for the given extent, never
// negative.
func (d Dimension) Resolve(extent float64) float64 {
	v := d.Value
	if d.Fraction > 0 {
		v = d.Fraction * extent
	}
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// Spec describes one cut before clamping. Depth is measured along the main
// axis and Length along the cross axis.
type Spec struct {
	Type     Type
	Depth    Dimension
	Length   Dimension
	Radius   float64
	Rotation float64
	Mirrored bool
}

// Resolved is a cut clamped against the space available to it.
type Resolved struct {
	Type     Type
	Depth    float64
	Length   float64
	Radius   float64
	Rotation float64
	Mirrored bool
}

// Active reports whether the cut changes the outline. Custom cuts are
// always active since the provider decides their geometry.
func (r Resolved) Active() bool {
	switch r.Type {
	case None:
		return false
	case Custom:
		return true
	default:
		return r.Depth > 0 && r.Length > 0
	}
}

// Limits bounds the cut rectangle for one corner.
type Limits struct {
	// MainExtent and CrossExtent are what fractions are measured against.
	MainExtent  float64
	CrossExtent float64
	// MaxDepth and MaxLength cap the resolved values.
	MaxDepth  float64
	MaxLength float64
}

// CornerLimits returns the limits for a corner of a frame: fractions of the
// full extents, capped at half of each so opposite cuts never cross.
func CornerLimits(f Frame) Limits {
	m, c := f.MainExtent(), f.CrossExtent()
	return Limits{MainExtent: m, CrossExtent: c, MaxDepth: m / 2, MaxLength: c / 2}
}

// Resolve clamps s against lim. Unknown types become None, the radius is
// kept within the cut rectangle and the rotation is normalized.
func (s Spec) Resolve(lim Limits) Resolved {
	depth := math.Min(s.Depth.Resolve(lim.MainExtent), math.Max(0, lim.MaxDepth))
	length := math.Min(s.Length.Resolve(lim.CrossExtent), math.Max(0, lim.MaxLength))
	radius := s.Radius
	if math.IsNaN(radius) || radius < 0 {
		radius = 0
	}
	radius = math.Min(radius, math.Min(depth, length))
	return Resolved{
		Type:     s.Type.Sanitize(),
		Depth:    depth,
		Length:   length,
		Radius:   radius,
		Rotation: graphics.NormalizeDegrees(s.Rotation),
		Mirrored: s.Mirrored,
	}
}

// Override is one layer of a resolution chain. Nil fields leave the value
// from lower layers untouched.
type Override struct {
	Type     *Type
	Depth    *Dimension
	Length   *Dimension
	Radius   *float64
	Rotation *float64
}

// TypeOverride returns a layer that replaces only the type.
func TypeOverride(t Type) Override {
	return Override{Type: &t}
}

// SpecOverride returns a layer that replaces every field of s.
func SpecOverride(s Spec) Override {
	return Override{
		Type:     &s.Type,
		Depth:    &s.Depth,
		Length:   &s.Length,
		Radius:   &s.Radius,
		Rotation: &s.Rotation,
	}
}

// IsZero reports whether the layer sets nothing.
func (o Override) IsZero() bool {
	return o.Type == nil && o.Depth == nil && o.Length == nil && o.Radius == nil && o.Rotation == nil
}

// Apply returns base with the fields set in o replaced.
func (o Override) Apply(base Spec) Spec {
	if o.Type != nil {
		base.Type = *o.Type
	}
	if o.Depth != nil {
		base.Depth = *o.Depth
	}
	if o.Length != nil {
		base.Length = *o.Length
	}
	if o.Radius != nil {
		base.Radius = *o.Radius
	}
	if o.Rotation != nil {
		base.Rotation = *o.Rotation
	}
	return base
}

// Chain applies layers in order, lowest precedence first.
func Chain(base Spec, layers ...Override) Spec {
	for _, l := range layers {
		base = l.Apply(base)
	}
	return base
}
