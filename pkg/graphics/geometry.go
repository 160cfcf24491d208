package graphics

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Add returns o + other.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns o - other.
func (o Offset) Sub(other Offset) Offset {
	return Offset{X: o.X - other.X, Y: o.Y - other.Y}
}

// Scale returns o multiplied by s.
func (o Offset) Scale(s float64) Offset {
	return Offset{X: o.X * s, Y: o.Y * s}
}

// Dot returns the dot product of o and other.
func (o Offset) Dot(other Offset) float64 {
	return o.X*other.X + o.Y*other.Y
}

// Length returns the euclidean length of o.
func (o Offset) Length() float64 {
	return math.Hypot(o.X, o.Y)
}

// Normalize returns the unit vector in the direction of o, or the zero
// offset when o has no length.
func (o Offset) Normalize() Offset {
	l := o.Length()
	if l < epsilon {
		return Offset{}
	}
	return Offset{X: o.X / l, Y: o.Y / l}
}

// Near reports whether o and other are within epsilon on both axes.
func (o Offset) Near(other Offset) bool {
	return floatEqual(o.X, other.X) && floatEqual(o.Y, other.Y)
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromPoints constructs the smallest Rect containing both points.
func RectFromPoints(a, b Offset) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Right:  math.Max(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{} // Empty
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, other.Left),
		Top:    math.Min(r.Top, other.Top),
		Right:  math.Max(r.Right, other.Right),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Deflate shrinks the rect by the given insets. A rect that would invert
// collapses onto its midline instead.
func (r Rect) Deflate(in EdgeInsets) Rect {
	out := Rect{
		Left:   r.Left + in.Left,
		Top:    r.Top + in.Top,
		Right:  r.Right - in.Right,
		Bottom: r.Bottom - in.Bottom,
	}
	if out.Right < out.Left {
		mid := (out.Left + out.Right) * 0.5
		out.Left, out.Right = mid, mid
	}
	if out.Bottom < out.Top {
		mid := (out.Top + out.Bottom) * 0.5
		out.Top, out.Bottom = mid, mid
	}
	return out
}

// Inflate grows the rect by the given insets.
func (r Rect) Inflate(in EdgeInsets) Rect {
	return Rect{
		Left:   r.Left - in.Left,
		Top:    r.Top - in.Top,
		Right:  r.Right + in.Right,
		Bottom: r.Bottom + in.Bottom,
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.Left-epsilon && p.X <= r.Right+epsilon &&
		p.Y >= r.Top-epsilon && p.Y <= r.Bottom+epsilon
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(Offset{X: other.Left, Y: other.Top}) &&
		r.Contains(Offset{X: other.Right, Y: other.Bottom})
}

// EdgeInsets holds per-side distances, used for padding and margins.
type EdgeInsets struct {
	Left, Top, Right, Bottom float64
}

// EdgeInsetsAll returns insets with the same value on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// Add returns the per-side sum of e and other.
func (e EdgeInsets) Add(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + other.Left,
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
	}
}

// Max returns the per-side maximum of e and other.
func (e EdgeInsets) Max(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   math.Max(e.Left, other.Left),
		Top:    math.Max(e.Top, other.Top),
		Right:  math.Max(e.Right, other.Right),
		Bottom: math.Max(e.Bottom, other.Bottom),
	}
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() float64 { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() float64 { return e.Top + e.Bottom }

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

// NormalizeDegrees maps an angle in degrees into [0, 360).
// Non-finite input yields 0.
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 can round up to exactly 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
