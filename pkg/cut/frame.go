package cut

import (
	"math"

	"github.com/go-drift/cutlinear/pkg/graphics"
)

// Frame maps logical layout coordinates onto a screen rectangle.
//
// The main axis follows the orientation and runs from start to end; the
// cross axis runs from top to bottom. For horizontal layouts start is left
// (right in RTL) and top is the screen top. For vertical layouts start is
// the screen top and top is left (right in RTL).
type Frame struct {
	Bounds      graphics.Rect
	Orientation Orientation
	Direction   Direction
}

// WithBounds returns a frame with the same axes over other bounds.
func (f Frame) WithBounds(r graphics.Rect) Frame {
	f.Bounds = r
	return f
}

// MainAxis returns the unit vector pointing from start to end.
func (f Frame) MainAxis() graphics.Offset {
	if f.Orientation == Vertical {
		return graphics.Offset{Y: 1}
	}
	if f.Direction == RTL {
		return graphics.Offset{X: -1}
	}
	return graphics.Offset{X: 1}
}

// CrossAxis returns the unit vector pointing from top to bottom.
func (f Frame) CrossAxis() graphics.Offset {
	if f.Orientation == Horizontal {
		return graphics.Offset{Y: 1}
	}
	if f.Direction == RTL {
		return graphics.Offset{X: -1}
	}
	return graphics.Offset{X: 1}
}

// MainExtent returns the bounds' length along the main axis.
func (f Frame) MainExtent() float64 {
	if f.Orientation == Vertical {
		return math.Max(0, f.Bounds.Height())
	}
	return math.Max(0, f.Bounds.Width())
}

// CrossExtent returns the bounds' length along the cross axis.
func (f Frame) CrossExtent() float64 {
	if f.Orientation == Vertical {
		return math.Max(0, f.Bounds.Width())
	}
	return math.Max(0, f.Bounds.Height())
}

// Origin returns the screen position of the start_top corner.
func (f Frame) Origin() graphics.Offset {
	b := f.Bounds
	x := b.Left
	if f.Direction == RTL {
		x = b.Right
	}
	return graphics.Offset{X: x, Y: b.Top}
}

// Point converts logical (main, cross) coordinates to a screen position.
func (f Frame) Point(main, cross float64) graphics.Offset {
	return f.Origin().Add(f.MainAxis().Scale(main)).Add(f.CrossAxis().Scale(cross))
}

// Logical converts a screen position to (main, cross) coordinates.
func (f Frame) Logical(p graphics.Offset) (main, cross float64) {
	d := p.Sub(f.Origin())
	return d.Dot(f.MainAxis()), d.Dot(f.CrossAxis())
}

// MainSpan returns the main-axis interval covered by r, start first.
func (f Frame) MainSpan(r graphics.Rect) (start, end float64) {
	a, _ := f.Logical(graphics.Offset{X: r.Left, Y: r.Top})
	b, _ := f.Logical(graphics.Offset{X: r.Right, Y: r.Bottom})
	return math.Min(a, b), math.Max(a, b)
}

// CrossSpan returns the cross-axis interval covered by r, top first.
func (f Frame) CrossSpan(r graphics.Rect) (top, bottom float64) {
	_, a := f.Logical(graphics.Offset{X: r.Left, Y: r.Top})
	_, b := f.Logical(graphics.Offset{X: r.Right, Y: r.Bottom})
	return math.Min(a, b), math.Max(a, b)
}

// Rect converts logical main and cross intervals to a screen rectangle.
func (f Frame) Rect(mainStart, mainEnd, crossTop, crossBottom float64) graphics.Rect {
	return graphics.RectFromPoints(f.Point(mainStart, crossTop), f.Point(mainEnd, crossBottom))
}

// Apex returns the screen position of a single corner.
func (f Frame) Apex(c CornerFlag) graphics.Offset {
	var main, cross float64
	if c.Side() == SideEnd {
		main = f.MainExtent()
	}
	if !c.IsTop() {
		cross = f.CrossExtent()
	}
	return f.Point(main, cross)
}

// Travel returns the direction of travel arriving at and leaving a corner
// when the outline is walked start_top, end_top, end_bottom, start_bottom.
func (f Frame) Travel(c CornerFlag) (in, out graphics.Offset) {
	m, x := f.MainAxis(), f.CrossAxis()
	switch c {
	case EndTop:
		return m, x
	case EndBottom:
		return x, m.Scale(-1)
	case StartBottom:
		return m.Scale(-1), x.Scale(-1)
	default:
		return x.Scale(-1), m
	}
}

// IsMain reports whether a unit vector lies along the frame's main axis.
func (f Frame) IsMain(v graphics.Offset) bool {
	return math.Abs(v.Dot(f.MainAxis())) > 0.5
}
