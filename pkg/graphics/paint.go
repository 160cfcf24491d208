package graphics

import "fmt"

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// StrokeCap describes how stroke endpoints are drawn.
type StrokeCap int

const (
	CapButt   StrokeCap = iota // Flat edge at endpoint (default)
	CapRound                   // Semicircle at endpoint
	CapSquare                  // Square extending past endpoint
)

// String returns a human-readable representation of the stroke cap.
func (c StrokeCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return fmt.Sprintf("StrokeCap(%d)", int(c))
	}
}

// ParseStrokeCap maps a cap name to a StrokeCap. Unknown names yield
// CapButt and ok=false.
func ParseStrokeCap(name string) (StrokeCap, bool) {
	switch name {
	case "butt", "":
		return CapButt, true
	case "round":
		return CapRound, true
	case "square":
		return CapSquare, true
	default:
		return CapButt, false
	}
}

// Paint describes how to draw a shape on the canvas.
//
// A zero-value Paint fills with transparent black, which draws nothing.
// Use DefaultPaint for a basic opaque white fill.
type Paint struct {
	Color       Color
	Style       PaintStyle // Fill or stroke
	StrokeWidth float64    // Width of stroke in pixels
	StrokeCap   StrokeCap  // How endpoints are drawn; 0 = CapButt
}

// DefaultPaint returns a basic opaque white fill paint.
func DefaultPaint() Paint {
	return Paint{
		Color:       ColorWhite,
		Style:       PaintStyleFill,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
	}
}

// FillPaint returns a fill paint of the given color.
func FillPaint(c Color) Paint {
	p := DefaultPaint()
	p.Color = c
	return p
}

// StrokePaint returns a stroke paint of the given color, width and cap.
func StrokePaint(c Color, width float64, strokeCap StrokeCap) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width, StrokeCap: strokeCap}
}
