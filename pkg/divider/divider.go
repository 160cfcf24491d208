// Package divider computes divider lines drawn over a linear layout. The
// dividers are an overlay and never change where children are placed.
package divider

import (
	"math"
	"strings"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

// Show selects divider positions.
type Show int

const (
	// ContainerBeginning is at the padded start of the container.
	ContainerBeginning Show = 1 << iota
	// Beginning is where the first child's content starts, past its
	// leading margin.
	Beginning
	// Middle is on every contact line between adjacent children.
	Middle
	// End is where the last child's content ends.
	End
	// ContainerEnd is at the padded end of the container.
	ContainerEnd
)

// ShowNone disables all dividers.
const ShowNone Show = 0

var showNames = []struct {
	flag Show
	name string
}{
	{ContainerBeginning, "container_beginning"},
	{Beginning, "beginning"},
	{Middle, "middle"},
	{End, "end"},
	{ContainerEnd, "container_end"},
}

// Has reports whether every position in o is selected.
func (s Show) Has(o Show) bool {
	return o != 0 && s&o == o
}

func (s Show) String() string {
	if s == ShowNone {
		return "none"
	}
	var parts []string
	for _, n := range showNames {
		if s.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseShow combines position names. Unknown names are returned so the
// caller can report them; they select nothing.
func ParseShow(names []string) (Show, []string) {
	var (
		s       Show
		unknown []string
	)
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || name == "none" {
			continue
		}
		found := false
		for _, n := range showNames {
			if n.name == name {
				s |= n.flag
				found = true
				break
			}
		}
		if !found {
			unknown = append(unknown, name)
		}
	}
	return s, unknown
}

// Gravity places a dash pattern that does not fill its line exactly.
type Gravity int

const (
	GravityStart Gravity = iota
	GravityCenter
	GravityEnd
)

func (g Gravity) String() string {
	switch g {
	case GravityCenter:
		return "center"
	case GravityEnd:
		return "end"
	default:
		return "start"
	}
}

// ParseGravity maps a gravity name. An empty name is GravityStart.
func ParseGravity(name string) (Gravity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "start":
		return GravityStart, true
	case "center":
		return GravityCenter, true
	case "end":
		return GravityEnd, true
	default:
		return GravityStart, false
	}
}

// Spec configures every divider of a layout.
type Spec struct {
	Color     graphics.Color
	Thickness float64
	Cap       graphics.StrokeCap
	// DashWidth enables a dashed line when positive.
	DashWidth float64
	DashGap   float64
	Gravity   Gravity
	// PaddingStart and PaddingEnd inset the line along the cross axis.
	PaddingStart float64
	PaddingEnd   float64
	Show         Show
}

// Paint returns the stroke paint for the spec.
func (s Spec) Paint() graphics.Paint {
	return graphics.StrokePaint(s.Color, s.Thickness, s.Cap)
}

// Child is the placement of one child along the main axis.
type Child struct {
	// Bounds is the child's content box.
	Bounds graphics.Rect
	// Box is the content box grown by the child's margins.
	Box graphics.Rect
}

// Divider is one divider line.
type Divider struct {
	Position Show
	// Child is the index of the child before a Middle divider, the first or
	// last child for Beginning and End, and -1 otherwise.
	Child int
	// Start and End span the whole line across the cross axis.
	Start, End graphics.Offset
	// Segments are the stroked pieces: one for a solid line, one per dash
	// otherwise.
	Segments [][2]graphics.Offset
	// Path replaces Segments when a provider supplied one.
	Path *graphics.Path
}

// Provider may replace the geometry of a divider by appending to acc and
// returning true.
type Provider interface {
	ProvideDivider(acc *graphics.Path, d Divider) bool
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(acc *graphics.Path, d Divider) bool

// ProvideDivider calls f.
func (f ProviderFunc) ProvideDivider(acc *graphics.Path, d Divider) bool {
	return f(acc, d)
}

// Build returns the dividers for children laid out in frame, in main-axis
// order. frame spans the padded bounds. Container dividers are pulled in by
// half the thickness so they stay inside the padded bounds.
func Build(frame cut.Frame, children []Child, spec Spec, provider Provider) []Divider {
	if spec.Show == ShowNone || spec.Thickness <= 0 {
		return nil
	}
	top := spec.PaddingStart
	bottom := frame.CrossExtent() - spec.PaddingEnd
	if bottom-top <= 0 || frame.MainExtent() <= 0 {
		return nil
	}

	type pos struct {
		show  Show
		child int
		main  float64
	}
	var positions []pos
	half := spec.Thickness / 2
	if spec.Show.Has(ContainerBeginning) {
		positions = append(positions, pos{ContainerBeginning, -1, math.Min(half, frame.MainExtent()/2)})
	}
	if n := len(children); n > 0 {
		if spec.Show.Has(Beginning) {
			s, _ := frame.MainSpan(children[0].Bounds)
			positions = append(positions, pos{Beginning, 0, s})
		}
		if spec.Show.Has(Middle) {
			for i := 0; i+1 < n; i++ {
				_, e := frame.MainSpan(children[i].Box)
				s, _ := frame.MainSpan(children[i+1].Box)
				positions = append(positions, pos{Middle, i, (e + s) / 2})
			}
		}
		if spec.Show.Has(End) {
			_, e := frame.MainSpan(children[n-1].Bounds)
			positions = append(positions, pos{End, n - 1, e})
		}
	}
	if spec.Show.Has(ContainerEnd) {
		positions = append(positions, pos{ContainerEnd, -1, math.Max(frame.MainExtent()-half, frame.MainExtent()/2)})
	}

	out := make([]Divider, 0, len(positions))
	for _, p := range positions {
		d := Divider{
			Position: p.show,
			Child:    p.child,
			Start:    frame.Point(p.main, top),
			End:      frame.Point(p.main, bottom),
		}
		for _, r := range Dashes(bottom-top, spec.DashWidth, spec.DashGap, spec.Gravity) {
			d.Segments = append(d.Segments, [2]graphics.Offset{
				frame.Point(p.main, top+r[0]),
				frame.Point(p.main, top+r[1]),
			})
		}
		if provider != nil {
			acc := graphics.NewPath()
			if provider.ProvideDivider(acc, d) && !acc.IsEmpty() {
				d.Path = acc
			}
		}
		out = append(out, d)
	}
	return out
}

// Dashes splits a line of the given length into [start, end) intervals.
// A non-positive dash yields the whole line. Otherwise as many whole dashes
// as fit are placed, and the leftover space goes after them, around them or
// before them for start, center and end gravity.
func Dashes(length, dash, gap float64, g Gravity) [][2]float64 {
	if length <= 0 {
		return nil
	}
	if dash <= 0 {
		return [][2]float64{{0, length}}
	}
	gap = math.Max(0, gap)
	n := int(math.Floor((length + gap) / (dash + gap)))
	if n < 1 {
		return nil
	}
	used := float64(n)*dash + float64(n-1)*gap
	var off float64
	switch g {
	case GravityCenter:
		off = (length - used) / 2
	case GravityEnd:
		off = length - used
	}
	out := make([][2]float64, n)
	for i := range out {
		s := off + float64(i)*(dash+gap)
		out[i] = [2]float64{s, s + dash}
	}
	return out
}

// Paint strokes the dividers onto canvas.
func Paint(canvas graphics.Canvas, dividers []Divider, spec Spec) {
	paint := spec.Paint()
	for _, d := range dividers {
		if d.Path != nil {
			canvas.DrawPath(d.Path, paint)
			continue
		}
		for _, s := range d.Segments {
			canvas.DrawLine(s[0], s[1], paint)
		}
	}
}
