package graphics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing or clipping arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
// Use with Canvas.DrawPath to stroke/fill, or Canvas.ClipPath to clip.
//
// Fills use the nonzero winding rule.
type Path struct {
	Commands []PathCommand
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// Point starts a subpath at pt, or continues the current one with a line
// when a subpath is already open. A point equal to the current point is
// dropped.
func (p *Path) Point(pt Offset) {
	if cur, open := p.CurrentPoint(); open {
		if !cur.Near(pt) {
			p.LineTo(pt.X, pt.Y)
		}
		return
	}
	p.MoveTo(pt.X, pt.Y)
}

// CurrentPoint returns the end point of the last command and whether a
// subpath is currently open.
func (p *Path) CurrentPoint() (Offset, bool) {
	if p == nil || len(p.Commands) == 0 {
		return Offset{}, false
	}
	last := p.Commands[len(p.Commands)-1]
	if last.Op == PathOpClose {
		return Offset{}, false
	}
	n := len(last.Args)
	return Offset{X: last.Args[n-2], Y: last.Args[n-1]}, true
}

// AddRect appends a closed rectangle subpath, clockwise from the top-left corner.
func (p *Path) AddRect(r Rect) {
	p.MoveTo(r.Left, r.Top)
	p.LineTo(r.Right, r.Top)
	p.LineTo(r.Right, r.Bottom)
	p.LineTo(r.Left, r.Bottom)
	p.Close()
}

// EllipticArc appends an arc of the ellipse center + u*cos(t) + v*sin(t) for
// t running from fromDeg to toDeg. u and v are the conjugate semi-axis
// vectors, so axis-aligned and mirrored ellipses share one code path.
//
// The arc starts with a line from the current point (or a move when no
// subpath is open) and is approximated by one cubic per quarter turn.
func (p *Path) EllipticArc(center, u, v Offset, fromDeg, toDeg float64) {
	at := func(t float64) Offset {
		return center.Add(u.Scale(math.Cos(t))).Add(v.Scale(math.Sin(t)))
	}
	tangent := func(t float64) Offset {
		return v.Scale(math.Cos(t)).Sub(u.Scale(math.Sin(t)))
	}

	from, to := Radians(fromDeg), Radians(toDeg)
	p.Point(at(from))

	sweep := to - from
	if math.Abs(sweep) < epsilon {
		return
	}
	n := int(math.Ceil(math.Abs(sweep)/(math.Pi/2) - epsilon))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	for i := 0; i < n; i++ {
		t0 := from + step*float64(i)
		t1 := t0 + step
		p0, p3 := at(t0), at(t1)
		c1 := p0.Add(tangent(t0).Scale(k))
		c2 := p3.Sub(tangent(t1).Scale(k))
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p3.X, p3.Y)
	}
}

// Copy returns a deep copy of the path.
func (p *Path) Copy() *Path {
	if p == nil {
		return nil
	}
	pathCopy := &Path{
		Commands: make([]PathCommand, len(p.Commands)),
	}
	for i, cmd := range p.Commands {
		pathCopy.Commands[i] = PathCommand{
			Op:   cmd.Op,
			Args: append([]float64(nil), cmd.Args...),
		}
	}
	return pathCopy
}

// Append adds the commands of other to p. When connect is true and p has an
// open subpath, a leading MoveTo in other becomes a LineTo so the two
// paths join into one contour, or is dropped when it starts at the
// current point.
func (p *Path) Append(other *Path, connect bool) {
	if other == nil {
		return
	}
	for i, cmd := range other.Commands {
		c := PathCommand{Op: cmd.Op, Args: append([]float64(nil), cmd.Args...)}
		if i == 0 && connect && c.Op == PathOpMoveTo {
			if cur, open := p.CurrentPoint(); open {
				if cur.Near(Offset{X: c.Args[0], Y: c.Args[1]}) {
					continue
				}
				c.Op = PathOpLineTo
			}
		}
		p.Commands = append(p.Commands, c)
	}
}

// Transform applies m to every point of the path in place.
func (p *Path) Transform(m Matrix) {
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			pt := m.TransformPoint(Offset{X: cmd.Args[i], Y: cmd.Args[i+1]})
			cmd.Args[i], cmd.Args[i+1] = pt.X, pt.Y
		}
	}
}

// Bounds returns the bounding box of all points, control points included.
// An empty path yields the zero Rect.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	for _, cmd := range p.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			if first {
				r = Rect{Left: x, Top: y, Right: x, Bottom: y}
				first = false
				continue
			}
			r.Left = math.Min(r.Left, x)
			r.Top = math.Min(r.Top, y)
			r.Right = math.Max(r.Right, x)
			r.Bottom = math.Max(r.Bottom, y)
		}
	}
	return r
}

// Count returns how many commands use op.
func (p *Path) Count(op PathOp) int {
	n := 0
	for _, cmd := range p.Commands {
		if cmd.Op == op {
			n++
		}
	}
	return n
}

// Polyline is one flattened subpath. Closed reports whether the subpath
// ended with Close; the closing point is then not repeated.
type Polyline struct {
	Points []Offset
	Closed bool
}

// Subpaths converts the path into polylines, one per subpath, subdividing
// curves until each chord is within tolerance of the curve's control polygon.
func (p *Path) Subpaths(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var (
		polys      []Polyline
		cur        []Offset
		pen, start Offset
	)
	flush := func(closed bool) {
		if closed && len(cur) > 1 && cur[0].Near(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			polys = append(polys, Polyline{Points: cur, Closed: closed})
		}
		cur = nil
	}
	// Drawing after Close continues from the subpath's start point.
	begin := func() {
		if len(cur) == 0 {
			start = pen
			cur = append(cur, pen)
		}
	}
	for _, cmd := range p.Commands {
		a := cmd.Args
		switch cmd.Op {
		case PathOpMoveTo:
			flush(false)
			pen = Offset{X: a[0], Y: a[1]}
			start = pen
			cur = append(cur, pen)
		case PathOpLineTo:
			begin()
			pen = Offset{X: a[0], Y: a[1]}
			cur = append(cur, pen)
		case PathOpQuadTo:
			begin()
			c := Offset{X: a[0], Y: a[1]}
			end := Offset{X: a[2], Y: a[3]}
			n := segmentsFor(pen.Sub(c).Length()+c.Sub(end).Length(), tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				cur = append(cur, pen.Scale(mt*mt).Add(c.Scale(2*mt*t)).Add(end.Scale(t*t)))
			}
			pen = end
		case PathOpCubicTo:
			begin()
			c1 := Offset{X: a[0], Y: a[1]}
			c2 := Offset{X: a[2], Y: a[3]}
			end := Offset{X: a[4], Y: a[5]}
			n := segmentsFor(pen.Sub(c1).Length()+c1.Sub(c2).Length()+c2.Sub(end).Length(), tolerance)
			for i := 1; i <= n; i++ {
				t := float64(i) / float64(n)
				mt := 1 - t
				pt := pen.Scale(mt * mt * mt).
					Add(c1.Scale(3 * mt * mt * t)).
					Add(c2.Scale(3 * mt * t * t)).
					Add(end.Scale(t * t * t))
				cur = append(cur, pt)
			}
			pen = end
		case PathOpClose:
			flush(true)
			pen = start
		}
	}
	flush(false)
	return polys
}

// Flatten returns the points of each subpath from Subpaths. Fills treat
// every polyline as closed.
func (p *Path) Flatten(tolerance float64) [][]Offset {
	subs := p.Subpaths(tolerance)
	polys := make([][]Offset, len(subs))
	for i, s := range subs {
		polys[i] = s.Points
	}
	return polys
}

// segmentsFor picks a subdivision count for a curve whose control polygon
// has the given length.
func segmentsFor(length, tolerance float64) int {
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	if n < 1 {
		return 1
	}
	if n > 64 {
		return 64
	}
	return n
}

// SVG returns the path as SVG path data ("M x y L x y ... Z").
func (p *Path) SVG() string {
	var sb strings.Builder
	letters := map[PathOp]string{
		PathOpMoveTo:  "M",
		PathOpLineTo:  "L",
		PathOpQuadTo:  "Q",
		PathOpCubicTo: "C",
		PathOpClose:   "Z",
	}
	for i, cmd := range p.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(letters[cmd.Op])
		for _, v := range cmd.Args {
			sb.WriteByte(' ')
			sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		}
	}
	return sb.String()
}
