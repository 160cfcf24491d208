package cut

import (
	"fmt"
	"strings"
)

// CornerFlag is a set of logical corners. Start/end follow the layout's
// main axis and top/bottom its cross axis; Frame maps them onto the screen.
type CornerFlag uint8

const (
	StartTop CornerFlag = 1 << iota
	EndTop
	StartBottom
	EndBottom

	NoCorners  CornerFlag = 0
	AllCorners            = StartTop | EndTop | StartBottom | EndBottom
)

// WalkOrder lists the corners in the order outlines are traced.
var WalkOrder = [4]CornerFlag{StartTop, EndTop, EndBottom, StartBottom}

var cornerNames = map[CornerFlag]string{
	StartTop:    "start_top",
	EndTop:      "end_top",
	StartBottom: "start_bottom",
	EndBottom:   "end_bottom",
}

// Has reports whether every corner in c is set in f.
func (f CornerFlag) Has(c CornerFlag) bool {
	return c != 0 && f&c == c
}

// Index returns the slot of a single corner in a [4] array, or -1.
func (f CornerFlag) Index() int {
	switch f {
	case StartTop:
		return 0
	case EndTop:
		return 1
	case StartBottom:
		return 2
	case EndBottom:
		return 3
	default:
		return -1
	}
}

// Side returns the main-axis side a single corner belongs to.
func (f CornerFlag) Side() Side {
	if f == EndTop || f == EndBottom {
		return SideEnd
	}
	return SideStart
}

// IsTop reports whether a single corner lies on the cross-axis start edge.
func (f CornerFlag) IsTop() bool {
	return f == StartTop || f == EndTop
}

// Opposite returns the corner facing f across the main axis
// (start_top <-> end_top, start_bottom <-> end_bottom).
func (f CornerFlag) Opposite() CornerFlag {
	switch f {
	case StartTop:
		return EndTop
	case EndTop:
		return StartTop
	case StartBottom:
		return EndBottom
	case EndBottom:
		return StartBottom
	default:
		return f
	}
}

func (f CornerFlag) String() string {
	if f == NoCorners {
		return "none"
	}
	var parts []string
	for _, c := range WalkOrder {
		if f.Has(c) {
			parts = append(parts, cornerNames[c])
		}
	}
	if rest := f &^ AllCorners; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseCorner maps a corner name such as "start_top" to its flag.
func ParseCorner(name string) (CornerFlag, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range cornerNames {
		if n == name {
			return c, true
		}
	}
	return NoCorners, false
}

// ParseCornerFlags combines corner names into a set. "all" and "none" are
// accepted; unknown names are returned so callers can report them.
func ParseCornerFlags(names []string) (CornerFlag, []string) {
	var (
		f       CornerFlag
		unknown []string
	)
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "all":
			f |= AllCorners
			continue
		case "none", "":
			continue
		}
		c, ok := ParseCorner(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		f |= c
	}
	return f, unknown
}

// Side marks which contact edge of a child a cut applies to.
type Side int

const (
	SideStart Side = iota
	SideEnd
)

func (s Side) String() string {
	if s == SideEnd {
		return "end"
	}
	return "start"
}

// Orientation is the layout's main axis.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation maps a name to an Orientation, falling back to Horizontal.
func ParseOrientation(name string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "horizontal", "":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	default:
		return Horizontal, false
	}
}

// Direction is the layout direction used to resolve start and end.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection maps a name to a Direction, falling back to LTR.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ltr", "":
		return LTR, true
	case "rtl":
		return RTL, true
	default:
		return LTR, false
	}
}
