package cut

import (
	"fmt"
	"strings"
)

// Type selects the shape emitted for one cut.
//
// Rectangle variants take their rounding from Spec.Radius; Custom defers
// to the provider registered on the builder and falls back to no cut when
// the provider declines.
type Type int

const (
	// None leaves the corner sharp.
	None Type = iota
	// Oval replaces the corner with a convex quarter ellipse.
	Oval
	// OvalInverse carves a concave quarter ellipse centred on the corner.
	OvalInverse
	// Rectangle keeps the right angle at the corner, rounded by the radius.
	Rectangle
	// RectangleInverse removes the cut rectangle, a notch whose inner
	// corner is rounded by the radius.
	RectangleInverse
	// Bevel replaces the corner with one diagonal.
	Bevel
	// Custom asks the provider for the segment.
	Custom
)

var typeNames = [...]string{
	None:             "none",
	Oval:             "oval",
	OvalInverse:      "oval_inverse",
	Rectangle:        "rectangle",
	RectangleInverse: "rectangle_inverse",
	Bevel:            "bevel",
	Custom:           "custom",
}

func (t Type) String() string {
	if t >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is a known type.
func (t Type) Valid() bool {
	return t >= None && t <= Custom
}

// Sanitize maps unknown values to None.
func (t Type) Sanitize() Type {
	if !t.Valid() {
		return None
	}
	return t
}

// ParseType maps a type name to a Type. Unknown names yield None and
// ok=false.
func ParseType(name string) (Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return None, true
	}
	for t, n := range typeNames {
		if n == name {
			return Type(t), true
		}
	}
	return None, false
}
