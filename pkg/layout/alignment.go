package layout

import (
	"fmt"
	"strings"
)

// MainAxisAlignment controls how children are positioned along the main axis
// when they do not fill it.
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart packs children at the start.
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd packs children at the end.
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space evenly, with half-sized
	// gaps before the first and after the last child.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly, including
	// before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

var mainAxisNames = []string{"start", "end", "center", "space_between", "space_around", "space_evenly"}

// String returns a human-readable representation of the alignment.
func (a MainAxisAlignment) String() string {
	if a >= 0 && int(a) < len(mainAxisNames) {
		return mainAxisNames[a]
	}
	return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
}

// ParseMainAxisAlignment maps a name to an alignment. An empty name is
// MainAxisAlignmentStart.
func ParseMainAxisAlignment(name string) (MainAxisAlignment, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return MainAxisAlignmentStart, true
	}
	for i, n := range mainAxisNames {
		if n == name {
			return MainAxisAlignment(i), true
		}
	}
	return MainAxisAlignmentStart, false
}

// CrossAxisAlignment controls how children are positioned along the cross axis.
type CrossAxisAlignment int

const (
	// CrossAxisAlignmentStretch stretches children to fill the cross axis.
	CrossAxisAlignmentStretch CrossAxisAlignment = iota
	// CrossAxisAlignmentStart places children at the top of the cross axis.
	CrossAxisAlignmentStart
	// CrossAxisAlignmentEnd places children at the bottom of the cross axis.
	CrossAxisAlignmentEnd
	// CrossAxisAlignmentCenter centers children along the cross axis.
	CrossAxisAlignmentCenter
)

var crossAxisNames = []string{"stretch", "start", "end", "center"}

// String returns a human-readable representation of the cross axis alignment.
func (a CrossAxisAlignment) String() string {
	if a >= 0 && int(a) < len(crossAxisNames) {
		return crossAxisNames[a]
	}
	return fmt.Sprintf("CrossAxisAlignment(%d)", int(a))
}

// ParseCrossAxisAlignment maps a name to an alignment. An empty name is
// CrossAxisAlignmentStretch.
func ParseCrossAxisAlignment(name string) (CrossAxisAlignment, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return CrossAxisAlignmentStretch, true
	}
	for i, n := range crossAxisNames {
		if n == name {
			return CrossAxisAlignment(i), true
		}
	}
	return CrossAxisAlignmentStretch, false
}
