package layout

import (
	"math"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

// Child is one child of the container.
type Child struct {
	// Size is the child's measured content size.
	Size graphics.Size
	// Margin surrounds the content box, in screen terms.
	Margin graphics.EdgeInsets
	// Weight shares the free main-axis space among weighted children in
	// proportion; their measured main size is ignored.
	Weight int
	Params cut.ChildParams
}

func mainAxis(o cut.Orientation, size graphics.Size) float64 {
	if o == cut.Horizontal {
		return size.Width
	}
	return size.Height
}

func crossAxis(o cut.Orientation, size graphics.Size) float64 {
	if o == cut.Horizontal {
		return size.Height
	}
	return size.Width
}

// logicalInsets maps screen insets onto the frame's main and cross axes.
func logicalInsets(f cut.Frame, e graphics.EdgeInsets) (mainStart, mainEnd, crossTop, crossBottom float64) {
	if f.Orientation == cut.Vertical {
		if f.Direction == cut.RTL {
			return e.Top, e.Bottom, e.Right, e.Left
		}
		return e.Top, e.Bottom, e.Left, e.Right
	}
	if f.Direction == cut.RTL {
		return e.Right, e.Left, e.Top, e.Bottom
	}
	return e.Left, e.Right, e.Top, e.Bottom
}

// Arrange places children one after another along the main axis of frame
// and returns their content bounds. Weighted children split the free space;
// what is left is distributed by alignment.
func Arrange(f cut.Frame, children []Child, alignment MainAxisAlignment, crossAlignment CrossAxisAlignment) []graphics.Rect {
	n := len(children)
	out := make([]graphics.Rect, n)
	if n == 0 {
		return out
	}
	maxMain, maxCross := f.MainExtent(), f.CrossExtent()

	mains := make([]float64, n)
	used := 0.0
	totalWeight := 0
	for i, c := range children {
		ms, me, _, _ := logicalInsets(f, c.Margin)
		used += ms + me
		if c.Weight > 0 {
			totalWeight += c.Weight
			continue
		}
		mains[i] = math.Max(0, mainAxis(f.Orientation, c.Size))
		used += mains[i]
	}
	remaining := math.Max(0, maxMain-used)
	if totalWeight > 0 {
		for i, c := range children {
			if c.Weight > 0 {
				mains[i] = remaining * float64(c.Weight) / float64(totalWeight)
				used += mains[i]
			}
		}
	}

	spacing, cursor := computeSpacing(alignment, n, math.Max(0, maxMain-used))
	for i, c := range children {
		ms, me, ct, cb := logicalInsets(f, c.Margin)
		room := math.Max(0, maxCross-ct-cb)
		cross := math.Min(math.Max(0, crossAxis(f.Orientation, c.Size)), room)
		top := ct
		switch crossAlignment {
		case CrossAxisAlignmentStretch:
			cross = room
		case CrossAxisAlignmentEnd:
			top += room - cross
		case CrossAxisAlignmentCenter:
			top += (room - cross) * 0.5
		}
		start := cursor + ms
		out[i] = f.Rect(start, start+mains[i], top, top+cross)
		cursor = start + mains[i] + me + spacing
	}
	return out
}

func computeSpacing(alignment MainAxisAlignment, n int, freeSpace float64) (spacing, offset float64) {
	switch alignment {
	case MainAxisAlignmentEnd:
		offset = freeSpace
	case MainAxisAlignmentCenter:
		offset = freeSpace * 0.5
	case MainAxisAlignmentSpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case MainAxisAlignmentSpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case MainAxisAlignmentSpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return
}
