// Package outline builds the visible-area path of a cut linear layout and
// the outline of each child from resolved corner cuts.
package outline

import (
	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
	"github.com/go-drift/cutlinear/pkg/logx"
)

// ChildInput is one child as seen by the builder.
type ChildInput struct {
	// Box is the child's margin box in screen coordinates.
	Box  graphics.Rect
	Cuts cut.ChildCuts
	// OverrideParentContact keeps the child's own cut at corners it shares
	// with the parent.
	OverrideParentContact bool
}

// Input is everything a build reads.
type Input struct {
	View View
	// Frame spans the container's padded bounds.
	Frame     cut.Frame
	Corners   cut.Corners
	Children  []ChildInput
	Providers Providers
}

// Segment records what was emitted for one parent corner or one half of a
// contact cut.
type Segment struct {
	Corner cut.CornerFlag
	// Child is the index of the child owning a contact half, or -1 for a
	// parent corner.
	Child int
	// Type is the shape that ended up in the path; a declined Custom cut
	// reports None.
	Type     cut.Type
	Provided bool
	Rect     graphics.Rect
}

// Outline is the result of a build.
type Outline struct {
	// Path is the closed visible-area path.
	Path     *graphics.Path
	Segments []Segment
	// Children holds one closed path per child, in layout order.
	Children []*graphics.Path
	// Provided reports whether a ViewAreaProvider replaced Path.
	Provided bool
}

// Builder accumulates a single outline. A Builder may be reused but not
// shared between goroutines.
type Builder struct {
	in   Input
	acc  *graphics.Path
	segs []Segment
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build walks the container start_top, end_top, end_bottom, start_bottom.
// Contact cuts between children are emitted along the top edge in layout
// order and along the bottom edge in reverse, each contact as the previous
// child's end half followed by the next child's start half.
//
// Zero-size bounds produce an empty path.
func (b *Builder) Build(in Input) *Outline {
	b.in = in
	b.acc = graphics.NewPath()
	b.segs = nil

	out := &Outline{Children: make([]*graphics.Path, len(in.Children))}
	f := in.Frame
	if f.MainExtent() <= 0 || f.CrossExtent() <= 0 {
		for i := range out.Children {
			out.Children[i] = graphics.NewPath()
		}
		out.Path = b.acc
		return out
	}

	n := len(in.Children)
	b.parentCorner(cut.StartTop)
	for i := 0; i+1 < n; i++ {
		b.contact(i, true)
	}
	b.parentCorner(cut.EndTop)
	b.parentCorner(cut.EndBottom)
	for i := n - 2; i >= 0; i-- {
		b.contact(i, false)
	}
	b.parentCorner(cut.StartBottom)
	b.acc.Close()

	out.Path = b.acc
	out.Segments = b.segs
	for i := range in.Children {
		out.Children[i] = b.child(i)
	}

	if p := in.Providers.ViewArea; p != nil {
		acc := graphics.NewPath()
		if p.ProvideViewArea(in.View, acc, f.Bounds) && !acc.IsEmpty() {
			out.Path = acc
			out.Provided = true
		} else {
			logx.Logger().Debug("view area provider declined")
		}
	}
	return out
}

func (b *Builder) parentCorner(c cut.CornerFlag) {
	f := b.in.Frame
	in, out := f.Travel(c)
	r := b.in.Corners.At(c)
	s := newSite(f, f.Apex(c), in, out, r, f.MainExtent()/2, f.CrossExtent()/2)
	seg := emit(b.acc, s, r, false, true, cornerHook(b.in.View, b.in.Providers.CornerCut, c))
	seg.Corner, seg.Child = c, -1
	b.segs = append(b.segs, seg)
}

// contact emits the cut on the line between child i and child i+1.
func (b *Builder) contact(i int, top bool) {
	f := b.in.Frame
	prev, next := b.in.Children[i], b.in.Children[i+1]
	_, prevEnd := f.MainSpan(prev.Box)
	nextStart, _ := f.MainSpan(next.Box)
	pos := (prevEnd + nextStart) / 2

	type half struct {
		child  int
		corner cut.CornerFlag
	}
	halves := [2]half{{i, cut.EndTop}, {i + 1, cut.StartTop}}
	cross := 0.0
	if !top {
		halves = [2]half{{i + 1, cut.StartBottom}, {i, cut.EndBottom}}
		cross = f.CrossExtent()
	}
	q := f.Point(pos, cross)
	for _, h := range halves {
		child := b.in.Children[h.child]
		r := child.Cuts.At(h.corner).Resolved
		in, out := f.Travel(h.corner)
		ms, me := f.MainSpan(child.Box)
		s := newSite(f, q, in, out, r, (me-ms)/2, f.CrossExtent()/2)
		seg := emit(b.acc, s, r, true, false, cutoutHook(b.in.View, b.in.Providers.Cutout, h.child, h.corner))
		seg.Corner, seg.Child = h.corner, h.child
		b.segs = append(b.segs, seg)
	}
}

// child builds the closed outline of child i's margin box. Corners that
// follow the parent are neither rotated nor handed to the cutout provider.
func (b *Builder) child(i int) *graphics.Path {
	c := b.in.Children[i]
	acc := graphics.NewPath()
	cf := b.in.Frame.WithBounds(c.Box)
	if cf.MainExtent() <= 0 || cf.CrossExtent() <= 0 {
		return acc
	}
	for _, corner := range cut.WalkOrder {
		cc := c.Cuts.At(corner)
		inherited := cc.Contact == cut.Parent && !c.OverrideParentContact
		h := cutoutHook(b.in.View, b.in.Providers.Cutout, i, corner)
		if inherited {
			h = cornerHook(b.in.View, b.in.Providers.CornerCut, corner)
		}
		in, out := cf.Travel(corner)
		s := newSite(cf, cf.Apex(corner), in, out, cc.Resolved, cf.MainExtent()/2, cf.CrossExtent()/2)
		emit(acc, s, cc.Resolved, !inherited, true, h)
	}
	acc.Close()
	return acc
}

// emit appends one cut to dst. An active cut is first offered to h; when
// declined the built-in shape for its type is used, and a Custom cut with no
// taker degrades to a plain corner. rotate turns the emitted segments
// about the apex by the cut's rotation. An uncut site adds the apex as a
// vertex only when anchor is set; contact points lie on a straight edge.
func emit(dst *graphics.Path, s site, r cut.Resolved, rotate, anchor bool, h *hook) Segment {
	seg := Segment{Type: r.Type, Rect: s.rect()}
	if !r.Active() {
		seg.Type = cut.None
	}
	acc := graphics.NewPath()
	if seg.Type != cut.None && h != nil {
		if h.provide(acc, seg.Rect) && !acc.IsEmpty() {
			seg.Provided = true
			if h.transform != nil {
				if m, ok := h.transform(seg.Rect); ok {
					acc.Transform(m)
				}
			}
		} else {
			acc.Clear()
			logx.Logger().Debug("cut provider declined", "type", r.Type.String())
		}
	}
	if !seg.Provided {
		if seg.Type == cut.Custom {
			seg.Type = cut.None
		}
		if seg.Type == cut.None && !anchor {
			return seg
		}
		shape(acc, s, seg.Type, r.Radius)
	}
	if rotate && r.Rotation != 0 {
		acc.Transform(graphics.RotateAbout(r.Rotation, s.apex))
	}
	dst.Append(acc, true)
	return seg
}
