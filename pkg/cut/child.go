package cut

import (
	"math"

	"github.com/go-drift/cutlinear/pkg/graphics"
)

// ChildDefaults is the container-wide configuration for cuts between
// children.
type ChildDefaults struct {
	// Spec is the cut every contact corner starts from.
	Spec Spec
	// Flags selects the child-local corners that take the default cut.
	// Explicit per-child corner overrides apply regardless.
	Flags CornerFlag
	// MirrorEndFromStart forces every child's end rotation to mirror its
	// start rotation.
	MirrorEndFromStart bool
}

// SideParams adjusts the cuts on one side of a child.
type SideParams struct {
	// Override replaces fields of the default spec for both corners of the side.
	Override Override
	// DepthOffset and LengthOffset are added to the resolved pixel values.
	DepthOffset  float64
	LengthOffset float64
	// Rotation is added to the spec's rotation, in degrees.
	Rotation float64
}

// EdgeOverride holds the rules for a first or last child touching the
// parent boundary.
type EdgeOverride struct {
	// OverrideParentContact makes the child's outline use its own cut at the
	// corners it shares with the parent instead of following the parent's.
	OverrideParentContact bool
	// OverrideParentType lets the child's cut type replace the parent
	// corner's type when the child is edge-aligned. Depth, length and
	// radius stay with the parent.
	OverrideParentType bool
}

// ChildParams are the per-child layout parameters.
type ChildParams struct {
	// Corners are explicit per-corner overrides. An override that sets the
	// type claims the whole contact segment it belongs to: the neighbour's
	// half of that contact takes the mirror of this cut, including its
	// rotation, which wins over the neighbour's MirrorEndFromStart.
	Corners map[CornerFlag]Override
	Start   SideParams
	End     SideParams
	Edge    EdgeOverride
	// MirrorEndFromStart mirrors this child's end rotation from its start
	// rotation, except at an end contact claimed by the next child.
	MirrorEndFromStart bool
}

// ChildGeometry is what the resolver needs to know about a child's box.
type ChildGeometry struct {
	// MainExtent is the size of the child's margin box along the main axis.
	MainExtent float64
	// AlignedStart and AlignedEnd report whether the margin box reaches the
	// parent's start or end edge.
	AlignedStart bool
	AlignedEnd   bool
}

// Contact classifies a child corner.
type Contact int

const (
	// Free corners touch nothing; only an explicit override cuts them.
	Free Contact = iota
	// Neighbor corners touch the adjacent child.
	Neighbor
	// Parent corners belong to an edge-aligned edge child and coincide with
	// the parent's corner.
	Parent
)

func (c Contact) String() string {
	switch c {
	case Neighbor:
		return "neighbor"
	case Parent:
		return "parent"
	default:
		return "free"
	}
}

// ChildCorner is the resolved cut of one child corner.
type ChildCorner struct {
	Resolved
	Contact Contact
	// Explicit reports whether a per-corner override set the type.
	Explicit bool
	// Limits is what the cut was clamped against.
	Limits Limits
}

// ChildCuts holds the four resolved corners of one child.
type ChildCuts struct {
	Corners [4]ChildCorner
}

// At returns the cut for a single corner.
func (c *ChildCuts) At(f CornerFlag) ChildCorner {
	if i := f.Index(); i >= 0 {
		return c.Corners[i]
	}
	return ChildCorner{}
}

func (c *ChildCuts) set(f CornerFlag, cc ChildCorner) {
	if i := f.Index(); i >= 0 {
		c.Corners[i] = cc
	}
}

// ChildLayers returns the override chain for one child corner, lowest
// precedence first: the side override, then the explicit corner override.
// The container default is the base.
func ChildLayers(p ChildParams, corner CornerFlag) []Override {
	side := p.Start
	if corner.Side() == SideEnd {
		side = p.End
	}
	layers := []Override{side.Override}
	if o, ok := p.Corners[corner]; ok {
		layers = append(layers, o)
	}
	return layers
}

// MirrorRotation returns the end rotation that mirrors a start rotation.
func MirrorRotation(start float64) float64 {
	return graphics.NormalizeDegrees(360 - graphics.NormalizeDegrees(start))
}

// ChildRotation returns the rotation of one child corner before mirroring:
// the chained spec rotation plus the side's additional rotation.
func ChildRotation(d ChildDefaults, p ChildParams, corner CornerFlag) float64 {
	spec, _ := ChildSpec(d, p, corner)
	side := p.Start
	if corner.Side() == SideEnd {
		side = p.End
	}
	return graphics.NormalizeDegrees(spec.Rotation + side.Rotation)
}

// ChildSpec returns the unclamped spec of one child corner together with
// whether an explicit per-corner override set its type.
func ChildSpec(d ChildDefaults, p ChildParams, corner CornerFlag) (Spec, bool) {
	spec := Chain(d.Spec, ChildLayers(p, corner)...)
	o, ok := p.Corners[corner]
	return spec, ok && o.Type != nil
}

// ResolveChildren resolves every child's corners.
//
// frame is the container's padded frame and parent its resolved corners;
// geoms and params are indexed by child in layout order (params may be
// shorter, missing entries use zero params). Contact pairs between
// neighbours are then combined: a corner with an explicit type override is
// mirrored onto its counterpart, and two default halves share the smaller
// depth and length so the cut is symmetric about the contact line.
func ResolveChildren(d ChildDefaults, params []ChildParams, geoms []ChildGeometry, frame Frame, parent Corners) []ChildCuts {
	out := make([]ChildCuts, len(geoms))
	cross := frame.CrossExtent()
	last := len(geoms) - 1
	for i, g := range geoms {
		var p ChildParams
		if i < len(params) {
			p = params[i]
		}
		lim := Limits{
			MainExtent:  g.MainExtent,
			CrossExtent: cross,
			MaxDepth:    g.MainExtent / 2,
			MaxLength:   cross / 2,
		}
		mirror := d.MirrorEndFromStart || p.MirrorEndFromStart
		for _, corner := range WalkOrder {
			spec, explicit := ChildSpec(d, p, corner)
			side := p.Start
			if corner.Side() == SideEnd {
				side = p.End
			}

			contact := Free
			switch {
			case corner.Side() == SideStart && i > 0, corner.Side() == SideEnd && i < last:
				contact = Neighbor
			case corner.Side() == SideStart && g.AlignedStart, corner.Side() == SideEnd && g.AlignedEnd:
				contact = Parent
			}

			if !explicit && !d.Flags.Has(corner) {
				spec.Type = None
			}
			if contact == Free && !explicit {
				spec.Type = None
			}

			r := spec.Resolve(lim)
			r.Depth = clampRange(r.Depth+side.DepthOffset, 0, lim.MaxDepth)
			r.Length = clampRange(r.Length+side.LengthOffset, 0, lim.MaxLength)
			r.Radius = math.Min(r.Radius, math.Min(r.Depth, r.Length))
			r.Rotation = ChildRotation(d, p, corner)
			if corner.Side() == SideEnd && mirror {
				r.Rotation = MirrorRotation(ChildRotation(d, p, corner.Opposite()))
				r.Mirrored = true
			}

			if contact == Parent && !p.Edge.OverrideParentContact {
				r = parent.At(corner)
			}
			out[i].set(corner, ChildCorner{Resolved: r, Contact: contact, Explicit: explicit, Limits: lim})
		}
	}
	for i := 0; i < last; i++ {
		combine(&out[i], &out[i+1], EndTop, StartTop)
		combine(&out[i], &out[i+1], EndBottom, StartBottom)
	}
	return out
}

// combine makes the two halves of a contact line mirror images. When only
// one side claims the segment with an explicit type, its cut is mirrored
// onto the other. Otherwise two active halves keep their own type and
// rotation but share the smaller depth and length. Neither half exceeds
// what the narrower child allows.
func combine(prev, next *ChildCuts, prevCorner, nextCorner CornerFlag) {
	a, b := prev.At(prevCorner), next.At(nextCorner)
	if a.Contact != Neighbor || b.Contact != Neighbor {
		return
	}
	switch {
	case a.Explicit && !b.Explicit:
		m := mirrorOnto(a, b)
		next.set(nextCorner, m)
		prev.set(prevCorner, shareSize(a, m))
	case b.Explicit && !a.Explicit:
		m := mirrorOnto(b, a)
		prev.set(prevCorner, m)
		next.set(nextCorner, shareSize(b, m))
	case !a.Explicit && !b.Explicit && a.Active() && b.Active():
		depth := math.Min(a.Depth, b.Depth)
		length := math.Min(a.Length, b.Length)
		prev.set(prevCorner, withSize(a, depth, length))
		next.set(nextCorner, withSize(b, depth, length))
	}
}

// mirrorOnto copies src's shape into dst's slot, reflected around the
// contact line and re-clamped to dst's limits.
func mirrorOnto(src, dst ChildCorner) ChildCorner {
	r := src.Resolved
	r.Depth = math.Min(r.Depth, dst.Limits.MaxDepth)
	r.Length = math.Min(r.Length, dst.Limits.MaxLength)
	r.Radius = math.Min(r.Radius, math.Min(r.Depth, r.Length))
	r.Rotation = MirrorRotation(src.Rotation)
	r.Mirrored = true
	return ChildCorner{Resolved: r, Contact: dst.Contact, Explicit: false, Limits: dst.Limits}
}

// shareSize shrinks c to the size of its mirrored counterpart m.
func shareSize(c, m ChildCorner) ChildCorner {
	return withSize(c, m.Depth, m.Length)
}

func withSize(c ChildCorner, depth, length float64) ChildCorner {
	c.Depth = depth
	c.Length = length
	c.Radius = math.Min(c.Radius, math.Min(depth, length))
	return c
}

// EdgeCandidates reports, for each parent corner, the edge child touching
// it. The first child covers the start corners and the last child the end
// corners; a single child covers all four.
func EdgeCandidates(d ChildDefaults, params []ChildParams, geoms []ChildGeometry) map[CornerFlag]EdgeCandidate {
	out := make(map[CornerFlag]EdgeCandidate, 4)
	if len(geoms) == 0 {
		return out
	}
	param := func(i int) ChildParams {
		if i < len(params) {
			return params[i]
		}
		return ChildParams{}
	}
	add := func(i int, corner CornerFlag, aligned bool) {
		p := param(i)
		spec, _ := ChildSpec(d, p, corner)
		out[corner] = EdgeCandidate{
			Aligned:      aligned,
			OverrideType: p.Edge.OverrideParentType,
			Type:         spec.Type,
		}
	}
	first, last := 0, len(geoms)-1
	add(first, StartTop, geoms[first].AlignedStart)
	add(first, StartBottom, geoms[first].AlignedStart)
	add(last, EndTop, geoms[last].AlignedEnd)
	add(last, EndBottom, geoms[last].AlignedEnd)
	return out
}

func clampRange(v, lo, hi float64) float64 {
	if hi < lo {
		hi = lo
	}
	return math.Max(lo, math.Min(v, hi))
}
