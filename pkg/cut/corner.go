package cut

import "github.com/go-drift/cutlinear/pkg/logx"

// CornerConfig is the container-wide corner cut configuration.
type CornerConfig struct {
	// Flags selects the corners that are cut at all.
	Flags CornerFlag
	// Default applies to every active corner.
	Default Spec
	// Corners holds explicit per-corner overrides.
	Corners map[CornerFlag]Override
}

// EdgeCandidate describes the edge child touching a parent corner.
type EdgeCandidate struct {
	// Aligned reports whether the child's margin box reaches the parent edge.
	Aligned bool
	// OverrideType reports whether the child opted in to replacing the
	// parent corner's type.
	OverrideType bool
	// Type is the child's own type at that corner.
	Type Type
}

// Corners holds one resolved cut per logical corner.
type Corners [4]Resolved

// At returns the cut for a single corner.
func (c *Corners) At(f CornerFlag) Resolved {
	if i := f.Index(); i >= 0 {
		return c[i]
	}
	return Resolved{}
}

// Set stores the cut for a single corner.
func (c *Corners) Set(f CornerFlag, r Resolved) {
	if i := f.Index(); i >= 0 {
		c[i] = r
	}
}

// CornerLayers returns the override chain for one parent corner, lowest
// precedence first: the edge child's type (when aligned and opted in),
// then the explicit per-corner override. The global default is the base.
func CornerLayers(cfg CornerConfig, corner CornerFlag, edge EdgeCandidate) []Override {
	var layers []Override
	if edge.Aligned && edge.OverrideType && edge.Type.Valid() {
		layers = append(layers, TypeOverride(edge.Type))
	}
	if o, ok := cfg.Corners[corner]; ok && !o.IsZero() {
		layers = append(layers, o)
	}
	return layers
}

// ResolveCorners resolves the four parent corners of frame. Corners outside
// cfg.Flags are left uncut.
func ResolveCorners(cfg CornerConfig, frame Frame, edges map[CornerFlag]EdgeCandidate) Corners {
	var out Corners
	lim := CornerLimits(frame)
	for _, corner := range WalkOrder {
		if !cfg.Flags.Has(corner) {
			continue
		}
		spec := Chain(cfg.Default, CornerLayers(cfg, corner, edges[corner])...)
		r := spec.Resolve(lim)
		if r.Depth < spec.Depth.Resolve(lim.MainExtent) || r.Length < spec.Length.Resolve(lim.CrossExtent) {
			logx.Logger().Debug("corner cut clamped",
				"corner", corner.String(), "depth", r.Depth, "length", r.Length)
		}
		out.Set(corner, r)
	}
	return out
}
