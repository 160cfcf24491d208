package style

import (
	"fmt"
	"sort"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/divider"
	"github.com/go-drift/cutlinear/pkg/errors"
	"github.com/go-drift/cutlinear/pkg/graphics"
	"github.com/go-drift/cutlinear/pkg/layout"
	"github.com/go-drift/cutlinear/pkg/shadow"
)

// Default canvas size used when a document leaves width or height out.
const (
	DefaultWidth  = 320
	DefaultHeight = 120
)

// Result is a document converted into layout inputs.
type Result struct {
	Name     string
	Size     graphics.Size
	Config   layout.Config
	Children []layout.Child
	// Warnings lists every value that was replaced by a default. Each one
	// has also been reported through the errors package.
	Warnings []error
}

// Convert turns the document into layout configuration. Invalid values
// never fail the conversion; they fall back to defaults and are reported.
func (d *Document) Convert() *Result {
	c := &converter{}
	res := &Result{
		Name: d.Name,
		Size: graphics.Size{Width: d.Width, Height: d.Height},
	}
	if res.Size.Width <= 0 {
		res.Size.Width = DefaultWidth
	}
	if res.Size.Height <= 0 {
		res.Size.Height = DefaultHeight
	}

	cfg := &res.Config
	var ok bool
	if cfg.Orientation, ok = cut.ParseOrientation(d.Orientation); !ok {
		c.fallback("orientation", d.Orientation, cfg.Orientation)
	}
	if cfg.Direction, ok = cut.ParseDirection(d.Direction); !ok {
		c.fallback("direction", d.Direction, cfg.Direction)
	}
	if cfg.Alignment, ok = layout.ParseMainAxisAlignment(d.Alignment); !ok {
		c.fallback("alignment", d.Alignment, cfg.Alignment)
	}
	if cfg.CrossAlignment, ok = layout.ParseCrossAxisAlignment(d.CrossAlignment); !ok {
		c.fallback("cross_alignment", d.CrossAlignment, cfg.CrossAlignment)
	}
	cfg.Padding = c.insets("padding", d.Padding)
	cfg.Background = c.color("background", d.Background, 0)

	cfg.Corners = cut.CornerConfig{
		Flags:   c.corners("corners.flags", d.Corners.Flags),
		Default: c.override("corners.cut", d.Corners.Cut).Apply(cut.Spec{}),
		Corners: c.cornerMap("corners.each", d.Corners.Each),
	}
	cfg.Children = cut.ChildDefaults{
		Spec:               c.override("child_cuts.cut", d.ChildCuts.Cut).Apply(cut.Spec{}),
		Flags:              c.corners("child_cuts.flags", d.ChildCuts.Flags),
		MirrorEndFromStart: d.ChildCuts.MirrorEndFromStart,
	}
	cfg.Shadow = c.shadow(d.Shadow)
	cfg.Divider = c.divider(d.Divider)

	for i, ch := range d.Children {
		res.Children = append(res.Children, c.child(fmt.Sprintf("children[%d]", i), ch))
	}
	res.Warnings = c.warnings
	return res
}

type converter struct {
	warnings []error
}

func (c *converter) fallback(path string, got, fallback any) {
	errors.Fallback("style.Convert", path, got, fallback)
	c.warnings = append(c.warnings, &errors.LayoutError{
		Op:   "style.Convert",
		Kind: errors.KindConfig,
		Path: path,
		Err:  &errors.ValueError{Field: path, Got: got, Fallback: fallback},
	})
}

func (c *converter) insets(path string, in Insets) graphics.EdgeInsets {
	side := func(name string, v *float64) float64 {
		if v == nil {
			return in.All
		}
		if *v < 0 {
			c.fallback(path+"."+name, *v, 0)
			return 0
		}
		return *v
	}
	if in.All < 0 {
		c.fallback(path+".all", in.All, 0)
		in.All = 0
	}
	return graphics.EdgeInsets{
		Left:   side("left", in.Left),
		Top:    side("top", in.Top),
		Right:  side("right", in.Right),
		Bottom: side("bottom", in.Bottom),
	}
}

func (c *converter) color(path, s string, def graphics.Color) graphics.Color {
	if s == "" {
		return def
	}
	col, err := ParseColor(s)
	if err != nil {
		c.fallback(path, s, fmt.Sprintf("#%08X", uint32(def)))
		return def
	}
	return col
}

func (c *converter) corners(path string, names []string) cut.CornerFlag {
	f, unknown := cut.ParseCornerFlags(names)
	for _, n := range unknown {
		c.fallback(path, n, "ignored")
	}
	return f
}

func (c *converter) override(path string, d CutDoc) cut.Override {
	var o cut.Override
	if d.Type != "" {
		t, ok := cut.ParseType(d.Type)
		if !ok {
			c.fallback(path+".type", d.Type, t)
		}
		o.Type = &t
	}
	if d.Depth != nil {
		if dim, err := ParseDimension(d.Depth); err != nil {
			c.fallback(path+".depth", d.Depth, 0)
		} else {
			o.Depth = &dim
		}
	}
	if d.Length != nil {
		if dim, err := ParseDimension(d.Length); err != nil {
			c.fallback(path+".length", d.Length, 0)
		} else {
			o.Length = &dim
		}
	}
	if d.Radius != nil {
		r := *d.Radius
		if r < 0 {
			c.fallback(path+".radius", r, 0)
			r = 0
		}
		o.Radius = &r
	}
	if d.Rotation != nil {
		r := *d.Rotation
		o.Rotation = &r
	}
	return o
}

func (c *converter) cornerMap(path string, m map[string]CutDoc) map[cut.CornerFlag]cut.Override {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[cut.CornerFlag]cut.Override, len(m))
	for _, k := range keys {
		corner, ok := cut.ParseCorner(k)
		if !ok {
			c.fallback(path+"."+k, k, "ignored")
			continue
		}
		out[corner] = c.override(path+"."+k, m[k])
	}
	return out
}

func (c *converter) shadow(d ShadowDoc) shadow.Spec {
	s := shadow.Spec{
		Color:                c.color("shadow.color", d.Color, 0),
		Radius:               d.Radius,
		OffsetX:              d.OffsetX,
		OffsetY:              d.OffsetY,
		AutoPadding:          d.AutoPadding,
		AllowOverUserPadding: d.AllowOverUserPadding,
	}
	if s.Radius < 0 {
		c.fallback("shadow.radius", d.Radius, 0)
		s.Radius = 0
	}
	return s
}

func (c *converter) divider(d DividerDoc) divider.Spec {
	s := divider.Spec{
		Color:        c.color("divider.color", d.Color, 0),
		Thickness:    d.Thickness,
		DashWidth:    d.DashWidth,
		DashGap:      d.DashGap,
		PaddingStart: d.PaddingStart,
		PaddingEnd:   d.PaddingEnd,
	}
	var ok bool
	if s.Cap, ok = parseCap(d.Cap); !ok {
		c.fallback("divider.cap", d.Cap, s.Cap)
	}
	if s.Gravity, ok = divider.ParseGravity(d.Gravity); !ok {
		c.fallback("divider.gravity", d.Gravity, s.Gravity)
	}
	var unknown []string
	s.Show, unknown = divider.ParseShow(d.Show)
	for _, n := range unknown {
		c.fallback("divider.show", n, "ignored")
	}
	if s.Thickness < 0 {
		c.fallback("divider.thickness", d.Thickness, 0)
		s.Thickness = 0
	}
	return s
}

func (c *converter) side(path string, d SideDoc) cut.SideParams {
	return cut.SideParams{
		Override:     c.override(path+".cut", d.Cut),
		DepthOffset:  d.DepthOffset,
		LengthOffset: d.LengthOffset,
		Rotation:     d.Rotation,
	}
}

func (c *converter) child(path string, d ChildDoc) layout.Child {
	ch := layout.Child{
		Size:   graphics.Size{Width: d.Width, Height: d.Height},
		Margin: c.insets(path+".margin", d.Margin),
		Weight: d.Weight,
		Params: cut.ChildParams{
			Corners: c.cornerMap(path+".corners", d.Corners),
			Start:   c.side(path+".start", d.Start),
			End:     c.side(path+".end", d.End),
			Edge: cut.EdgeOverride{
				OverrideParentContact: d.OverrideParentContact,
				OverrideParentType:    d.OverrideParentType,
			},
			MirrorEndFromStart: d.MirrorEndFromStart,
		},
	}
	if ch.Size.Width < 0 {
		c.fallback(path+".width", d.Width, 0)
		ch.Size.Width = 0
	}
	if ch.Size.Height < 0 {
		c.fallback(path+".height", d.Height, 0)
		ch.Size.Height = 0
	}
	if ch.Weight < 0 {
		c.fallback(path+".weight", d.Weight, 0)
		ch.Weight = 0
	}
	return ch
}

// Layout returns a laid-out container at the origin sized to the result.
func (r *Result) Layout() *layout.CutLinearLayout {
	l := layout.New(r.Config)
	l.SetChildren(r.Children)
	l.Layout(graphics.RectFromLTWH(0, 0, r.Size.Width, r.Size.Height))
	return l
}
