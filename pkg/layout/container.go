// Package layout provides CutLinearLayout, a linear container whose
// silhouette and children carry decorative corner cuts, with a synthetic
// drop shadow and overlay dividers derived from the cut outline.
package layout

import (
	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/divider"
	"github.com/go-drift/cutlinear/pkg/graphics"
	"github.com/go-drift/cutlinear/pkg/logx"
	"github.com/go-drift/cutlinear/pkg/outline"
	"github.com/go-drift/cutlinear/pkg/shadow"
)

// Config is the container-wide configuration.
type Config struct {
	Orientation    cut.Orientation
	Direction      cut.Direction
	Padding        graphics.EdgeInsets
	Background     graphics.Color
	Alignment      MainAxisAlignment
	CrossAlignment CrossAxisAlignment

	Corners  cut.CornerConfig
	Children cut.ChildDefaults
	Shadow   shadow.Spec
	Divider  divider.Spec

	Providers       outline.Providers
	DividerProvider divider.Provider
}

// CutLinearLayout arranges children linearly and derives the cut outline,
// shadow and dividers from its configuration.
//
// Derived geometry is rebuilt lazily after InvalidateCutoutPath. There is
// no dependency tracking: callers changing anything through Config must
// invalidate, which SetConfig, SetChildren, Layout and SetChildBounds do
// for them. A CutLinearLayout is not safe for concurrent use, and providers
// must not change the layout while it is being built.
type CutLinearLayout struct {
	config   Config
	children []Child

	bounds      graphics.Rect
	padding     graphics.EdgeInsets
	padded      graphics.Rect
	childBounds []graphics.Rect
	hostBounds  bool

	builder  *outline.Builder
	dirty    bool
	building bool

	corners  cut.Corners
	cuts     []cut.ChildCuts
	outline  *outline.Outline
	shadow   *shadow.Shadow
	dividers []divider.Divider
}

// New returns a layout with the given configuration and no children.
func New(cfg Config) *CutLinearLayout {
	return &CutLinearLayout{
		config:  cfg,
		builder: outline.NewBuilder(),
		outline: &outline.Outline{Path: graphics.NewPath()},
		dirty:   true,
	}
}

// Config returns the current configuration.
func (l *CutLinearLayout) Config() Config {
	return l.config
}

// SetConfig replaces the configuration and re-runs layout for the current
// bounds.
func (l *CutLinearLayout) SetConfig(cfg Config) {
	if l.rejectDuringBuild("SetConfig") {
		return
	}
	l.config = cfg
	l.Layout(l.bounds)
}

// SetChildren replaces the children. Host-supplied bounds are dropped.
func (l *CutLinearLayout) SetChildren(children []Child) {
	if l.rejectDuringBuild("SetChildren") {
		return
	}
	l.children = append([]Child(nil), children...)
	l.hostBounds = false
	l.Layout(l.bounds)
}

// Children returns a copy of the children.
func (l *CutLinearLayout) Children() []Child {
	return append([]Child(nil), l.children...)
}

// ChildCount returns the number of children.
func (l *CutLinearLayout) ChildCount() int {
	return len(l.children)
}

// Layout sets the container bounds, computes the effective padding and,
// unless the host supplied child bounds, arranges the children.
func (l *CutLinearLayout) Layout(bounds graphics.Rect) {
	if l.rejectDuringBuild("Layout") {
		return
	}
	l.bounds = bounds
	user := l.config.Padding.Max(graphics.EdgeInsets{})
	l.padding = shadow.EffectivePadding(user, l.config.Shadow)
	l.padded = bounds.Deflate(l.padding)
	if !l.hostBounds {
		l.childBounds = Arrange(l.frame(), l.children, l.config.Alignment, l.config.CrossAlignment)
	}
	l.InvalidateCutoutPath()
}

// SetChildBounds accepts content bounds measured by the host, one per
// child in layout order. Bounds for missing children are zero.
func (l *CutLinearLayout) SetChildBounds(bounds []graphics.Rect) {
	if l.rejectDuringBuild("SetChildBounds") {
		return
	}
	l.childBounds = make([]graphics.Rect, len(l.children))
	copy(l.childBounds, bounds)
	l.hostBounds = true
	l.InvalidateCutoutPath()
}

// ChildBounds returns the content bounds of every child.
func (l *CutLinearLayout) ChildBounds() []graphics.Rect {
	return append([]graphics.Rect(nil), l.childBounds...)
}

// InvalidateCutoutPath marks the derived geometry stale. A call made while
// the geometry is being built is ignored.
func (l *CutLinearLayout) InvalidateCutoutPath() {
	if l.rejectDuringBuild("InvalidateCutoutPath") {
		return
	}
	l.dirty = true
}

func (l *CutLinearLayout) rejectDuringBuild(op string) bool {
	if l.building {
		logx.Logger().Warn("layout changed during cutout build; ignored", "op", op)
	}
	return l.building
}

// Bounds returns the container bounds.
func (l *CutLinearLayout) Bounds() graphics.Rect {
	return l.bounds
}

// Padding returns the effective padding, including room reserved for the
// shadow.
func (l *CutLinearLayout) Padding() graphics.EdgeInsets {
	return l.padding
}

// PaddedBounds returns the bounds minus the effective padding.
func (l *CutLinearLayout) PaddedBounds() graphics.Rect {
	return l.padded
}

// VisibleAreaPath returns a copy of the container's visible-area path.
func (l *CutLinearLayout) VisibleAreaPath() *graphics.Path {
	l.ensure()
	return l.outline.Path.Copy()
}

// ChildPaths returns copies of the per-child outlines in layout order.
func (l *CutLinearLayout) ChildPaths() []*graphics.Path {
	l.ensure()
	out := make([]*graphics.Path, len(l.outline.Children))
	for i, p := range l.outline.Children {
		out[i] = p.Copy()
	}
	return out
}

// Segments describes what was emitted for each parent corner and contact.
func (l *CutLinearLayout) Segments() []outline.Segment {
	l.ensure()
	return append([]outline.Segment(nil), l.outline.Segments...)
}

// CornerCuts returns the resolved parent corners.
func (l *CutLinearLayout) CornerCuts() cut.Corners {
	l.ensure()
	return l.corners
}

// ChildCuts returns the resolved corners of every child.
func (l *CutLinearLayout) ChildCuts() []cut.ChildCuts {
	l.ensure()
	return append([]cut.ChildCuts(nil), l.cuts...)
}

// Shadow returns the built shadow. The result must not be modified.
func (l *CutLinearLayout) Shadow() *shadow.Shadow {
	l.ensure()
	return l.shadow
}

// Dividers returns the divider geometry.
func (l *CutLinearLayout) Dividers() []divider.Divider {
	l.ensure()
	return append([]divider.Divider(nil), l.dividers...)
}

// Paint draws the shadow, the background clipped to the visible area, and
// the dividers. Children are painted by the host.
func (l *CutLinearLayout) Paint(canvas graphics.Canvas) {
	l.ensure()
	if !l.shadow.IsEmpty() {
		clip := l.bounds
		if !l.config.Shadow.AllowOverUserPadding {
			clip = l.bounds.Deflate(l.config.Padding.Max(graphics.EdgeInsets{}))
		}
		clipPath := graphics.NewPath()
		clipPath.AddRect(clip)
		canvas.Save()
		canvas.ClipPath(clipPath)
		l.shadow.Paint(canvas)
		canvas.Restore()
	}
	if l.config.Background.Alpha() > 0 && !l.outline.Path.IsEmpty() {
		canvas.Save()
		canvas.ClipPath(l.outline.Path)
		canvas.DrawRect(l.outline.Path.Bounds(), graphics.FillPaint(l.config.Background))
		canvas.Restore()
	}
	divider.Paint(canvas, l.dividers, l.config.Divider)
}

func (l *CutLinearLayout) frame() cut.Frame {
	return cut.Frame{Bounds: l.padded, Orientation: l.config.Orientation, Direction: l.config.Direction}
}

func (l *CutLinearLayout) ensure() {
	if l.dirty && !l.building {
		l.rebuild()
	}
}

func (l *CutLinearLayout) rebuild() {
	l.building = true
	defer func() { l.building = false }()

	f := l.frame()
	n := len(l.children)
	params := make([]cut.ChildParams, n)
	geoms := make([]cut.ChildGeometry, n)
	inputs := make([]outline.ChildInput, n)
	dchildren := make([]divider.Child, n)
	for i, c := range l.children {
		var content graphics.Rect
		if i < len(l.childBounds) {
			content = l.childBounds[i]
		}
		box := content.Inflate(c.Margin)
		ms, me := f.MainSpan(box)
		params[i] = c.Params
		geoms[i] = cut.ChildGeometry{
			MainExtent:   me - ms,
			AlignedStart: ms <= alignEpsilon,
			AlignedEnd:   me >= f.MainExtent()-alignEpsilon,
		}
		inputs[i] = outline.ChildInput{Box: box, OverrideParentContact: c.Params.Edge.OverrideParentContact}
		dchildren[i] = divider.Child{Bounds: content, Box: box}
	}

	edges := cut.EdgeCandidates(l.config.Children, params, geoms)
	l.corners = cut.ResolveCorners(l.config.Corners, f, edges)
	l.cuts = cut.ResolveChildren(l.config.Children, params, geoms, f, l.corners)
	for i := range inputs {
		inputs[i].Cuts = l.cuts[i]
	}

	l.outline = l.builder.Build(outline.Input{
		View:      l,
		Frame:     f,
		Corners:   l.corners,
		Children:  inputs,
		Providers: l.config.Providers,
	})
	l.shadow = shadow.Build(l.outline.Path, l.config.Shadow)
	l.dividers = divider.Build(f, dchildren, l.config.Divider, l.config.DividerProvider)
	l.dirty = false
	logx.Logger().Debug("cutout path rebuilt", "children", n, "commands", len(l.outline.Path.Commands))
}

// alignEpsilon is how close a margin box must come to the padded edge to
// count as edge-aligned.
const alignEpsilon = 0.5

var _ outline.View = (*CutLinearLayout)(nil)
