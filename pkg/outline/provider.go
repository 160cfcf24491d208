package outline

import (
	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

// View is the read-only surface providers see of the container being built.
type View interface {
	PaddedBounds() graphics.Rect
	ChildCount() int
}

// CornerCutProvider replaces the shape of a parent corner cut.
//
// ProvideCornerCut appends the corner's segments to acc in screen
// coordinates, starting near the cut's first edge point and ending near its
// last, and reports whether it accepted the corner. A declined corner falls
// back to the built-in shape for its type. rect is the cut rectangle
// spanned by the apex and the inner corner.
type CornerCutProvider interface {
	ProvideCornerCut(view View, acc *graphics.Path, corner cut.CornerFlag, rect graphics.Rect) bool
}

// CornerCutTransformer is implemented by corner providers that want their
// output transformed before it joins the outline.
type CornerCutTransformer interface {
	CornerCutTransform(view View, corner cut.CornerFlag, rect graphics.Rect) (graphics.Matrix, bool)
}

// CutoutProvider replaces the shape of a child cut, on the container
// silhouette and in the child's own outline. child is the layout index.
type CutoutProvider interface {
	ProvideCutout(view View, acc *graphics.Path, child int, corner cut.CornerFlag, rect graphics.Rect) bool
}

// CutoutTransformer is the optional transform hook for cutout providers.
type CutoutTransformer interface {
	CutoutTransform(view View, child int, corner cut.CornerFlag, rect graphics.Rect) (graphics.Matrix, bool)
}

// ViewAreaProvider replaces the whole visible-area path. The default
// outline has already been built when it is called.
type ViewAreaProvider interface {
	ProvideViewArea(view View, acc *graphics.Path, bounds graphics.Rect) bool
}

// Providers groups the optional hooks consulted during a build. They are
// called directly: a provider that panics unwinds through Build to its
// caller.
type Providers struct {
	CornerCut CornerCutProvider
	Cutout    CutoutProvider
	ViewArea  ViewAreaProvider
}

// CornerCutFunc adapts a function to CornerCutProvider.
type CornerCutFunc func(view View, acc *graphics.Path, corner cut.CornerFlag, rect graphics.Rect) bool

// ProvideCornerCut calls f.
func (f CornerCutFunc) ProvideCornerCut(view View, acc *graphics.Path, corner cut.CornerFlag, rect graphics.Rect) bool {
	return f(view, acc, corner, rect)
}

// CornerCutHooks is a CornerCutProvider built from optional functions.
// A nil Provide declines every corner.
type CornerCutHooks struct {
	Provide   func(view View, acc *graphics.Path, corner cut.CornerFlag, rect graphics.Rect) bool
	Transform func(view View, corner cut.CornerFlag, rect graphics.Rect) (graphics.Matrix, bool)
}

func (h CornerCutHooks) ProvideCornerCut(view View, acc *graphics.Path, corner cut.CornerFlag, rect graphics.Rect) bool {
	return h.Provide != nil && h.Provide(view, acc, corner, rect)
}

func (h CornerCutHooks) CornerCutTransform(view View, corner cut.CornerFlag, rect graphics.Rect) (graphics.Matrix, bool) {
	if h.Transform == nil {
		return graphics.Identity(), false
	}
	return h.Transform(view, corner, rect)
}

// CutoutFunc adapts a function to CutoutProvider.
type CutoutFunc func(view View, acc *graphics.Path, child int, corner cut.CornerFlag, rect graphics.Rect) bool

// ProvideCutout calls f.
func (f CutoutFunc) ProvideCutout(view View, acc *graphics.Path, child int, corner cut.CornerFlag, rect graphics.Rect) bool {
	return f(view, acc, child, corner, rect)
}

// ViewAreaFunc adapts a function to ViewAreaProvider.
type ViewAreaFunc func(view View, acc *graphics.Path, bounds graphics.Rect) bool

// ProvideViewArea calls f.
func (f ViewAreaFunc) ProvideViewArea(view View, acc *graphics.Path, bounds graphics.Rect) bool {
	return f(view, acc, bounds)
}

// hook is one provider call bound to a specific cut.
type hook struct {
	provide   func(acc *graphics.Path, rect graphics.Rect) bool
	transform func(rect graphics.Rect) (graphics.Matrix, bool)
}

func cornerHook(view View, p CornerCutProvider, corner cut.CornerFlag) *hook {
	if p == nil {
		return nil
	}
	h := &hook{provide: func(acc *graphics.Path, rect graphics.Rect) bool {
		return p.ProvideCornerCut(view, acc, corner, rect)
	}}
	if t, ok := p.(CornerCutTransformer); ok {
		h.transform = func(rect graphics.Rect) (graphics.Matrix, bool) {
			return t.CornerCutTransform(view, corner, rect)
		}
	}
	return h
}

func cutoutHook(view View, p CutoutProvider, child int, corner cut.CornerFlag) *hook {
	if p == nil {
		return nil
	}
	h := &hook{provide: func(acc *graphics.Path, rect graphics.Rect) bool {
		return p.ProvideCutout(view, acc, child, corner, rect)
	}}
	if t, ok := p.(CutoutTransformer); ok {
		h.transform = func(rect graphics.Rect) (graphics.Matrix, bool) {
			return t.CutoutTransform(view, child, corner, rect)
		}
	}
	return h
}

