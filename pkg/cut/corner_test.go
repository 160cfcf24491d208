package cut

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/cutlinear/pkg/graphics"
)

func testFrame() Frame {
	return Frame{Bounds: graphics.RectFromLTWH(0, 0, 200, 100)}
}

func TestResolveCornersFlagsGate(t *testing.T) {
	cfg := CornerConfig{
		Flags:   StartTop | EndBottom,
		Default: Spec{Type: Oval, Depth: Px(24), Length: Px(24)},
	}
	got := ResolveCorners(cfg, testFrame(), nil)
	assert.Equal(t, Oval, got.At(StartTop).Type)
	assert.Equal(t, Oval, got.At(EndBottom).Type)
	assert.Equal(t, None, got.At(EndTop).Type)
	assert.Equal(t, None, got.At(StartBottom).Type)
	assert.Equal(t, 24.0, got.At(StartTop).Depth)
}

func TestResolveCornersClampToHalfExtent(t *testing.T) {
	cfg := CornerConfig{
		Flags:   AllCorners,
		Default: Spec{Type: Bevel, Depth: Px(500), Length: Fraction(0.9)},
	}
	got := ResolveCorners(cfg, testFrame(), nil)
	for _, c := range WalkOrder {
		r := got.At(c)
		assert.LessOrEqual(t, r.Depth, 100.0, c.String())
		assert.LessOrEqual(t, r.Length, 50.0, c.String())
	}
}

func TestResolveCornersPrecedence(t *testing.T) {
	radius := 6.0
	cfg := CornerConfig{
		Flags:   AllCorners,
		Default: Spec{Type: Oval, Depth: Px(20), Length: Px(20)},
		Corners: map[CornerFlag]Override{
			StartTop: {Type: typePtr(Bevel)},
			EndTop:   {Radius: &radius},
		},
	}
	edges := map[CornerFlag]EdgeCandidate{
		StartTop:    {Aligned: true, OverrideType: true, Type: RectangleInverse},
		EndTop:      {Aligned: true, OverrideType: true, Type: RectangleInverse},
		StartBottom: {Aligned: false, OverrideType: true, Type: RectangleInverse},
		EndBottom:   {Aligned: true, OverrideType: false, Type: RectangleInverse},
	}
	got := ResolveCorners(cfg, testFrame(), edges)

	// Explicit per-corner type beats the edge child.
	assert.Equal(t, Bevel, got.At(StartTop).Type)
	// Edge child type applies; the explicit radius still comes through.
	assert.Equal(t, RectangleInverse, got.At(EndTop).Type)
	assert.Equal(t, 6.0, got.At(EndTop).Radius)
	// Not aligned or not opted in: global default.
	assert.Equal(t, Oval, got.At(StartBottom).Type)
	assert.Equal(t, Oval, got.At(EndBottom).Type)
}

func TestEdgeChildOverridesTypeOnly(t *testing.T) {
	cfg := CornerConfig{
		Flags:   AllCorners,
		Default: Spec{Type: Oval, Depth: Px(30), Length: Px(18), Radius: 4},
	}
	d := ChildDefaults{Spec: Spec{Type: Bevel, Depth: Px(5), Length: Px(5), Radius: 1}, Flags: AllCorners}
	params := []ChildParams{{Edge: EdgeOverride{OverrideParentType: true}}, {}}
	geoms := []ChildGeometry{{MainExtent: 100, AlignedStart: true}, {MainExtent: 100}}

	got := ResolveCorners(cfg, testFrame(), EdgeCandidates(d, params, geoms))
	st := got.At(StartTop)
	assert.Equal(t, Bevel, st.Type)
	assert.Equal(t, 30.0, st.Depth)
	assert.Equal(t, 18.0, st.Length)
	assert.Equal(t, 4.0, st.Radius)
	// The last child is not end-aligned.
	assert.Equal(t, Oval, got.At(EndTop).Type)
}

func TestEdgeCandidatesEmpty(t *testing.T) {
	assert.Empty(t, EdgeCandidates(ChildDefaults{}, nil, nil))
}

func typePtr(t Type) *Type { return &t }
