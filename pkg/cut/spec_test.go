package cut

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensionResolve(t *testing.T) {
	assert.Equal(t, 12.0, Px(12).Resolve(100))
	assert.Equal(t, 25.0, Fraction(0.25).Resolve(100))
	assert.Equal(t, 0.0, Px(-4).Resolve(100))
	assert.Equal(t, 0.0, Px(math.NaN()).Resolve(100))
	assert.Equal(t, 50.0, Dimension{Value: 3, Fraction: 0.5}.Resolve(100))
}

func TestSpecResolveClamps(t *testing.T) {
	lim := Limits{MainExtent: 40, CrossExtent: 20, MaxDepth: 20, MaxLength: 10}
	r := Spec{Type: RectangleInverse, Depth: Px(100), Length: Px(100), Radius: 50, Rotation: -90}.Resolve(lim)
	assert.Equal(t, 20.0, r.Depth)
	assert.Equal(t, 10.0, r.Length)
	assert.Equal(t, 10.0, r.Radius)
	assert.Equal(t, 270.0, r.Rotation)

	r = Spec{Type: Type(99), Depth: Px(5), Length: Px(5), Radius: -1}.Resolve(lim)
	assert.Equal(t, None, r.Type)
	assert.Equal(t, 0.0, r.Radius)
}

func TestResolvedActive(t *testing.T) {
	assert.False(t, Resolved{Type: None, Depth: 4, Length: 4}.Active())
	assert.False(t, Resolved{Type: Oval, Depth: 0, Length: 4}.Active())
	assert.True(t, Resolved{Type: Oval, Depth: 4, Length: 4}.Active())
	assert.True(t, Resolved{Type: Custom}.Active())
}

func TestChainPrecedence(t *testing.T) {
	base := Spec{Type: Oval, Depth: Px(10), Length: Px(10), Radius: 2}
	depth := Px(4)
	got := Chain(base, TypeOverride(Bevel), Override{Depth: &depth}, TypeOverride(Rectangle))
	assert.Equal(t, Rectangle, got.Type)
	assert.Equal(t, Px(4), got.Depth)
	assert.Equal(t, Px(10), got.Length)
	assert.Equal(t, 2.0, got.Radius)
	assert.True(t, Override{}.IsZero())
	assert.False(t, SpecOverride(base).IsZero())
}
