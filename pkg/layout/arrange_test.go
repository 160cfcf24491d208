package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

func row() cut.Frame {
	return cut.Frame{Bounds: graphics.RectFromLTWH(0, 0, 300, 100)}
}

func sized(w, h float64) Child {
	return Child{Size: graphics.Size{Width: w, Height: h}}
}

func TestArrangeSequentialWithMargins(t *testing.T) {
	children := []Child{sized(50, 40), sized(50, 40)}
	for i := range children {
		children[i].Margin = graphics.EdgeInsets{Left: 2, Right: 3}
	}
	got := Arrange(row(), children, MainAxisAlignmentStart, CrossAxisAlignmentStretch)
	assert.Equal(t, []graphics.Rect{
		graphics.RectFromLTWH(2, 0, 50, 100),
		graphics.RectFromLTWH(57, 0, 50, 100),
	}, got)
}

func TestArrangeRTLStartsAtRight(t *testing.T) {
	f := row()
	f.Direction = cut.RTL
	c := sized(50, 40)
	c.Margin = graphics.EdgeInsets{Left: 2, Right: 3}
	got := Arrange(f, []Child{c}, MainAxisAlignmentStart, CrossAxisAlignmentStart)
	assert.Equal(t, graphics.RectFromLTWH(247, 0, 50, 40), got[0])
}

func TestArrangeAlignment(t *testing.T) {
	children := []Child{sized(50, 40), sized(50, 40)}
	tests := []struct {
		alignment MainAxisAlignment
		first     float64
		second    float64
	}{
		{MainAxisAlignmentStart, 0, 50},
		{MainAxisAlignmentEnd, 200, 250},
		{MainAxisAlignmentCenter, 100, 150},
		{MainAxisAlignmentSpaceBetween, 0, 250},
		{MainAxisAlignmentSpaceAround, 50, 200},
		{MainAxisAlignmentSpaceEvenly, 200.0 / 3, 200.0/3*2 + 50},
	}
	for _, tt := range tests {
		t.Run(tt.alignment.String(), func(t *testing.T) {
			got := Arrange(row(), children, tt.alignment, CrossAxisAlignmentStretch)
			assert.InDelta(t, tt.first, got[0].Left, 1e-9)
			assert.InDelta(t, tt.second, got[1].Left, 1e-9)
		})
	}
}

func TestArrangeCrossAlignment(t *testing.T) {
	c := sized(50, 40)
	center := Arrange(row(), []Child{c}, MainAxisAlignmentStart, CrossAxisAlignmentCenter)
	assert.Equal(t, graphics.RectFromLTWH(0, 30, 50, 40), center[0])
	end := Arrange(row(), []Child{c}, MainAxisAlignmentStart, CrossAxisAlignmentEnd)
	assert.Equal(t, graphics.RectFromLTWH(0, 60, 50, 40), end[0])
}

func TestArrangeWeights(t *testing.T) {
	children := []Child{sized(100, 10), {Weight: 1}, {Weight: 3}}
	got := Arrange(row(), children, MainAxisAlignmentStart, CrossAxisAlignmentStretch)
	assert.Equal(t, 50.0, got[1].Width())
	assert.Equal(t, 150.0, got[2].Width())
	assert.Equal(t, 300.0, got[2].Right)
}

func TestArrangeVertical(t *testing.T) {
	f := cut.Frame{Bounds: graphics.RectFromLTWH(0, 0, 100, 300), Orientation: cut.Vertical}
	got := Arrange(f, []Child{sized(40, 50), sized(40, 60)}, MainAxisAlignmentStart, CrossAxisAlignmentStart)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 40, 50), got[0])
	assert.Equal(t, graphics.RectFromLTWH(0, 50, 40, 60), got[1])
}

func TestParseAlignments(t *testing.T) {
	a, ok := ParseMainAxisAlignment("space_evenly")
	assert.True(t, ok)
	assert.Equal(t, MainAxisAlignmentSpaceEvenly, a)
	_, ok = ParseMainAxisAlignment("sideways")
	assert.False(t, ok)

	c, ok := ParseCrossAxisAlignment("")
	assert.True(t, ok)
	assert.Equal(t, CrossAxisAlignmentStretch, c)
	assert.Equal(t, "center", CrossAxisAlignmentCenter.String())
}
