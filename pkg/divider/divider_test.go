package divider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

func threeChildren() []Child {
	var out []Child
	for i := 0; i < 3; i++ {
		box := graphics.RectFromLTWH(float64(i)*100, 0, 100, 80)
		out = append(out, Child{Box: box, Bounds: box.Deflate(graphics.EdgeInsets{Left: 4, Right: 6})})
	}
	return out
}

func frame() cut.Frame {
	return cut.Frame{Bounds: graphics.RectFromLTWH(0, 0, 300, 80)}
}

func TestParseShow(t *testing.T) {
	s, unknown := ParseShow([]string{"middle", " Container_End ", "sideways", "none"})
	assert.Equal(t, Middle|ContainerEnd, s)
	assert.Equal(t, []string{"sideways"}, unknown)
	assert.Equal(t, "middle|container_end", s.String())
	assert.Equal(t, "none", ShowNone.String())
}

func TestParseGravity(t *testing.T) {
	g, ok := ParseGravity("CENTER")
	assert.True(t, ok)
	assert.Equal(t, GravityCenter, g)
	g, ok = ParseGravity("")
	assert.True(t, ok)
	assert.Equal(t, GravityStart, g)
	_, ok = ParseGravity("middle")
	assert.False(t, ok)
}

func TestBuildMiddleAndContainerEnd(t *testing.T) {
	spec := Spec{Color: graphics.ColorBlack, Thickness: 2, Show: Middle | ContainerEnd}
	got := Build(frame(), threeChildren(), spec, nil)
	require.Len(t, got, 3)

	assert.Equal(t, Middle, got[0].Position)
	assert.Equal(t, 0, got[0].Child)
	assert.Equal(t, graphics.Offset{X: 100, Y: 0}, got[0].Start)
	assert.Equal(t, graphics.Offset{X: 100, Y: 80}, got[0].End)
	assert.Equal(t, Middle, got[1].Position)
	assert.Equal(t, 200.0, got[1].Start.X)

	assert.Equal(t, ContainerEnd, got[2].Position)
	assert.Equal(t, -1, got[2].Child)
	assert.Equal(t, 299.0, got[2].Start.X)
	for _, d := range got {
		require.Len(t, d.Segments, 1)
		assert.Equal(t, [2]graphics.Offset{d.Start, d.End}, d.Segments[0])
	}
}

func TestBuildChildPositions(t *testing.T) {
	spec := Spec{Thickness: 1, Show: ContainerBeginning | Beginning | End}
	got := Build(frame(), threeChildren(), spec, nil)
	require.Len(t, got, 3)
	assert.Equal(t, 0.5, got[0].Start.X)
	assert.Equal(t, Beginning, got[1].Position)
	assert.Equal(t, 4.0, got[1].Start.X)
	assert.Equal(t, End, got[2].Position)
	assert.Equal(t, 294.0, got[2].Start.X)
	assert.Equal(t, 2, got[2].Child)
}

func TestBuildPaddingAndVertical(t *testing.T) {
	f := cut.Frame{Bounds: graphics.RectFromLTWH(10, 0, 60, 200), Orientation: cut.Vertical, Direction: cut.RTL}
	children := []Child{
		{Box: graphics.RectFromLTWH(10, 0, 60, 100), Bounds: graphics.RectFromLTWH(10, 0, 60, 100)},
		{Box: graphics.RectFromLTWH(10, 100, 60, 100), Bounds: graphics.RectFromLTWH(10, 100, 60, 100)},
	}
	spec := Spec{Thickness: 1, PaddingStart: 5, PaddingEnd: 15, Show: Middle}
	got := Build(f, children, spec, nil)
	require.Len(t, got, 1)
	// Cross axis runs right to left in vertical RTL.
	assert.Equal(t, graphics.Offset{X: 65, Y: 100}, got[0].Start)
	assert.Equal(t, graphics.Offset{X: 25, Y: 100}, got[0].End)
}

func TestBuildDegenerate(t *testing.T) {
	assert.Nil(t, Build(frame(), threeChildren(), Spec{Thickness: 1}, nil))
	assert.Nil(t, Build(frame(), threeChildren(), Spec{Show: Middle}, nil))
	assert.Nil(t, Build(frame(), threeChildren(), Spec{Thickness: 1, PaddingStart: 50, PaddingEnd: 40, Show: Middle}, nil))

	got := Build(frame(), nil, Spec{Thickness: 1, Show: Middle | ContainerBeginning}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, ContainerBeginning, got[0].Position)
}

func TestDashes(t *testing.T) {
	assert.Equal(t, [][2]float64{{0, 50}}, Dashes(50, 0, 4, GravityCenter))
	assert.Nil(t, Dashes(5, 10, 2, GravityStart))

	start := Dashes(100, 12, 5, GravityStart)
	require.Len(t, start, 6)
	assert.Equal(t, [2]float64{0, 12}, start[0])
	assert.Equal(t, [2]float64{85, 97}, start[5])

	center := Dashes(100, 12, 5, GravityCenter)
	assert.Equal(t, [2]float64{1.5, 13.5}, center[0])
	assert.Equal(t, [2]float64{86.5, 98.5}, center[5])

	end := Dashes(100, 12, 5, GravityEnd)
	assert.Equal(t, [2]float64{3, 15}, end[0])
	assert.Equal(t, [2]float64{88, 100}, end[5])
}

func TestBuildDashedSegments(t *testing.T) {
	spec := Spec{Thickness: 1, DashWidth: 10, DashGap: 10, Gravity: GravityCenter, Show: Middle}
	got := Build(frame(), threeChildren(), spec, nil)
	require.Len(t, got, 2)
	// 80 fits four dashes with 10 left over, split around them.
	require.Len(t, got[0].Segments, 4)
	assert.Equal(t, graphics.Offset{X: 100, Y: 5}, got[0].Segments[0][0])
	assert.Equal(t, graphics.Offset{X: 100, Y: 75}, got[0].Segments[3][1])
}

func TestProviderReplacesPath(t *testing.T) {
	spec := Spec{Color: graphics.ColorBlack, Thickness: 2, Show: Middle}
	provider := ProviderFunc(func(acc *graphics.Path, d Divider) bool {
		if d.Child != 0 {
			return false
		}
		acc.MoveTo(d.Start.X, d.Start.Y)
		acc.QuadTo(d.Start.X+10, 40, d.End.X, d.End.Y)
		return true
	})
	got := Build(frame(), threeChildren(), spec, provider)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Path)
	assert.Nil(t, got[1].Path)

	rec := &graphics.PictureRecorder{}
	Paint(rec.BeginRecording(graphics.Size{Width: 300, Height: 80}), got, spec)
	list := rec.EndRecording()
	paths, paints := list.Paths()
	require.Len(t, paths, 1)
	assert.Equal(t, graphics.PaintStyleStroke, paints[0].Style)
	assert.Equal(t, [][2]graphics.Offset{{{X: 200, Y: 0}, {X: 200, Y: 80}}}, list.Lines())
}
