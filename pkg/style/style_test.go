package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/divider"
	"github.com/go-drift/cutlinear/pkg/errors"
	"github.com/go-drift/cutlinear/pkg/graphics"
	"github.com/go-drift/cutlinear/pkg/layout"
)

type recordingHandler struct {
	errs []*errors.LayoutError
}

func (h *recordingHandler) HandleError(err *errors.LayoutError) {
	h.errs = append(h.errs, err)
}

func (h *recordingHandler) HandlePanic(*errors.PanicError) {}

func recordErrors(t *testing.T) *recordingHandler {
	t.Helper()
	h := &recordingHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

func TestLoadYAML(t *testing.T) {
	h := recordErrors(t)
	doc, err := Load("testdata/ticket.yaml")
	require.NoError(t, err)
	assert.Equal(t, "ticket", doc.Name)

	res := doc.Convert()
	assert.Empty(t, res.Warnings)
	assert.Empty(t, h.errs)
	assert.Equal(t, graphics.Size{Width: 300, Height: 100}, res.Size)

	cfg := res.Config
	assert.Equal(t, cut.Horizontal, cfg.Orientation)
	assert.Equal(t, layout.MainAxisAlignmentSpaceBetween, cfg.Alignment)
	assert.Equal(t, graphics.EdgeInsets{Left: 12, Top: 8, Right: 8, Bottom: 8}, cfg.Padding)
	assert.Equal(t, graphics.Color(0xFF3366CC), cfg.Background)

	assert.Equal(t, cut.StartTop|cut.EndBottom, cfg.Corners.Flags)
	assert.Equal(t, cut.Oval, cfg.Corners.Default.Type)
	assert.Equal(t, cut.Px(16), cfg.Corners.Default.Depth)
	assert.Equal(t, cut.Fraction(0.25), cfg.Corners.Default.Length)
	require.Contains(t, cfg.Corners.Corners, cut.EndBottom)
	assert.Equal(t, cut.Bevel, *cfg.Corners.Corners[cut.EndBottom].Type)
	assert.Nil(t, cfg.Corners.Corners[cut.EndBottom].Depth)

	assert.Equal(t, cut.AllCorners, cfg.Children.Flags)
	assert.Equal(t, cut.OvalInverse, cfg.Children.Spec.Type)
	assert.True(t, cfg.Children.MirrorEndFromStart)

	assert.Equal(t, 6.0, cfg.Shadow.Radius)
	assert.Equal(t, 2.0, cfg.Shadow.OffsetY)
	assert.True(t, cfg.Shadow.AutoPadding)
	assert.Equal(t, 1.0, cfg.Shadow.Color.Alpha())

	assert.Equal(t, divider.Middle, cfg.Divider.Show)
	assert.Equal(t, divider.GravityCenter, cfg.Divider.Gravity)
	assert.Equal(t, graphics.Color(0x80000000), cfg.Divider.Color)

	require.Len(t, res.Children, 2)
	assert.Equal(t, graphics.Size{Width: 120, Height: 60}, res.Children[0].Size)
	assert.Equal(t, 15.0, res.Children[0].Params.End.Rotation)
	assert.Equal(t, 1, res.Children[1].Weight)
	assert.Equal(t, 4.0, res.Children[1].Margin.Left)
	assert.Equal(t, 0.0, res.Children[1].Margin.Top)
	st := res.Children[1].Params.Corners[cut.StartTop]
	require.NotNil(t, st.Type)
	assert.Equal(t, cut.Rectangle, *st.Type)
	assert.Equal(t, 2.0, *st.Radius)
}

func TestYAMLAndTOMLAgree(t *testing.T) {
	recordErrors(t)
	y, err := Load("testdata/ticket.yaml")
	require.NoError(t, err)
	tm, err := Load("testdata/ticket.toml")
	require.NoError(t, err)

	ry, rt := y.Convert(), tm.Convert()
	assert.Equal(t, ry.Size, rt.Size)
	assert.Equal(t, ry.Config, rt.Config)
	assert.Equal(t, ry.Children, rt.Children)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("testdata/ticket.json")
	var le *errors.LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.KindParsing, le.Kind)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var le *errors.LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.KindConfig, le.Kind)
	assert.True(t, os.IsNotExist(le.Err))
}

func TestDecodeMalformed(t *testing.T) {
	_, err := Decode([]byte("corners: [unclosed"), YAML)
	var le *errors.LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.KindParsing, le.Kind)

	_, err = Decode([]byte("width = = 3"), TOML)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.KindParsing, le.Kind)
}

func TestDecodeVersion(t *testing.T) {
	tests := []struct {
		version string
		ok      bool
	}{
		{"", true},
		{"1.0.0", true},
		{"v1.4.2", true},
		{"1", true},
		{"2.0.0", false},
		{"v0.9.0", false},
		{"one", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			_, err := Decode([]byte("version: \""+tt.version+"\"\n"), YAML)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			var le *errors.LayoutError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, errors.KindConfig, le.Kind)
			assert.Equal(t, "version", le.Path)
		})
	}
}

func TestConvertFallbacks(t *testing.T) {
	h := recordErrors(t)
	doc, err := Decode([]byte(`
orientation: diagonal
background: mauvish
corners:
  flags: [start_top, middle]
  cut:
    type: wavy
    depth: deep
divider:
  gravity: up
  show: [sides]
children:
  - weight: -2
`), YAML)
	require.NoError(t, err)

	res := doc.Convert()
	assert.Len(t, res.Warnings, 8)
	assert.Len(t, h.errs, 8)
	for _, e := range h.errs {
		assert.Equal(t, errors.KindConfig, e.Kind)
		assert.Equal(t, "style.Convert", e.Op)
	}

	assert.Equal(t, cut.Horizontal, res.Config.Orientation)
	assert.Equal(t, graphics.Color(0), res.Config.Background)
	assert.Equal(t, cut.StartTop, res.Config.Corners.Flags)
	assert.Equal(t, cut.None, res.Config.Corners.Default.Type)
	assert.Equal(t, cut.Dimension{}, res.Config.Corners.Default.Depth)
	assert.Equal(t, divider.GravityStart, res.Config.Divider.Gravity)
	assert.Equal(t, divider.ShowNone, res.Config.Divider.Show)
	assert.Equal(t, 0, res.Children[0].Weight)

	var ve *errors.ValueError
	require.ErrorAs(t, res.Warnings[0], &ve)
	assert.Equal(t, "orientation", ve.Field)
	assert.Equal(t, "diagonal", ve.Got)
}

func TestConvertDefaultsSize(t *testing.T) {
	res := (&Document{}).Convert()
	assert.Equal(t, graphics.Size{Width: DefaultWidth, Height: DefaultHeight}, res.Size)
	assert.Empty(t, res.Warnings)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want graphics.Color
		ok   bool
	}{
		{"#3366CC", 0xFF3366CC, true},
		{"#803366cc", 0x803366CC, true},
		{"red", 0xFFFF0000, true},
		{" Navy ", 0xFF000080, true},
		{"#12345", 0, false},
		{"#GGGGGG", 0, false},
		{"nope", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDimension(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want cut.Dimension
		ok   bool
	}{
		{"int", 12, cut.Px(12), true},
		{"int64", int64(3), cut.Px(3), true},
		{"float", 2.5, cut.Px(2.5), true},
		{"percent", "25%", cut.Fraction(0.25), true},
		{"numeric string", "7", cut.Px(7), true},
		{"bad percent", "x%", cut.Dimension{}, false},
		{"negative percent", "-5%", cut.Dimension{}, false},
		{"bool", true, cut.Dimension{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDimension(tt.in)
			if !tt.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultNameFromModule(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/widgets/v2\n\ngo 1.24\n"), 0o644))
	sub := filepath.Join(dir, "styles")
	require.NoError(t, os.Mkdir(sub, 0o755))
	path := filepath.Join(sub, "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: 10\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "widgets", doc.Name)
}

func TestResultLayout(t *testing.T) {
	recordErrors(t)
	doc, err := Load("testdata/ticket.yaml")
	require.NoError(t, err)

	l := doc.Convert().Layout()
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 300, 100), l.Bounds())
	assert.Equal(t, 2, l.ChildCount())
	assert.False(t, l.VisibleAreaPath().IsEmpty())
	assert.Len(t, l.Dividers(), 1)
	assert.False(t, l.Shadow().IsEmpty())
}
