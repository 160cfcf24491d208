package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/cutlinear/pkg/errors"
	"github.com/go-drift/cutlinear/pkg/logx"
)

func captureOutput(t *testing.T) (out, errOut *bytes.Buffer) {
	t.Helper()
	out, errOut = &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
		errors.SetHandler(nil)
		logx.SetLogger(nil)
	})
	return out, errOut
}

func TestExecuteHelpAndVersion(t *testing.T) {
	out, _ := captureOutput(t)
	require.NoError(t, execute(nil))
	assert.Contains(t, out.String(), "Commands:")
	for _, name := range []string{"render", "path", "inspect", "version"} {
		assert.Contains(t, out.String(), name)
	}

	out.Reset()
	require.NoError(t, execute([]string{"--version"}))
	assert.True(t, strings.HasPrefix(out.String(), "cutlinear version "+Version))

	out.Reset()
	require.NoError(t, execute([]string{"version"}))
	assert.Contains(t, out.String(), "style documents: v1.x")
}

func TestExecuteUnknownCommand(t *testing.T) {
	_, errOut := captureOutput(t)
	err := execute([]string{"explode"})
	require.Error(t, err)
	assert.Contains(t, errOut.String(), `unknown command "explode"`)
}

func TestSubcommandHelp(t *testing.T) {
	out, _ := captureOutput(t)
	require.NoError(t, execute([]string{"render", "--help"}))
	assert.Contains(t, out.String(), "cutlinear render <style-file>")
}

func TestPathCommand(t *testing.T) {
	out, _ := captureOutput(t)
	require.NoError(t, execute([]string{"path", "testdata/ticket.yaml", "--children"}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "M"), l)
		assert.True(t, strings.HasSuffix(l, "Z"), l)
	}
}

func TestPathCommandSVGDocument(t *testing.T) {
	out, _ := captureOutput(t)
	require.NoError(t, execute([]string{"path", "testdata/ticket.yaml", "--svg", "--width=200"}))
	assert.Contains(t, out.String(), `width="200" height="100"`)
	assert.Equal(t, 1, strings.Count(out.String(), "<path "))
}

func TestPathCommandRejectsUnknownFlag(t *testing.T) {
	captureOutput(t)
	err := execute([]string{"path", "testdata/ticket.yaml", "--fast"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--fast")
}

func TestRenderCommand(t *testing.T) {
	out, _ := captureOutput(t)
	dst := filepath.Join(t.TempDir(), "ticket.png")
	require.NoError(t, execute([]string{"render", "testdata/ticket.yaml", "-o", dst, "--clear", "white"}))
	assert.Contains(t, out.String(), "Rendered "+dst+" (300x100")

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// Nothing paints inside the user padding.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

func TestRenderCommandBadSize(t *testing.T) {
	captureOutput(t)
	err := execute([]string{"render", "testdata/ticket.yaml", "--width", "-3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--width")
}

func TestInspectCommand(t *testing.T) {
	out, _ := captureOutput(t)
	require.NoError(t, execute([]string{"inspect", "testdata/ticket.yaml"}))
	s := out.String()
	assert.Contains(t, s, "Layout: ticket (300x100, horizontal, ltr)")
	assert.Contains(t, s, "start_top")
	assert.Contains(t, s, "oval")
	assert.Contains(t, s, "bevel")
	assert.Contains(t, s, "Dividers: 1")
	assert.Contains(t, s, "Shadow: ")
	assert.Contains(t, s, "Paint: ")
	assert.NotContains(t, s, "Warnings:")
}

func TestInspectReportsFallbacks(t *testing.T) {
	out, errOut := captureOutput(t)
	path := filepath.Join(t.TempDir(), "odd.yaml")
	require.NoError(t, os.WriteFile(path, []byte("orientation: diagonal\n"), 0o644))

	require.NoError(t, execute([]string{"inspect", path}))
	assert.Contains(t, out.String(), "Warnings: 1")
	assert.Contains(t, errOut.String(), "orientation")
}

func TestLoadErrorsSurface(t *testing.T) {
	captureOutput(t)
	err := execute([]string{"inspect", "testdata/missing.yaml"})
	var le *errors.LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.KindConfig, le.Kind)
}

func TestRenderCommandUnwritableOutput(t *testing.T) {
	captureOutput(t)
	dst := filepath.Join(t.TempDir(), "missing-dir", "out.png")
	err := execute([]string{"render", "testdata/ticket.yaml", "--output=" + dst})
	var le *errors.LayoutError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, errors.KindRender, le.Kind)
	assert.Equal(t, dst, le.Path)
}
