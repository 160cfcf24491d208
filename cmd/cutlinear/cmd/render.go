package cmd

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/cutlinear/pkg/errors"
	"github.com/go-drift/cutlinear/pkg/graphics"
	"github.com/go-drift/cutlinear/pkg/style"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a style file to PNG",
		Long: `Render the layout described by a style file to a PNG image.

The shadow, background and dividers are painted in that order. Children
are drawn as outlines only.

Flags:
  -o, --output FILE    Output path (default: <style name>.png)
  --width N            Override the layout width
  --height N           Override the layout height
  --clear COLOR        Fill the image before painting (default: transparent)
  --no-children        Do not outline the children`,
		Usage: "cutlinear render <style-file> [flags]",
		Run:   runRender,
	})
}

type renderOptions struct {
	output     string
	size       sizeFlags
	clear      graphics.Color
	noChildren bool
}

func runRender(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("style file is required\n\nUsage: cutlinear render <style-file> [flags]")
	}
	path := args[0]
	opts := renderOptions{}

	for i := 1; i < len(args); i++ {
		if ok, err := opts.size.parse(args, &i); ok {
			if err != nil {
				return err
			}
			continue
		}
		switch {
		case args[i] == "-o":
			if i+1 >= len(args) {
				return fmt.Errorf("-o requires a file path")
			}
			opts.output = args[i+1]
			i++
		case args[i] == "--no-children":
			opts.noChildren = true
		default:
			if v, ok, err := flagValue(args, &i, "--output"); ok {
				if err != nil {
					return err
				}
				opts.output = v
				continue
			}
			if v, ok, err := flagValue(args, &i, "--clear"); ok {
				if err != nil {
					return err
				}
				c, err := style.ParseColor(v)
				if err != nil {
					return err
				}
				opts.clear = c
				continue
			}
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	res, l, err := loadLayout(path, opts.size)
	if err != nil {
		return err
	}
	if opts.output == "" {
		opts.output = outputName(res.Name, path) + ".png"
	}

	rec := &graphics.PictureRecorder{}
	canvas := rec.BeginRecording(res.Size)
	l.Paint(canvas)
	if !opts.noChildren {
		outlineChildren(canvas, l.ChildPaths())
	}
	picture := rec.EndRecording()

	raster := graphics.NewRasterCanvas(int(math.Ceil(res.Size.Width)), int(math.Ceil(res.Size.Height)))
	raster.Clear(opts.clear)
	picture.Paint(raster)

	if err := writePNG(opts.output, raster); err != nil {
		return &errors.LayoutError{Op: "cmd.render", Kind: errors.KindRender, Path: opts.output, Err: err}
	}
	fmt.Fprintf(stdout, "Rendered %s (%dx%d, %d ops)\n", opts.output,
		raster.Image().Bounds().Dx(), raster.Image().Bounds().Dy(), picture.Len())
	return nil
}

func writePNG(path string, raster *graphics.RasterCanvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, raster.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode: %w", err)
	}
	return f.Close()
}

var childOutline = graphics.StrokePaint(graphics.RGBA(0, 0, 0, 0.35), 1, graphics.CapButt)

func outlineChildren(canvas graphics.Canvas, paths []*graphics.Path) {
	for _, p := range paths {
		if p != nil && !p.IsEmpty() {
			canvas.DrawPath(p, childOutline)
		}
	}
}

// outputName picks a file stem from the style name, or the style file's
// own name when the style is unnamed.
func outputName(name, path string) string {
	if name == "" {
		base := filepath.Base(path)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	return name
}
