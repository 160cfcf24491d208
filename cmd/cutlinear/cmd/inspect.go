package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Report the resolved cuts of a style file",
		Long: `Report what a style file resolves to: the corner cuts after
clamping, every outline segment, the dividers and the shadow layers.
Configuration values that fell back to defaults are listed last.

Flags:
  --width N            Override the layout width
  --height N           Override the layout height`,
		Usage: "cutlinear inspect <style-file> [flags]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("style file is required\n\nUsage: cutlinear inspect <style-file> [flags]")
	}
	path := args[0]
	var size sizeFlags
	for i := 1; i < len(args); i++ {
		ok, err := size.parse(args, &i)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	res, l, err := loadLayout(path, size)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Layout: %s (%gx%g, %s, %s)\n", outputName(res.Name, path),
		res.Size.Width, res.Size.Height, res.Config.Orientation, res.Config.Direction)
	fmt.Fprintf(stdout, "Padded: %s\n", formatRect(l.PaddedBounds()))
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Corners:")
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	corners := l.CornerCuts()
	for _, c := range cut.WalkOrder {
		r := corners.At(c)
		fmt.Fprintf(w, "  %s\t%s\tdepth=%g\tlength=%g\tradius=%g\n", c, r.Type, r.Depth, r.Length, r.Radius)
	}
	w.Flush()
	fmt.Fprintln(stdout)

	fmt.Fprintln(stdout, "Segments:")
	w = tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, s := range l.Segments() {
		owner := "parent"
		if s.Child >= 0 {
			owner = fmt.Sprintf("child %d", s.Child)
		}
		provided := ""
		if s.Provided {
			provided = "provided"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", owner, s.Corner, s.Type, formatRect(s.Rect), provided)
	}
	w.Flush()
	fmt.Fprintln(stdout)

	dividers := l.Dividers()
	fmt.Fprintf(stdout, "Dividers: %d\n", len(dividers))
	for _, d := range dividers {
		fmt.Fprintf(stdout, "  %s child=%d (%g,%g)-(%g,%g) pieces=%d\n", d.Position, d.Child,
			d.Start.X, d.Start.Y, d.End.X, d.End.Y, len(d.Segments))
	}

	sh := l.Shadow()
	if sh.IsEmpty() {
		fmt.Fprintln(stdout, "Shadow: none")
	} else {
		fmt.Fprintf(stdout, "Shadow: %d layers, bounds %s\n", len(sh.Layers), formatRect(sh.Bounds()))
	}

	rec := &graphics.PictureRecorder{}
	l.Paint(rec.BeginRecording(res.Size))
	picture := rec.EndRecording()
	fmt.Fprintf(stdout, "Paint: %d ops (%d paths, %d rects, %d lines)\n", picture.Len(),
		picture.Count(graphics.OpPath), picture.Count(graphics.OpRect), picture.Count(graphics.OpLine))

	if len(res.Warnings) > 0 {
		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "Warnings: %d\n", len(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Fprintf(stdout, "  %v\n", w)
		}
	}
	return nil
}

func formatRect(r graphics.Rect) string {
	return fmt.Sprintf("[%g,%g %g,%g]", r.Left, r.Top, r.Right, r.Bottom)
}
