package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/cutlinear/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "path",
		Short: "Print the visible-area path as SVG",
		Long: `Print the visible-area path of a style file as SVG path data.

Flags:
  --children           Also print one path per child
  --svg                Wrap the paths in a standalone SVG document
  --width N            Override the layout width
  --height N           Override the layout height`,
		Usage: "cutlinear path <style-file> [flags]",
		Run:   runPath,
	})
}

func runPath(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("style file is required\n\nUsage: cutlinear path <style-file> [flags]")
	}
	path := args[0]
	var (
		size     sizeFlags
		children bool
		document bool
	)
	for i := 1; i < len(args); i++ {
		if ok, err := size.parse(args, &i); ok {
			if err != nil {
				return err
			}
			continue
		}
		switch args[i] {
		case "--children":
			children = true
		case "--svg":
			document = true
		default:
			return fmt.Errorf("unknown flag %q", args[i])
		}
	}

	res, l, err := loadLayout(path, size)
	if err != nil {
		return err
	}

	paths := []*graphics.Path{l.VisibleAreaPath()}
	if children {
		paths = append(paths, l.ChildPaths()...)
	}
	if document {
		fmt.Fprint(stdout, svgDocument(res.Size, paths))
		return nil
	}
	for _, p := range paths {
		fmt.Fprintln(stdout, p.SVG())
	}
	return nil
}

func svgDocument(size graphics.Size, paths []*graphics.Path) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\">\n",
		size.Width, size.Height, size.Width, size.Height)
	for i, p := range paths {
		fill := "black"
		if i > 0 {
			fill = "none\" stroke=\"red"
		}
		fmt.Fprintf(&sb, "  <path fill=\"%s\" d=\"%s\"/>\n", fill, p.SVG())
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}
