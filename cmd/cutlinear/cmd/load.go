package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/cutlinear/pkg/layout"
	"github.com/go-drift/cutlinear/pkg/style"
)

// sizeFlags are the --width and --height overrides shared by commands that
// lay out a style file.
type sizeFlags struct {
	width, height float64
}

// parse consumes a size flag at args[i], reporting whether it was one.
func (s *sizeFlags) parse(args []string, i *int) (bool, error) {
	for _, f := range []struct {
		name string
		dst  *float64
	}{{"--width", &s.width}, {"--height", &s.height}} {
		v, ok, err := flagValue(args, i, f.name)
		if err != nil {
			return true, err
		}
		if !ok {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil || n <= 0 {
			return true, fmt.Errorf("%s must be a positive number, got %q", f.name, v)
		}
		*f.dst = n
		return true, nil
	}
	return false, nil
}

// loadLayout reads a style file and lays it out.
func loadLayout(path string, size sizeFlags) (*style.Result, *layout.CutLinearLayout, error) {
	doc, err := style.Load(path)
	if err != nil {
		return nil, nil, err
	}
	res := doc.Convert()
	if size.width > 0 {
		res.Size.Width = size.width
	}
	if size.height > 0 {
		res.Size.Height = size.height
	}
	return res, res.Layout(), nil
}
