package style

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/cutlinear/pkg/cut"
	"github.com/go-drift/cutlinear/pkg/graphics"
)

// ParseColor accepts #RRGGBB, #AARRGGBB or a CSS color name.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid color %q", s)
		}
		switch len(hex) {
		case 6:
			return graphics.Color(0xFF000000 | uint32(v)), nil
		case 8:
			return graphics.Color(uint32(v)), nil
		default:
			return 0, fmt.Errorf("invalid color %q", s)
		}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return graphics.FromStdColor(c), nil
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// ParseDimension accepts a pixel number or a "NN%" fraction of the extent.
func ParseDimension(v any) (cut.Dimension, error) {
	switch n := v.(type) {
	case int:
		return cut.Px(float64(n)), nil
	case int64:
		return cut.Px(float64(n)), nil
	case uint64:
		return cut.Px(float64(n)), nil
	case float64:
		return cut.Px(n), nil
	case string:
		s := strings.TrimSpace(n)
		if pct, ok := strings.CutSuffix(s, "%"); ok {
			f, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
			if err != nil || f < 0 {
				return cut.Dimension{}, fmt.Errorf("invalid percentage %q", n)
			}
			return cut.Fraction(f / 100), nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return cut.Dimension{}, fmt.Errorf("invalid dimension %q", n)
		}
		return cut.Px(f), nil
	default:
		return cut.Dimension{}, fmt.Errorf("invalid dimension %v", v)
	}
}

func parseCap(name string) (graphics.StrokeCap, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "butt", "":
		return graphics.CapButt, true
	case "round":
		return graphics.CapRound, true
	case "square":
		return graphics.CapSquare, true
	default:
		return graphics.CapButt, false
	}
}
