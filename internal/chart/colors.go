package chart

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/vg"
)

// letterColors are the matplotlib single-letter aliases accepted in the
// colors file and in style settings.
var letterColors = map[string]string{
	"b": "blue",
	"g": "green",
	"r": "red",
	"c": "cyan",
	"m": "magenta",
	"y": "yellow",
	"k": "black",
	"w": "white",
}

// lookupColor resolves a color name against the SVG 1.1 color set, with
// matplotlib letter aliases.
func lookupColor(name string) (color.RGBA, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if full, ok := letterColors[n]; ok {
		n = full
	}
	c, ok := colornames.Map[n]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// withAlpha applies an opacity in [0, 1] to a color.
func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}

// dashPattern maps a matplotlib line-style string to a dash sequence.
// The solid style has no dashes.
func dashPattern(style string) ([]vg.Length, error) {
	switch style {
	case "-":
		return nil, nil
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(6)}, nil
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(3)}, nil
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLineStyle, style)
}
