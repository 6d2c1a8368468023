// Package palette resolves color names used in scene files and demos.
//
// Names are the SVG 1.1 color keywords from golang.org/x/image/colornames
// ("crimson", "lightskyblue", ...) or hex triplets "#rrggbb", "#rrggbbaa"
// and "#rgb".
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Colors used across the demos
var (
	Black         = colornames.Black
	White         = colornames.White
	Gray          = colornames.Gray
	Crimson       = colornames.Crimson
	Tomato        = colornames.Tomato
	IndianRed     = colornames.Indianred
	LightSkyBlue  = colornames.Lightskyblue
	ForestGreen   = colornames.Forestgreen
	Olive         = colornames.Olive
	DarkSlateGray = colornames.Darkslategray
	SlateGray     = colornames.Slategray
	LightCoral    = colornames.Lightcoral
	OrangeRed     = colornames.Orangered
	AliceBlue     = colornames.Aliceblue
	Mint          = color.RGBA{196, 225, 178, 255}
)

// Parse returns the color for a name or hex string. Matching of names is
// case-insensitive and ignores spaces, so "Slate Gray" works.
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	key := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// MustParse is like Parse but panics on error. Intended for constants in
// demo code.
func MustParse(s string) color.RGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(h string) (color.RGBA, error) {
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		fallthrough
	case 6:
		h += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", "#"+h)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", "#"+h, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
