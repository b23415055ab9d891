package imaging

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor parses an opaque "#RRGGBB" or "#RGB" color string.
func ParseHexColor(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// HexColor formats c as "#rrggbb", dropping alpha.
func HexColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
