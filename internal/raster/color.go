package raster

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseBackground parses a "#RRGGBB" hex string into an opaque color for use
// as a rotation fill. An empty string selects the default white background.
// The leading "#" is optional.
func ParseBackground(hex string) (color.NRGBA, error) {
	if hex == "" {
		return WhiteBackground, nil
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("raster: invalid background color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}
