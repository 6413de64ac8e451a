package raster

import (
	"image/color"

	"github.com/disintegration/imaging"
)

// WhiteBackground is the neutral fill used for canvas corners exposed by
// rotation when the caller does not supply a color.
var WhiteBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Rotate rotates the image by the given angle in degrees about its center.
// Positive angles rotate the content clockwise as seen on screen.
//
// The output canvas is expanded to exactly contain the rotated source
// (ceil(|w·cos| + |h·sin|) per side), and the corners exposed by the
// rotation are filled with bg (white when bg is nil). The physical
// resolution is carried through unchanged: rotation alters geometry, not
// sample density.
//
// A zero angle is a valid no-op that returns a copy with identical pixel
// content and dimensions.
func Rotate(m *Image, degrees float64, bg color.Color) (*Image, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if degrees == 0 {
		return m.Clone(), nil
	}
	if bg == nil {
		bg = WhiteBackground
	}

	// imaging.Rotate treats positive angles as counter-clockwise.
	rotated := imaging.Rotate(m.NRGBA(), -degrees, bg)

	return &Image{
		Pix:    rotated.Pix,
		Width:  rotated.Rect.Dx(),
		Height: rotated.Rect.Dy(),
		DPI:    m.DPI,
	}, nil
}
