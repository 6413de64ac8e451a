package raster

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Region is an integer rectangle within an image's bounds.
//
// Invariants after Pad/clamping: X >= 0, Y >= 0, X+Width <= image width,
// Y+Height <= image height, and both dimensions are at least 1.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// FullRegion returns the region covering the whole image.
func FullRegion(m *Image) Region {
	return Region{X: 0, Y: 0, Width: m.Width, Height: m.Height}
}

// Pad expands the region by padding pixels on all four sides, clamped so the
// result stays within an image of the given width and height. A negative
// padding shrinks the region but never below 1x1.
func (r Region) Pad(padding, width, height int) Region {
	x1 := r.X - padding
	y1 := r.Y - padding
	x2 := r.X + r.Width + padding
	y2 := r.Y + r.Height + padding

	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	if x2 > width {
		x2 = width
	}
	if y2 > height {
		y2 = height
	}
	if x2 <= x1 {
		x2 = x1 + 1
	}
	if y2 <= y1 {
		y2 = y1 + 1
	}
	return Region{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Crop returns a copy of the image restricted to region. The region must lie
// within the image bounds and have positive dimensions. The dpi of the
// source is carried through unchanged.
func Crop(m *Image, region Region) (*Image, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if region.Width < 1 || region.Height < 1 {
		return nil, fmt.Errorf("raster: crop region %dx%d has no area", region.Width, region.Height)
	}
	if region.X < 0 || region.Y < 0 || region.X+region.Width > m.Width || region.Y+region.Height > m.Height {
		return nil, fmt.Errorf("raster: crop region (%d,%d %dx%d) outside image bounds %dx%d",
			region.X, region.Y, region.Width, region.Height, m.Width, m.Height)
	}

	rect := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	cropped := imaging.Crop(m.NRGBA(), rect)

	return &Image{
		Pix:    cropped.Pix,
		Width:  cropped.Rect.Dx(),
		Height: cropped.Rect.Dy(),
		DPI:    m.DPI,
	}, nil
}
