package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Sentinel errors for structurally malformed input images.
var (
	// ErrEmptyImage indicates a zero or negative width or height.
	ErrEmptyImage = errors.New("raster: image has zero width or height")

	// ErrBufferSize indicates the pixel buffer length does not equal
	// width*height*4.
	ErrBufferSize = errors.New("raster: pixel buffer length does not match dimensions")
)

// DefaultDPI is the resolution assumed for images loaded without a declared
// physical resolution.
const DefaultDPI = 300.0

// Image is a width×height grid of 8-bit RGBA samples with an associated
// physical resolution in samples per inch.
//
// Pix holds 4 bytes per sample (R, G, B, A) in row-major order with top-left
// origin, so the sample at (x, y) starts at Pix[(y*Width+x)*4]. An Image is
// treated as immutable once constructed: transforms return new Images.
type Image struct {
	Pix    []uint8 `json:"-"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	DPI    float64 `json:"dpi"`
}

// New creates a blank (fully transparent) image of the given size.
// A dpi of zero or less falls back to DefaultDPI.
func New(width, height int, dpi float64) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyImage, width, height)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Image{
		Pix:    make([]uint8, width*height*4),
		Width:  width,
		Height: height,
		DPI:    dpi,
	}, nil
}

// FromImage converts any image.Image into an Image with the declared dpi.
// The source pixels are copied; the result does not alias src.
func FromImage(src image.Image, dpi float64) (*Image, error) {
	bounds := src.Bounds()
	m, err := New(bounds.Dx(), bounds.Dy(), dpi)
	if err != nil {
		return nil, err
	}
	dst := &image.NRGBA{
		Pix:    m.Pix,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
	draw.Draw(dst, dst.Rect, src, bounds.Min, draw.Src)
	return m, nil
}

// Validate reports whether the image satisfies its structural invariants:
// positive dimensions, positive dpi, and a pixel buffer of exactly
// width*height*4 bytes.
func (m *Image) Validate() error {
	if m == nil || m.Width <= 0 || m.Height <= 0 {
		return ErrEmptyImage
	}
	if len(m.Pix) != m.Width*m.Height*4 {
		return fmt.Errorf("%w: have %d bytes, want %d", ErrBufferSize, len(m.Pix), m.Width*m.Height*4)
	}
	return nil
}

// Clone returns a deep copy of the image.
func (m *Image) Clone() *Image {
	pix := make([]uint8, len(m.Pix))
	copy(pix, m.Pix)
	return &Image{Pix: pix, Width: m.Width, Height: m.Height, DPI: m.DPI}
}

// NRGBA returns an image.NRGBA view sharing the image's pixel buffer.
// The view must be treated as read-only; writing through it would break the
// immutability contract between pipeline stages.
func (m *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    m.Pix,
		Stride: m.Width * 4,
		Rect:   image.Rect(0, 0, m.Width, m.Height),
	}
}

// Row returns the raw RGBA bytes of row y, 4 bytes per sample.
// The returned slice aliases the image's buffer.
func (m *Image) Row(y int) []uint8 {
	stride := m.Width * 4
	return m.Pix[y*stride : (y+1)*stride : (y+1)*stride]
}

// Fill sets every sample to c.
func (m *Image) Fill(c color.NRGBA) {
	for i := 0; i < len(m.Pix); i += 4 {
		m.Pix[i] = c.R
		m.Pix[i+1] = c.G
		m.Pix[i+2] = c.B
		m.Pix[i+3] = c.A
	}
}

// SetNRGBA sets the sample at (x, y). Intended for constructing synthetic
// images; out-of-range coordinates are ignored.
func (m *Image) SetNRGBA(x, y int, c color.NRGBA) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	i := (y*m.Width + x) * 4
	m.Pix[i] = c.R
	m.Pix[i+1] = c.G
	m.Pix[i+2] = c.B
	m.Pix[i+3] = c.A
}

// Luma converts RGB components to scalar brightness using the standard
// ITU-R BT.601 weights: round(0.299*R + 0.587*G + 0.114*B).
func Luma(r, g, b uint8) uint8 {
	return uint8(math.Round(0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)))
}

// LumaAt returns the luma of the sample at (x, y).
func (m *Image) LumaAt(x, y int) uint8 {
	i := (y*m.Width + x) * 4
	return Luma(m.Pix[i], m.Pix[i+1], m.Pix[i+2])
}
