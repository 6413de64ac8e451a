package raster

import (
	"testing"
)

func TestRegionPad(t *testing.T) {
	tests := []struct {
		name    string
		region  Region
		padding int
		want    Region
	}{
		{
			"interior expansion",
			Region{X: 20, Y: 20, Width: 10, Height: 10}, 5,
			Region{X: 15, Y: 15, Width: 20, Height: 20},
		},
		{
			"clamped at origin",
			Region{X: 2, Y: 3, Width: 10, Height: 10}, 5,
			Region{X: 0, Y: 0, Width: 17, Height: 18},
		},
		{
			"clamped at far edge",
			Region{X: 85, Y: 88, Width: 10, Height: 10}, 8,
			Region{X: 77, Y: 80, Width: 23, Height: 20},
		},
		{
			"zero padding",
			Region{X: 10, Y: 10, Width: 5, Height: 5}, 0,
			Region{X: 10, Y: 10, Width: 5, Height: 5},
		},
		{
			"padding larger than image",
			Region{X: 40, Y: 40, Width: 20, Height: 20}, 1000,
			Region{X: 0, Y: 0, Width: 100, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.region.Pad(tt.padding, 100, 100)
			if got != tt.want {
				t.Errorf("Pad: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRegionPad_NeverEmpty(t *testing.T) {
	r := Region{X: 50, Y: 50, Width: 4, Height: 4}
	got := r.Pad(-10, 100, 100)
	if got.Width < 1 || got.Height < 1 {
		t.Errorf("Pad produced an empty region: %+v", got)
	}
}

func TestCrop(t *testing.T) {
	m := newFilled(t, 100, 100, white)
	fillRect(m, 10, 20, 30, 50, black)

	out, err := Crop(m, Region{X: 10, Y: 20, Width: 20, Height: 30})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if out.Width != 20 || out.Height != 30 {
		t.Errorf("dimensions: got %dx%d, want 20x30", out.Width, out.Height)
	}
	if out.DPI != m.DPI {
		t.Errorf("DPI: got %v, want %v", out.DPI, m.DPI)
	}
	if out.LumaAt(0, 0) != 0 {
		t.Errorf("top-left of crop should be black, luma %d", out.LumaAt(0, 0))
	}
	if err := out.Validate(); err != nil {
		t.Errorf("cropped image failed Validate: %v", err)
	}
}

func TestCrop_DoesNotAliasSource(t *testing.T) {
	m := newFilled(t, 10, 10, white)
	out, err := Crop(m, Region{X: 0, Y: 0, Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	m.SetNRGBA(0, 0, black)
	if out.LumaAt(0, 0) != 255 {
		t.Error("crop result aliases the source buffer")
	}
}

func TestCrop_OutOfBounds(t *testing.T) {
	m := newFilled(t, 50, 50, white)

	tests := []struct {
		name   string
		region Region
	}{
		{"negative x", Region{X: -1, Y: 0, Width: 10, Height: 10}},
		{"negative y", Region{X: 0, Y: -1, Width: 10, Height: 10}},
		{"overflows width", Region{X: 45, Y: 0, Width: 10, Height: 10}},
		{"overflows height", Region{X: 0, Y: 45, Width: 10, Height: 10}},
		{"zero width", Region{X: 0, Y: 0, Width: 0, Height: 10}},
		{"zero height", Region{X: 0, Y: 0, Width: 10, Height: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Crop(m, tt.region); err == nil {
				t.Errorf("Crop should fail for region %+v", tt.region)
			}
		})
	}
}
