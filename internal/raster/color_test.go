package raster

import (
	"image/color"
	"testing"
)

func TestParseBackground(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want color.NRGBA
	}{
		{"empty defaults to white", "", WhiteBackground},
		{"with hash", "#FF8000", color.NRGBA{255, 128, 0, 255}},
		{"without hash", "00FF00", color.NRGBA{0, 255, 0, 255}},
		{"lowercase", "#0000ff", color.NRGBA{0, 0, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBackground(tt.hex)
			if err != nil {
				t.Fatalf("ParseBackground(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("ParseBackground(%q): got %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestParseBackground_Invalid(t *testing.T) {
	for _, hex := range []string{"#GGGGGG", "#FFF0", "not-a-color"} {
		t.Run(hex, func(t *testing.T) {
			if _, err := ParseBackground(hex); err == nil {
				t.Errorf("ParseBackground(%q) should fail", hex)
			}
		})
	}
}
