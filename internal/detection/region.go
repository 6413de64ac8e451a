package detection

import (
	"fmt"

	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// FindCropRegion locates the tightest rectangle whose border rows and
// columns carry information content above the given threshold.
//
// The entropy of every row and every column is computed and max-normalized
// into [0, 1]. Scanning from each of the four edges inward, the first line
// whose normalized entropy exceeds threshold fixes that boundary; a side
// with no such line defaults to the extreme edge. If neither profile carries
// any signal (an entirely flat image) the full image rectangle is returned.
//
// threshold must lie in [0, 1]. A lower threshold admits fainter content and
// produces an equal-or-larger rectangle.
func FindCropRegion(m *raster.Image, threshold float64) (raster.Region, error) {
	if err := m.Validate(); err != nil {
		return raster.Region{}, err
	}
	if threshold < 0 || threshold > 1 {
		return raster.Region{}, fmt.Errorf("detection: threshold %v outside [0, 1]", threshold)
	}

	rows := normalizeMax(RowEntropies(m))
	cols := normalizeMax(ColumnEntropies(m))

	top := scanForward(rows, threshold)
	bottom := scanBackward(rows, threshold)
	left := scanForward(cols, threshold)
	right := scanBackward(cols, threshold)

	return raster.Region{
		X:      left,
		Y:      top,
		Width:  right - left + 1,
		Height: bottom - top + 1,
	}, nil
}

// scanForward returns the index of the first value exceeding threshold, or 0
// when none does.
func scanForward(values []float64, threshold float64) int {
	for i, v := range values {
		if v > threshold {
			return i
		}
	}
	return 0
}

// scanBackward returns the index of the last value exceeding threshold, or
// len(values)-1 when none does.
func scanBackward(values []float64, threshold float64) int {
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] > threshold {
			return i
		}
	}
	return len(values) - 1
}
