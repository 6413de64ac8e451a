package detection

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"

	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// LineEntropy computes the Shannon entropy, in bits, of a 1-pixel-thick line
// of RGBA samples (4 bytes per sample).
//
// Each sample is reduced to luma and tallied into a 256-bucket histogram;
// the entropy is -Σ p_i·log2(p_i) over the nonzero buckets. A constant-color
// line yields exactly 0; a maximally varied line approaches 8 bits. An empty
// line yields 0.
func LineEntropy(line []uint8) float64 {
	n := len(line) / 4
	if n == 0 {
		return 0
	}

	var hist [256]int
	for i := 0; i < n*4; i += 4 {
		hist[raster.Luma(line[i], line[i+1], line[i+2])]++
	}

	entropy := 0.0
	for _, count := range hist {
		if count == 0 {
			continue
		}
		p := float64(count) / float64(n)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// RowEntropies computes the entropy of every row of the image. Rows are
// processed in parallel; each result is written to its own index, so the
// output is identical to a sequential pass.
func RowEntropies(m *raster.Image) []float64 {
	entropies := make([]float64, m.Height)
	parallel.Line(m.Height, func(start, end int) {
		for y := start; y < end; y++ {
			entropies[y] = LineEntropy(m.Row(y))
		}
	})
	return entropies
}

// ColumnEntropies computes the entropy of every column of the image.
func ColumnEntropies(m *raster.Image) []float64 {
	entropies := make([]float64, m.Width)
	stride := m.Width * 4
	parallel.Line(m.Width, func(start, end int) {
		line := make([]uint8, m.Height*4)
		for x := start; x < end; x++ {
			for y := 0; y < m.Height; y++ {
				copy(line[y*4:y*4+4], m.Pix[y*stride+x*4:y*stride+x*4+4])
			}
			entropies[x] = LineEntropy(line)
		}
	})
	return entropies
}

// normalizeMax divides every value by the maximum of the slice, mapping the
// profile into [0, 1]. An all-zero profile stays all-zero: there is no
// discriminating signal to normalize.
func normalizeMax(values []float64) []float64 {
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	normalized := make([]float64, len(values))
	if max == 0 {
		return normalized
	}
	for i, v := range values {
		normalized[i] = v / max
	}
	return normalized
}
