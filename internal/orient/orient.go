package orient

import (
	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// Result is a coarse page-orientation prediction.
type Result struct {
	// Degrees is the clockwise rotation, one of 0, 90, 180 or 270, that
	// makes the page upright when applied to the image.
	Degrees int `json:"degrees"`

	// Probability is the classifier's confidence in [0, 1].
	Probability float64 `json:"probability"`
}

// Classifier predicts the coarse orientation of a scanned page.
type Classifier interface {
	EstimateOrientation(m *raster.Image) (Result, error)
}

// coarseDegrees are the four orientation classes, in prediction order.
var coarseDegrees = [4]int{0, 90, 180, 270}

// Fixed is a deterministic Classifier returning a constant prediction.
// It backs non-CGO builds and tests.
type Fixed struct {
	Degrees     int
	Probability float64
}

// EstimateOrientation returns the fixed prediction regardless of input.
func (f Fixed) EstimateOrientation(*raster.Image) (Result, error) {
	return Result{Degrees: f.Degrees, Probability: f.Probability}, nil
}

// Upright is the identity classifier: every page is already upright.
var Upright = Fixed{Degrees: 0, Probability: 1}

// Default returns the production classifier when one is available in this
// build, and Upright otherwise.
func Default() Classifier {
	return newDefault()
}
