package pipeline

import (
	"fmt"

	"github.com/ironsheep/scan-align-mcp/internal/detection"
	"github.com/ironsheep/scan-align-mcp/internal/orient"
	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// Options control the crop and rotation behavior of a Process call.
type Options struct {
	// Threshold is the normalized-entropy cutoff in [0, 1] for crop
	// boundary detection. Higher values crop tighter.
	Threshold float64 `json:"threshold"`

	// Padding is the uniform border, in pixels, retained beyond the
	// detected boundary, clamped to the image bounds.
	Padding int `json:"padding"`

	// ManualRotationDegrees is user-supplied additional rotation applied
	// in the same step as the orientation correction.
	ManualRotationDegrees float64 `json:"manual_rotation_degrees"`
}

// DefaultOptions returns the standard processing options: threshold 0.5,
// padding 10, no manual rotation.
func DefaultOptions() Options {
	return Options{Threshold: 0.5, Padding: 10}
}

// Result carries the final image together with the intermediate findings of
// each stage.
type Result struct {
	// Image is the cropped, rotation-corrected output.
	Image *raster.Image `json:"-"`

	// Skew is the deskew estimate measured on the input image.
	Skew detection.SkewResult `json:"skew"`

	// Orientation is the coarse orientation prediction for the deskewed
	// image.
	Orientation orient.Result `json:"orientation"`

	// Region is the padded crop rectangle within the rotated image.
	Region raster.Region `json:"region"`
}

// Processor runs the alignment pipeline with a fixed orientation classifier.
// A Processor is stateless apart from the classifier and safe for concurrent
// use.
type Processor struct {
	classifier orient.Classifier
}

// New creates a Processor. A nil classifier selects the build's default
// (Tesseract-backed on CGO-enabled Linux, identity otherwise).
func New(classifier orient.Classifier) *Processor {
	if classifier == nil {
		classifier = orient.Default()
	}
	return &Processor{classifier: classifier}
}

// Process runs the five pipeline stages over one image:
//
//  1. Deskew: estimate the tilt and rotate by its negative.
//  2. Classify the coarse orientation of the deskewed image.
//  3. Apply the orientation correction plus any manual rotation.
//  4. Detect the crop region by entropy profiling and pad it.
//  5. Crop.
//
// No stage mutates its input; any stage failure aborts the whole call with
// no partial result. Degenerate signals (no consistent skew, no entropy
// signal) fall back to identity rotation and the full-image rectangle.
func (p *Processor) Process(img *raster.Image, opts Options) (*Result, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("pipeline: threshold %v outside [0, 1]", opts.Threshold)
	}
	if opts.Padding < 0 {
		return nil, fmt.Errorf("pipeline: negative padding %d", opts.Padding)
	}

	skew := detection.EstimateSkew(img)
	deskewed := img
	if skew.Detected {
		var err error
		deskewed, err = raster.Rotate(img, -skew.AngleDegrees, nil)
		if err != nil {
			return nil, fmt.Errorf("deskew rotation failed: %w", err)
		}
	}

	orientation, err := p.classifier.EstimateOrientation(deskewed)
	if err != nil {
		return nil, fmt.Errorf("orientation classification failed: %w", err)
	}

	rotated := deskewed
	if total := opts.ManualRotationDegrees + float64(orientation.Degrees); total != 0 {
		rotated, err = raster.Rotate(deskewed, total, nil)
		if err != nil {
			return nil, fmt.Errorf("orientation rotation failed: %w", err)
		}
	}

	region, err := detection.FindCropRegion(rotated, opts.Threshold)
	if err != nil {
		return nil, err
	}
	region = region.Pad(opts.Padding, rotated.Width, rotated.Height)

	out, err := raster.Crop(rotated, region)
	if err != nil {
		return nil, fmt.Errorf("final crop failed: %w", err)
	}

	return &Result{
		Image:       out,
		Skew:        *skew,
		Orientation: orientation,
		Region:      region,
	}, nil
}
