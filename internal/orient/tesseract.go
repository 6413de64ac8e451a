//go:build cgo && linux

package orient

import (
	"fmt"
	"os"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/scan-align-mcp/internal/raster"
)

// Tesseract classifies page orientation by scoring OCR legibility at each of
// the four coarse rotations and picking the one that reads best. It requires
// Tesseract and its language data to be installed on the system.
type Tesseract struct {
	// Language is the Tesseract language code. Empty means "eng".
	Language string
}

// EstimateOrientation OCRs the image at 0°, 90°, 180° and 270° and returns
// the rotation with the highest total word confidence. The probability is
// that rotation's share of the total score across all four. If nothing is
// legible at any rotation the page is left as-is with zero probability.
func (t Tesseract) EstimateOrientation(m *raster.Image) (Result, error) {
	if err := m.Validate(); err != nil {
		return Result{}, err
	}
	lang := t.Language
	if lang == "" {
		lang = "eng"
	}

	var scores [4]float64
	total := 0.0
	for i, deg := range coarseDegrees {
		rotated := m
		if deg != 0 {
			var err error
			rotated, err = raster.Rotate(m, float64(deg), nil)
			if err != nil {
				return Result{}, err
			}
		}
		score, err := legibility(rotated, lang)
		if err != nil {
			return Result{}, err
		}
		scores[i] = score
		total += score
	}

	if total == 0 {
		return Result{Degrees: 0, Probability: 0}, nil
	}
	best := 0
	for i := range scores {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return Result{Degrees: coarseDegrees[best], Probability: scores[best] / total}, nil
}

// legibility sums word-level OCR confidence over the image. Tesseract needs
// a file path, so the image is written to a temporary PNG that is removed on
// all exit paths.
func legibility(m *raster.Image, lang string) (float64, error) {
	tmp, err := os.CreateTemp("", "orient-*.png")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	if err := m.EncodePNG(tmp); err != nil {
		tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close temp file: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return 0, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImage(path); err != nil {
		return 0, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Box extraction can fail on some Tesseract configurations;
		// treat the rotation as unreadable rather than failing.
		return 0, nil
	}

	score := 0.0
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		score += float64(box.Confidence) / 100.0
	}
	return score, nil
}

// newDefault selects the Tesseract classifier on CGO-enabled Linux builds.
func newDefault() Classifier {
	return Tesseract{}
}
