// Package orient abstracts the coarse page-orientation classifier consumed
// by the alignment pipeline.
//
// A Classifier predicts which of the four rotations {0°, 90°, 180°, 270°},
// applied to the image, makes the page upright. The pipeline treats the
// classifier as a black box behind a one-method interface: production builds
// on Linux with CGO enabled get a Tesseract-backed implementation, all other
// builds (and tests) get the deterministic Fixed stub.
package orient
