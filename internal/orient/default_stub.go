//go:build !cgo || !linux

package orient

// newDefault falls back to the identity classifier on builds without the
// native Tesseract binding.
func newDefault() Classifier {
	return Upright
}
