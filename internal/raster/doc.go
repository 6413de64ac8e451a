// Package raster provides the pixel-buffer data model shared by all stages
// of the scan alignment pipeline.
//
// The central type is Image: a width×height grid of 8-bit RGBA samples in
// row-major order with top-left origin, carrying a physical resolution in
// samples per inch. Every transform in this package (Rotate, Crop, Clone)
// produces a new Image and never mutates its input, so pipeline stages can
// safely hold references to earlier stages' outputs.
//
// # Coordinate System
//
// All pixel coordinates are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Rotation angles are in degrees; positive angles rotate the image content
// clockwise as seen on screen.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. Image values are treated as
// immutable after construction; concurrent reads of the same Image are safe
// without synchronization.
//
// # Error Handling
//
// Structurally malformed inputs are reported through the sentinel errors
// ErrEmptyImage and ErrBufferSize, wrapped with context where they surface.
// Decoding and file I/O failures are wrapped with fmt.Errorf("...: %w", err).
package raster
