// Package detection locates a scanned document's geometry from image
// content alone: the tilt introduced during scanning and the tightest
// rectangle containing the document.
//
// Two independent analyses are provided:
//
//   - Entropy profiling (LineEntropy, FindCropRegion): the Shannon entropy
//     of each row's and column's luma histogram separates content-bearing
//     lines from the flat scanner background. Scanning the normalized
//     profiles from the four edges inward yields the crop rectangle.
//
//   - Hough deskew (EstimateSkew): bottom edges of dark regions vote in a
//     discretized (distance, angle) accumulator over [-45°, +45°]; a robust
//     cluster of strong peaks around a common angle gives the document's
//     tilt. A single global argmax would be noise-sensitive, so the
//     estimate requires a majority of strong peaks to agree.
//
// # Coordinate System
//
// All coordinates use the standard image convention: origin (0, 0) at the
// top-left corner, X increasing rightward, Y increasing downward. Angles are
// in degrees; a positive skew means the document is tilted clockwise as seen
// on screen, and applying the negative of the estimate levels it.
//
// # Degenerate Signals
//
// Both analyses are pure functions of their input image. Degenerate signals
// (an all-zero entropy profile, no majority angle cluster) are reported as
// deterministic fallbacks - the full image rectangle and "no correction"
// respectively - never as errors.
package detection
