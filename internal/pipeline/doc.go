// Package pipeline composes deskew estimation, orientation classification,
// rotation and entropy-based cropping into a single rotate-detect-crop
// operation over one scanned image.
//
// Each Process call is a pure, self-contained computation: no state is
// shared between invocations, so independent scans (a card's front and back,
// say) may be processed fully in parallel on one Processor.
package pipeline
