// Package server implements the MCP (Model Context Protocol) server that
// exposes the scan alignment pipeline as tools over JSON-RPC on
// stdin/stdout.
//
// # Protocol
//
// The server reads newline-delimited JSON-RPC 2.0 requests from stdin and
// writes responses to stdout, which is why all logging goes to stderr. The
// supported methods are initialize, notifications/initialized, tools/list,
// tools/call and ping.
//
// # Tools
//
//   - image_info: dimensions and resolution of a scanned image
//   - estimate_skew: tilt angle from the dominant line structure
//   - find_crop_region: entropy-profiled document bounding box with padding
//   - rotate_image: arbitrary-angle rotation with canvas expansion
//   - process_document: the full deskew/orient/crop pipeline, written as PNG
//
// Loaded images are cached by path, so a sequence of tool calls against the
// same scan decodes it once.
package server
