// Package imaging provides the raster primitives used to synthesize
// placeholder images.
//
// This package implements the small, stateless steps of the synthesis
// pipeline: parsing size and color strings, allocating a filled canvas, and
// encoding the finished canvas as PNG. Text layout lives in the typeface
// package; orchestration lives in the placeholder package.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive (top-left), Max is exclusive (bottom-right)
//
// # Size Strings
//
// A size is either a single positive integer ("200", a square) or two
// positive integers joined by a lowercase 'x' ("320x240"). Each dimension
// must fit in an unsigned 32-bit integer.
//
// # Color Strings
//
// Colors are exactly six hex digits "RRGGBB" without a leading '#'. Alpha is
// always fully opaque.
//
// # Thread Safety
//
// Every function in this package is stateless and safe to call concurrently.
// A canvas returned by NewCanvas is owned by its caller and must not be shared
// while it is being drawn on.
//
// # Error Handling
//
// Parse failures wrap ErrInvalidSize or ErrInvalidColor so callers can test
// for them with errors.Is. Encoding failures are wrapped with context.
package imaging
