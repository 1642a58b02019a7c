// Package typeface lays out and draws centered captions with the embedded
// Go Regular font.
//
// The font is parsed once by Load and is safe to share between goroutines.
// Each caption gets its own font.Face, because faces cache rasterization
// state and are not safe for concurrent use.
//
// # Layout
//
// The caption is scaled so that the font's line height (ascent plus
// descent) is one sixth of the canvas height. Glyphs are placed along a
// baseline at the ascent, starting from the origin. The union of the
// rasterized glyph rectangles is the ink bounds; the ink is then translated
// so it sits centered on the canvas, or flush with the top-left edge on any
// axis where it does not fit.
package typeface
