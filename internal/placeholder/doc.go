// Package placeholder synthesizes placeholder PNG images.
//
// A Synthesizer turns a Request (a size string plus optional background,
// foreground and caption) into PNG bytes:
//
//  1. Parse the size ("200" or "320x240").
//  2. Parse the colors, defaulting to light gray on black text.
//  3. Fill a canvas with the background.
//  4. Draw the caption centered, defaulting to "{width}x{height}".
//  5. Encode the canvas as PNG.
//
// Synthesis is a pure function of the request: it keeps no state between
// calls and identical requests yield identical bytes. A Synthesizer is safe
// for concurrent use.
package placeholder
