package typeface

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/samber/lo"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// glyph is one rune positioned at its dot on the unshifted baseline.
type glyph struct {
	r   rune
	dot fixed.Point26_6
}

// Caption is a laid-out line of text ready to be drawn.
//
// A Caption holds a font.Face and must be closed after use. It is not safe
// for concurrent use.
type Caption struct {
	face   font.Face
	glyphs []glyph

	// Ink is the tight pixel rectangle covering every glyph that has visible
	// pixels, relative to the layout origin (0, ascent baseline). It is the
	// zero rectangle when no glyph has ink.
	Ink image.Rectangle
}

// Layout lays out text for a canvas of the given height.
//
// Glyphs are placed left to right from (0, ascent), advancing by each
// glyph's advance width plus the kerning between adjacent pairs. Runes the
// font does not cover are drawn with the font's missing-glyph box.
func (f *Font) Layout(text string, canvasHeight int) (*Caption, error) {
	face, err := f.NewFace(canvasHeight)
	if err != nil {
		return nil, err
	}

	c := &Caption{face: face}
	dot := fixed.Point26_6{Y: face.Metrics().Ascent}
	prev := rune(-1)
	for _, r := range text {
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		c.glyphs = append(c.glyphs, glyph{r: r, dot: dot})

		advance, _ := face.GlyphAdvance(r)
		dot.X += advance
		prev = r
	}

	c.Ink = c.inkBounds()
	return c, nil
}

// inkBounds unions the rasterized rectangles of glyphs with visible pixels.
func (c *Caption) inkBounds() image.Rectangle {
	var bounds image.Rectangle
	for _, g := range c.glyphs {
		dr, _, _, _, ok := c.face.Glyph(g.dot, g.r)
		if !ok || dr.Empty() {
			continue
		}
		// Union ignores empty operands, so the zero start value is safe.
		bounds = bounds.Union(dr)
	}
	return bounds
}

// Offset returns where the top-left corner of the ink lands on a canvas
// with the given bounds. On each axis the ink is centered when it is
// narrower than the canvas and placed at the canvas edge otherwise.
func (c *Caption) Offset(canvas image.Rectangle) image.Point {
	inkW, inkH := c.Ink.Dx(), c.Ink.Dy()
	canvasW, canvasH := canvas.Dx(), canvas.Dy()

	return image.Point{
		X: canvas.Min.X + lo.Ternary(inkW >= canvasW, 0, (canvasW-inkW)/2),
		Y: canvas.Min.Y + lo.Ternary(inkH >= canvasH, 0, (canvasH-inkH)/2),
	}
}

// Draw composites the caption onto dst in color fg, centered per Offset.
//
// Each glyph is rasterized again at its dot translated by a whole number of
// pixels, so its coverage mask is identical to the one measured by Layout.
func (c *Caption) Draw(dst draw.Image, fg color.Color) {
	shift := c.Offset(dst.Bounds()).Sub(c.Ink.Min)
	delta := fixed.P(shift.X, shift.Y)
	src := image.NewUniform(fg)

	for _, g := range c.glyphs {
		dr, mask, maskp, _, ok := c.face.Glyph(g.dot.Add(delta), g.r)
		if !ok || dr.Empty() {
			continue
		}
		draw.DrawMask(dst, dr, src, image.Point{}, mask, maskp, draw.Over)
	}
}

// Close releases the caption's face.
func (c *Caption) Close() error {
	return c.face.Close()
}

// DrawCentered lays out text for dst's height and draws it centered in fg.
func (f *Font) DrawCentered(dst draw.Image, text string, fg color.Color) error {
	caption, err := f.Layout(text, dst.Bounds().Dy())
	if err != nil {
		return err
	}
	defer caption.Close()

	caption.Draw(dst, fg)
	return nil
}
