package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// NewCanvas allocates a canvas of the given size with every pixel set to bg.
//
// The returned image is non-premultiplied; since every pixel starts fully
// opaque, its pixel values equal the straight RGBA values of bg and of
// anything later composited over it with draw.Over.
func NewCanvas(size Size, bg color.Color) *image.NRGBA {
	return imaging.New(size.Width, size.Height, bg)
}
