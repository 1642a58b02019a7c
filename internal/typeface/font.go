package typeface

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// heightDivisor sets the caption line height to canvas height / heightDivisor.
const heightDivisor = 6

// minFaceSize is the smallest face size, in pixels per em, that NewFace uses.
const minFaceSize = 1.0

// Font is a parsed typeface. It is immutable and safe for concurrent use.
type Font struct {
	otf *opentype.Font

	// lineRatio is (ascent + descent) / em for the unhinted font.
	lineRatio float64
}

// Load parses the embedded Go Regular font.
func Load() (*Font, error) {
	return Parse(goregular.TTF)
}

// Parse parses TrueType or OpenType font data.
func Parse(data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	var buf sfnt.Buffer
	ppem := fixed.I(int(otf.UnitsPerEm()))
	m, err := otf.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("failed to read font metrics: %w", err)
	}
	if m.Ascent+m.Descent <= 0 {
		return nil, fmt.Errorf("font has no vertical extent")
	}

	return &Font{
		otf:       otf,
		lineRatio: float64(m.Ascent+m.Descent) / float64(ppem),
	}, nil
}

// FaceSize returns the face size, in pixels per em at 72 DPI, for a canvas
// of the given height.
func (f *Font) FaceSize(canvasHeight int) float64 {
	size := float64(canvasHeight) / heightDivisor / f.lineRatio
	if size < minFaceSize {
		return minFaceSize
	}
	return size
}

// NewFace returns a face scaled for a canvas of the given height. The
// caller owns the face and must Close it.
func (f *Font) NewFace(canvasHeight int) (font.Face, error) {
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    f.FaceSize(canvasHeight),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}
