package placeholder

import (
	"context"
	"fmt"
	"image/color"

	"github.com/ironsheep/placeholder-png/internal/imaging"
	"github.com/ironsheep/placeholder-png/internal/log"
	"github.com/ironsheep/placeholder-png/internal/typeface"
)

// Request describes one placeholder image. Nil fields are absent.
type Request struct {
	// Size is "N" for an NxN square or "WxH".
	Size string `json:"size"`

	// Background is a six-digit hex color, default light gray.
	Background *string `json:"background,omitempty"`

	// Foreground is a six-digit hex color for the caption, default black.
	Foreground *string `json:"foreground,omitempty"`

	// Text is the caption, default "{width}x{height}". An empty caption
	// draws nothing.
	Text *string `json:"text,omitempty"`
}

// Synthesizer renders placeholder images with a shared font.
type Synthesizer struct {
	font         *typeface.Font
	maxDimension int
}

// NewSynthesizer creates a Synthesizer.
//
// Parameters:
//   - font: The typeface used for captions. Must not be nil.
//   - maxDimension: Largest accepted width or height; 0 means unlimited.
func NewSynthesizer(font *typeface.Font, maxDimension int) *Synthesizer {
	return &Synthesizer{
		font:         font,
		maxDimension: maxDimension,
	}
}

// CreateImage renders req and returns the PNG bytes.
//
// Errors wrap imaging.ErrInvalidSize or imaging.ErrInvalidColor for bad
// input; any other error comes from caption drawing or encoding. The
// resolved parameters are logged at debug level through the context logger.
func (s *Synthesizer) CreateImage(ctx context.Context, req Request) ([]byte, error) {
	size, err := imaging.ParseSize(req.Size)
	if err != nil {
		return nil, err
	}
	if size.Exceeds(s.maxDimension) {
		return nil, fmt.Errorf("%w: %s exceeds the %d pixel limit", imaging.ErrInvalidSize, size, s.maxDimension)
	}

	bg, err := resolveColor(req.Background, imaging.DefaultBackground)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	fg, err := resolveColor(req.Foreground, imaging.DefaultForeground)
	if err != nil {
		return nil, fmt.Errorf("foreground: %w", err)
	}

	caption := size.String()
	if req.Text != nil {
		caption = *req.Text
	}

	log.FromContextOrDiscard(ctx).Debug("rendering image",
		"size", size.String(),
		"background", imaging.FormatColor(bg),
		"foreground", imaging.FormatColor(fg),
		"caption", caption,
	)

	canvas := imaging.NewCanvas(size, bg)
	if err := s.font.DrawCentered(canvas, caption, fg); err != nil {
		return nil, fmt.Errorf("failed to draw caption: %w", err)
	}

	return imaging.EncodePNG(canvas)
}

// resolveColor parses hex when present and returns def otherwise.
func resolveColor(hex *string, def color.RGBA) (color.RGBA, error) {
	if hex == nil {
		return def, nil
	}
	return imaging.ParseColor(*hex)
}
