package imaging

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// DefaultBackground is the light gray used when no background is given.
	DefaultBackground = color.RGBA{R: 240, G: 240, B: 240, A: 255}

	// DefaultForeground is the caption color used when no foreground is given.
	DefaultForeground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// ParseColor parses a six-digit hex color string like "FF8040".
//
// Parameters:
//   - hex: Exactly six hex digits, upper or lower case, with no '#' prefix.
//
// Returns:
//   - color.RGBA: The color with alpha fixed at 255.
//   - error: Non-nil (wrapping ErrInvalidColor) if the length is not six or any
//     character is not a hex digit.
func ParseColor(hex string) (color.RGBA, error) {
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q must be 6 hex digits", ErrInvalidColor, hex)
	}
	// colorful.Hex is lenient about signs; check the digits strictly first.
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, hex, err)
	}

	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor returns the "#rrggbb" form of c, ignoring alpha. Used for logs.
func FormatColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
