package imaging

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Size holds the pixel dimensions of a canvas.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String formats the size as "{width}x{height}", the default caption.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Exceeds reports whether either dimension is larger than limit.
// A limit of zero or less means unlimited.
func (s Size) Exceeds(limit int) bool {
	if limit <= 0 {
		return false
	}
	return s.Width > limit || s.Height > limit
}

// ParseSize parses a dimension string into a Size.
//
// Parameters:
//   - value: Either a single positive integer ("200", giving a 200x200 square)
//     or "<width>x<height>" ("320x240").
//
// Returns:
//   - Size: The parsed dimensions.
//   - error: Non-nil (wrapping ErrInvalidSize) if the value has any other shape,
//     a dimension is zero or does not fit in 32 bits, or the pixel buffer
//     would not fit in an int.
//
// The whole string is tried as a single integer first; only when that fails
// is it split on 'x', and the split must produce exactly two parts.
func ParseSize(value string) (Size, error) {
	if n, err := parseDimension(value); err == nil {
		return checkArea(Size{Width: n, Height: n})
	}

	parts := strings.Split(value, "x")
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("%w: %q is not N or WxH", ErrInvalidSize, value)
	}

	width, err := parseDimension(parts[0])
	if err != nil {
		return Size{}, fmt.Errorf("%w: width in %q: %v", ErrInvalidSize, value, err)
	}
	height, err := parseDimension(parts[1])
	if err != nil {
		return Size{}, fmt.Errorf("%w: height in %q: %v", ErrInvalidSize, value, err)
	}

	return checkArea(Size{Width: width, Height: height})
}

// bytesPerPixel is the NRGBA storage cost of one canvas pixel.
const bytesPerPixel = 4

// checkArea rejects sizes whose pixel buffer length would overflow int.
func checkArea(s Size) (Size, error) {
	if s.Height > math.MaxInt/bytesPerPixel/s.Width {
		return Size{}, fmt.Errorf("%w: %s is too large to allocate", ErrInvalidSize, s)
	}
	return s, nil
}

// parseDimension parses one positive decimal dimension.
func parseDimension(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("dimension must be positive")
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("dimension %d does not fit in int", n)
	}
	return int(n), nil
}
