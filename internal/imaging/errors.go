package imaging

import "errors"

var (
	// ErrInvalidSize is returned when a size string is not "N" or "WxH" with
	// positive integer dimensions.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidColor is returned when a color string is not six hex digits.
	ErrInvalidColor = errors.New("invalid color")
)
