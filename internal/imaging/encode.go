package imaging

import (
	"bytes"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// MimeType is the content type of every image produced by EncodePNG.
const MimeType = "image/png"

// EncodePNG encodes img as PNG and returns the bytes.
//
// The output depends only on the pixels of img: the encoder writes no
// timestamps or other ancillary chunks, so equal images encode to equal bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
