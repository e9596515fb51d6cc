// Package imagecodec implements ports.ImageCodec over the standard image
// registry, with the extra still-image formats from golang.org/x/image
// registered so archive entries and loose files decode uniformly.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/seqplay/pkg/ports"
)

// Codec implements ports.ImageCodec.
type Codec struct{}

// New creates a new Codec.
func New() *Codec {
	return &Codec{}
}

// Decode decodes image data, sniffing the format from the content.
func (c *Codec) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EncodePNG encodes an image as PNG.
func (c *Codec) EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Codec implements ports.ImageCodec
var _ ports.ImageCodec = (*Codec)(nil)
