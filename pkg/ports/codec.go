package ports

import "image"

// ImageCodec abstracts image decoding and encoding. Decoding is the
// host-supplied "bytes to displayable image" capability the playback core
// depends on; it never decodes images itself.
type ImageCodec interface {
	// Decode decodes image data into an image.Image, sniffing the format
	// from the content.
	Decode(data []byte) (image.Image, error)

	// EncodePNG encodes an image as PNG.
	EncodePNG(img image.Image) ([]byte, error)
}
