package mocks

import (
	"errors"
	"image"
	"sync"

	"github.com/user/seqplay/pkg/ports"
)

// Codec is a mock implementation of ports.ImageCodec. By default Decode
// returns a fixed 1x1 image and records the bytes it was given.
type Codec struct {
	mu sync.Mutex

	Decoded [][]byte
	Fail    bool

	DecodeFunc func(data []byte) (image.Image, error)
}

// NewCodec creates a new mock Codec.
func NewCodec() *Codec {
	return &Codec{}
}

func (m *Codec) Decode(data []byte) (image.Image, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return nil, errors.New("mock decode failure")
	}
	m.Decoded = append(m.Decoded, data)
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (m *Codec) EncodePNG(img image.Image) ([]byte, error) {
	if m.Fail {
		return nil, errors.New("mock encode failure")
	}
	return []byte("png"), nil
}

var _ ports.ImageCodec = (*Codec)(nil)
