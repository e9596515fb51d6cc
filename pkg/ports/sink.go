package ports

// FrameSink abstracts a destination for exported frames.
type FrameSink interface {
	// SaveFrame writes the raw bytes of one frame. The index is the
	// playback position and name the frame's original identifier.
	SaveFrame(index int, name string, data []byte) error
}
