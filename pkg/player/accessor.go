package player

import "image"

// CurrentFilename returns the identifier of the current frame, or "" when
// the index is out of range, which only happens on an empty sequence.
func (p *Player) CurrentFilename() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	frames := p.seq.Frames()
	if p.frame < 0 || p.frame >= len(frames) {
		return ""
	}
	return frames[p.frame]
}

// CurrentImage returns the decoded current frame. Archive sequences read
// from the in-memory copy, everything else from disk. A missing frame or
// a decode failure yields nil rather than an error, preserving the
// codec's nil-image convention at this boundary.
func (p *Player) CurrentImage() image.Image {
	ref := p.CurrentFilename()
	if ref == "" {
		return nil
	}
	p.mu.Lock()
	src := p.seq.ByteSource()
	p.mu.Unlock()
	data, err := src.ReadFrame(ref)
	if err != nil {
		p.logger.Debug("Failed to read frame %s: %s", ref, err)
		return nil
	}
	img, err := p.codec.Decode(data)
	if err != nil {
		p.logger.Debug("Failed to decode frame %s: %s", ref, err)
		return nil
	}
	return img
}
