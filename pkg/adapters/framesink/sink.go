// Package framesink provides a file-based frame sink implementation.
package framesink

import (
	"fmt"
	"path/filepath"

	"github.com/user/seqplay/pkg/ports"
)

// Sink writes exported frames into a directory, numbered by playback
// position. The extension of the original identifier is preserved so the
// bytes round-trip unchanged.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new Sink writing under baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// SaveFrame writes the raw bytes of one frame.
func (s *Sink) SaveFrame(index int, name string, data []byte) error {
	ext := filepath.Ext(name)
	path := filepath.Join(s.baseDir, fmt.Sprintf("frame-%04d%s", index, ext))
	if err := s.fs.MkdirAll(s.baseDir); err != nil {
		return err
	}
	return s.fs.WriteFile(path, data)
}

// Ensure Sink implements ports.FrameSink
var _ ports.FrameSink = (*Sink)(nil)
