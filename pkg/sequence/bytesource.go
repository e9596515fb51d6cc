package sequence

import (
	"errors"
	"fmt"
	"io"

	"github.com/user/seqplay/pkg/ports"
)

// ErrBufferReleased is returned when an archive frame is read after the
// in-memory archive copy has been released.
var ErrBufferReleased = errors.New("sequence: archive buffer released")

// ErrFrameNotFound is returned when a frame identifier names no entry in
// the backing store.
var ErrFrameNotFound = errors.New("sequence: frame not found")

// ByteSource reads the raw bytes of a frame by its identifier.
type ByteSource interface {
	ReadFrame(ref string) ([]byte, error)
}

// archiveSource reads frames from the sequence's in-memory archive copy.
type archiveSource struct {
	seq *Sequence
}

func (a *archiveSource) ReadFrame(ref string) ([]byte, error) {
	buf := a.seq.archive
	if buf == nil {
		return nil, ErrBufferReleased
	}
	for _, f := range buf.reader.File {
		if f.Name != ref {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", ref, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", ref, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrFrameNotFound, ref)
}

// fileSource reads frames straight from the filesystem.
type fileSource struct {
	fs ports.FileSystem
}

func (f *fileSource) ReadFrame(ref string) ([]byte, error) {
	data, err := f.fs.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFrameNotFound, ref)
	}
	return data, nil
}

var (
	_ ByteSource = (*archiveSource)(nil)
	_ ByteSource = (*fileSource)(nil)
)
