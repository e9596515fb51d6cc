// Package sequence resolves a filesystem path into an ordered list of
// image frames. A sequence can be backed by a directory of loose files, a
// single file, or a zip archive that is copied into memory so frame reads
// never touch the original file again.
package sequence

import (
	"fmt"

	"github.com/user/seqplay/pkg/natsort"
	"github.com/user/seqplay/pkg/ports"
)

// Sequence is an ordered set of frame identifiers over one backing store.
// Frame identifiers are absolute file paths for directory and single-file
// sequences, and archive entry names for archive sequences. The frame
// number is purely a position in Frames.
//
// A Sequence is rebuilt wholesale by every setter; it is not safe for
// concurrent use.
type Sequence struct {
	fs      ports.FileSystem
	frames  []string
	kind    SourceKind
	dirname string
	archive *archiveBuffer
}

// New creates an empty Sequence reading through fs.
func New(fs ports.FileSystem) *Sequence {
	return &Sequence{fs: fs}
}

// SetPath classifies path as an archive (by content signature), a single
// file, or a directory, and rebuilds the sequence accordingly. A path that
// matches none of the three yields an empty sequence with no error;
// callers detect this with FrameCount() == 0.
func (s *Sequence) SetPath(path string) {
	if s.fs.IsDir(path) {
		_ = s.SetDirname(path)
		return
	}
	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.clear()
		return
	}
	if isZipData(data) {
		_ = s.setArchiveData(path, data)
		return
	}
	s.clear()
	s.frames = []string{path}
	s.kind = KindSingleFile
	s.dirname = path
}

// SetArchive rebuilds the sequence from a zip file. The whole archive is
// read into memory and held until released, so frame reads are decoupled
// from the file's handle and location.
func (s *Sequence) SetArchive(path string) error {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		s.clear()
		return fmt.Errorf("read archive: %w", err)
	}
	return s.setArchiveData(path, data)
}

func (s *Sequence) setArchiveData(path string, data []byte) error {
	s.clear()
	s.dirname = path
	buf, names, err := newArchiveBuffer(data)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	natsort.Sort(names)
	s.frames = names
	s.kind = KindArchive
	s.archive = buf
	return nil
}

// SetDirname rebuilds the sequence from the immediate children of a
// directory. There is no recursion and no filtering by extension.
func (s *Sequence) SetDirname(path string) error {
	s.clear()
	s.dirname = path
	names, err := s.fs.ListDir(path)
	if err != nil {
		return fmt.Errorf("list directory: %w", err)
	}
	frames := make([]string, len(names))
	for i, name := range names {
		frames[i] = path + "/" + name
	}
	natsort.Sort(frames)
	s.frames = frames
	s.kind = KindDirectory
	return nil
}

// Dirname returns the path given to the most recent setter, whatever its
// kind. Playback restart re-resolves this path to reload the source.
func (s *Sequence) Dirname() string {
	return s.dirname
}

// Frames returns all frame identifiers in playback order.
func (s *Sequence) Frames() []string {
	return s.frames
}

// FrameCount returns the number of frames.
func (s *Sequence) FrameCount() int {
	return len(s.frames)
}

// FirstFrame returns the first frame identifier, or "" when the sequence
// is empty.
func (s *Sequence) FirstFrame() string {
	if len(s.frames) > 0 {
		return s.frames[0]
	}
	return ""
}

// Kind returns the source kind set by the most recent setter.
func (s *Sequence) Kind() SourceKind {
	return s.kind
}

// Buffered reports whether an in-memory archive copy is currently held.
func (s *Sequence) Buffered() bool {
	return s.archive != nil
}

// ReleaseBuffer drops the in-memory archive copy and its read handle.
// Subsequent archive frame reads fail until a setter rebuilds the
// sequence.
func (s *Sequence) ReleaseBuffer() {
	s.archive = nil
}

// ByteSource returns the reader for the current backing store: archive
// sequences read from the in-memory copy, everything else reads from the
// filesystem.
func (s *Sequence) ByteSource() ByteSource {
	if s.kind == KindArchive {
		return &archiveSource{seq: s}
	}
	return &fileSource{fs: s.fs}
}

// clear discards the frame list, kind and any stale archive buffer before
// a rebuild. The recorded dirname is left to the setters.
func (s *Sequence) clear() {
	s.ReleaseBuffer()
	s.frames = nil
	s.kind = KindNone
}
