package player

import (
	"archive/zip"
	"bytes"
	"testing"
	"time"

	"github.com/user/seqplay/pkg/adapters/logger"
	"github.com/user/seqplay/pkg/mocks"
	"github.com/user/seqplay/pkg/sequence"
)

func zipBytes(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, data := range entries {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// dirPlayer builds a player over a 3-frame directory sequence.
func dirPlayer(t *testing.T) (*Player, *mocks.Timer) {
	t.Helper()
	fs := mocks.NewFileSystem()
	fs.AddDir("/seq")
	for _, name := range []string{"f1.png", "f2.png", "f3.png"} {
		fs.AddFile("/seq/"+name, []byte(name))
	}
	seq := sequence.New(fs)
	seq.SetPath("/seq")

	timer := mocks.NewTimer()
	return New(seq, timer, mocks.NewCodec(), logger.NewNoop(), Options{}), timer
}

// archivePlayer builds a player over a 2-frame archive sequence.
func archivePlayer(t *testing.T) (*Player, *mocks.Timer, *mocks.FileSystem) {
	t.Helper()
	fs := mocks.NewFileSystem()
	fs.AddFile("/frames.zip", zipBytes(t, map[string][]byte{
		"a.png": []byte("bytes of a"),
		"b.png": []byte("bytes of b"),
	}))
	seq := sequence.New(fs)
	seq.SetPath("/frames.zip")

	timer := mocks.NewTimer()
	return New(seq, timer, mocks.NewCodec(), logger.NewNoop(), Options{}), timer, fs
}

func TestJumpToFrame_Wraparound(t *testing.T) {
	p, _ := dirPlayer(t)
	count := p.Sequence().FrameCount()

	var notified []int
	p.OnFrameChanged(func(index int) {
		notified = append(notified, index)
	})

	p.JumpToFrame(1)
	p.JumpToFrame(count)

	if p.CurrentFrameNumber() != 0 {
		t.Errorf("expected wraparound to 0, got %d", p.CurrentFrameNumber())
	}
	if len(notified) != 2 || notified[0] != 1 || notified[1] != 0 {
		t.Errorf("expected notifications [1 0], got %v", notified)
	}
}

func TestTick_AdvancesAndWraps(t *testing.T) {
	p, timer := dirPlayer(t)
	p.Start()

	var indexes []int
	p.OnFrameChanged(func(index int) {
		indexes = append(indexes, index)
	})

	for i := 0; i < 4; i++ {
		timer.Fire()
	}

	expected := []int{1, 2, 0, 1}
	if len(indexes) != len(expected) {
		t.Fatalf("expected %d notifications, got %d", len(expected), len(indexes))
	}
	for i, want := range expected {
		if indexes[i] != want {
			t.Errorf("tick %d: expected index %d, got %d", i, want, indexes[i])
		}
	}
}

func TestTick_EmptySequence(t *testing.T) {
	fs := mocks.NewFileSystem()
	seq := sequence.New(fs)
	timer := mocks.NewTimer()
	p := New(seq, timer, mocks.NewCodec(), logger.NewNoop(), Options{})

	fired := false
	p.OnFrameChanged(func(int) { fired = true })

	p.Start()
	timer.Fire()

	if fired {
		t.Error("expected no notification on an empty sequence")
	}
	if p.CurrentFrameNumber() != 0 {
		t.Errorf("expected frame 0, got %d", p.CurrentFrameNumber())
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		frame    int
		expected float64
	}{
		{name: "first frame", frame: 0, expected: 0.0},
		{name: "middle frame", frame: 1, expected: 1.0 / 3.0},
		{name: "last frame is exactly one", frame: 2, expected: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := dirPlayer(t)
			p.JumpToFrame(tt.frame)
			got := p.Percent()
			if diff := got - tt.expected; diff < -1e-9 || diff > 1e-9 {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
			if got < 0 || got > 1 {
				t.Errorf("percent out of range: %v", got)
			}
		})
	}
}

func TestPercent_EmptySequence(t *testing.T) {
	p := New(sequence.New(mocks.NewFileSystem()), mocks.NewTimer(), mocks.NewCodec(), logger.NewNoop(), Options{})
	if got := p.Percent(); got != 0 {
		t.Errorf("expected 0 on empty sequence, got %v", got)
	}
}

func TestStart_ResolvesSourceAndStartsTimer(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	p.SetFPS(25)

	p.Start()

	if !p.Sequence().Buffered() {
		t.Error("expected archive buffer after Start")
	}
	if !timer.Active() {
		t.Error("expected timer to be active")
	}
	if timer.Interval != time.Second/25 {
		t.Errorf("expected 40ms interval, got %v", timer.Interval)
	}
}

func TestPauseResume_PreservesBuffer(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	p.Start()
	timer.Fire()

	p.Pause()
	if !p.Paused() {
		t.Error("expected paused state")
	}
	if timer.Active() {
		t.Error("expected timer halted on pause")
	}
	if !p.Sequence().Buffered() {
		t.Error("expected archive buffer preserved across pause")
	}
	frame := p.CurrentFrameNumber()

	p.Resume()
	if p.Paused() {
		t.Error("expected paused flag cleared")
	}
	if !timer.Active() {
		t.Error("expected timer restarted on resume")
	}
	if !p.Sequence().Buffered() {
		t.Error("resume must not require re-reading the archive")
	}
	if p.CurrentFrameNumber() != frame {
		t.Errorf("expected frame %d preserved, got %d", frame, p.CurrentFrameNumber())
	}
}

func TestResume_NoopWhenNotPaused(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	p.Start()
	starts := timer.Starts

	p.Resume()
	if timer.Starts != starts {
		t.Errorf("expected no restart, got %d starts", timer.Starts)
	}
}

func TestStop_ReleasesBuffer(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	p.Start()
	timer.Fire()
	frame := p.CurrentFrameNumber()

	p.Stop()

	if p.Sequence().Buffered() {
		t.Error("expected archive buffer released on stop")
	}
	if timer.Active() {
		t.Error("expected timer halted on stop")
	}
	if p.CurrentFrameNumber() != frame {
		t.Errorf("stop must not reset the frame index, got %d", p.CurrentFrameNumber())
	}
	if img := p.CurrentImage(); img != nil {
		t.Error("expected no image after the buffer is released")
	}
}

func TestStop_WhilePaused(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	p.Start()
	p.Pause()

	p.Stop()
	if p.Sequence().Buffered() {
		t.Error("stop must release the buffer regardless of paused state")
	}
	if timer.Active() {
		t.Error("expected timer halted")
	}
}

func TestReset(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	p.Start()
	timer.Fire()

	p.Reset()
	if p.CurrentFrameNumber() != 0 {
		t.Errorf("expected frame reset to 0, got %d", p.CurrentFrameNumber())
	}
	if p.Sequence().Buffered() {
		t.Error("expected buffer released on non-paused reset")
	}
	if timer.Active() {
		t.Error("expected timer halted")
	}
}

func TestReset_WhilePausedKeepsState(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	p.Start()
	timer.Fire()
	p.Pause()
	frame := p.CurrentFrameNumber()

	p.Reset()
	if p.CurrentFrameNumber() != frame {
		t.Errorf("expected frame %d preserved, got %d", frame, p.CurrentFrameNumber())
	}
	if !p.Sequence().Buffered() {
		t.Error("expected buffer preserved on paused reset")
	}
	if timer.Active() {
		t.Error("expected timer halted")
	}
}

func TestCurrentFilename(t *testing.T) {
	p, timer := dirPlayer(t)
	p.Start()
	if got := p.CurrentFilename(); got != "/seq/f1.png" {
		t.Errorf("expected /seq/f1.png, got %q", got)
	}
	timer.Fire()
	if got := p.CurrentFilename(); got != "/seq/f2.png" {
		t.Errorf("expected /seq/f2.png, got %q", got)
	}
}

func TestCurrentFilename_EmptySequence(t *testing.T) {
	p := New(sequence.New(mocks.NewFileSystem()), mocks.NewTimer(), mocks.NewCodec(), logger.NewNoop(), Options{})
	if got := p.CurrentFilename(); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if img := p.CurrentImage(); img != nil {
		t.Error("expected nil image on empty sequence")
	}
	p.JumpToFrame(5) // must not panic
}

func TestCurrentImage_ArchiveReadsFromMemory(t *testing.T) {
	p, _, fs := archivePlayer(t)
	p.Start()

	// Fail any further disk read to prove frames come from the buffer.
	readFile := fs.ReadFileFunc
	fs.ReadFileFunc = func(path string) ([]byte, error) {
		t.Errorf("unexpected disk read: %s", path)
		return nil, nil
	}
	defer func() { fs.ReadFileFunc = readFile }()

	if img := p.CurrentImage(); img == nil {
		t.Fatal("expected a decoded image")
	}
}

func TestCurrentImage_DecodeFailure(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.AddFile("/single.png", []byte("not an image"))
	seq := sequence.New(fs)
	seq.SetPath("/single.png")

	codec := mocks.NewCodec()
	codec.Fail = true
	p := New(seq, mocks.NewTimer(), codec, logger.NewNoop(), Options{})

	if img := p.CurrentImage(); img != nil {
		t.Error("expected nil image on decode failure")
	}
}

func TestSetFPS(t *testing.T) {
	p, timer, _ := archivePlayer(t)
	if p.FPS() != DefaultFPS {
		t.Errorf("expected default fps %d, got %d", DefaultFPS, p.FPS())
	}
	p.SetFPS(0)
	if p.FPS() != DefaultFPS {
		t.Errorf("expected invalid fps ignored, got %d", p.FPS())
	}
	p.SetFPS(10)
	p.Start()
	if timer.Interval != time.Second/10 {
		t.Errorf("expected 100ms interval, got %v", timer.Interval)
	}
}
