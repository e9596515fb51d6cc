// Package player drives frame-by-frame playback of an image sequence on a
// periodic timer. The timer and the image codec are host-supplied
// capabilities; the player itself only owns the frame index, the
// paused/running state and the frame-changed notifications.
package player

import (
	"sync"
	"time"

	"github.com/user/seqplay/pkg/ports"
	"github.com/user/seqplay/pkg/sequence"
)

// DefaultFPS is the playback rate used when none is configured.
const DefaultFPS = 24

// Options configures a Player.
type Options struct {
	// FPS is the playback rate in frames per second (default 24).
	FPS int
}

// Player is the playback state machine over one Sequence. State moves
// Stopped -> Running -> Paused -> Running and back to Stopped only through
// an explicit Stop or Reset call.
//
// The timer callback is the only concurrent entry point; a mutex keeps
// lifecycle calls and ticks from interleaving. Frame-changed listeners run
// on the timer goroutine and must not block.
type Player struct {
	mu        sync.Mutex
	seq       *sequence.Sequence
	timer     ports.Timer
	codec     ports.ImageCodec
	logger    ports.Logger
	fps       int
	frame     int
	paused    bool
	listeners []func(int)
}

// New creates a Player over seq. The timer is constructed by the caller
// and owned by the player for its whole lifetime.
func New(seq *sequence.Sequence, timer ports.Timer, codec ports.ImageCodec, logger ports.Logger, opts Options) *Player {
	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Player{
		seq:    seq,
		timer:  timer,
		codec:  codec,
		logger: logger.WithComponent("player"),
		fps:    fps,
	}
}

// Sequence returns the sequence being played.
func (p *Player) Sequence() *sequence.Sequence {
	return p.seq
}

// FPS returns the configured playback rate.
func (p *Player) FPS() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fps
}

// SetFPS changes the playback rate. Rates below 1 are ignored. The new
// rate takes effect on the next Start or Resume.
func (p *Player) SetFPS(fps int) {
	if fps <= 0 {
		return
	}
	p.mu.Lock()
	p.fps = fps
	p.mu.Unlock()
}

// OnFrameChanged registers a listener called with the new frame index on
// every successful jump, including wraparound.
func (p *Player) OnFrameChanged(fn func(index int)) {
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}

// interval derives the tick period from the playback rate, 1000/fps ms.
func (p *Player) interval() time.Duration {
	return time.Duration(float64(time.Second) / float64(p.fps))
}

// Reset halts the timer and, unless playback is paused, releases the
// archive buffer and rewinds to frame 0. Pausing preserves the buffer so
// Resume continues without re-reading the archive. Idempotent.
func (p *Player) Reset() {
	p.mu.Lock()
	if !p.paused {
		p.seq.ReleaseBuffer()
		p.frame = 0
	}
	p.mu.Unlock()
	p.timer.Stop()
}

// Start resets playback, re-resolves the recorded source path to rebuild
// the frame list (archive buffers were just released), and starts the
// timer at the configured rate.
func (p *Player) Start() {
	p.Reset()
	p.mu.Lock()
	if dirname := p.seq.Dirname(); dirname != "" {
		p.seq.SetPath(dirname)
	}
	iv := p.interval()
	p.mu.Unlock()
	p.logger.Debug("Playing %d frames at %d fps", p.Sequence().FrameCount(), p.FPS())
	p.timer.Start(iv, p.tick)
}

// Pause halts the timer without releasing buffers or resetting the frame
// index, so Resume continues exactly where playback left off.
func (p *Player) Pause() {
	p.mu.Lock()
	p.paused = true
	p.mu.Unlock()
	p.timer.Stop()
	p.logger.Debug("Playback paused")
}

// Paused reports whether playback is paused.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Resume restarts the timer if playback is paused, and does nothing
// otherwise.
func (p *Player) Resume() {
	p.mu.Lock()
	if !p.paused {
		p.mu.Unlock()
		return
	}
	p.paused = false
	iv := p.interval()
	p.mu.Unlock()
	p.timer.Start(iv, p.tick)
	p.logger.Debug("Playback resumed")
}

// Stop halts the timer and unconditionally releases the archive buffer.
// The frame index is left untouched.
func (p *Player) Stop() {
	p.mu.Lock()
	p.seq.ReleaseBuffer()
	p.mu.Unlock()
	p.timer.Stop()
	p.logger.Debug("Playback stopped")
}

// tick advances playback by one frame. An empty frame list
// short-circuits cleanly so nothing can fail across the tick boundary.
func (p *Player) tick() {
	p.mu.Lock()
	if p.seq.FrameCount() == 0 {
		p.mu.Unlock()
		return
	}
	next := p.frame + 1
	p.mu.Unlock()
	p.JumpToFrame(next)
}

// JumpToFrame sets the current frame and notifies listeners with the new
// index. An index one past the end wraps to 0; the tick handler only ever
// steps by one, so a single wraparound is sufficient.
func (p *Player) JumpToFrame(index int) {
	p.mu.Lock()
	if index >= p.seq.FrameCount() {
		index = 0
	}
	p.frame = index
	listeners := make([]func(int), len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()
	for _, fn := range listeners {
		fn(index)
	}
}

// CurrentFrameNumber returns the current frame index.
func (p *Player) CurrentFrameNumber() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame
}

// Percent returns the playback position in [0, 1]. The last frame is
// exactly 1.0; earlier frames use (count+frame)/count - 1, which matches
// frame/count up to floating-point rounding. An empty sequence is 0.
func (p *Player) Percent() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := p.seq.FrameCount()
	if count == 0 {
		return 0
	}
	if count == p.frame+1 {
		return 1
	}
	return float64(count+p.frame)/float64(count) - 1
}
