// Package ticktimer implements ports.Timer with a time.Ticker.
package ticktimer

import (
	"sync"
	"time"

	"github.com/user/seqplay/pkg/ports"
)

// Timer fires a callback at a fixed interval on its own goroutine.
// Callbacks never overlap, and once Stop returns no new callback begins.
// The callback must not block; it may call Start or Stop.
type Timer struct {
	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
}

// New creates a stopped Timer.
func New() *Timer {
	return &Timer{}
}

// Start begins firing fn every interval. An active timer is restarted
// with the new interval.
func (t *Timer) Start(interval time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()

	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	t.ticker = ticker
	t.done = done

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				// A tick queued before Stop must not fire after it.
				select {
				case <-done:
					return
				default:
				}
				fn()
			}
		}
	}()
}

// Stop halts the timer. Safe to call on a stopped timer.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Timer) stopLocked() {
	if t.done == nil {
		return
	}
	t.ticker.Stop()
	close(t.done)
	t.ticker = nil
	t.done = nil
}

// Active reports whether the timer is currently firing.
func (t *Timer) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done != nil
}

// Ensure Timer implements ports.Timer
var _ ports.Timer = (*Timer)(nil)
