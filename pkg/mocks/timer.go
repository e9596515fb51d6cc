package mocks

import (
	"sync"
	"time"

	"github.com/user/seqplay/pkg/ports"
)

// Timer is a mock implementation of ports.Timer driven manually from
// tests with Fire.
type Timer struct {
	mu sync.Mutex

	fn       func()
	active   bool
	Interval time.Duration
	Starts   int
	Stops    int
}

// NewTimer creates a new mock Timer.
func NewTimer() *Timer {
	return &Timer{}
}

func (m *Timer) Start(interval time.Duration, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Interval = interval
	m.fn = fn
	m.active = true
	m.Starts++
}

func (m *Timer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = false
	m.Stops++
}

func (m *Timer) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Fire invokes the registered callback once, as a scheduled tick would.
// It does nothing while the timer is stopped.
func (m *Timer) Fire() {
	m.mu.Lock()
	fn := m.fn
	active := m.active
	m.mu.Unlock()
	if active && fn != nil {
		fn()
	}
}

var _ ports.Timer = (*Timer)(nil)
