package ports

import "time"

// Timer abstracts the host's periodic-callback facility. Implementations
// guarantee non-overlapping callback invocations, and that no new callback
// begins after Stop returns.
type Timer interface {
	// Start begins firing fn every interval until Stop is called.
	// Calling Start on an active timer restarts it with the new interval.
	Start(interval time.Duration, fn func())

	// Stop halts the timer. It is safe to call on a stopped timer.
	Stop()

	// Active reports whether the timer is currently firing.
	Active() bool
}
