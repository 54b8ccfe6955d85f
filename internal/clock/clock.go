// Package clock provides the one-second countdown timers used by a typing
// session, on top of an injectable scheduler.
package clock

import "time"

// Stopper cancels a scheduled callback.
type Stopper interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped a callback that had not yet run.
	Stop() bool
}

// Scheduler runs a callback once after a delay. Countdown does not serialize
// its callbacks with the caller's state, so the scheduler must deliver them
// on the goroutine that owns that state.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Stopper
}
