// Package clock abstracts wall-clock reads and delayed callbacks so that
// timing-driven components can be driven deterministically in tests.
package clock

import "time"

// Clock is the single time capability handed to timing-driven components.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f in its own goroutine once d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a handle to a pending callback.
type Timer interface {
	// Stop cancels the callback. It reports false if the callback already
	// fired or was stopped.
	Stop() bool
}

// Real is the production Clock backed by package time.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Stop cancels t if it is non-nil. It is the standard way for owners to
// release a handle they may or may not hold.
func Stop(t Timer) {
	if t != nil {
		t.Stop()
	}
}
