package event

import "time"

// Clock provides time for double-click detection. Tests inject a fake clock
// to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
