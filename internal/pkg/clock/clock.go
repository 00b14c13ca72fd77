// Package clock abstracts time so tests can substitute a fixed source.
package clock

import "time"

// Clocker is the time source consumed by components that stamp records.
type Clocker interface {
	Now() time.Time
}

// SystemClock reads the real system time.
type SystemClock struct{}

// New returns a SystemClock.
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current system time.
func (*SystemClock) Now() time.Time {
	return time.Now()
}
