package clock

import "time"

// Clock provides time operations that can be mocked for testing.
// Attendance records are stamped with the local date and time, so
// anything that writes them takes a Clock instead of calling
// time.Now directly.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// New creates a new RealClock.
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current local time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}
