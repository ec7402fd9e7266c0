package clock

import "time"

// Mock is a mock implementation of Clock for testing.
type Mock struct {
	CurrentTime time.Time
}

var _ Clock = (*Mock)(nil)

// NewMock creates a Mock set to the given time.
func NewMock(t time.Time) *Mock {
	return &Mock{CurrentTime: t}
}

// Now returns the mocked current time.
func (c *Mock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by the given duration.
func (c *Mock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set sets the clock to the given time.
func (c *Mock) Set(t time.Time) {
	c.CurrentTime = t
}
