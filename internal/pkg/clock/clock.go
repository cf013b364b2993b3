// Package clock provides the time source stamped on cached pages
package clock

import "time"

// Clock tells the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock
type System struct{}

// Now returns the current local time
func (System) Now() time.Time { return time.Now() }

// New returns the wall clock
func New() Clock {
	return System{}
}

// Fixed is frozen at one instant, for tests and reproducible cache stamps
type Fixed struct {
	At time.Time
}

// Now returns At
func (c Fixed) Now() time.Time { return c.At }
