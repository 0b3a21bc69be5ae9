// Package clock supplies the wall clock used to stamp created/updated times.
package clock

import "time"

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// Clock abstracts the time source.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return Now()
}

// FixedClock always reports the same instant. Useful in tests.
type FixedClock struct {
	At time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.At
}
