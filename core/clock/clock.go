// Package clock provides the time injection point for the engine.
// Every aggregation pass captures "now" exactly once so a single report can
// never straddle a date boundary.
package clock

import "time"

// Clock supplies the current time
type Clock func() time.Time

// System returns the wall clock
func System() Clock {
	return time.Now
}

// Fixed returns a clock frozen at t, for tests and reproducible reports
func Fixed(t time.Time) Clock {
	return func() time.Time { return t }
}
