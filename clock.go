package datetime

import "time"

// Clock supplies the wall-clock reading behind Now and NowUTC. The library
// never touches the system clock except through a Clock, so tests can
// substitute a fixed reading.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Now returns the current local reading, carrying whatever offset the
// operating system reports for the local zone.
func Now() DateTime {
	return NowWith(systemClock{})
}

// NowUTC returns the current reading with a zero offset.
func NowUTC() DateTime {
	return NowUTCWith(systemClock{})
}

// NowWith is [Now] with an injected clock.
func NowWith(c Clock) DateTime {
	return FromTime(c.Now())
}

// NowUTCWith is [NowUTC] with an injected clock.
func NowUTCWith(c Clock) DateTime {
	return FromTime(c.Now().UTC())
}
