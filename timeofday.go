package datetime

import "fmt"

const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerDay    = 86_400 * nanosPerSecond
)

// TimeOfDay is a wall-clock reading within a single day, stored as
// nanoseconds since midnight. The zero value is midnight. Leap seconds do not
// exist in this model; second 60 is rejected.
type TimeOfDay struct {
	nsec int64
}

// NewTimeOfDay validates the given fields and returns the TimeOfDay they
// name. Out-of-range fields fail with [ErrInvalidField].
func NewTimeOfDay(hour, minute, second, nano int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d", ErrInvalidField, hour)
	}

	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d", ErrInvalidField, minute)
	}

	if second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: second %d", ErrInvalidField, second)
	}

	if nano < 0 || nano > 999_999_999 {
		return TimeOfDay{}, fmt.Errorf("%w: nanosecond %d", ErrInvalidField, nano)
	}

	nsec := int64(hour)*3600*nanosPerSecond +
		int64(minute)*60*nanosPerSecond +
		int64(second)*nanosPerSecond +
		int64(nano)

	return TimeOfDay{nsec: nsec}, nil
}

// TimeOfDayFromNanoseconds converts a nanoseconds-since-midnight count in
// [0, 86_400_000_000_000) back to a TimeOfDay. Overflow across midnight is
// never carried here; that is DateTime arithmetic's job.
func TimeOfDayFromNanoseconds(nsec int64) (TimeOfDay, error) {
	if nsec < 0 || nsec >= nanosPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %d nanoseconds since midnight", ErrInvalidField, nsec)
	}

	return TimeOfDay{nsec: nsec}, nil
}

// Nanoseconds returns the reading as nanoseconds since midnight.
func (t TimeOfDay) Nanoseconds() int64 {
	return t.nsec
}

func (t TimeOfDay) Hour() int {
	return int(t.nsec / (3600 * nanosPerSecond))
}

func (t TimeOfDay) Minute() int {
	return int(t.nsec/(60*nanosPerSecond)) % 60
}

func (t TimeOfDay) Second() int {
	return int(t.nsec/nanosPerSecond) % 60
}

func (t TimeOfDay) Nanosecond() int {
	return int(t.nsec % nanosPerSecond)
}

// String renders the reading as hh:mm:ss, with a fractional part appended
// only when it is non-zero: six digits when the value is a whole number of
// microseconds, nine otherwise.
func (t TimeOfDay) String() string {
	buf := make([]byte, 0, timeWidth)
	return string(t.appendTime(buf))
}

// ParseTimeOfDay accepts hh:mm:ss with an optional .fraction of one to nine
// digits.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, n, err := parseTimePrefix(s)
	if err != nil {
		return TimeOfDay{}, err
	}

	if n != len(s) {
		return TimeOfDay{}, fmt.Errorf("%w: trailing input at byte %d", ErrInvalidFormat, n)
	}

	return t, nil
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return t.appendTime(make([]byte, 0, timeWidth)), nil
}

func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
