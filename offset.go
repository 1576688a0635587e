package datetime

import "fmt"

// Offset is a signed displacement from UTC in seconds, positive east of
// Greenwich. Offsets are bounded to less than a full day; second precision is
// preserved even though most textual forms carry whole minutes only.
type Offset int32

// UTC is the zero offset.
const UTC Offset = 0

const maxOffsetSeconds = 86_399

// NewOffset validates a displacement in seconds, bounded to ±86399.
func NewOffset(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return 0, fmt.Errorf("%w: offset %d seconds", ErrInvalidField, seconds)
	}

	return Offset(seconds), nil
}

// Seconds returns the displacement in seconds east of UTC.
func (o Offset) Seconds() int {
	return int(o)
}

// String renders the offset as ±hh:mm, extended to ±hh:mm:ss when the
// displacement is not a whole number of minutes. The zero offset renders as
// +00:00; use the DateTime renderers for the Z form.
func (o Offset) String() string {
	return string(o.appendOffset(make([]byte, 0, offsetWidth), false))
}

// ParseOffset accepts Z, ±hh, ±hhmm, ±hh:mm, and ±hh:mm:ss.
func ParseOffset(s string) (Offset, error) {
	o, n, err := parseOffsetPrefix(s)
	if err != nil {
		return 0, err
	}

	if n != len(s) {
		return 0, fmt.Errorf("%w: trailing input at byte %d", ErrInvalidFormat, n)
	}

	return o, nil
}

func (o Offset) MarshalText() ([]byte, error) {
	return o.appendOffset(make([]byte, 0, offsetWidth), false), nil
}

func (o *Offset) UnmarshalText(text []byte) error {
	parsed, err := ParseOffset(string(text))
	if err != nil {
		return err
	}

	*o = parsed
	return nil
}
