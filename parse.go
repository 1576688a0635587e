package datetime

import (
	"fmt"
	"time"

	"github.com/davejbax/go-datetime/internal/digits"
)

// Parse converts a free-form date-time string to a DateTime in a single
// left-to-right scan. The accepted family of shapes is
//
//	YYYY(-|_)MM(-|_)DD[(T| |_)hh:mm:ss[.fraction]][(Z|±hh[:mm[:ss]]|±hhmm)]
//
// A fraction carries one to nine digits; fewer than nine are the
// most-significant digits, so .123456 means 123456 microseconds. A single
// space is tolerated between the seconds and a signed offset. Without an
// offset suffix the reading is taken as UTC.
func Parse(s string) (DateTime, error) {
	date, i, err := parseDatePrefix(s)
	if err != nil {
		return DateTime{}, err
	}

	if i == len(s) {
		return FromDate(date), nil
	}

	switch s[i] {
	case 'T', ' ', '_':
		i++
	case 'Z', '+', '-':
		// A bare date may still carry an offset suffix.
		offset, n, err := parseOffsetPrefix(s[i:])
		if err != nil {
			return DateTime{}, err
		}

		if i+n != len(s) {
			return DateTime{}, fmt.Errorf("%w: trailing input at byte %d", ErrInvalidFormat, i+n)
		}

		return New(date, TimeOfDay{}, offset), nil
	default:
		return DateTime{}, fmt.Errorf("%w: expected 'T', ' ' or '_' at byte %d", ErrInvalidFormat, i)
	}

	timeOfDay, n, err := parseTimePrefix(s[i:])
	if err != nil {
		return DateTime{}, err
	}
	i += n

	// Tolerate one space between the seconds and a signed offset suffix.
	if i+1 < len(s) && s[i] == ' ' && (s[i+1] == '+' || s[i+1] == '-') {
		i++
	}

	offset := UTC
	if i < len(s) {
		offset, n, err = parseOffsetPrefix(s[i:])
		if err != nil {
			return DateTime{}, err
		}
		i += n

		if i != len(s) {
			return DateTime{}, fmt.Errorf("%w: trailing input at byte %d", ErrInvalidFormat, i)
		}
	}

	return New(date, timeOfDay, offset), nil
}

// parseDatePrefix scans YYYY(-|_)MM(-|_)DD from the front of s and returns
// the number of bytes consumed.
func parseDatePrefix(s string) (Date, int, error) {
	if len(s) < dateWidth {
		return Date{}, 0, fmt.Errorf("%w: input shorter than a date", ErrInvalidFormat)
	}

	year, ok := digits.Parse(s, 4)
	if !ok {
		return Date{}, 0, fmt.Errorf("%w: non-digit in year field", ErrInvalidFormat)
	}

	if s[4] != '-' && s[4] != '_' {
		return Date{}, 0, fmt.Errorf("%w: expected '-' or '_' at byte 4", ErrInvalidFormat)
	}

	month, ok := digits.Parse(s[5:], 2)
	if !ok {
		return Date{}, 0, fmt.Errorf("%w: non-digit in month field", ErrInvalidFormat)
	}

	if s[7] != '-' && s[7] != '_' {
		return Date{}, 0, fmt.Errorf("%w: expected '-' or '_' at byte 7", ErrInvalidFormat)
	}

	day, ok := digits.Parse(s[8:], 2)
	if !ok {
		return Date{}, 0, fmt.Errorf("%w: non-digit in day field", ErrInvalidFormat)
	}

	date, err := NewDate(year, time.Month(month), day)
	if err != nil {
		return Date{}, 0, err
	}

	return date, dateWidth, nil
}

// parseTimePrefix scans hh:mm:ss[.fraction] from the front of s and returns
// the number of bytes consumed.
func parseTimePrefix(s string) (TimeOfDay, int, error) {
	if len(s) < 8 {
		return TimeOfDay{}, 0, fmt.Errorf("%w: input shorter than a time", ErrInvalidFormat)
	}

	hour, ok := digits.Parse(s, 2)
	if !ok {
		return TimeOfDay{}, 0, fmt.Errorf("%w: non-digit in hour field", ErrInvalidFormat)
	}

	if s[2] != ':' {
		return TimeOfDay{}, 0, fmt.Errorf("%w: expected ':' after the hour", ErrInvalidFormat)
	}

	minute, ok := digits.Parse(s[3:], 2)
	if !ok {
		return TimeOfDay{}, 0, fmt.Errorf("%w: non-digit in minute field", ErrInvalidFormat)
	}

	if s[5] != ':' {
		return TimeOfDay{}, 0, fmt.Errorf("%w: expected ':' after the minute", ErrInvalidFormat)
	}

	second, ok := digits.Parse(s[6:], 2)
	if !ok {
		return TimeOfDay{}, 0, fmt.Errorf("%w: non-digit in second field", ErrInvalidFormat)
	}

	n := 8
	nano := 0
	if n < len(s) && s[n] == '.' {
		var fn int
		nano, fn = digits.Fraction(s[n+1:])
		if fn == 0 {
			return TimeOfDay{}, 0, fmt.Errorf("%w: no digits after the fraction dot", ErrInvalidFormat)
		}

		n += 1 + fn
		if n < len(s) && isDigit(s[n]) {
			return TimeOfDay{}, 0, fmt.Errorf("%w: fraction longer than nine digits", ErrInvalidFormat)
		}
	}

	timeOfDay, err := NewTimeOfDay(hour, minute, second, nano)
	if err != nil {
		return TimeOfDay{}, 0, err
	}

	return timeOfDay, n, nil
}

// parseOffsetPrefix scans an offset suffix from the front of s: Z, ±hh,
// ±hhmm, ±hh:mm, or ±hh:mm:ss. It consumes greedily and returns the number
// of bytes taken.
func parseOffsetPrefix(s string) (Offset, int, error) {
	if len(s) == 0 {
		return 0, 0, fmt.Errorf("%w: empty offset", ErrInvalidFormat)
	}

	if s[0] == 'Z' {
		return UTC, 1, nil
	}

	var sign int
	switch s[0] {
	case '+':
		sign = 1
	case '-':
		sign = -1
	default:
		return 0, 0, fmt.Errorf("%w: expected 'Z', '+' or '-' in offset", ErrInvalidFormat)
	}

	hour, ok := digits.Parse(s[1:], 2)
	if !ok {
		return 0, 0, fmt.Errorf("%w: non-digit in offset hour field", ErrInvalidFormat)
	}
	n := 3

	minute := 0
	switch {
	case n < len(s) && s[n] == ':' && len(s) >= n+3 && isDigit(s[n+1]):
		minute, ok = digits.Parse(s[n+1:], 2)
		if !ok {
			return 0, 0, fmt.Errorf("%w: non-digit in offset minute field", ErrInvalidFormat)
		}
		n += 3
	case n+1 < len(s) && isDigit(s[n]) && isDigit(s[n+1]):
		minute, _ = digits.Parse(s[n:], 2)
		n += 2
	}

	second := 0
	if n < len(s) && s[n] == ':' && len(s) >= n+3 && isDigit(s[n+1]) {
		second, ok = digits.Parse(s[n+1:], 2)
		if !ok {
			return 0, 0, fmt.Errorf("%w: non-digit in offset second field", ErrInvalidFormat)
		}
		n += 3
	}

	if hour > 23 {
		return 0, 0, fmt.Errorf("%w: offset hour %d", ErrInvalidField, hour)
	}

	if minute > 59 {
		return 0, 0, fmt.Errorf("%w: offset minute %d", ErrInvalidField, minute)
	}

	if second > 59 {
		return 0, 0, fmt.Errorf("%w: offset second %d", ErrInvalidField, second)
	}

	return Offset(sign * (hour*3600 + minute*60 + second)), n, nil
}

// parseOffsetFull scans exactly the six-byte ±hh:mm shape required by the
// +00:00 layout token.
func parseOffsetFull(s string) (Offset, error) {
	if len(s) < 6 {
		return 0, fmt.Errorf("%w: input shorter than a ±hh:mm offset", ErrInvalidFormat)
	}

	if s[0] != '+' && s[0] != '-' {
		return 0, fmt.Errorf("%w: expected '+' or '-' in offset", ErrInvalidFormat)
	}

	if s[3] != ':' {
		return 0, fmt.Errorf("%w: expected ':' in offset", ErrInvalidFormat)
	}

	offset, n, err := parseOffsetPrefix(s[:6])
	if err != nil {
		return 0, err
	}

	if n != 6 {
		return 0, fmt.Errorf("%w: malformed ±hh:mm offset", ErrInvalidFormat)
	}

	return offset, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
