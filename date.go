package datetime

import (
	"fmt"
	"time"

	"github.com/davejbax/go-datetime/internal/civil"
)

// Supported year range for constructed values. Day-count arithmetic itself is
// valid far beyond this, but the text formats are fixed at four year digits.
const (
	minYear = 0
	maxYear = 9999
)

// Date is a proleptic-Gregorian calendar date with no time-of-day and no
// offset, stored as a day count. The zero value is 1970-01-01.
type Date struct {
	days int32
}

// NewDate validates a (year, month, day) triple and returns the Date it
// names. Triples that do not exist on the calendar, such as February 30th,
// fail with [ErrInvalidField].
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return Date{}, fmt.Errorf("%w: year %d", ErrInvalidField, year)
	}

	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidField, int(month))
	}

	if day < 1 || day > civil.DaysInMonth(year, int(month)) {
		return Date{}, fmt.Errorf("%w: day %d of %d-%02d", ErrInvalidField, day, year, int(month))
	}

	return Date{days: int32(civil.DaysFromDate(year, int(month), day))}, nil
}

// DateFromDays converts a day count since 1970-01-01 back to a Date. It is
// the inverse of [Date.Days] and fails with [ErrRange] outside the supported
// year range.
func DateFromDays(days int) (Date, error) {
	year, _, _ := civil.DateFromDays(int64(days))
	if year < minYear || year > maxYear {
		return Date{}, fmt.Errorf("%w: day count %d", ErrRange, days)
	}

	return Date{days: int32(days)}, nil
}

// Days returns the number of days between d and 1970-01-01; dates before the
// epoch yield negative counts.
func (d Date) Days() int {
	return int(d.days)
}

func (d Date) Year() int {
	year, _, _ := civil.DateFromDays(int64(d.days))
	return year
}

func (d Date) Month() time.Month {
	_, month, _ := civil.DateFromDays(int64(d.days))
	return time.Month(month)
}

func (d Date) Day() int {
	_, _, day := civil.DateFromDays(int64(d.days))
	return day
}

func (d Date) Weekday() time.Weekday {
	return time.Weekday(civil.Weekday(int64(d.days)))
}

// AddDays returns the date n days after d (or before, for negative n). The
// arithmetic is unchecked: a result outside years 0 through 9999 still has
// exact calendar fields, but no longer fits the four-digit text forms, and
// [String] is only defined inside that range. [DateFromDays] round-trips the
// day count when a checked result is needed.
func (d Date) AddDays(n int) Date {
	return Date{days: d.days + int32(n)}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	buf := make([]byte, 0, dateWidth)
	return string(d.appendDate(buf))
}

// ParseDate accepts YYYY-MM-DD, with '_' tolerated in place of '-'.
func ParseDate(s string) (Date, error) {
	d, n, err := parseDatePrefix(s)
	if err != nil {
		return Date{}, err
	}

	if n != len(s) {
		return Date{}, fmt.Errorf("%w: trailing input at byte %d", ErrInvalidFormat, n)
	}

	return d, nil
}

func (d Date) MarshalText() ([]byte, error) {
	return d.appendDate(make([]byte, 0, dateWidth)), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
