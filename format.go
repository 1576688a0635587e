package datetime

import (
	"github.com/davejbax/go-datetime/internal/civil"
	"github.com/davejbax/go-datetime/internal/digits"
)

// Rendered widths of the fixed-shape fields, used to size output buffers so
// the common renderings stay within a single allocation.
const (
	dateWidth   = 10 // YYYY-MM-DD
	timeWidth   = 18 // hh:mm:ss.fffffffff
	offsetWidth = 9  // ±hh:mm:ss
	stringWidth = dateWidth + 1 + timeWidth + offsetWidth
)

// String renders the default layout YYYY-MM-DDThh:mm:ss[.fraction]offset.
// The fraction appears only when non-zero: six digits when the nanosecond
// value is a whole number of microseconds, nine otherwise. A zero offset
// renders as Z.
func (dt DateTime) String() string {
	buf := make([]byte, 0, stringWidth)
	buf = dt.Date().appendDate(buf)
	buf = append(buf, 'T')
	buf = dt.TimeOfDay().appendTime(buf)
	buf = dt.offset.appendOffset(buf, true)

	return string(buf)
}

func (dt DateTime) MarshalText() ([]byte, error) {
	buf := make([]byte, 0, stringWidth)
	buf = dt.Date().appendDate(buf)
	buf = append(buf, 'T')
	buf = dt.TimeOfDay().appendTime(buf)
	buf = dt.offset.appendOffset(buf, true)

	return buf, nil
}

func (dt *DateTime) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*dt = parsed
	return nil
}

func (d Date) appendDate(dst []byte) []byte {
	year, month, day := civil.DateFromDays(int64(d.days))

	dst = digits.Append(dst, year, 4)
	dst = append(dst, '-')
	dst = digits.Append(dst, month, 2)
	dst = append(dst, '-')

	return digits.Append(dst, day, 2)
}

func (t TimeOfDay) appendTime(dst []byte) []byte {
	dst = digits.Append(dst, t.Hour(), 2)
	dst = append(dst, ':')
	dst = digits.Append(dst, t.Minute(), 2)
	dst = append(dst, ':')
	dst = digits.Append(dst, t.Second(), 2)

	if nano := t.Nanosecond(); nano != 0 {
		dst = append(dst, '.')
		if nano%1000 == 0 {
			dst = digits.AppendFraction(dst, nano, 6)
		} else {
			dst = digits.AppendFraction(dst, nano, 9)
		}
	}

	return dst
}

// appendOffset renders ±hh:mm, extended to ±hh:mm:ss for offsets that are
// not a whole number of minutes. With zulu set, a zero offset renders as Z.
func (o Offset) appendOffset(dst []byte, zulu bool) []byte {
	if o == 0 && zulu {
		return append(dst, 'Z')
	}

	seconds := int(o)
	sign := byte('+')
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}

	dst = append(dst, sign)
	dst = digits.Append(dst, seconds/3600, 2)
	dst = append(dst, ':')
	dst = digits.Append(dst, seconds/60%60, 2)

	if seconds%60 != 0 {
		dst = append(dst, ':')
		dst = digits.Append(dst, seconds%60, 2)
	}

	return dst
}
