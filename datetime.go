package datetime

import (
	"fmt"
	"time"

	"github.com/davejbax/go-datetime/internal/civil"
)

// DateTime is a wall-clock reading paired with its offset from UTC, so the
// same instant can be printed in either zone. The zero value is
// 1970-01-01T00:00:00Z.
//
// Equality and ordering are defined on the absolute instant, not on the local
// fields: two DateTimes with different offsets but the same instant compare
// equal through [DateTime.Equal]. The == operator additionally distinguishes
// the offset; use Equal for instant comparison.
type DateTime struct {
	days   int32 // local calendar day count since 1970-01-01
	nsec   int64 // local nanoseconds since midnight, [0, nanosPerDay)
	offset Offset
}

// New composes a DateTime from its three parts. The parts are validated at
// their own construction, so composition cannot fail.
func New(date Date, timeOfDay TimeOfDay, offset Offset) DateTime {
	return DateTime{
		days:   date.days,
		nsec:   timeOfDay.nsec,
		offset: offset,
	}
}

// FromDate places a date at midnight UTC.
func FromDate(date Date) DateTime {
	return New(date, TimeOfDay{}, UTC)
}

// FromTimeOfDay places a time-of-day on the epoch date 1970-01-01 at UTC.
func FromTimeOfDay(timeOfDay TimeOfDay) DateTime {
	return New(Date{}, timeOfDay, UTC)
}

// FromTime converts a standard library time.Time, preserving its zone offset.
func FromTime(t time.Time) DateTime {
	year, month, day := t.Date()
	_, offset := t.Zone()

	nsec := int64(t.Hour())*3600*nanosPerSecond +
		int64(t.Minute())*60*nanosPerSecond +
		int64(t.Second())*nanosPerSecond +
		int64(t.Nanosecond())

	return DateTime{
		days:   int32(civil.DaysFromDate(year, int(month), day)),
		nsec:   nsec,
		offset: Offset(offset),
	}
}

// Time converts back to a standard library time.Time in a fixed zone carrying
// the same offset.
func (dt DateTime) Time() time.Time {
	year, month, day := civil.DateFromDays(int64(dt.days))

	return time.Date(
		year,
		time.Month(month),
		day,
		dt.Hour(),
		dt.Minute(),
		dt.Second(),
		dt.Nanosecond(),
		time.FixedZone("", int(dt.offset)),
	)
}

// Date returns the local calendar date part.
func (dt DateTime) Date() Date {
	return Date{days: dt.days}
}

// TimeOfDay returns the local wall-clock part.
func (dt DateTime) TimeOfDay() TimeOfDay {
	return TimeOfDay{nsec: dt.nsec}
}

// Offset returns the displacement from UTC.
func (dt DateTime) Offset() Offset {
	return dt.offset
}

func (dt DateTime) Year() int          { return dt.Date().Year() }
func (dt DateTime) Month() time.Month  { return dt.Date().Month() }
func (dt DateTime) Day() int           { return dt.Date().Day() }
func (dt DateTime) Hour() int          { return dt.TimeOfDay().Hour() }
func (dt DateTime) Minute() int        { return dt.TimeOfDay().Minute() }
func (dt DateTime) Second() int        { return dt.TimeOfDay().Second() }
func (dt DateTime) Nanosecond() int    { return dt.TimeOfDay().Nanosecond() }
func (dt DateTime) Weekday() time.Weekday {
	return time.Weekday(civil.Weekday(int64(dt.days)))
}

// instant returns the absolute point in time as whole seconds since the Unix
// epoch plus a nanosecond remainder in [0, 1e9).
func (dt DateTime) instant() (sec, nsec int64) {
	return int64(dt.days)*86_400 + dt.nsec/nanosPerSecond - int64(dt.offset), dt.nsec % nanosPerSecond
}

// Add returns the reading d later than dt, carrying across midnight and year
// boundaries in either direction. The offset is unchanged.
func (dt DateTime) Add(d time.Duration) DateTime {
	total := dt.nsec + d.Nanoseconds()
	dayDelta := floorDiv(total, nanosPerDay)

	return DateTime{
		days:   dt.days + int32(dayDelta),
		nsec:   total - dayDelta*nanosPerDay,
		offset: dt.offset,
	}
}

// Sub returns the reading d earlier than dt.
func (dt DateTime) Sub(d time.Duration) DateTime {
	return dt.Add(-d)
}

// DurationSince returns the elapsed time between two instants, dt - u.
func (dt DateTime) DurationSince(u DateTime) time.Duration {
	sec1, nsec1 := dt.instant()
	sec2, nsec2 := u.instant()

	return time.Duration(sec1-sec2)*time.Second + time.Duration(nsec1-nsec2)
}

// In re-expresses the same instant under a new offset: the local fields
// shift, the instant is preserved. To reinterpret the local fields under a
// different offset instead, recompose with [New].
func (dt DateTime) In(offset Offset) DateTime {
	shifted := dt.Add(time.Duration(offset-dt.offset) * time.Second)
	shifted.offset = offset

	return shifted
}

// Compare orders two readings by absolute instant: -1 when dt is earlier
// than u, 0 when they denote the same instant, +1 when later.
func (dt DateTime) Compare(u DateTime) int {
	sec1, nsec1 := dt.instant()
	sec2, nsec2 := u.instant()

	switch {
	case sec1 < sec2 || (sec1 == sec2 && nsec1 < nsec2):
		return -1
	case sec1 == sec2 && nsec1 == nsec2:
		return 0
	default:
		return 1
	}
}

// Before reports whether the dt instant is earlier than the u instant.
func (dt DateTime) Before(u DateTime) bool {
	return dt.Compare(u) < 0
}

// After reports whether the dt instant is later than the u instant.
func (dt DateTime) After(u DateTime) bool {
	return dt.Compare(u) > 0
}

// Equal reports whether both readings denote the same instant, regardless of
// their offsets.
func (dt DateTime) Equal(u DateTime) bool {
	return dt.Compare(u) == 0
}

// Unix returns the instant as seconds since 1970-01-01T00:00:00Z, truncated
// towards the epoch.
func (dt DateTime) Unix() int64 {
	sec, _ := dt.instant()
	return sec
}

// UnixMilli returns the instant in milliseconds since the Unix epoch.
func (dt DateTime) UnixMilli() int64 {
	sec, nsec := dt.instant()
	return sec*1_000 + nsec/1_000_000
}

// UnixMicro returns the instant in microseconds since the Unix epoch.
func (dt DateTime) UnixMicro() int64 {
	sec, nsec := dt.instant()
	return sec*1_000_000 + nsec/1_000
}

// UnixNano returns the instant in nanoseconds since the Unix epoch. The
// result is only defined for instants within the int64 nanosecond range,
// roughly years 1678 through 2262.
func (dt DateTime) UnixNano() int64 {
	sec, nsec := dt.instant()
	return sec*nanosPerSecond + nsec
}

// FromUnix converts seconds since the Unix epoch to a UTC DateTime. Seconds
// that land outside the supported year range fail with [ErrRange].
func FromUnix(sec int64) (DateTime, error) {
	return fromEpoch(sec, 0)
}

// FromUnixMilli converts milliseconds since the Unix epoch to a UTC DateTime.
func FromUnixMilli(msec int64) (DateTime, error) {
	sec := floorDiv(msec, 1_000)
	return fromEpoch(sec, (msec-sec*1_000)*1_000_000)
}

// FromUnixMicro converts microseconds since the Unix epoch to a UTC DateTime.
func FromUnixMicro(usec int64) (DateTime, error) {
	sec := floorDiv(usec, 1_000_000)
	return fromEpoch(sec, (usec-sec*1_000_000)*1_000)
}

// FromUnixNano converts nanoseconds since the Unix epoch to a UTC DateTime.
func FromUnixNano(nsec int64) (DateTime, error) {
	sec := floorDiv(nsec, nanosPerSecond)
	return fromEpoch(sec, nsec-sec*nanosPerSecond)
}

func fromEpoch(sec, nsec int64) (DateTime, error) {
	days := floorDiv(sec, 86_400)

	if year, _, _ := civil.DateFromDays(days); year < minYear || year > maxYear {
		return DateTime{}, fmt.Errorf("%w: %d seconds since the epoch", ErrRange, sec)
	}

	return DateTime{
		days:   int32(days),
		nsec:   (sec-days*86_400)*nanosPerSecond + nsec,
		offset: UTC,
	}, nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}

	return q
}
