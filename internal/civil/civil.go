// Package civil implements proleptic-Gregorian calendar arithmetic on a
// day count measured from 1970-01-01.
package civil

// The day-count conversions are Howard Hinnant's branchless civil-from-days /
// days-from-civil algorithms, rebased from 0000-03-01 eras onto the Unix
// epoch. They are exact for any year representable in an int.

const (
	daysPerEra = 146097 // days in a 400-year Gregorian era

	// Day offset between 0000-03-01 (the era origin) and 1970-01-01.
	epochShift = 719468
)

var daysPerMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1..12) of year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return daysPerMonth[month]
}

// DaysFromDate converts a calendar date to its day count. The date is not
// validated; callers must ensure month is 1..12 and day is within the month.
func DaysFromDate(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}

	era := floorDiv(y, 400)
	yearOfEra := y - era*400 // [0, 399]

	// Day of year counted from March 1st, so the leap day lands at the end.
	m := int64(month)
	if m > 2 {
		m -= 3
	} else {
		m += 9
	}
	dayOfYear := (153*m+2)/5 + int64(day) - 1             // [0, 365]
	dayOfEra := yearOfEra*365 + yearOfEra/4 - yearOfEra/100 + dayOfYear

	return era*daysPerEra + dayOfEra - epochShift
}

// DateFromDays is the inverse of [DaysFromDate].
func DateFromDays(days int64) (year, month, day int) {
	z := days + epochShift
	era := floorDiv(z, daysPerEra)
	dayOfEra := z - era*daysPerEra // [0, 146096]

	yearOfEra := (dayOfEra - dayOfEra/1460 + dayOfEra/36524 - dayOfEra/146096) / 365
	y := yearOfEra + era*400
	dayOfYear := dayOfEra - (365*yearOfEra + yearOfEra/4 - yearOfEra/100) // [0, 365]

	mp := (5*dayOfYear + 2) / 153 // March-based month, [0, 11]
	day = int(dayOfYear - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	if month <= 2 {
		y++
	}

	return int(y), month, day
}

// Weekday returns the day of the week for a day count, with 0 = Sunday,
// matching the numbering of time.Weekday. Day 0 (1970-01-01) is a Thursday.
func Weekday(days int64) int {
	return int(((days%7)+11) % 7)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b < 0 {
		q--
	}

	return q
}
