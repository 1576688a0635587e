package civil

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysFromDate(t *testing.T) {
	cases := []struct {
		year, month, day int
		expected         int64
	}{
		{1970, 1, 1, 0},
		{1970, 1, 2, 1},
		{1969, 12, 31, -1},
		{2000, 3, 1, 11017},
		{2000, 1, 1, 10957},
		{1600, 1, 1, -135140},
		{0, 1, 1, -719528},
		{9999, 12, 31, 2932896},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%04d-%02d-%02d", c.year, c.month, c.day), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, DaysFromDate(c.year, c.month, c.day))
		})
	}
}

func TestDateFromDaysRoundTrip(t *testing.T) {
	// Sweep a couple of eras either side of the epoch with a stride that is
	// coprime to 7 and 146097, so every field combination gets exercised.
	for days := int64(-400_000); days <= 400_000; days += 337 {
		year, month, day := DateFromDays(days)

		require.Equal(t, days, DaysFromDate(year, month, day),
			"day count %d (%04d-%02d-%02d) should round-trip", days, year, month, day)
		require.GreaterOrEqual(t, month, 1)
		require.LessOrEqual(t, month, 12)
		require.GreaterOrEqual(t, day, 1)
		require.LessOrEqual(t, day, DaysInMonth(year, month))
	}
}

func TestIsLeapYear(t *testing.T) {
	cases := []struct {
		year     int
		expected bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{1600, true},
		{0, true},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d", c.year), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, IsLeapYear(c.year))
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month int
		expected    int
	}{
		{2000, 2, 29},
		{1900, 2, 28},
		{2024, 2, 29},
		{2023, 2, 28},
		{2023, 1, 31},
		{2023, 4, 30},
		{2023, 12, 31},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%04d-%02d", c.year, c.month), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, DaysInMonth(c.year, c.month))
		})
	}
}

func TestWeekday(t *testing.T) {
	cases := []struct {
		days     int64
		expected int
	}{
		{0, 4},  // 1970-01-01, Thursday
		{1, 5},  // Friday
		{-1, 3}, // 1969-12-31, Wednesday
		{DaysFromDate(2000, 1, 1), 6},  // Saturday
		{DaysFromDate(2022, 7, 27), 3}, // Wednesday
		{DaysFromDate(1958, 1, 1), 3},  // Wednesday
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("day%d", c.days), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, c.expected, Weekday(c.days))
		})
	}
}
