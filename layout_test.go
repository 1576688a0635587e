package datetime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	cases := []struct {
		layout   string
		input    string
		expected string
	}{
		{"YYYY-MM-DD hh:mm:ss.000000", "2022-12-13 11:12:14.123456", "2022-12-13T11:12:14.123456Z"},
		{"YYYY-MM-DD hh:mm:ss.000000Z", "2022-12-13 11:12:14.123456Z", "2022-12-13T11:12:14.123456Z"},
		{"YYYY-MM-DD hh:mm:ss.000000000Z", "2022-12-13 11:12:14.123456789Z", "2022-12-13T11:12:14.123456789Z"},
		{"YYYY-MM-DD hh:mm:ss.000000+00:00", "2022-12-13 11:12:14.123456+06:00", "2022-12-13T11:12:14.123456+06:00"},
		{"YYYY-MM-DD hh:mm:ss.000000+00:00", "2022-12-13 11:12:14.123456-06:00", "2022-12-13T11:12:14.123456-06:00"},
		{"YYYY/MM/DD/hh:mm:ss", "2022/12/12/00:00:00", "2022-12-12T00:00:00Z"},
		{"YYYYMMDD", "20231102", "2023-11-02T00:00:00Z"},
		{"hh:mm:ss.000000,YYYY-MM-DD", "11:12:14.123456,2022-12-13", "2022-12-13T11:12:14.123456Z"},
		{"hh:mm:ss.000000Z,YYYY-MM-DD", "11:12:14.123456Z,2022-12-13", "2022-12-13T11:12:14.123456Z"},
		{"hh:mm:ss.000000+00:00,YYYY-MM-DD", "11:12:14.123456-08:00,2022-12-13", "2022-12-13T11:12:14.123456-08:00"},
		{"YYYY-MM-DD hh:mm:ss  .000000000", "2022-12-13 12:12:12  .000000001", "2022-12-13T12:12:12.000000001Z"},
		// The Z token consumes nothing at the end of the input.
		{"YYYY-MM-DDThh_mm_ss.000000Z", "1234-12-13T11_12_13.123456", "1234-12-13T11:12:13.123456Z"},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%q", c.input), func(t *testing.T) {
			t.Parallel()

			dt, err := ParseLayout(c.layout, c.input)
			require.NoError(t, err)
			assert.Equal(t, c.expected, dt.String())
		})
	}
}

func TestParseLayoutReorderedFields(t *testing.T) {
	a, err := ParseLayout("hh:mm:ss.000000,YYYY-MM-DD", "11:12:14.123456,2022-12-13")
	require.NoError(t, err)

	b, err := ParseLayout("YYYY-MM-DD hh:mm:ss.000000", "2022-12-13 11:12:14.123456")
	require.NoError(t, err)

	assert.Equal(t, a, b, "field order in the layout must not change the result")
}

func TestParseLayoutPartialFields(t *testing.T) {
	// Missing fields default to the epoch date and midnight.
	dt, err := ParseLayout("hh:mm:ss", "11:12:14")
	require.NoError(t, err)
	assert.Equal(t, "1970-01-01T11:12:14Z", dt.String())

	dt, err = ParseLayout("YYYY", "2023")
	require.NoError(t, err)
	assert.Equal(t, "2023-01-01T00:00:00Z", dt.String())
}

func TestParseLayoutErrors(t *testing.T) {
	cases := []struct {
		name   string
		layout string
		input  string
		err    error
	}{
		{"input too short for year", "YYYY-MM-DD", "202", ErrInvalidFormat},
		{"input too short for month", "YYYY-MM-DD", "2022-1", ErrInvalidFormat},
		{"input too short for day", "YYYY-MM-DD", "2022-12-3", ErrInvalidFormat},
		{"input too short for hour", "YYYY-MM-DD hh:mm:ss", "2022-12-13 1", ErrInvalidFormat},
		{"input too short for fraction", "YYYY-MM-DD hh:mm:ss.000000000", "2022-12-13 12:12:12.1", ErrInvalidFormat},
		{"input missing fraction", "YYYY-MM-DD hh:mm:ss.000000+00:00", "2022-12-13 12:12:12", ErrInvalidFormat},
		{"input missing offset", "YYYY-MM-DD hh:mm:ss.000000+00:00", "2022-12-13 12:12:12.123456+0", ErrInvalidFormat},
		{"non-digit in field", "YYYY-MM-DD", "20x2-12-13", ErrInvalidFormat},
		{"literal mismatch", "YYYY-MM-DD", "2022/12/13", ErrLiteralMismatch},
		{"month out of range", "YYYY-MM-DD", "2022-13-01", ErrInvalidField},
		{"day out of range", "YYYY-MM-DD", "2022-02-30", ErrInvalidField},
		{"hour out of range", "hh:mm:ss", "25:00:00", ErrInvalidField},
		{"duplicate year token", "YYYY-YYYY", "2022-2022", ErrInvalidFormat},
		{"duplicate offset token", "Z Z", "Z Z", ErrInvalidFormat},
		{"fraction without dot", "hh:mm:ss000", "11:12:14123", ErrUnrecognizedToken},
		{"fraction too long", "ss.0000000000", "14.1234567890", ErrUnrecognizedToken},
		{"trailing input", "YYYY-MM-DD", "2022-12-13junk", ErrInvalidFormat},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseLayout(c.layout, c.input)
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestParseLayoutMatchesFreeForm(t *testing.T) {
	fromLayout, err := ParseLayout("YYYY-MM-DD hh:mm:ss.000000Z", "1234-12-13 11:12:13.123456Z")
	require.NoError(t, err)

	fromFree := mustParse(t, "1234-12-13 11:12:13.123456Z")

	assert.Equal(t, fromFree, fromLayout)
}
