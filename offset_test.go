package datetime

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffset(t *testing.T) {
	cases := []struct {
		seconds int
		err     error
	}{
		{0, nil},
		{28_800, nil},
		{-28_800, nil},
		{86_399, nil},
		{-86_399, nil},
		{86_400, ErrInvalidField},
		{-86_400, ErrInvalidField},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%d", c.seconds), func(t *testing.T) {
			t.Parallel()

			o, err := NewOffset(c.seconds)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, c.seconds, o.Seconds())
		})
	}
}

func TestParseOffset(t *testing.T) {
	cases := []struct {
		input    string
		expected int
		err      error
	}{
		{"Z", 0, nil},
		{"+00:00", 0, nil},
		{"+09:00", 32_400, nil},
		{"-08:00", -28_800, nil},
		{"+09", 32_400, nil},
		{"+0930", 34_200, nil},
		{"+05:30", 19_800, nil},
		{"+00:00:01", 1, nil},
		{"-00:00:01", -1, nil},
		{"+23:59:59", 86_399, nil},
		{"+24:00", 0, ErrInvalidField},
		{"+00:60", 0, ErrInvalidField},
		{"*08:00", 0, ErrInvalidFormat},
		{"+0", 0, ErrInvalidFormat},
		{"+09:00x", 0, ErrInvalidFormat},
		{"", 0, ErrInvalidFormat},
	}

	for _, c := range cases {
		c := c
		t.Run(fmt.Sprintf("%q", c.input), func(t *testing.T) {
			t.Parallel()

			o, err := ParseOffset(c.input)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, c.expected, o.Seconds())
		})
	}
}

func TestOffsetString(t *testing.T) {
	cases := []struct {
		seconds  int
		expected string
	}{
		{0, "+00:00"},
		{28_800, "+08:00"},
		{-28_800, "-08:00"},
		{19_800, "+05:30"},
		{1, "+00:00:01"},
		{-1, "-00:00:01"},
		{86_399, "+23:59:59"},
	}

	for _, c := range cases {
		c := c
		t.Run(c.expected, func(t *testing.T) {
			t.Parallel()

			o, err := NewOffset(c.seconds)
			require.NoError(t, err)
			assert.Equal(t, c.expected, o.String())
		})
	}
}

func TestOffsetTextRoundTrip(t *testing.T) {
	o, err := NewOffset(19_800)
	require.NoError(t, err)

	text, err := o.MarshalText()
	require.NoError(t, err)

	var back Offset
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, o, back)
}
