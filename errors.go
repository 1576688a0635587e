package datetime

import "errors"

// Every parse failure wraps exactly one of these sentinel errors, so callers
// can classify it with errors.Is. The wrapping message names the offending
// field or byte offset.
var (
	// ErrInvalidFormat means the input does not match any recognized
	// date-time shape, or is shorter than the layout requires.
	ErrInvalidFormat = errors.New("input does not match a recognized date-time shape")

	// ErrInvalidField means a numeric field was scanned successfully but its
	// value is out of range, such as month 13 or February 30th.
	ErrInvalidField = errors.New("date-time field is out of range")

	// ErrLiteralMismatch means a literal character in a layout had no
	// matching character in the input.
	ErrLiteralMismatch = errors.New("layout literal does not match input")

	// ErrUnrecognizedToken means a layout contains a token outside the
	// recognized set, such as a fraction run without a preceding dot.
	ErrUnrecognizedToken = errors.New("layout contains an unrecognized token")

	// ErrRange means a timestamp conversion produced a date outside the
	// supported year range 0..9999.
	ErrRange = errors.New("timestamp is outside the supported year range")
)
