package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/davejbax/go-datetime/internal/digits"
)

// The layout grammar shared by [ParseLayout] and [DateTime.Format]: the
// tokens YYYY, MM, DD, hh, mm, ss, a run of one to nine '0's after a literal
// dot (fractional-second digits), Z (offset, Z form allowed), and +00:00
// (offset, signed numeric form required). Any other character is a literal.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenYear
	tokenMonth
	tokenDay
	tokenHour
	tokenMinute
	tokenSecond
	tokenFraction
	tokenOffsetZ
	tokenOffsetFull
)

type token struct {
	kind  tokenKind
	width int  // tokenFraction: number of digits
	lit   byte // tokenLiteral
}

// nextToken decodes the token starting at layout[pos] and returns it with
// the position of the following token.
func nextToken(layout string, pos int) (token, int) {
	rest := layout[pos:]

	switch {
	case strings.HasPrefix(rest, "YYYY"):
		return token{kind: tokenYear}, pos + 4
	case strings.HasPrefix(rest, "MM"):
		return token{kind: tokenMonth}, pos + 2
	case strings.HasPrefix(rest, "DD"):
		return token{kind: tokenDay}, pos + 2
	case strings.HasPrefix(rest, "hh"):
		return token{kind: tokenHour}, pos + 2
	case strings.HasPrefix(rest, "mm"):
		return token{kind: tokenMinute}, pos + 2
	case strings.HasPrefix(rest, "ss"):
		return token{kind: tokenSecond}, pos + 2
	case strings.HasPrefix(rest, "+00:00"):
		return token{kind: tokenOffsetFull}, pos + 6
	case rest[0] == 'Z':
		return token{kind: tokenOffsetZ}, pos + 1
	case rest[0] == '0':
		n := 1
		for n < len(rest) && rest[n] == '0' {
			n++
		}
		return token{kind: tokenFraction, width: n}, pos + n
	default:
		return token{kind: tokenLiteral, lit: rest[0]}, pos + 1
	}
}

// ParseLayout walks layout and input in lockstep: each token consumes its
// fixed-width field from the input, each literal must match verbatim. Field
// order is caller-defined, so recognized fields accumulate and are only
// composed once the whole layout is consumed. Missing fields default to the
// epoch date, midnight, and UTC.
//
// A token appearing twice is rejected with [ErrInvalidFormat]. The Z token
// consumes a trailing Z, a signed numeric offset, or nothing at the end of
// the input; the +00:00 token requires a full ±hh:mm.
func ParseLayout(layout, input string) (DateTime, error) {
	var (
		year          = 1970
		month, day    = 1, 1
		hour, minute  int
		second, nano  int
		offset        Offset
		seen          [tokenOffsetFull + 1]bool
	)

	i := 0
	for pos := 0; pos < len(layout); {
		tok, next := nextToken(layout, pos)

		if tok.kind != tokenLiteral {
			// Both offset tokens fill the same slot, so a layout gets one
			// offset at most.
			slot := tok.kind
			if slot == tokenOffsetFull {
				slot = tokenOffsetZ
			}

			if seen[slot] {
				return DateTime{}, fmt.Errorf("%w: duplicate token at layout byte %d", ErrInvalidFormat, pos)
			}
			seen[slot] = true
		}

		var err error
		switch tok.kind {
		case tokenLiteral:
			if i >= len(input) {
				return DateTime{}, fmt.Errorf("%w: input ends before layout byte %d", ErrInvalidFormat, pos)
			}

			if input[i] != tok.lit {
				return DateTime{}, fmt.Errorf("%w: expected %q at byte %d", ErrLiteralMismatch, tok.lit, i)
			}
			i++

		case tokenYear:
			year, err = parseLayoutField(input, &i, 4, "year")
		case tokenMonth:
			month, err = parseLayoutField(input, &i, 2, "month")
		case tokenDay:
			day, err = parseLayoutField(input, &i, 2, "day")
		case tokenHour:
			hour, err = parseLayoutField(input, &i, 2, "hour")
		case tokenMinute:
			minute, err = parseLayoutField(input, &i, 2, "minute")
		case tokenSecond:
			second, err = parseLayoutField(input, &i, 2, "second")

		case tokenFraction:
			if tok.width > 9 {
				return DateTime{}, fmt.Errorf("%w: fraction run longer than nine digits at layout byte %d", ErrUnrecognizedToken, pos)
			}

			if pos == 0 || layout[pos-1] != '.' {
				return DateTime{}, fmt.Errorf("%w: fraction digits must follow a literal '.' at layout byte %d", ErrUnrecognizedToken, pos)
			}

			nano, err = parseLayoutField(input, &i, tok.width, "fraction")
			nano = digits.ScaleFraction(nano, tok.width)

		case tokenOffsetZ:
			if i == len(input) {
				offset = UTC
				break
			}

			var n int
			offset, n, err = parseOffsetPrefix(input[i:])
			i += n

		case tokenOffsetFull:
			offset, err = parseOffsetFull(input[i:])
			i += 6
		}

		if err != nil {
			return DateTime{}, err
		}

		pos = next
	}

	if i != len(input) {
		return DateTime{}, fmt.Errorf("%w: trailing input at byte %d", ErrInvalidFormat, i)
	}

	date, err := NewDate(year, time.Month(month), day)
	if err != nil {
		return DateTime{}, err
	}

	timeOfDay, err := NewTimeOfDay(hour, minute, second, nano)
	if err != nil {
		return DateTime{}, err
	}

	return New(date, timeOfDay, offset), nil
}

func parseLayoutField(input string, i *int, width int, name string) (int, error) {
	v, ok := digits.Parse(input[*i:], width)
	if !ok {
		if len(input)-*i < width {
			return 0, fmt.Errorf("%w: input ends inside the %s field at byte %d", ErrInvalidFormat, name, *i)
		}

		return 0, fmt.Errorf("%w: non-digit in the %s field at byte %d", ErrInvalidFormat, name, *i)
	}

	*i += width
	return v, nil
}

// Format renders dt through the same token grammar [ParseLayout] accepts.
// Formatting never fails: malformed fraction runs are rendered best-effort
// and duplicate tokens simply repeat their field.
func (dt DateTime) Format(layout string) string {
	return string(dt.AppendFormat(make([]byte, 0, len(layout)+8), layout))
}

// AppendFormat appends the rendering of dt to dst and returns the extended
// slice, in a single pass over the layout.
func (dt DateTime) AppendFormat(dst []byte, layout string) []byte {
	for pos := 0; pos < len(layout); {
		tok, next := nextToken(layout, pos)

		switch tok.kind {
		case tokenLiteral:
			dst = append(dst, tok.lit)
		case tokenYear:
			dst = digits.Append(dst, dt.Year(), 4)
		case tokenMonth:
			dst = digits.Append(dst, int(dt.Month()), 2)
		case tokenDay:
			dst = digits.Append(dst, dt.Day(), 2)
		case tokenHour:
			dst = digits.Append(dst, dt.Hour(), 2)
		case tokenMinute:
			dst = digits.Append(dst, dt.Minute(), 2)
		case tokenSecond:
			dst = digits.Append(dst, dt.Second(), 2)
		case tokenFraction:
			width := tok.width
			if width > 9 {
				width = 9
			}

			dst = digits.AppendFraction(dst, dt.Nanosecond(), width)
			for j := width; j < tok.width; j++ {
				dst = append(dst, '0')
			}
		case tokenOffsetZ:
			dst = dt.offset.appendOffset(dst, true)
		case tokenOffsetFull:
			dst = dt.offset.appendOffset(dst, false)
		}

		pos = next
	}

	return dst
}
