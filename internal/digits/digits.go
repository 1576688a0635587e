// Package digits provides the fixed-width decimal field primitives shared by
// the date-time parser and formatter.
package digits

// pow10[i] is 10^i for i in 0..9.
var pow10 = [10]int{1, 10, 100, 1_000, 10_000, 100_000, 1_000_000, 10_000_000, 100_000_000, 1_000_000_000}

// Parse reads exactly width ASCII digits from the front of s.
func Parse(s string, width int) (int, bool) {
	if len(s) < width {
		return 0, false
	}

	v := 0
	for i := 0; i < width; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}

	return v, true
}

// Fraction reads up to nine digits of a sub-second fraction from the front of
// s and scales them to nanoseconds, so "123456" yields 123456000. It returns
// the digit count consumed; zero means no digit was present.
func Fraction(s string) (nanos, n int) {
	for n < len(s) && n < 9 && s[n] >= '0' && s[n] <= '9' {
		nanos = nanos*10 + int(s[n]-'0')
		n++
	}

	if n == 0 {
		return 0, 0
	}

	return nanos * pow10[9-n], n
}

// ScaleFraction scales a fraction value of n digits to nanoseconds, so
// ScaleFraction(123456, 6) yields 123456000.
func ScaleFraction(v, n int) int {
	return v * pow10[9-n]
}

// Append appends v to dst as exactly width zero-padded digits. Values wider
// than width are silently truncated to their low-order digits; callers
// validate ranges before rendering.
func Append(dst []byte, v, width int) []byte {
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, '0')
	}

	for i := width - 1; i >= 0; i-- {
		dst[start+i] = '0' + byte(v%10)
		v /= 10
	}

	return dst
}

// AppendFraction appends the width most-significant digits of a nanosecond
// value, so nanos=123456789 with width 6 appends "123456".
func AppendFraction(dst []byte, nanos, width int) []byte {
	return Append(dst, nanos/pow10[9-width], width)
}
