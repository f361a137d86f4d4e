package parse

import "math"

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// Char matches a single byte exactly.
func Char[I Input](c byte) Parser[I, byte] {
	return func(in I) (I, byte, error) {
		if len(in) == 0 || in[0] != c {
			return in, 0, Err(in, KindChar)
		}
		return in[1:], c, nil
	}
}

// TakeWhile1 consumes the longest non-empty prefix whose bytes satisfy
// pred, failing with kind when the prefix is empty.
func TakeWhile1[I Input](pred func(byte) bool, kind Kind) Parser[I, I] {
	return func(in I) (I, I, error) {
		n := 0
		for n < len(in) && pred(in[n]) {
			n++
		}
		if n == 0 {
			var zero I
			return in, zero, Err(in, kind)
		}
		return in[n:], in[:n], nil
	}
}

// Digit1 consumes one or more decimal digits.
func Digit1[I Input]() Parser[I, I] {
	return TakeWhile1[I](isDec, KindDigit)
}

// Digit0 consumes zero or more decimal digits and never fails.
func Digit0[I Input]() Parser[I, I] {
	return func(in I) (I, I, error) {
		n := 0
		for n < len(in) && isDec(in[n]) {
			n++
		}
		return in[n:], in[:n], nil
	}
}

// Tag matches a literal byte sequence case-sensitively and returns the
// matched span.
func Tag[I Input](tag string) Parser[I, I] {
	return func(in I) (I, I, error) {
		var zero I
		if len(in) < len(tag) {
			return in, zero, Err(in, KindTag)
		}
		for k := 0; k < len(tag); k++ {
			if in[k] != tag[k] {
				return in, zero, Err(in, KindTag)
			}
		}
		return in[len(tag):], in[:len(tag)], nil
	}
}

// TagNoCase matches a literal byte sequence ignoring ASCII case.
func TagNoCase[I Input](tag string) Parser[I, I] {
	return func(in I) (I, I, error) {
		var zero I
		if len(in) < len(tag) {
			return in, zero, Err(in, KindTag)
		}
		for k := 0; k < len(tag); k++ {
			if lowerASCII(in[k]) != lowerASCII(tag[k]) {
				return in, zero, Err(in, KindTag)
			}
		}
		return in[len(tag):], in[:len(tag)], nil
	}
}

// Int32 parses an optionally signed decimal integer into an int32.
// Overflow is a soft Digit-kind error at the original position; the
// exponent grammar wraps this parser in Cut to commit.
func Int32[I Input]() Parser[I, int32] {
	return func(in I) (I, int32, error) {
		n := 0
		neg := false
		if len(in) > 0 && (in[0] == '+' || in[0] == '-') {
			neg = in[0] == '-'
			n = 1
		}
		if n >= len(in) || !isDec(in[n]) {
			return in, 0, Err(in, KindDigit)
		}
		// Accumulate negatively so MinInt32 stays representable.
		var v int32
		for ; n < len(in) && isDec(in[n]); n++ {
			d := int32(in[n] - '0')
			if v < (math.MinInt32+d)/10 {
				return in, 0, Err(in, KindDigit)
			}
			v = v*10 - d
		}
		if !neg {
			if v == math.MinInt32 {
				return in, 0, Err(in, KindDigit)
			}
			v = -v
		}
		return in[n:], v, nil
	}
}
