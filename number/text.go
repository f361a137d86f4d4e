package number

import (
	"errors"
	"strconv"

	"gnaw/parse"
)

// RecognizeFloat matches a floating-point literal and returns the span:
//
//	sign? ( digits ('.' digits?)? | '.' digits ) ( (e|E) sign? digits )?
//
// Once an exponent marker is seen the digits after it are mandatory; their
// absence is a fatal failure, since backtracking past the marker is never
// correct.
func RecognizeFloat[I parse.Input](in I) (I, I, error) {
	sign := parse.Void(parse.Alt(parse.Char[I]('+'), parse.Char[I]('-')))
	return parse.Recognize(parse.Seq(
		parse.Opt(sign),
		parse.Alt(
			parse.Seq(
				parse.Void(parse.Digit1[I]()),
				parse.Opt(parse.Seq(
					parse.Void(parse.Char[I]('.')),
					parse.Opt(parse.Void(parse.Digit1[I]())),
				)),
			),
			parse.Seq(
				parse.Void(parse.Char[I]('.')),
				parse.Void(parse.Digit1[I]()),
			),
		),
		parse.Opt(parse.Seq(
			parse.Void(parse.Alt(parse.Char[I]('e'), parse.Char[I]('E'))),
			parse.Opt(sign),
			parse.Void(parse.Cut(parse.Digit1[I]())),
		)),
	))(in)
}

// RecognizeFloatOrExceptions matches a floating-point literal or one of
// the special tokens "nan", "inf", "infinity" (ASCII case-insensitive).
// Grammar errors are collapsed to the coarser float kind at the original
// input; a fatal grammar failure stops the alternation outright.
func RecognizeFloatOrExceptions[I parse.Input](in I) (I, I, error) {
	var zero I
	rest, span, err := RecognizeFloat(in)
	if err == nil {
		return rest, span, nil
	}
	if parse.IsFatal(err) {
		return in, zero, parse.Fail(in, parse.KindFloat)
	}
	for _, lit := range [...]string{"nan", "inf", "infinity"} {
		rest, span, err = parse.TagNoCase[I](lit)(in)
		if err == nil {
			return rest, span, nil
		}
	}
	return in, zero, parse.Err(in, parse.KindFloat)
}

// FloatParts is the decomposition of a floating-point literal. Sign is
// true for positive (absent or '+'). Integer and Fraction are spans of
// the input; at least one of them is non-empty.
type FloatParts[I parse.Input] struct {
	Sign     bool
	Integer  I
	Fraction I
	Exponent int32
}

// RecognizeFloatParts decomposes a floating-point literal by direct scan,
// without the combinator algebra, for numeric-conversion backends that
// want the pieces rather than the span.
//
// The integer span drops leading zeros but keeps the last one when no
// other digit follows, so "000" decomposes with integer "0". The fraction
// span drops trailing zeros, again keeping a single zero when the whole
// fraction consists of them.
func RecognizeFloatParts[I parse.Input](in I) (I, FloatParts[I], error) {
	i := in
	sign := true
	if len(i) > 0 && (i[0] == '+' || i[0] == '-') {
		sign = i[0] == '+'
		i = i[1:]
	}

	n := 0
	for n < len(i) && i[n] == '0' {
		n++
	}
	zeroes := i[:n]
	i = i[n:]

	n = 0
	for n < len(i) && i[n] >= '0' && i[n] <= '9' {
		n++
	}
	integer := i[:n]
	i = i[n:]

	if len(integer) == 0 && len(zeroes) > 0 {
		// keep the last zero if integer is empty
		integer = zeroes[len(zeroes)-1:]
	}

	var fraction I
	if len(i) > 0 && i[0] == '.' {
		i = i[1:]
		zeroCount := 0
		position := len(i)
		for pos := 0; pos < len(i); pos++ {
			c := i[pos]
			if c < '0' || c > '9' {
				position = pos
				break
			}
			if c == '0' {
				zeroCount++
			} else {
				zeroCount = 0
			}
		}

		index := position
		switch {
		case zeroCount == 0:
			index = position
		case zeroCount == position:
			// the fraction is all zeros: keep exactly one
			index = position - zeroCount + 1
		default:
			index = position - zeroCount
		}
		fraction = i[:index]
		i = i[position:]
	} else {
		fraction = i[:0]
	}

	if len(integer) == 0 && len(fraction) == 0 {
		return in, FloatParts[I]{}, parse.Err(in, parse.KindFloat)
	}

	exponent := int32(0)
	if len(i) > 0 && (i[0] == 'e' || i[0] == 'E') {
		rest, exp, err := parse.Cut(parse.Int32[I]())(i[1:])
		if err != nil {
			return in, FloatParts[I]{}, err
		}
		i = rest
		exponent = exp
	}

	return i, FloatParts[I]{Sign: sign, Integer: integer, Fraction: fraction, Exponent: exponent}, nil
}

// Float matches a floating-point literal or special token and evaluates
// it as a float32.
func Float[I parse.Input](in I) (I, float32, error) {
	rest, span, err := RecognizeFloatOrExceptions(in)
	if err != nil {
		return in, 0, err
	}
	v, perr := strconv.ParseFloat(string(span), 32)
	if perr != nil && !errors.Is(perr, strconv.ErrRange) {
		// grammar said yes, conversion said no: report after the span
		return rest, 0, parse.Err(rest, parse.KindFloat)
	}
	return rest, float32(v), nil
}

// Double matches a floating-point literal or special token and evaluates
// it as a float64.
func Double[I parse.Input](in I) (I, float64, error) {
	rest, span, err := RecognizeFloatOrExceptions(in)
	if err != nil {
		return in, 0, err
	}
	v, perr := strconv.ParseFloat(string(span), 64)
	if perr != nil && !errors.Is(perr, strconv.ErrRange) {
		return rest, 0, parse.Err(rest, parse.KindFloat)
	}
	return rest, v, nil
}
