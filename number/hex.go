package number

import (
	"gnaw/parse"
)

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

func hexNibble(b byte) uint32 {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0')
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10
	default:
		return uint32(b-'A') + 10
	}
}

// HexU32 reads a run of hex digits as an unsigned 32-bit value. At most
// 8 digits are consumed; a longer run leaves the excess digits in the
// remaining input rather than failing. No digit at all is an is-a error.
func HexU32[I parse.Input](in I) (I, uint32, error) {
	rest, digits, err := parse.TakeWhile1[I](isHexDigit, parse.KindIsA)(in)
	if err != nil {
		return in, 0, err
	}
	if len(digits) > 8 {
		digits = in[:8]
		rest = in[8:]
	}
	// fold least-significant digit first, mod 2^32
	var res uint32
	for k := 0; k < len(digits); k++ {
		res |= hexNibble(digits[len(digits)-1-k]) << (4 * k)
	}
	return rest, res, nil
}
