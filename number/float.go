package number

import (
	"math"

	"gnaw/parse"
)

// BeF32 reads a big endian IEEE-754 single precision float. The bit
// pattern comes from the u32 decoder unchanged; decode errors propagate
// verbatim.
func BeF32[I parse.Input](in I) (I, float32, error) {
	rest, v, err := BeU32(in)
	if err != nil {
		return rest, 0, err
	}
	return rest, math.Float32frombits(v), nil
}

// BeF64 reads a big endian IEEE-754 double precision float.
func BeF64[I parse.Input](in I) (I, float64, error) {
	rest, v, err := BeU64(in)
	if err != nil {
		return rest, 0, err
	}
	return rest, math.Float64frombits(v), nil
}

// LeF32 reads a little endian IEEE-754 single precision float.
func LeF32[I parse.Input](in I) (I, float32, error) {
	rest, v, err := LeU32(in)
	if err != nil {
		return rest, 0, err
	}
	return rest, math.Float32frombits(v), nil
}

// LeF64 reads a little endian IEEE-754 double precision float.
func LeF64[I parse.Input](in I) (I, float64, error) {
	rest, v, err := LeU64(in)
	if err != nil {
		return rest, 0, err
	}
	return rest, math.Float64frombits(v), nil
}

// F32 returns the 4-byte float decoder for the given byte order.
func F32[I parse.Input](endian Endianness) parse.Parser[I, float32] {
	if endian.resolve() == Big {
		return BeF32[I]
	}
	return LeF32[I]
}

// F64 returns the 8-byte float decoder for the given byte order.
func F64[I parse.Input](endian Endianness) parse.Parser[I, float64] {
	if endian.resolve() == Big {
		return BeF64[I]
	}
	return LeF64[I]
}
