package number

import (
	"gnaw/parse"
)

// uintAcc covers the accumulator widths that fit a machine word. The
// 16-byte width is handled separately via Uint128.
type uintAcc interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// beUint accumulates bound bytes most-significant first. Short input is a
// definite eof error referencing the original input.
func beUint[U uintAcc, I parse.Input](in I, bound int) (I, U, error) {
	if len(in) < bound {
		return in, 0, parse.Err(in, parse.KindEof)
	}
	var res U
	if bound > 1 {
		for k := 0; k < bound; k++ {
			res = res<<8 + U(in[k])
		}
	} else {
		// do not shift an accumulator that may be only 8 bits wide
		res = U(in[0])
	}
	return in[bound:], res, nil
}

// leUint accumulates bound bytes least-significant first.
func leUint[U uintAcc, I parse.Input](in I, bound int) (I, U, error) {
	if len(in) < bound {
		return in, 0, parse.Err(in, parse.KindEof)
	}
	var res U
	for k := 0; k < bound; k++ {
		res += U(in[k]) << (8 * k)
	}
	return in[bound:], res, nil
}

// signExtend24 widens a 24-bit two's-complement value held in the low
// three bytes of a uint32.
func signExtend24(x uint32) int32 {
	if x&0x80_00_00 != 0 {
		return int32(x | 0xff_00_00_00)
	}
	return int32(x)
}

// BeU8 reads an unsigned byte.
func BeU8[I parse.Input](in I) (I, uint8, error) {
	return beUint[uint8](in, 1)
}

// BeU16 reads a big endian unsigned 2-byte integer.
func BeU16[I parse.Input](in I) (I, uint16, error) {
	return beUint[uint16](in, 2)
}

// BeU24 reads a big endian unsigned 3-byte integer into a uint32 whose
// top byte is zero.
func BeU24[I parse.Input](in I) (I, uint32, error) {
	return beUint[uint32](in, 3)
}

// BeU32 reads a big endian unsigned 4-byte integer.
func BeU32[I parse.Input](in I) (I, uint32, error) {
	return beUint[uint32](in, 4)
}

// BeU64 reads a big endian unsigned 8-byte integer.
func BeU64[I parse.Input](in I) (I, uint64, error) {
	return beUint[uint64](in, 8)
}

// BeU128 reads a big endian unsigned 16-byte integer.
func BeU128[I parse.Input](in I) (I, Uint128, error) {
	if len(in) < 16 {
		return in, Uint128{}, parse.Err(in, parse.KindEof)
	}
	var hi, lo uint64
	for k := 0; k < 8; k++ {
		hi = hi<<8 | uint64(in[k])
	}
	for k := 8; k < 16; k++ {
		lo = lo<<8 | uint64(in[k])
	}
	return in[16:], Uint128{Hi: hi, Lo: lo}, nil
}

// BeI8 reads a signed byte.
func BeI8[I parse.Input](in I) (I, int8, error) {
	rest, v, err := BeU8(in)
	return rest, int8(v), err
}

// BeI16 reads a big endian signed 2-byte integer.
func BeI16[I parse.Input](in I) (I, int16, error) {
	rest, v, err := BeU16(in)
	return rest, int16(v), err
}

// BeI24 reads a big endian signed 3-byte integer into an int32.
func BeI24[I parse.Input](in I) (I, int32, error) {
	// same as the unsigned version, but sign-extended by hand: there is
	// no native 24-bit type to reinterpret into
	rest, v, err := BeU24(in)
	if err != nil {
		return rest, 0, err
	}
	return rest, signExtend24(v), nil
}

// BeI32 reads a big endian signed 4-byte integer.
func BeI32[I parse.Input](in I) (I, int32, error) {
	rest, v, err := BeU32(in)
	return rest, int32(v), err
}

// BeI64 reads a big endian signed 8-byte integer.
func BeI64[I parse.Input](in I) (I, int64, error) {
	rest, v, err := BeU64(in)
	return rest, int64(v), err
}

// BeI128 reads a big endian signed 16-byte integer.
func BeI128[I parse.Input](in I) (I, Int128, error) {
	rest, v, err := BeU128(in)
	return rest, Int128(v), err
}

// LeU8 reads an unsigned byte.
func LeU8[I parse.Input](in I) (I, uint8, error) {
	return leUint[uint8](in, 1)
}

// LeU16 reads a little endian unsigned 2-byte integer.
func LeU16[I parse.Input](in I) (I, uint16, error) {
	return leUint[uint16](in, 2)
}

// LeU24 reads a little endian unsigned 3-byte integer into a uint32 whose
// top byte is zero.
func LeU24[I parse.Input](in I) (I, uint32, error) {
	return leUint[uint32](in, 3)
}

// LeU32 reads a little endian unsigned 4-byte integer.
func LeU32[I parse.Input](in I) (I, uint32, error) {
	return leUint[uint32](in, 4)
}

// LeU64 reads a little endian unsigned 8-byte integer.
func LeU64[I parse.Input](in I) (I, uint64, error) {
	return leUint[uint64](in, 8)
}

// LeU128 reads a little endian unsigned 16-byte integer.
func LeU128[I parse.Input](in I) (I, Uint128, error) {
	if len(in) < 16 {
		return in, Uint128{}, parse.Err(in, parse.KindEof)
	}
	var hi, lo uint64
	for k := 7; k >= 0; k-- {
		lo = lo<<8 | uint64(in[k])
	}
	for k := 15; k >= 8; k-- {
		hi = hi<<8 | uint64(in[k])
	}
	return in[16:], Uint128{Hi: hi, Lo: lo}, nil
}

// LeI8 reads a signed byte. A single byte has no byte order, so this is
// the same decode as BeI8.
func LeI8[I parse.Input](in I) (I, int8, error) {
	return BeI8(in)
}

// LeI16 reads a little endian signed 2-byte integer.
func LeI16[I parse.Input](in I) (I, int16, error) {
	rest, v, err := LeU16(in)
	return rest, int16(v), err
}

// LeI24 reads a little endian signed 3-byte integer into an int32.
func LeI24[I parse.Input](in I) (I, int32, error) {
	rest, v, err := LeU24(in)
	if err != nil {
		return rest, 0, err
	}
	return rest, signExtend24(v), nil
}

// LeI32 reads a little endian signed 4-byte integer.
func LeI32[I parse.Input](in I) (I, int32, error) {
	rest, v, err := LeU32(in)
	return rest, int32(v), err
}

// LeI64 reads a little endian signed 8-byte integer.
func LeI64[I parse.Input](in I) (I, int64, error) {
	rest, v, err := LeU64(in)
	return rest, int64(v), err
}

// LeI128 reads a little endian signed 16-byte integer.
func LeI128[I parse.Input](in I) (I, Int128, error) {
	rest, v, err := LeU128(in)
	return rest, Int128(v), err
}

// U8 reads a single unsigned byte. Endianness does not apply to 1-byte
// values, so there is no parameterised variant.
func U8[I parse.Input](in I) (I, uint8, error) {
	if len(in) < 1 {
		return in, 0, parse.Err(in, parse.KindEof)
	}
	return in[1:], in[0], nil
}

// I8 reads a single signed byte.
func I8[I parse.Input](in I) (I, int8, error) {
	rest, v, err := U8(in)
	return rest, int8(v), err
}

// U16 returns the unsigned 2-byte decoder for the given byte order.
func U16[I parse.Input](endian Endianness) parse.Parser[I, uint16] {
	if endian.resolve() == Big {
		return BeU16[I]
	}
	return LeU16[I]
}

// U24 returns the unsigned 3-byte decoder for the given byte order.
func U24[I parse.Input](endian Endianness) parse.Parser[I, uint32] {
	if endian.resolve() == Big {
		return BeU24[I]
	}
	return LeU24[I]
}

// U32 returns the unsigned 4-byte decoder for the given byte order.
func U32[I parse.Input](endian Endianness) parse.Parser[I, uint32] {
	if endian.resolve() == Big {
		return BeU32[I]
	}
	return LeU32[I]
}

// U64 returns the unsigned 8-byte decoder for the given byte order.
func U64[I parse.Input](endian Endianness) parse.Parser[I, uint64] {
	if endian.resolve() == Big {
		return BeU64[I]
	}
	return LeU64[I]
}

// U128 returns the unsigned 16-byte decoder for the given byte order.
func U128[I parse.Input](endian Endianness) parse.Parser[I, Uint128] {
	if endian.resolve() == Big {
		return BeU128[I]
	}
	return LeU128[I]
}

// I16 returns the signed 2-byte decoder for the given byte order.
func I16[I parse.Input](endian Endianness) parse.Parser[I, int16] {
	if endian.resolve() == Big {
		return BeI16[I]
	}
	return LeI16[I]
}

// I24 returns the signed 3-byte decoder for the given byte order.
func I24[I parse.Input](endian Endianness) parse.Parser[I, int32] {
	if endian.resolve() == Big {
		return BeI24[I]
	}
	return LeI24[I]
}

// I32 returns the signed 4-byte decoder for the given byte order.
func I32[I parse.Input](endian Endianness) parse.Parser[I, int32] {
	if endian.resolve() == Big {
		return BeI32[I]
	}
	return LeI32[I]
}

// I64 returns the signed 8-byte decoder for the given byte order.
func I64[I parse.Input](endian Endianness) parse.Parser[I, int64] {
	if endian.resolve() == Big {
		return BeI64[I]
	}
	return LeI64[I]
}

// I128 returns the signed 16-byte decoder for the given byte order.
func I128[I parse.Input](endian Endianness) parse.Parser[I, Int128] {
	if endian.resolve() == Big {
		return BeI128[I]
	}
	return LeI128[I]
}
