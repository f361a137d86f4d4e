package number

import (
	"math/bits"
	"strconv"
)

// Uint128 is an unsigned 16-byte integer in two 64-bit limbs.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 16-byte integer; the limbs hold the two's-complement
// bit pattern, so Int128(u) reinterprets a Uint128 without changing bits.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether the value is zero.
func (u Uint128) IsZero() bool { return u.Hi == 0 && u.Lo == 0 }

// Cmp returns -1, 0, or 1 comparing u against v.
func (u Uint128) Cmp(v Uint128) int {
	if u.Hi != v.Hi {
		if u.Hi < v.Hi {
			return -1
		}
		return 1
	}
	if u.Lo != v.Lo {
		if u.Lo < v.Lo {
			return -1
		}
		return 1
	}
	return 0
}

// divmod10 divides by ten, limb-wise.
func (u Uint128) divmod10() (Uint128, uint64) {
	hi, rem := u.Hi/10, u.Hi%10
	lo, r := bits.Div64(rem, u.Lo, 10)
	return Uint128{Hi: hi, Lo: lo}, r
}

func (u Uint128) String() string {
	if u.Hi == 0 {
		return strconv.FormatUint(u.Lo, 10)
	}
	var buf [39]byte // ceil(128 * log10(2))
	w := len(buf)
	for !u.IsZero() {
		var d uint64
		u, d = u.divmod10()
		w--
		buf[w] = byte('0' + d)
	}
	return string(buf[w:])
}

// Neg reports whether the value is negative.
func (i Int128) Neg() bool { return i.Hi>>63 != 0 }

// Abs returns the magnitude as an unsigned value; the magnitude of the
// minimum value wraps to itself, which is the correct two's-complement
// result.
func (i Int128) Abs() Uint128 {
	if !i.Neg() {
		return Uint128(i)
	}
	lo := ^i.Lo + 1
	hi := ^i.Hi
	if lo == 0 {
		hi++
	}
	return Uint128{Hi: hi, Lo: lo}
}

func (i Int128) String() string {
	if i.Neg() {
		return "-" + i.Abs().String()
	}
	return Uint128(i).String()
}

// Int64 converts to int64 when the value fits.
func (i Int128) Int64() (int64, bool) {
	lo := int64(i.Lo)
	if i.Hi == 0 && lo >= 0 {
		return lo, true
	}
	if i.Hi == ^uint64(0) && lo < 0 {
		return lo, true
	}
	return 0, false
}

// Uint64 converts to uint64 when the value fits.
func (u Uint128) Uint64() (uint64, bool) {
	if u.Hi != 0 {
		return 0, false
	}
	return u.Lo, true
}
