package number

import "encoding/binary"

// Endianness selects the byte order of a multi-byte decode.
type Endianness uint8

const (
	// Big reads the most significant byte first.
	Big Endianness = iota
	// Little reads the least significant byte first.
	Little
	// Native resolves to the host byte order.
	Native
)

// nativeLittle is fixed per build target; binary.NativeEndian reads the
// probe bytes in host order.
var nativeLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// resolve maps Native onto the host order so dispatchers only ever branch
// between Big and Little.
func (e Endianness) resolve() Endianness {
	if e != Native {
		return e
	}
	if nativeLittle {
		return Little
	}
	return Big
}

func (e Endianness) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	case Native:
		return "native"
	}
	return "unknown"
}
