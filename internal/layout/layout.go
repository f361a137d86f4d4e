package layout

import (
	"fmt"

	"gnaw/number"
)

// FieldType enumerates the primitive encodings a record field may carry.
type FieldType uint8

const (
	TypeInvalid FieldType = iota
	TypeU8
	TypeU16
	TypeU24
	TypeU32
	TypeU64
	TypeU128
	TypeI8
	TypeI16
	TypeI24
	TypeI32
	TypeI64
	TypeI128
	TypeF32
	TypeF64
)

var typeNames = map[string]FieldType{
	"u8": TypeU8, "u16": TypeU16, "u24": TypeU24, "u32": TypeU32,
	"u64": TypeU64, "u128": TypeU128,
	"i8": TypeI8, "i16": TypeI16, "i24": TypeI24, "i32": TypeI32,
	"i64": TypeI64, "i128": TypeI128,
	"f32": TypeF32, "f64": TypeF64,
}

// ParseFieldType maps a manifest type string to its FieldType.
func ParseFieldType(s string) (FieldType, bool) {
	t, ok := typeNames[s]
	return t, ok
}

func (t FieldType) String() string {
	for name, v := range typeNames {
		if v == t {
			return name
		}
	}
	return fmt.Sprintf("FieldType(%d)", uint8(t))
}

// Width returns the field's encoded size in bytes.
func (t FieldType) Width() int {
	switch t {
	case TypeU8, TypeI8:
		return 1
	case TypeU16, TypeI16:
		return 2
	case TypeU24, TypeI24:
		return 3
	case TypeU32, TypeI32, TypeF32:
		return 4
	case TypeU64, TypeI64, TypeF64:
		return 8
	case TypeU128, TypeI128:
		return 16
	default:
		return 0
	}
}

// ParseEndian maps a manifest endian string to a byte order. The empty
// string defaults to the machine's native order.
func ParseEndian(s string) (number.Endianness, bool) {
	switch s {
	case "big":
		return number.Big, true
	case "little":
		return number.Little, true
	case "native", "":
		return number.Native, true
	default:
		return number.Native, false
	}
}

// Field is one typed slot in a record.
type Field struct {
	Name   string
	Type   FieldType
	Endian number.Endianness
}

// Layout is an ordered list of fields describing one fixed binary record.
type Layout struct {
	Name   string
	Fields []Field
}

// Size returns the total encoded size of one record in bytes.
func (l *Layout) Size() int {
	n := 0
	for _, f := range l.Fields {
		n += f.Type.Width()
	}
	return n
}
