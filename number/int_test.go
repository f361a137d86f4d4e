package number_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"gnaw/number"
	"gnaw/parse"
)

func TestBeUnsigned(t *testing.T) {
	in := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x61, 0x62}

	rest, u8, err := number.BeU8(in)
	if err != nil || u8 != 0x00 || len(rest) != 9 {
		t.Fatalf("BeU8 = (%v, %#x, %v)", rest, u8, err)
	}
	rest, u16, err := number.BeU16(in)
	if err != nil || u16 != 0x0001 || len(rest) != 8 {
		t.Fatalf("BeU16 = (%v, %#x, %v)", rest, u16, err)
	}
	rest, u24, err := number.BeU24(in)
	if err != nil || u24 != 0x000102 || len(rest) != 7 {
		t.Fatalf("BeU24 = (%v, %#x, %v)", rest, u24, err)
	}
	rest, u32, err := number.BeU32(in)
	if err != nil || u32 != 0x00010203 || len(rest) != 6 {
		t.Fatalf("BeU32 = (%v, %#x, %v)", rest, u32, err)
	}
	rest, u64v, err := number.BeU64(in)
	if err != nil || u64v != 0x0001020304050607 || len(rest) != 2 {
		t.Fatalf("BeU64 = (%v, %#x, %v)", rest, u64v, err)
	}
	if !bytes.Equal(rest, []byte{0x61, 0x62}) {
		t.Fatalf("BeU64 rest = %v", rest)
	}
}

func TestLeUnsigned(t *testing.T) {
	in := []byte{0x00, 0x03, 0x05, 0x07, 0x01, 0x02, 0x03, 0x04, 0x61, 0x62}

	_, u16, err := number.LeU16(in)
	if err != nil || u16 != 0x0300 {
		t.Fatalf("LeU16 = (%#x, %v)", u16, err)
	}
	_, u24, err := number.LeU24(in)
	if err != nil || u24 != 0x050300 {
		t.Fatalf("LeU24 = (%#x, %v)", u24, err)
	}
	_, u32, err := number.LeU32(in)
	if err != nil || u32 != 0x07050300 {
		t.Fatalf("LeU32 = (%#x, %v)", u32, err)
	}
	rest, u64v, err := number.LeU64(in)
	if err != nil || u64v != 0x0403020107050300 {
		t.Fatalf("LeU64 = (%#x, %v)", u64v, err)
	}
	if !bytes.Equal(rest, []byte{0x61, 0x62}) {
		t.Fatalf("LeU64 rest = %v", rest)
	}
}

func TestBeI8(t *testing.T) {
	cases := []struct {
		in   byte
		want int8
	}{
		{0x00, 0},
		{0x7f, 127},
		{0xff, -1},
		{0x80, -128},
	}
	for _, tc := range cases {
		_, got, err := number.BeI8([]byte{tc.in})
		if err != nil || got != tc.want {
			t.Errorf("BeI8(%#x) = (%d, %v), want %d", tc.in, got, err, tc.want)
		}
		_, got, err = number.LeI8([]byte{tc.in})
		if err != nil || got != tc.want {
			t.Errorf("LeI8(%#x) = (%d, %v), want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestBeI16(t *testing.T) {
	cases := []struct {
		in   []byte
		want int16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0x7f, 0xff}, 32767},
		{[]byte{0xff, 0xff}, -1},
		{[]byte{0x80, 0x00}, -32768},
	}
	for _, tc := range cases {
		_, got, err := number.BeI16(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("BeI16(%v) = (%d, %v), want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestU24(t *testing.T) {
	cases := []struct {
		in   []byte
		beU  uint32
		leU  uint32
		beI  int32
		leI  int32
	}{
		{[]byte{0x00, 0x00, 0x00}, 0, 0, 0, 0},
		{[]byte{0x00, 0xff, 0xff}, 65535, 0xffff00, 65535, -256},
		{[]byte{0x12, 0x34, 0x56}, 1193046, 0x563412, 1193046, 0x563412},
		{[]byte{0xff, 0xff, 0xff}, 0xffffff, 0xffffff, -1, -1},
		{[]byte{0xff, 0x00, 0x00}, 0xff0000, 0x0000ff, -65536, 255},
		{[]byte{0xed, 0xcb, 0xaa}, 0xedcbaa, 0xaacbed, -1193046, -5583891},
	}
	for _, tc := range cases {
		if _, got, err := number.BeU24(tc.in); err != nil || got != tc.beU {
			t.Errorf("BeU24(%v) = (%#x, %v), want %#x", tc.in, got, err, tc.beU)
		}
		if _, got, err := number.LeU24(tc.in); err != nil || got != tc.leU {
			t.Errorf("LeU24(%v) = (%#x, %v), want %#x", tc.in, got, err, tc.leU)
		}
		if _, got, err := number.BeI24(tc.in); err != nil || got != tc.beI {
			t.Errorf("BeI24(%v) = (%d, %v), want %d", tc.in, got, err, tc.beI)
		}
		if _, got, err := number.LeI24(tc.in); err != nil || got != tc.leI {
			t.Errorf("LeI24(%v) = (%d, %v), want %d", tc.in, got, err, tc.leI)
		}
	}
}

func TestBeI32(t *testing.T) {
	cases := []struct {
		in   []byte
		want int32
	}{
		{[]byte{0x00, 0x00, 0x00, 0x00}, 0},
		{[]byte{0x7f, 0xff, 0xff, 0xff}, 2147483647},
		{[]byte{0xff, 0xff, 0xff, 0xff}, -1},
		{[]byte{0x80, 0x00, 0x00, 0x00}, -2147483648},
	}
	for _, tc := range cases {
		_, got, err := number.BeI32(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("BeI32(%v) = (%d, %v), want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestBeI64(t *testing.T) {
	cases := []struct {
		in   []byte
		want int64
	}{
		{bytes.Repeat([]byte{0x00}, 8), 0},
		{append([]byte{0x7f}, bytes.Repeat([]byte{0xff}, 7)...), 9223372036854775807},
		{bytes.Repeat([]byte{0xff}, 8), -1},
		{append([]byte{0x80}, bytes.Repeat([]byte{0x00}, 7)...), -9223372036854775808},
	}
	for _, tc := range cases {
		_, got, err := number.BeI64(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("BeI64(%v) = (%d, %v), want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestU128(t *testing.T) {
	in := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0x61, 0x62,
	}

	rest, be, err := number.BeU128(in)
	if err != nil || !bytes.Equal(rest, []byte{0x61, 0x62}) {
		t.Fatalf("BeU128 = (%v, %v, %v)", rest, be, err)
	}
	if be != (number.Uint128{Hi: 0x0001020304050607, Lo: 0x08090a0b0c0d0e0f}) {
		t.Fatalf("BeU128 value = %+v", be)
	}

	_, le, err := number.LeU128(in)
	if err != nil {
		t.Fatalf("LeU128 err = %v", err)
	}
	if le != (number.Uint128{Hi: 0x0f0e0d0c0b0a0908, Lo: 0x0706050403020100}) {
		t.Fatalf("LeU128 value = %+v", le)
	}

	_, beI, err := number.BeI128(bytes.Repeat([]byte{0xff}, 16))
	if err != nil || beI.String() != "-1" {
		t.Fatalf("BeI128(all ff) = (%v, %v)", beI, err)
	}
}

// Every fixed-width decoder must report a definite eof error, carrying
// the original input, for every shorter input.
func TestEofTotality(t *testing.T) {
	decoders := []struct {
		name  string
		width int
		run   func([]byte) error
	}{
		{"U8", 1, func(b []byte) error { _, _, err := number.U8(b); return err }},
		{"I8", 1, func(b []byte) error { _, _, err := number.I8(b); return err }},
		{"BeU8", 1, func(b []byte) error { _, _, err := number.BeU8(b); return err }},
		{"LeU8", 1, func(b []byte) error { _, _, err := number.LeU8(b); return err }},
		{"BeU16", 2, func(b []byte) error { _, _, err := number.BeU16(b); return err }},
		{"LeU16", 2, func(b []byte) error { _, _, err := number.LeU16(b); return err }},
		{"BeI16", 2, func(b []byte) error { _, _, err := number.BeI16(b); return err }},
		{"LeI16", 2, func(b []byte) error { _, _, err := number.LeI16(b); return err }},
		{"BeU24", 3, func(b []byte) error { _, _, err := number.BeU24(b); return err }},
		{"LeI24", 3, func(b []byte) error { _, _, err := number.LeI24(b); return err }},
		{"BeU32", 4, func(b []byte) error { _, _, err := number.BeU32(b); return err }},
		{"LeU32", 4, func(b []byte) error { _, _, err := number.LeU32(b); return err }},
		{"BeU64", 8, func(b []byte) error { _, _, err := number.BeU64(b); return err }},
		{"LeI64", 8, func(b []byte) error { _, _, err := number.LeI64(b); return err }},
		{"BeU128", 16, func(b []byte) error { _, _, err := number.BeU128(b); return err }},
		{"LeU128", 16, func(b []byte) error { _, _, err := number.LeU128(b); return err }},
		{"BeF32", 4, func(b []byte) error { _, _, err := number.BeF32(b); return err }},
		{"LeF64", 8, func(b []byte) error { _, _, err := number.LeF64(b); return err }},
	}
	for _, d := range decoders {
		for short := 0; short < d.width; short++ {
			in := bytes.Repeat([]byte{0x01}, short)
			err := d.run(in)
			if err == nil {
				t.Fatalf("%s on %d bytes: expected error", d.name, short)
			}
			pe, ok := err.(*parse.Error[[]byte])
			if !ok {
				t.Fatalf("%s on %d bytes: error %T", d.name, short, err)
			}
			if pe.Kind != parse.KindEof || pe.Fatal {
				t.Errorf("%s on %d bytes: kind=%v fatal=%v", d.name, short, pe.Kind, pe.Fatal)
			}
			if !bytes.Equal(pe.In, in) {
				t.Errorf("%s on %d bytes: error input %v, want %v", d.name, short, pe.In, in)
			}
		}
	}
}

func TestEndiannessDispatch(t *testing.T) {
	in := []byte{0x00, 0x03, 0x05, 0x07, 0x01, 0x02, 0x03, 0x04,
		0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c}

	if _, got, _ := number.U16[[]byte](number.Big)(in); got != 0x0003 {
		t.Errorf("U16(Big) = %#x", got)
	}
	if _, got, _ := number.U16[[]byte](number.Little)(in); got != 0x0300 {
		t.Errorf("U16(Little) = %#x", got)
	}
	if _, got, _ := number.U24[[]byte](number.Big)(in); got != 0x000305 {
		t.Errorf("U24(Big) = %#x", got)
	}
	if _, got, _ := number.U32[[]byte](number.Little)(in); got != 0x07050300 {
		t.Errorf("U32(Little) = %#x", got)
	}
	if _, got, _ := number.I16[[]byte](number.Big)([]byte{0x80, 0x00}); got != -32768 {
		t.Errorf("I16(Big) = %d", got)
	}
	if _, got, _ := number.I24[[]byte](number.Little)([]byte{0x00, 0x00, 0xff}); got != -65536 {
		t.Errorf("I24(Little) = %d", got)
	}
	if _, got, _ := number.I64[[]byte](number.Big)(bytes.Repeat([]byte{0xff}, 8)); got != -1 {
		t.Errorf("I64(Big) = %d", got)
	}
	if _, got, _ := number.U128[[]byte](number.Big)(in); got.Hi != 0x0003050701020304 {
		t.Errorf("U128(Big).Hi = %#x", got.Hi)
	}

	// Native must agree with the host byte order.
	want := binary.NativeEndian.Uint32(in[:4])
	if _, got, _ := number.U32[[]byte](number.Native)(in); got != want {
		t.Errorf("U32(Native) = %#x, want %#x", got, want)
	}
	want16 := binary.NativeEndian.Uint16(in[:2])
	if _, got, _ := number.U16[[]byte](number.Native)(in); got != want16 {
		t.Errorf("U16(Native) = %#x, want %#x", got, want16)
	}
}

// The decoders are generic over string input as well; spot-check that a
// string instantiation consumes and slices identically.
func TestStringInput(t *testing.T) {
	rest, v, err := number.BeU16("\x00\x03ab")
	if err != nil || v != 3 || rest != "ab" {
		t.Fatalf("BeU16(string) = (%q, %d, %v)", rest, v, err)
	}
	_, _, err = number.BeU16("\x01")
	if parse.KindOf(err) != parse.KindEof {
		t.Fatalf("BeU16(short string) err = %v", err)
	}
}
