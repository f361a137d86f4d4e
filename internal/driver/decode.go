package driver

import (
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"gnaw/internal/layout"
	"gnaw/number"
	"gnaw/parse"
)

// FieldValue is one decoded field with its position inside the record.
type FieldValue struct {
	Name   string
	Type   layout.FieldType
	Offset uint32
	Width  uint32
	Text   string
}

// Record is the result of decoding one binary record against a layout.
type Record struct {
	Layout   string
	Size     uint32
	Trailing uint32
	Fields   []FieldValue
}

// DecodeBytes decodes a single record from data. Truncated input yields a
// definite error naming the field and the byte offset where data ran out.
func DecodeBytes(data []byte, lay *layout.Layout) (*Record, error) {
	if lay == nil || len(lay.Fields) == 0 {
		return nil, errors.New("empty layout")
	}

	rec := &Record{
		Layout: lay.Name,
		Fields: make([]FieldValue, 0, len(lay.Fields)),
	}
	rest := data
	for _, f := range lay.Fields {
		offset, err := safecast.Conv[uint32](len(data) - len(rest))
		if err != nil {
			return nil, fmt.Errorf("field %q: offset overflow: %w", f.Name, err)
		}
		next, text, err := renderField(rest, f)
		if err != nil {
			if parse.KindOf(err) == parse.KindEof {
				return nil, fmt.Errorf("field %q at offset %d: need %d bytes, have %d",
					f.Name, offset, f.Type.Width(), len(rest))
			}
			return nil, fmt.Errorf("field %q at offset %d: %w", f.Name, offset, err)
		}
		width, err := safecast.Conv[uint32](f.Type.Width())
		if err != nil {
			return nil, fmt.Errorf("field %q: width overflow: %w", f.Name, err)
		}
		rec.Fields = append(rec.Fields, FieldValue{
			Name:   f.Name,
			Type:   f.Type,
			Offset: offset,
			Width:  width,
			Text:   text,
		})
		rest = next
	}

	size, err := safecast.Conv[uint32](len(data) - len(rest))
	if err != nil {
		return nil, fmt.Errorf("record size overflow: %w", err)
	}
	trailing, err := safecast.Conv[uint32](len(rest))
	if err != nil {
		return nil, fmt.Errorf("trailing size overflow: %w", err)
	}
	rec.Size = size
	rec.Trailing = trailing
	return rec, nil
}

// renderField consumes one field from in and renders its value as text.
func renderField(in []byte, f layout.Field) ([]byte, string, error) {
	switch f.Type {
	case layout.TypeU8:
		rest, v, err := number.U8(in)
		return rest, strconv.FormatUint(uint64(v), 10), err
	case layout.TypeU16:
		rest, v, err := number.U16[[]byte](f.Endian)(in)
		return rest, strconv.FormatUint(uint64(v), 10), err
	case layout.TypeU24:
		rest, v, err := number.U24[[]byte](f.Endian)(in)
		return rest, strconv.FormatUint(uint64(v), 10), err
	case layout.TypeU32:
		rest, v, err := number.U32[[]byte](f.Endian)(in)
		return rest, strconv.FormatUint(uint64(v), 10), err
	case layout.TypeU64:
		rest, v, err := number.U64[[]byte](f.Endian)(in)
		return rest, strconv.FormatUint(v, 10), err
	case layout.TypeU128:
		rest, v, err := number.U128[[]byte](f.Endian)(in)
		return rest, v.String(), err
	case layout.TypeI8:
		rest, v, err := number.I8(in)
		return rest, strconv.FormatInt(int64(v), 10), err
	case layout.TypeI16:
		rest, v, err := number.I16[[]byte](f.Endian)(in)
		return rest, strconv.FormatInt(int64(v), 10), err
	case layout.TypeI24:
		rest, v, err := number.I24[[]byte](f.Endian)(in)
		return rest, strconv.FormatInt(int64(v), 10), err
	case layout.TypeI32:
		rest, v, err := number.I32[[]byte](f.Endian)(in)
		return rest, strconv.FormatInt(int64(v), 10), err
	case layout.TypeI64:
		rest, v, err := number.I64[[]byte](f.Endian)(in)
		return rest, strconv.FormatInt(v, 10), err
	case layout.TypeI128:
		rest, v, err := number.I128[[]byte](f.Endian)(in)
		return rest, v.String(), err
	case layout.TypeF32:
		rest, v, err := number.F32[[]byte](f.Endian)(in)
		return rest, strconv.FormatFloat(float64(v), 'g', -1, 32), err
	case layout.TypeF64:
		rest, v, err := number.F64[[]byte](f.Endian)(in)
		return rest, strconv.FormatFloat(v, 'g', -1, 64), err
	default:
		return in, "", fmt.Errorf("unknown field type %v", f.Type)
	}
}
