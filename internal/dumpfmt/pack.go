package dumpfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"gnaw/internal/driver"
)

// Current schema version - increment when the archive format changes
const packSchemaVersion uint16 = 1

// FieldPack stores one decoded field in the msgpack archive.
type FieldPack struct {
	Name   string
	Type   string
	Offset uint32
	Width  uint32
	Value  string
}

// RecordPack stores one file's decode outcome in the msgpack archive.
type RecordPack struct {
	File     string
	Layout   string
	Size     uint32
	Trailing uint32
	Error    string
	Fields   []FieldPack
}

// Archive is the root msgpack payload for a batch of decode results.
type Archive struct {
	// Schema version for safe invalidation when format changes
	Schema  uint16
	Records []RecordPack
}

// FormatResultsPack serializes decode results as a msgpack archive.
func FormatResultsPack(w io.Writer, results []driver.FileResult) error {
	arc := Archive{
		Schema:  packSchemaVersion,
		Records: make([]RecordPack, 0, len(results)),
	}
	for _, res := range results {
		rec := RecordPack{File: res.Path}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		} else if res.Record != nil {
			rec.Layout = res.Record.Layout
			rec.Size = res.Record.Size
			rec.Trailing = res.Record.Trailing
			for _, f := range res.Record.Fields {
				rec.Fields = append(rec.Fields, FieldPack{
					Name:   f.Name,
					Type:   f.Type.String(),
					Offset: f.Offset,
					Width:  f.Width,
					Value:  f.Text,
				})
			}
		}
		arc.Records = append(arc.Records, rec)
	}
	enc := msgpack.NewEncoder(w)
	return enc.Encode(&arc)
}

// ReadResultsPack deserializes a msgpack archive. A schema mismatch
// returns ok=false rather than garbage.
func ReadResultsPack(r io.Reader) (*Archive, bool, error) {
	var arc Archive
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&arc); err != nil {
		return nil, false, err
	}
	if arc.Schema != packSchemaVersion {
		return nil, false, nil
	}
	return &arc, true, nil
}
