package dumpfmt

import (
	"encoding/json"
	"io"

	"gnaw/internal/driver"
)

// FieldJSON представляет одно декодированное поле для JSON
type FieldJSON struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Offset uint32 `json:"offset"`
	Width  uint32 `json:"width"`
	Value  string `json:"value"`
}

// RecordJSON представляет одну декодированную запись для JSON
type RecordJSON struct {
	File     string      `json:"file,omitempty"`
	Layout   string      `json:"layout,omitempty"`
	Size     uint32      `json:"size"`
	Trailing uint32      `json:"trailing,omitempty"`
	Error    string      `json:"error,omitempty"`
	Fields   []FieldJSON `json:"fields,omitempty"`
}

// ResultsOutput представляет корневую структуру JSON вывода
type ResultsOutput struct {
	Records []RecordJSON `json:"records"`
	Count   int          `json:"count"`
	Errors  int          `json:"errors"`
}

// BuildResultsOutput формирует структуру JSON-вывода без сериализации.
func BuildResultsOutput(results []driver.FileResult) ResultsOutput {
	out := ResultsOutput{Records: make([]RecordJSON, 0, len(results))}
	for _, res := range results {
		rec := RecordJSON{File: res.Path}
		if res.Err != nil {
			rec.Error = res.Err.Error()
			out.Errors++
		} else if res.Record != nil {
			rec.Layout = res.Record.Layout
			rec.Size = res.Record.Size
			rec.Trailing = res.Record.Trailing
			for _, f := range res.Record.Fields {
				rec.Fields = append(rec.Fields, FieldJSON{
					Name:   f.Name,
					Type:   f.Type.String(),
					Offset: f.Offset,
					Width:  f.Width,
					Value:  f.Text,
				})
			}
		}
		out.Records = append(out.Records, rec)
	}
	out.Count = len(out.Records)
	return out
}

// FormatResultsJSON выводит результаты декодирования в JSON формате
func FormatResultsJSON(w io.Writer, results []driver.FileResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildResultsOutput(results))
}
