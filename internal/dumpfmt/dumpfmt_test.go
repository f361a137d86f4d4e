package dumpfmt_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gnaw/internal/driver"
	"gnaw/internal/dumpfmt"
	"gnaw/internal/layout"
)

func sampleResults() []driver.FileResult {
	return []driver.FileResult{
		{
			Path: "good.bin",
			Record: &driver.Record{
				Layout: "sample",
				Size:   6,
				Fields: []driver.FieldValue{
					{Name: "magic", Type: layout.TypeU16, Offset: 0, Width: 2, Text: "51966"},
					{Name: "gain", Type: layout.TypeF32, Offset: 2, Width: 4, Text: "12.5"},
				},
			},
		},
		{Path: "bad.bin", Err: errors.New(`field "magic" at offset 0: need 2 bytes, have 1`)},
	}
}

func TestFormatRecordPretty(t *testing.T) {
	var buf bytes.Buffer
	res := sampleResults()[0]
	dumpfmt.FormatRecordPretty(&buf, res.Path, res.Record, dumpfmt.PrettyOpts{})
	out := buf.String()
	for _, want := range []string{"good.bin (sample)", "magic", "u16", "51966", "12.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatResultsJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpfmt.FormatResultsJSON(&buf, sampleResults()); err != nil {
		t.Fatal(err)
	}
	var out dumpfmt.ResultsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 2 || out.Errors != 1 {
		t.Fatalf("output = %+v", out)
	}
	if out.Records[0].Fields[1].Value != "12.5" {
		t.Fatalf("records = %+v", out.Records)
	}
	if out.Records[1].Error == "" {
		t.Fatal("error record must carry its message")
	}
}

func TestPackRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := dumpfmt.FormatResultsPack(&buf, sampleResults()); err != nil {
		t.Fatal(err)
	}
	arc, ok, err := dumpfmt.ReadResultsPack(&buf)
	if err != nil || !ok {
		t.Fatalf("read = (%v, %v)", ok, err)
	}
	if len(arc.Records) != 2 || arc.Records[0].Layout != "sample" {
		t.Fatalf("archive = %+v", arc)
	}
	if arc.Records[0].Fields[0].Value != "51966" {
		t.Fatalf("fields = %+v", arc.Records[0].Fields)
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	dumpfmt.Summary(&buf, sampleResults())
	if got := buf.String(); got != "2 file(s), 6 byte(s) decoded, 1 failed\n" {
		t.Fatalf("summary = %q", got)
	}
}
