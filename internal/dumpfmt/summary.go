package dumpfmt

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"gnaw/internal/driver"
)

var summaryPrinter = message.NewPrinter(language.English)

// Summary prints a one-line batch total with grouped digits, which keeps
// large byte counts readable.
func Summary(w io.Writer, results []driver.FileResult) {
	var files, failed int
	var bytes uint64
	for _, res := range results {
		files++
		if res.Err != nil {
			failed++
			continue
		}
		if res.Record != nil {
			bytes += uint64(res.Record.Size)
		}
	}
	summaryPrinter.Fprintf(w, "%d file(s), %d byte(s) decoded, %d failed\n", files, bytes, failed)
}
