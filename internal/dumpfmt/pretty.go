package dumpfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"gnaw/internal/driver"
)

// PrettyOpts настраивает человекочитаемый вывод записей
type PrettyOpts struct {
	Color bool
}

var (
	prettyHeaderColor = color.New(color.FgCyan, color.Bold)
	prettyFieldColor  = color.New(color.FgWhite)
	prettyValueColor  = color.New(color.FgGreen)
	prettyErrColor    = color.New(color.FgRed, color.Bold)
)

// FormatRecordPretty выводит одну декодированную запись в читаемом формате
func FormatRecordPretty(w io.Writer, path string, rec *driver.Record, opts PrettyOpts) {
	header := path
	if rec.Layout != "" {
		header = fmt.Sprintf("%s (%s)", path, rec.Layout)
	}
	if opts.Color {
		fmt.Fprintln(w, prettyHeaderColor.Sprint(header))
	} else {
		fmt.Fprintln(w, header)
	}

	for i, f := range rec.Fields {
		name := f.Name
		value := f.Text
		if opts.Color {
			name = prettyFieldColor.Sprint(name)
			value = prettyValueColor.Sprint(value)
		}
		fmt.Fprintf(w, "%3d: %-20s %-5s @%04x+%d  %s\n",
			i+1, name, f.Type.String(), f.Offset, f.Width, value)
	}
	if rec.Trailing > 0 {
		fmt.Fprintf(w, "     %d trailing byte(s) not covered by the layout\n", rec.Trailing)
	}
}

// FormatErrorPretty выводит ошибку декодирования файла
func FormatErrorPretty(w io.Writer, path string, err error, opts PrettyOpts) {
	msg := fmt.Sprintf("%s: %v", path, err)
	if opts.Color {
		msg = prettyErrColor.Sprint(msg)
	}
	fmt.Fprintln(w, msg)
}
