package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gnaw/internal/driver"
	"gnaw/internal/dumpfmt"
	"gnaw/internal/layout"
	"gnaw/internal/observ"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [flags] layout.toml file.bin...",
	Short: "Decode binary files against a record layout",
	Long:  `Decode reads a TOML record layout and decodes each file's fields, reporting exact offsets and values`,
	Args:  cobra.MinimumNArgs(2),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	decodeCmd.Flags().Bool("ui", false, "show interactive progress for large batches")
}

func runDecode(cmd *cobra.Command, args []string) error {
	layoutPath, files := args[0], args[1:]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	withUI, _ := cmd.Flags().GetBool("ui")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")

	timer := observ.NewTimer()

	stopLoad := timer.Begin("load-layout")
	lay, err := layout.LoadFile(layoutPath)
	stopLoad("")
	if err != nil {
		return err
	}

	stopDecode := timer.Begin("decode")
	var results []driver.FileResult
	if withUI && isTerminal(os.Stdout) {
		results, err = runDecodeWithUI(cmd, lay, files, jobs)
	} else {
		results, err = driver.DecodeFiles(cmd.Context(), files, lay, jobs, nil)
	}
	stopDecode(fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	stopRender := timer.Begin("render")
	err = renderResults(cmd, format, results, quiet)
	stopRender("")
	if err != nil {
		return err
	}

	if timings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	for _, res := range results {
		if res.Err != nil {
			return fmt.Errorf("%d of %d file(s) failed", countFailed(results), len(results))
		}
	}
	return nil
}

func renderResults(cmd *cobra.Command, format string, results []driver.FileResult, quiet bool) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return dumpfmt.FormatResultsJSON(out, results)
	case "msgpack":
		return dumpfmt.FormatResultsPack(out, results)
	}

	opts := dumpfmt.PrettyOpts{Color: useColor(cmd, os.Stdout)}
	for _, res := range results {
		if res.Err != nil {
			dumpfmt.FormatErrorPretty(os.Stderr, res.Path, res.Err, dumpfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
			continue
		}
		dumpfmt.FormatRecordPretty(out, res.Path, res.Record, opts)
	}
	if !quiet {
		dumpfmt.Summary(out, results)
	}
	return nil
}

func countFailed(results []driver.FileResult) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
