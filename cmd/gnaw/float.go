package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gnaw/number"
	"gnaw/parse"
)

var floatCmd = &cobra.Command{
	Use:   "float <literal>...",
	Short: "Parse floating-point literals",
	Long:  `Float runs each literal through the float grammar and prints its decomposition and evaluated value`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFloat,
}

var floatErrColor = color.New(color.FgRed, color.Bold)

func init() {
	floatCmd.Flags().Bool("parts", false, "print the sign/integer/fraction/exponent decomposition")
}

func runFloat(cmd *cobra.Command, args []string) error {
	showParts, _ := cmd.Flags().GetBool("parts")
	colorize := useColor(cmd, os.Stderr)
	out := cmd.OutOrStdout()

	failed := 0
	for _, lit := range args {
		rest, v, err := number.Double(lit)
		if err != nil {
			failed++
			msg := fmt.Sprintf("%s: no float at %q (%s)", lit, errInput(err, lit), kindName(err))
			if colorize {
				msg = floatErrColor.Sprint(msg)
			}
			fmt.Fprintln(os.Stderr, msg)
			continue
		}

		fmt.Fprintf(out, "%-24s = %v", lit, v)
		if rest != "" {
			fmt.Fprintf(out, "  (rest %q)", rest)
		}
		fmt.Fprintln(out)

		if showParts {
			if _, parts, perr := number.RecognizeFloatParts(lit); perr == nil {
				sign := "+"
				if !parts.Sign {
					sign = "-"
				}
				fmt.Fprintf(out, "%24s  sign=%s integer=%q fraction=%q exponent=%d\n",
					"", sign, parts.Integer, parts.Fraction, parts.Exponent)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d literal(s) failed", failed, len(args))
	}
	return nil
}

func errInput(err error, whole string) string {
	if pe, ok := err.(*parse.Error[string]); ok {
		return pe.In
	}
	return whole
}

func kindName(err error) string {
	switch parse.KindOf(err) {
	case parse.KindEof:
		return "unexpected end of input"
	case parse.KindDigit:
		return "digit expected"
	case parse.KindChar:
		return "unexpected character"
	case parse.KindFloat:
		return "not a float"
	default:
		return "parse error"
	}
}
