package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gnaw/number"
)

var hexCmd = &cobra.Command{
	Use:   "hex <text>...",
	Short: "Parse hexadecimal prefixes",
	Long:  `Hex reads up to eight hex digits from the front of each argument and prints the value and the remaining text`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHex,
}

func runHex(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, arg := range args {
		rest, v, err := number.HexU32(arg)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: no hex digits\n", arg)
			continue
		}
		fmt.Fprintf(out, "%-16s = %d (0x%08x)", arg, v, v)
		if rest != "" {
			fmt.Fprintf(out, "  (rest %q)", rest)
		}
		fmt.Fprintln(out)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d argument(s) failed", failed, len(args))
	}
	return nil
}
