package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"gnaw/parse"
)

// CheckRest runs the suffix invariants every parser must uphold:
// 1) rest is never longer than the original input
// 2) rest is the tail of the original input, byte for byte
// 3) span (when given) is the prefix the parser consumed
func CheckRest[I parse.Input](orig, rest I) error {
	if len(rest) > len(orig) {
		return fmt.Errorf("rest longer than input: %d > %d", len(rest), len(orig))
	}
	off, err := safecast.Conv[uint32](len(orig) - len(rest))
	if err != nil {
		return fmt.Errorf("offset overflow: %w", err)
	}
	for k := 0; k < len(rest); k++ {
		if orig[int(off)+k] != rest[k] {
			return fmt.Errorf("rest diverges from input at offset %d", int(off)+k)
		}
	}
	return nil
}

// CheckSpan verifies that span and rest partition the original input.
func CheckSpan[I parse.Input](orig, span, rest I) error {
	if len(span)+len(rest) != len(orig) {
		return fmt.Errorf("span+rest length %d+%d != input length %d", len(span), len(rest), len(orig))
	}
	for k := 0; k < len(span); k++ {
		if orig[k] != span[k] {
			return fmt.Errorf("span diverges from input at offset %d", k)
		}
	}
	return CheckRest(orig, rest)
}

// CheckErrorInput verifies that a parse error points into the original
// input: its position must itself be a suffix of it.
func CheckErrorInput[I parse.Input](orig I, err error) error {
	pe, ok := err.(*parse.Error[I])
	if !ok {
		return fmt.Errorf("not a parse error: %v", err)
	}
	return CheckRest(orig, pe.In)
}
