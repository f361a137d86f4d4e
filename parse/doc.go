// Package parse defines the combinator algebra shared by all gnaw parsers.
//
// # Purpose
//
//   - Provide the Parser function type and the Input constraint that let
//     the same parser run over both []byte and string without copying.
//   - Offer the small set of combinators (Alt, Opt, Seq, Recognize, Cut,
//     Map) parsers compose with.
//   - Model failures as values that carry the exact input at which the
//     failure was detected, so callers can report byte-accurate positions.
//
// # Scope
//
// Package parse does not perform any IO, formatting, or CLI integration.
// Concrete numeric and binary parsers live in package number; rendering of
// decode results lives in internal/dumpfmt.
//
// # Result model
//
// Every parser has the shape
//
//	func(in I) (rest I, out O, err error)
//
// On success rest is always a suffix slice of in (never a copy), such that
// in = consumed ++ rest. On failure the returned error is a *Error[I]
// whose In field is the input at the detection point. Errors come in two
// flavours:
//
//   - soft (Fatal == false): alternation may retry a sibling branch;
//   - fatal (Fatal == true): the grammar has committed past an unambiguous
//     marker and backtracking would be wrong. Alt and Opt propagate fatal
//     errors instead of recovering.
//
// There is no "need more input" arm: the algebra assumes complete input,
// and a truncated fixed-width value is a definite error.
package parse
