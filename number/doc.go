// Package number implements parsers for numbers in binary and text form.
//
// # Purpose
//
//   - Decode fixed-width unsigned and signed integers (1 to 16 bytes,
//     including the 24-bit width) in big- or little-endian byte order.
//   - Decode IEEE-754 single and double precision floats by bit pattern.
//   - Recognize and evaluate textual number forms: hexadecimal runs and
//     the full floating-point literal grammar with nan/inf special tokens.
//
// # Scope
//
// All parsers here are complete-input: a truncated fixed-width value is a
// definite eof-kind error, never a "need more data" signal. Parsers are
// pure functions of their input; the remaining input they return is always
// a suffix view of the argument, and nothing is copied or mutated. They
// are safe to call concurrently on shared read-only data.
//
// Endianness-parameterised entry points (U16, I32, F64, ...) select the
// concrete big- or little-endian decoder once and return it as a function
// value, so the branch is not paid per invocation.
package number
