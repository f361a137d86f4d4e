package parse

// Input is the capability required of parser input: a byte-addressable,
// sliceable view. Sub-slicing keeps the "remaining" value a view into the
// original buffer, so no parser ever copies input.
type Input interface {
	~[]byte | ~string
}

// Empty is the output of parsers that only consume input.
type Empty = struct{}

// Parser consumes a prefix of in and returns the remaining suffix together
// with the produced value. On failure the returned error is a *Error[I]
// and rest is the original input.
type Parser[I Input, O any] func(in I) (rest I, out O, err error)

// Offset returns the number of bytes of whole consumed to reach rest.
// rest must be a suffix of whole, which every parser in this module
// guarantees.
func Offset[I Input](whole, rest I) int {
	return len(whole) - len(rest)
}
