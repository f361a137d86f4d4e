package parse

import (
	"fmt"
	"strconv"
)

// Kind classifies a parse failure.
type Kind uint8

const (
	// KindUnknown is the zero value; no parser emits it directly.
	KindUnknown Kind = iota
	// KindEof means a fixed-width decoder ran past the end of input.
	KindEof
	// KindIsA means a character-class scanner matched zero characters.
	KindIsA
	// KindChar means a specific character was expected and not found.
	KindChar
	// KindDigit means at least one decimal digit was expected.
	KindDigit
	// KindTag means a literal byte sequence did not match.
	KindTag
	// KindFloat is the collapsed kind for float-literal failures.
	KindFloat
	// KindAlt means every branch of an alternation failed.
	KindAlt
)

func (k Kind) String() string {
	switch k {
	case KindEof:
		return "eof"
	case KindIsA:
		return "is-a"
	case KindChar:
		return "char"
	case KindDigit:
		return "digit"
	case KindTag:
		return "tag"
	case KindFloat:
		return "float"
	case KindAlt:
		return "alt"
	}
	return "unknown"
}

// Error records a parse failure. In holds the input at the point the
// failure was detected (a suffix of the original input), which lets a
// caller recover the byte offset via Offset.
type Error[I Input] struct {
	In    I
	Kind  Kind
	Fatal bool
}

// Err returns a soft (recoverable) failure at in.
func Err[I Input](in I, k Kind) error {
	return &Error[I]{In: in, Kind: k}
}

// Fail returns a fatal (committed) failure at in.
func Fail[I Input](in I, k Kind) error {
	return &Error[I]{In: in, Kind: k, Fatal: true}
}

func (e *Error[I]) Error() string {
	head := string(e.In)
	if len(head) > 16 {
		head = head[:16] + "..."
	}
	if e.Fatal {
		return fmt.Sprintf("parse failure (%s) at %s", e.Kind, strconv.Quote(head))
	}
	return fmt.Sprintf("parse error (%s) at %s", e.Kind, strconv.Quote(head))
}

// ErrKind exposes the failure kind without the generic instantiation.
func (e *Error[I]) ErrKind() Kind { return e.Kind }

// IsFatal reports whether the failure forbids backtracking.
func (e *Error[I]) IsFatal() bool { return e.Fatal }

// KindOf extracts the failure kind from any error produced by this
// package, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	if k, ok := err.(interface{ ErrKind() Kind }); ok {
		return k.ErrKind()
	}
	return KindUnknown
}

// IsFatal reports whether err is a committed parse failure.
func IsFatal(err error) bool {
	f, ok := err.(interface{ IsFatal() bool })
	return ok && f.IsFatal()
}
