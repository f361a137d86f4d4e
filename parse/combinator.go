package parse

// Alt tries each parser against the same input and returns the first
// success. A fatal error stops the alternation immediately; if every
// branch fails softly, the last branch's error is returned.
func Alt[I Input, O any](parsers ...Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		var zero O
		var last error
		for _, p := range parsers {
			rest, out, err := p(in)
			if err == nil {
				return rest, out, nil
			}
			if IsFatal(err) {
				return in, zero, err
			}
			last = err
		}
		if last == nil {
			last = Err(in, KindAlt)
		}
		return in, zero, last
	}
}

// Opt makes a parser optional: a soft failure consumes nothing and yields
// the zero value. Fatal errors still propagate.
func Opt[I Input, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err == nil {
			return rest, out, nil
		}
		var zero O
		if IsFatal(err) {
			return in, zero, err
		}
		return in, zero, nil
	}
}

// Map transforms the output of a parser.
func Map[I Input, O, P any](p Parser[I, O], f func(O) P) Parser[I, P] {
	return func(in I) (I, P, error) {
		rest, out, err := p(in)
		if err != nil {
			var zero P
			return in, zero, err
		}
		return rest, f(out), nil
	}
}

// Recognize discards a parser's output and returns the consumed span
// instead, as a view into the original input.
func Recognize[I Input, O any](p Parser[I, O]) Parser[I, I] {
	return func(in I) (I, I, error) {
		rest, _, err := p(in)
		if err != nil {
			var zero I
			return in, zero, err
		}
		return rest, in[:len(in)-len(rest)], nil
	}
}

// Cut converts a soft failure into a fatal one. It marks the point past
// which the grammar has committed: alternation must not retry siblings.
func Cut[I Input, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (I, O, error) {
		rest, out, err := p(in)
		if err == nil {
			return rest, out, nil
		}
		if pe, ok := err.(*Error[I]); ok && !pe.Fatal {
			err = Fail(pe.In, pe.Kind)
		}
		var zero O
		return in, zero, err
	}
}

// Seq applies parsers left to right, threading the remaining input.
// Outputs are discarded; wrap value-producing parsers with Void first.
func Seq[I Input](parsers ...Parser[I, Empty]) Parser[I, Empty] {
	return func(in I) (I, Empty, error) {
		rest := in
		for _, p := range parsers {
			var err error
			rest, _, err = p(rest)
			if err != nil {
				return in, Empty{}, err
			}
		}
		return rest, Empty{}, nil
	}
}

// Void discards a parser's output so it can take part in a Seq.
func Void[I Input, O any](p Parser[I, O]) Parser[I, Empty] {
	return func(in I) (I, Empty, error) {
		rest, _, err := p(in)
		if err != nil {
			return in, Empty{}, err
		}
		return rest, Empty{}, nil
	}
}
