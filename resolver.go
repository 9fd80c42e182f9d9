package binlist

// Resolver is the extension hook for values outside the closed type
// domain. Resolve receives the raw value and the encoder and must do
// one of three things:
//
//   - return a substitute types.Value from the closed domain, which the
//     encoder then writes
//   - write the value itself through the encoder's Encode* methods and
//     return nil to signal it was fully handled
//   - decline by returning the value unchanged, in which case the
//     encoder writes the lossy "<type>:<value>" string fallback
//
// Returning an error (ErrUnsupportedValue, typically) aborts the
// encode.
type Resolver interface {
	Resolve(v any, enc *Encoder) (any, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(v any, enc *Encoder) (any, error)

func (f ResolverFunc) Resolve(v any, enc *Encoder) (any, error) {
	return f(v, enc)
}
