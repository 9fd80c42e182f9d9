// Package binlist implements a compact tagged binary codec for a small,
// closed set of value types: primitives, strings, byte arrays, ordered
// association lists, maps, arrays and two document-shaped containers.
// It is meant to exchange structured response data between two
// endpoints that both speak this exact format; it is not compatible
// with any general-purpose serialization standard.
//
// Every stream starts with a single version byte, followed by one
// recursively encoded value. Values are self-delimiting: a decoder
// never needs out-of-band length information. Container nesting depth
// is not limited by the format; callers decoding untrusted input should
// bound it themselves.
//
// A Codec is immutable after construction and safe for concurrent use:
// each Marshal and Unmarshal call builds its own Encoder or Decoder
// around the caller's sink or source. Individual Encoder and Decoder
// instances are tied to one stream and are not safe for concurrent use.
package binlist

import (
	"io"

	"github.com/tidesearch/binlist/types"
)

// Codec encodes and decodes value trees. The zero value is usable; the
// resolver, if any, is fixed at construction.
type Codec struct {
	resolver Resolver
}

// NewCodec returns a codec without a resolver: values outside the
// closed type domain are encoded as their string fallback.
func NewCodec() *Codec {
	return &Codec{}
}

// NewCodecWithResolver returns a codec that offers out-of-domain values
// to r before falling back.
func NewCodecWithResolver(r Resolver) *Codec {
	return &Codec{resolver: r}
}

// Marshal writes the version byte and the value tree rooted at v to w,
// flushing before it returns.
func (c *Codec) Marshal(w io.Writer, v types.Value) error {
	return NewEncoderWithResolver(w, c.resolver).Encode(v)
}

// Unmarshal reads one value tree from r, discarding the leading version
// byte.
func (c *Codec) Unmarshal(r io.Reader) (types.Value, error) {
	return NewDecoder(r).Decode()
}

var defaultCodec = NewCodec()

// Marshal encodes v to w using a resolver-less codec.
func Marshal(w io.Writer, v types.Value) error {
	return defaultCodec.Marshal(w, v)
}

// Unmarshal decodes one value tree from r using a resolver-less codec.
func Unmarshal(r io.Reader) (types.Value, error) {
	return defaultCodec.Unmarshal(r)
}
