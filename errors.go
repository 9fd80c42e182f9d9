package binlist

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownTag is returned when a tag byte read from the stream
	// matches no fixed or combined tag. The format has no
	// forward-compatible skip mechanism, so decoding aborts.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrUnsupportedValue may be returned by a Resolver to fail the
	// encode outright instead of substituting a value.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrMalformed is returned when a decoded stream violates a
	// structural assumption, e.g. a document list whose second element
	// is not an array of documents.
	ErrMalformed = errors.New("malformed stream")
)
