package types

import (
	"fmt"
	"strconv"
)

var _ Value = NewAnyValue(nil)

// AnyValue wraps a Go value that has no direct representation in the
// wire format. The encoder hands it to the configured resolver; without
// one it is written as its "<type>:<value>" string form.
type AnyValue struct {
	X any
}

// NewAnyValue wraps an arbitrary Go value.
func NewAnyValue(x any) AnyValue {
	return AnyValue{X: x}
}

func (v AnyValue) V() any {
	return v.X
}

func (v AnyValue) Type() Type {
	return TypeAny
}

// Fallback returns the lossy string form used when no resolver takes
// care of the value: the runtime type name, a colon, and the value's
// human-readable representation.
func (v AnyValue) Fallback() string {
	return fmt.Sprintf("%T:%v", v.X, v.X)
}

func (v AnyValue) String() string {
	return v.Fallback()
}

func (v AnyValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(v.Fallback())), nil
}
