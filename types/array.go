package types

import (
	"bytes"
	"strings"
)

var _ Value = NewArrayValue()

type ArrayValue []Value

// NewArrayValue returns an ordered sequence of values.
func NewArrayValue(values ...Value) ArrayValue {
	return ArrayValue(values)
}

func (v ArrayValue) V() any {
	return []Value(v)
}

func (v ArrayValue) Type() Type {
	return TypeArray
}

func (v ArrayValue) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

func (v ArrayValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('[')
	for i, e := range v {
		if i > 0 {
			buf.WriteByte(',')
		}

		data, err := e.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte(']')

	return buf.Bytes(), nil
}
