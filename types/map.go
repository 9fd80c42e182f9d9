package types

import (
	"bytes"
	"strconv"
	"strings"
)

// MapEntry is one entry of a map value. Unlike association list pairs,
// keys may be of any supported value type.
type MapEntry struct {
	K Value
	V Value
}

var _ Value = NewMapValue()

// MapValue is a sequence of key/value entries. Insertion order is
// preserved by both encoding and decoding.
type MapValue []MapEntry

// NewMapValue returns a map value.
func NewMapValue(entries ...MapEntry) MapValue {
	return MapValue(entries)
}

// Set appends an entry and returns the updated map.
func (v MapValue) Set(key, value Value) MapValue {
	return append(v, MapEntry{K: key, V: value})
}

func (v MapValue) V() any {
	return []MapEntry(v)
}

func (v MapValue) Type() Type {
	return TypeMap
}

func (v MapValue) String() string {
	var sb strings.Builder

	sb.WriteString("map{")
	for i, e := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.K.String())
		sb.WriteString(": ")
		sb.WriteString(e.V.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

func (v MapValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, e := range v {
		if i > 0 {
			buf.WriteByte(',')
		}

		// JSON object members need string keys. Text keys are quoted
		// directly, any other key type falls back to its string form.
		if k, ok := e.K.(TextValue); ok {
			buf.WriteString(strconv.Quote(string(k)))
		} else {
			buf.WriteString(strconv.Quote(e.K.String()))
		}
		buf.WriteByte(':')

		data, err := e.V.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
