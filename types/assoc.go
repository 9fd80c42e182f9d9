package types

import (
	"bytes"
	"strconv"
	"strings"
)

// Pair is one entry of an ordered association list. Keys may repeat and
// insertion order is significant.
type Pair struct {
	Key   string
	Value Value
}

var (
	_ Value = NewAssocListValue()
	_ Value = NewCompactAssocListValue()
)

// AssocListValue is the plain flavor of the ordered association list.
type AssocListValue []Pair

// NewAssocListValue returns a plain ordered association list.
func NewAssocListValue(pairs ...Pair) AssocListValue {
	return AssocListValue(pairs)
}

// Add appends a key/value pair and returns the updated list.
func (v AssocListValue) Add(key string, value Value) AssocListValue {
	return append(v, Pair{Key: key, Value: value})
}

// Get returns the value of the first pair with the given key, or nil.
func (v AssocListValue) Get(key string) Value {
	return pairsGet(v, key)
}

func (v AssocListValue) V() any {
	return []Pair(v)
}

func (v AssocListValue) Type() Type {
	return TypeAssocList
}

func (v AssocListValue) String() string {
	return pairsString(v)
}

func (v AssocListValue) MarshalJSON() ([]byte, error) {
	return pairsMarshalJSON(v)
}

// CompactAssocListValue is the compact flavor of the ordered
// association list. It shares the plain flavor's encoding logic and
// differs only by its wire tag; it is the flavor used for field
// containers and is the more common of the two.
type CompactAssocListValue []Pair

// NewCompactAssocListValue returns a compact ordered association list.
func NewCompactAssocListValue(pairs ...Pair) CompactAssocListValue {
	return CompactAssocListValue(pairs)
}

// Add appends a key/value pair and returns the updated list.
func (v CompactAssocListValue) Add(key string, value Value) CompactAssocListValue {
	return append(v, Pair{Key: key, Value: value})
}

// Get returns the value of the first pair with the given key, or nil.
func (v CompactAssocListValue) Get(key string) Value {
	return pairsGet(v, key)
}

func (v CompactAssocListValue) V() any {
	return []Pair(v)
}

func (v CompactAssocListValue) Type() Type {
	return TypeCompactAssocList
}

func (v CompactAssocListValue) String() string {
	return pairsString(v)
}

func (v CompactAssocListValue) MarshalJSON() ([]byte, error) {
	return pairsMarshalJSON(v)
}

func pairsGet(pairs []Pair, key string) Value {
	for _, p := range pairs {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}

func pairsString(pairs []Pair) string {
	var sb strings.Builder

	sb.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Key)
		sb.WriteString(": ")
		sb.WriteString(p.Value.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

// pairsMarshalJSON renders the list as a JSON object. Keys may repeat;
// the output then contains duplicate members, which is legal JSON and
// preserves what was on the wire.
func pairsMarshalJSON(pairs []Pair) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteString(strconv.Quote(p.Key))
		buf.WriteByte(':')

		data, err := p.Value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
