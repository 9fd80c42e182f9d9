package types

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

var _ Value = NewDocumentValue()

// DocumentValue is a single-level record mapping field names to values.
// Field order is preserved.
type DocumentValue []Pair

// NewDocumentValue returns a document value.
func NewDocumentValue(fields ...Pair) DocumentValue {
	return DocumentValue(fields)
}

// Set appends a field and returns the updated document.
func (v DocumentValue) Set(name string, value Value) DocumentValue {
	return append(v, Pair{Key: name, Value: value})
}

// Get returns the value of the first field with the given name, or nil.
func (v DocumentValue) Get(name string) Value {
	return pairsGet(v, name)
}

func (v DocumentValue) V() any {
	return []Pair(v)
}

func (v DocumentValue) Type() Type {
	return TypeDocument
}

func (v DocumentValue) String() string {
	return "doc" + pairsString(v)
}

func (v DocumentValue) MarshalJSON() ([]byte, error) {
	return pairsMarshalJSON(v)
}

var _ Value = &DocumentListValue{}

// DocumentListValue is a result-set container: summary metadata plus an
// ordered sequence of documents. A NaN MaxScore means the score is
// absent; it is encoded as null on the wire.
type DocumentListValue struct {
	NumFound int64
	Start    int64
	MaxScore float32
	Docs     []DocumentValue
}

// NewDocumentListValue returns an empty document list with no score.
func NewDocumentListValue() *DocumentListValue {
	return &DocumentListValue{MaxScore: float32(math.NaN())}
}

// HasMaxScore reports whether the list carries a top score.
func (v *DocumentListValue) HasMaxScore() bool {
	return !math.IsNaN(float64(v.MaxScore))
}

func (v *DocumentListValue) V() any {
	return v.Docs
}

func (v *DocumentListValue) Type() Type {
	return TypeDocumentList
}

func (v *DocumentListValue) String() string {
	var sb strings.Builder

	sb.WriteString("doclist(numFound=")
	sb.WriteString(strconv.FormatInt(v.NumFound, 10))
	sb.WriteString(", start=")
	sb.WriteString(strconv.FormatInt(v.Start, 10))
	sb.WriteString(")[")
	for i, d := range v.Docs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(d.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

func (v *DocumentListValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"numFound":`)
	buf.WriteString(strconv.FormatInt(v.NumFound, 10))
	buf.WriteString(`,"start":`)
	buf.WriteString(strconv.FormatInt(v.Start, 10))
	buf.WriteString(`,"maxScore":`)
	if v.HasMaxScore() {
		buf.WriteString(strconv.FormatFloat(float64(v.MaxScore), 'g', -1, 32))
	} else {
		buf.WriteString("null")
	}
	buf.WriteString(`,"docs":`)

	data, err := ArrayValue(docsAsValues(v.Docs)).MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(data)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func docsAsValues(docs []DocumentValue) []Value {
	values := make([]Value, len(docs))
	for i := range docs {
		values[i] = docs[i]
	}
	return values
}
