package types

import "strconv"

var _ Value = NewTextValue("")

// TextValue is a string. On the wire its length is counted in UTF-16
// code units, not bytes; the conversion happens in the codec.
type TextValue string

// NewTextValue returns a text value.
func NewTextValue(x string) TextValue {
	return TextValue(x)
}

func (v TextValue) V() any {
	return string(v)
}

func (v TextValue) Type() Type {
	return TypeText
}

func (v TextValue) String() string {
	return strconv.Quote(string(v))
}

func (v TextValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(v))), nil
}
