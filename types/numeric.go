package types

import (
	"math"
	"strconv"
)

var (
	_ Value = NewByteValue(0)
	_ Value = NewShortValue(0)
	_ Value = NewIntegerValue(0)
	_ Value = NewBigintValue(0)
	_ Value = NewFloatValue(0)
	_ Value = NewDoubleValue(0)
)

type ByteValue int8

// NewByteValue returns a signed 8-bit value.
func NewByteValue(x int8) ByteValue {
	return ByteValue(x)
}

func (v ByteValue) V() any {
	return int8(v)
}

func (v ByteValue) Type() Type {
	return TypeByte
}

func (v ByteValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v ByteValue) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

type ShortValue int16

// NewShortValue returns a signed 16-bit value.
func NewShortValue(x int16) ShortValue {
	return ShortValue(x)
}

func (v ShortValue) V() any {
	return int16(v)
}

func (v ShortValue) Type() Type {
	return TypeShort
}

func (v ShortValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v ShortValue) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

type IntegerValue int32

// NewIntegerValue returns a signed 32-bit value.
func NewIntegerValue(x int32) IntegerValue {
	return IntegerValue(x)
}

func (v IntegerValue) V() any {
	return int32(v)
}

func (v IntegerValue) Type() Type {
	return TypeInteger
}

func (v IntegerValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v IntegerValue) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

type BigintValue int64

// NewBigintValue returns a signed 64-bit value.
func NewBigintValue(x int64) BigintValue {
	return BigintValue(x)
}

func (v BigintValue) V() any {
	return int64(v)
}

func (v BigintValue) Type() Type {
	return TypeBigint
}

func (v BigintValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}

func (v BigintValue) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}

type FloatValue float32

// NewFloatValue returns a 32-bit floating point value.
func NewFloatValue(x float32) FloatValue {
	return FloatValue(x)
}

func (v FloatValue) V() any {
	return float32(v)
}

func (v FloatValue) Type() Type {
	return TypeFloat
}

func (v FloatValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (v FloatValue) MarshalJSON() ([]byte, error) {
	return marshalFloat(float64(v), 32), nil
}

type DoubleValue float64

// NewDoubleValue returns a 64-bit floating point value.
func NewDoubleValue(x float64) DoubleValue {
	return DoubleValue(x)
}

func (v DoubleValue) V() any {
	return float64(v)
}

func (v DoubleValue) Type() Type {
	return TypeDouble
}

func (v DoubleValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func (v DoubleValue) MarshalJSON() ([]byte, error) {
	return marshalFloat(float64(v), 64), nil
}

// marshalFloat renders non-finite values as JSON strings since JSON has
// no literal for them.
func marshalFloat(f float64, bits int) []byte {
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`)
	case math.IsInf(f, 1):
		return []byte(`"Infinity"`)
	case math.IsInf(f, -1):
		return []byte(`"-Infinity"`)
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, bits))
}
