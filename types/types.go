// Package types defines the closed domain of values understood by the
// binlist wire format. Producers convert their native structures into
// this domain before encoding; decoding always yields values from it.
package types

import "fmt"

// Type represents a type supported by the wire format.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes an opaque value outside the closed domain. It is
	// never produced by decoding; it only enters a tree through
	// NewAnyValue and is handled by the encoder's resolver.
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeByte
	TypeShort
	TypeInteger
	TypeBigint
	TypeFloat
	TypeDouble
	TypeTimestamp
	TypeText
	TypeBlob
	TypeArray
	TypeMap
	TypeAssocList
	TypeCompactAssocList
	TypeDocument
	TypeDocumentList
)

func (t Type) String() string {
	switch t {
	case TypeAny:
		return "any"
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeByte:
		return "byte"
	case TypeShort:
		return "short"
	case TypeInteger:
		return "integer"
	case TypeBigint:
		return "bigint"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeTimestamp:
		return "timestamp"
	case TypeText:
		return "text"
	case TypeBlob:
		return "blob"
	case TypeArray:
		return "array"
	case TypeMap:
		return "map"
	case TypeAssocList:
		return "assoclist"
	case TypeCompactAssocList:
		return "compactassoclist"
	case TypeDocument:
		return "document"
	case TypeDocumentList:
		return "documentlist"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// IsNumber returns true if t is one of the fixed-width numeric types.
func (t Type) IsNumber() bool {
	switch t {
	case TypeByte, TypeShort, TypeInteger, TypeBigint, TypeFloat, TypeDouble:
		return true
	}
	return false
}

// Value is a value in the closed domain.
type Value interface {
	Type() Type
	V() any
	String() string
	MarshalJSON() ([]byte, error)
}

// IsNull reports whether v is nil or the null value.
func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}
