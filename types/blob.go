package types

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

var _ Value = NewBlobValue(nil)

type BlobValue []byte

// NewBlobValue returns a raw byte slice value.
func NewBlobValue(x []byte) BlobValue {
	return BlobValue(x)
}

func (v BlobValue) V() any {
	return []byte(v)
}

func (v BlobValue) Type() Type {
	return TypeBlob
}

func (v BlobValue) String() string {
	return fmt.Sprintf("\\x%x", []byte(v))
}

func (v BlobValue) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(base64.StdEncoding.EncodeToString(v))), nil
}
