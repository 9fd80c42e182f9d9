package binlist

import (
	"bytes"
	"testing"

	"github.com/tidesearch/binlist/types"
)

func FuzzUnmarshal(f *testing.F) {
	seed := func(v types.Value) {
		var buf bytes.Buffer
		if err := Marshal(&buf, v); err != nil {
			f.Fatal(err)
		}
		f.Add(buf.Bytes())
	}

	seed(types.NewNullValue())
	seed(types.NewIntegerValue(1000000))
	seed(types.NewTextValue("héllo"))
	seed(types.NewAssocListValue().
		Add("docs", types.NewArrayValue(
			types.NewDocumentValue().Set("id", types.NewBigintValue(1)),
		)))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Fuzz Unmarshal for panics. Whatever decodes must survive an
		// encode/decode cycle.
		v, err := Unmarshal(bytes.NewReader(data))
		if err != nil {
			t.Skip()
		}

		var buf bytes.Buffer
		if err := Marshal(&buf, v); err != nil {
			t.Fatalf("re-encoding decoded value: %v", err)
		}
		if _, err := Unmarshal(&buf); err != nil {
			t.Fatalf("re-decoding encoded value: %v", err)
		}
	})
}
