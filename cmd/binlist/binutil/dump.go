package binutil

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/tidesearch/binlist"
	"github.com/tidesearch/binlist/types"
)

// Dump decodes one binlist stream from r and writes it to w as
// indented JSON.
func Dump(r io.Reader, w io.Writer) error {
	v, err := binlist.Unmarshal(r)
	if err != nil {
		return err
	}

	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err = w.Write(buf.Bytes())
	return err
}

// Encode reads a JSON document from r, converts the named date fields,
// and writes the resulting value to w as a binlist stream.
func Encode(r io.Reader, w io.Writer, dateFields []string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	v, err := types.FromJSON(data)
	if err != nil {
		return err
	}

	if len(dateFields) > 0 {
		fields := make(map[string]bool, len(dateFields))
		for _, f := range dateFields {
			fields[f] = true
		}

		v, err = ConvertDateFields(v, fields)
		if err != nil {
			return err
		}
	}

	return binlist.Marshal(w, v)
}
