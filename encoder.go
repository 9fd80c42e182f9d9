package binlist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf16"

	"github.com/tidesearch/binlist/types"
)

// Encoder writes value trees to a single output sink in the binlist
// wire format. It carries no state other than the buffered writer and
// the optional resolver, but it is tied to one stream: concurrent
// encodes must each use their own Encoder.
type Encoder struct {
	w        *bufio.Writer
	resolver Resolver
	scratch  [8]byte
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return NewEncoderWithResolver(w, nil)
}

// NewEncoderWithResolver returns an Encoder that offers values outside
// the closed type domain to r before falling back to their string form.
func NewEncoderWithResolver(w io.Writer, r Resolver) *Encoder {
	return &Encoder{w: bufio.NewWriter(w), resolver: r}
}

// Encode writes the version byte followed by the value tree rooted at
// v. The underlying writer is flushed before Encode returns, whether
// the encode succeeded or not.
func (e *Encoder) Encode(v types.Value) error {
	err := e.w.WriteByte(Version)
	if err == nil {
		err = e.EncodeValue(v)
	}

	if ferr := e.w.Flush(); err == nil {
		err = ferr
	}
	return err
}

// EncodeValue writes exactly one self-delimiting value. It is exported
// so resolvers can write substitute trees themselves.
func (e *Encoder) EncodeValue(v types.Value) error {
	known, err := e.encodeKnown(v)
	if err != nil || known {
		return err
	}
	return e.encodeUnknown(v)
}

// encodeKnown writes v if it belongs to the closed type domain and
// reports whether it did. AnyValue and Value implementations from
// outside the types package are not known.
func (e *Encoder) encodeKnown(v types.Value) (bool, error) {
	switch v := v.(type) {
	case nil:
		return true, e.w.WriteByte(TagNull)
	case types.NullValue:
		return true, e.w.WriteByte(TagNull)
	case types.BooleanValue:
		if v {
			return true, e.w.WriteByte(TagBoolTrue)
		}
		return true, e.w.WriteByte(TagBoolFalse)
	case types.ByteValue:
		if err := e.w.WriteByte(TagByte); err != nil {
			return true, err
		}
		return true, e.w.WriteByte(byte(v))
	case types.ShortValue:
		if err := e.w.WriteByte(TagShort); err != nil {
			return true, err
		}
		return true, e.writeUint16(uint16(v))
	case types.IntegerValue:
		return true, e.encodeInt(int32(v))
	case types.BigintValue:
		return true, e.encodeLong(int64(v))
	case types.FloatValue:
		if err := e.w.WriteByte(TagFloat); err != nil {
			return true, err
		}
		return true, e.writeUint32(math.Float32bits(float32(v)))
	case types.DoubleValue:
		if err := e.w.WriteByte(TagDouble); err != nil {
			return true, err
		}
		return true, e.writeUint64(math.Float64bits(float64(v)))
	case types.TimestampValue:
		if err := e.w.WriteByte(TagDate); err != nil {
			return true, err
		}
		return true, e.writeUint64(uint64(v.UnixMilli()))
	case types.TextValue:
		return true, e.EncodeString(string(v))
	case types.BlobValue:
		return true, e.encodeByteArray(v)
	case types.ArrayValue:
		return true, e.encodeArray(v)
	case types.AssocListValue:
		return true, e.encodePairs(TagAssoc, v)
	case types.CompactAssocListValue:
		return true, e.encodePairs(TagCompactAssoc, v)
	case types.MapValue:
		return true, e.encodeMap(v)
	case types.DocumentValue:
		return true, e.encodeDocument(v)
	case *types.DocumentListValue:
		return true, e.encodeDocumentList(v)
	}

	return false, nil
}

// EncodeTag writes one tag byte, folding size into it when the tag is
// of the combined family. Sizes up to 30 are inline; larger sizes write
// the overflow marker and a varint holding size-30. Fixed tags are
// followed by the full size as a varint.
func (e *Encoder) EncodeTag(tag byte, size int) error {
	if tag&0xe0 != 0 {
		if size <= maxInlineSize {
			return e.w.WriteByte(tag | byte(size))
		}

		if err := e.w.WriteByte(tag | 0x1f); err != nil {
			return err
		}
		return writeUvarint(e.w, uint32(size-maxInlineSize))
	}

	if err := e.w.WriteByte(tag); err != nil {
		return err
	}
	return writeUvarint(e.w, uint32(size))
}

// EncodeString writes a text value: a combined tag whose length counts
// UTF-16 code units, followed by the code units in modified UTF-8.
func (e *Encoder) EncodeString(s string) error {
	units := utf16.Encode([]rune(s))
	if err := e.EncodeTag(TagStr, len(units)); err != nil {
		return err
	}
	return e.writeChars(units)
}

// encodeInt writes a 32-bit integer. Strictly positive values use the
// compact form: a 4-bit nibble in the tag plus, for values needing more
// than the nibble, a varint carrying the remaining high bits. Zero and
// negative values always take the fixed 4-byte form; the compact form
// trades them away for a single-byte encoding of small counts.
func (e *Encoder) encodeInt(v int32) error {
	if v > 0 {
		b := TagSmallInt | byte(v)&smallNumMask
		if v >= 0x0f {
			if err := e.w.WriteByte(b | smallNumExt); err != nil {
				return err
			}
			return writeUvarint(e.w, uint32(v)>>4)
		}
		return e.w.WriteByte(b)
	}

	if err := e.w.WriteByte(TagInt); err != nil {
		return err
	}
	return e.writeUint32(uint32(v))
}

// encodeLong mirrors encodeInt for 64-bit values. The compact form also
// requires the top byte to be clear so the shifted varint stays within
// range.
func (e *Encoder) encodeLong(v int64) error {
	if v > 0 && uint64(v)&0xff00000000000000 == 0 {
		b := TagSmallLong | byte(v)&smallNumMask
		if v >= 0x0f {
			if err := e.w.WriteByte(b | smallNumExt); err != nil {
				return err
			}
			return writeUvarint(e.w, uint64(v)>>4)
		}
		return e.w.WriteByte(b)
	}

	if err := e.w.WriteByte(TagLong); err != nil {
		return err
	}
	return e.writeUint64(uint64(v))
}

func (e *Encoder) encodeByteArray(b []byte) error {
	if err := e.EncodeTag(TagByteArray, len(b)); err != nil {
		return err
	}
	_, err := e.w.Write(b)
	return err
}

func (e *Encoder) encodeArray(arr []types.Value) error {
	if err := e.EncodeTag(TagArray, len(arr)); err != nil {
		return err
	}

	for _, v := range arr {
		if err := e.EncodeValue(v); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodePairs(tag byte, pairs []types.Pair) error {
	if err := e.EncodeTag(tag, len(pairs)); err != nil {
		return err
	}

	for _, p := range pairs {
		if err := e.EncodeString(p.Key); err != nil {
			return err
		}
		if err := e.EncodeValue(p.Value); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeMap(m types.MapValue) error {
	if err := e.EncodeTag(TagMap, len(m)); err != nil {
		return err
	}

	for _, entry := range m {
		if err := e.EncodeValue(entry.K); err != nil {
			return err
		}
		if err := e.EncodeValue(entry.V); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeDocument(doc types.DocumentValue) error {
	if err := e.w.WriteByte(TagDocument); err != nil {
		return err
	}
	return e.encodePairs(TagCompactAssoc, doc)
}

// encodeDocumentList writes the fixed tag, the 3-element metadata array
// (numFound, start, maxScore) and then a plain array of documents. An
// absent maxScore (NaN) is written as null.
func (e *Encoder) encodeDocumentList(dl *types.DocumentListValue) error {
	if err := e.w.WriteByte(TagDocumentList); err != nil {
		return err
	}

	var score types.Value = types.NewNullValue()
	if dl.HasMaxScore() {
		score = types.NewFloatValue(dl.MaxScore)
	}

	meta := types.NewArrayValue(
		types.NewBigintValue(dl.NumFound),
		types.NewBigintValue(dl.Start),
		score,
	)
	if err := e.encodeArray(meta); err != nil {
		return err
	}

	if err := e.EncodeTag(TagArray, len(dl.Docs)); err != nil {
		return err
	}
	for _, doc := range dl.Docs {
		if err := e.encodeDocument(doc); err != nil {
			return err
		}
	}
	return nil
}

// encodeUnknown handles values outside the closed domain. The resolver,
// if any, gets the first shot: it can substitute a known value, write
// the value itself and return nil, or decline by returning its input. A
// declined or unresolved value is written as the lossy string form of
// the original so the encoder never fails on an unrecognized shape.
func (e *Encoder) encodeUnknown(v types.Value) error {
	x := any(v)
	if av, ok := v.(types.AnyValue); ok {
		x = av.X
	}

	if e.resolver != nil {
		sub, err := e.resolver.Resolve(x, e)
		if err != nil {
			return err
		}
		if sub == nil {
			return nil
		}

		if rv, ok := sub.(types.Value); ok {
			known, err := e.encodeKnown(rv)
			if err != nil || known {
				return err
			}
		}
	}

	return e.EncodeString(fmt.Sprintf("%T:%v", x, x))
}

func (e *Encoder) writeUint16(v uint16) error {
	binary.BigEndian.PutUint16(e.scratch[:2], v)
	_, err := e.w.Write(e.scratch[:2])
	return err
}

func (e *Encoder) writeUint32(v uint32) error {
	binary.BigEndian.PutUint32(e.scratch[:4], v)
	_, err := e.w.Write(e.scratch[:4])
	return err
}

func (e *Encoder) writeUint64(v uint64) error {
	binary.BigEndian.PutUint64(e.scratch[:8], v)
	_, err := e.w.Write(e.scratch[:8])
	return err
}
