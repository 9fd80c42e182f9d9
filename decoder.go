package binlist

import (
	"bufio"
	"io"
	"math"
	"unicode/utf16"

	"github.com/cockroachdb/errors"
	"github.com/tidesearch/binlist/types"
)

// Decoder reads value trees from a single input source. It keeps
// per-stream scratch state (the last tag byte and a reusable code-unit
// buffer), so concurrent decodes must each use their own Decoder.
type Decoder struct {
	r       *bufio.Reader
	tag     byte
	charBuf []uint16
	version byte
}

// maxPrealloc caps the capacity allocated for a container before any of
// its elements has been read, so a short hostile stream declaring a huge
// count cannot force a huge allocation.
const maxPrealloc = 1024

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the version byte and then exactly one value tree.
func (d *Decoder) Decode() (types.Value, error) {
	version, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	d.version = version

	return d.DecodeValue()
}

// StreamVersion returns the version byte consumed by Decode. It is zero
// before the first Decode call.
func (d *Decoder) StreamVersion() byte {
	return d.version
}

// DecodeValue reads exactly one tag byte and the value it announces,
// branching first on the top 3 bits (the combined tag classes), then on
// the exact byte value (the fixed tags). A byte matching neither is a
// fatal ErrUnknownTag: the format has no way to skip unknown values.
func (d *Decoder) DecodeValue() (types.Value, error) {
	tag, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	d.tag = tag

	switch tag >> 5 {
	case TagStr >> 5:
		return d.decodeText()
	case TagSmallInt >> 5:
		return d.decodeSmallInt()
	case TagSmallLong >> 5:
		return d.decodeSmallLong()
	case TagArray >> 5:
		return d.decodeArray()
	case TagCompactAssoc >> 5:
		pairs, err := d.decodePairs()
		if err != nil {
			return nil, err
		}
		return types.CompactAssocListValue(pairs), nil
	case TagAssoc >> 5:
		pairs, err := d.decodePairs()
		if err != nil {
			return nil, err
		}
		return types.AssocListValue(pairs), nil
	}

	switch tag {
	case TagNull:
		return types.NewNullValue(), nil
	case TagBoolTrue:
		return types.NewBooleanValue(true), nil
	case TagBoolFalse:
		return types.NewBooleanValue(false), nil
	case TagByte:
		b, err := d.r.ReadByte()
		if err != nil {
			return nil, err
		}
		return types.NewByteValue(int8(b)), nil
	case TagShort:
		x, err := d.readUint16()
		if err != nil {
			return nil, err
		}
		return types.NewShortValue(int16(x)), nil
	case TagInt:
		x, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return types.NewIntegerValue(int32(x)), nil
	case TagLong:
		x, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return types.NewBigintValue(int64(x)), nil
	case TagFloat:
		x, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return types.NewFloatValue(math.Float32frombits(x)), nil
	case TagDouble:
		x, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return types.NewDoubleValue(math.Float64frombits(x)), nil
	case TagDate:
		x, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return types.NewTimestampValueFromMillis(int64(x)), nil
	case TagMap:
		return d.decodeMap()
	case TagDocument:
		return d.decodeDocument()
	case TagDocumentList:
		return d.decodeDocumentList()
	case TagByteArray:
		return d.decodeByteArray()
	}

	return nil, errors.Wrapf(ErrUnknownTag, "0x%02x", tag)
}

// readSize extracts the size carried by the last combined tag: the low
// 5 bits inline, or 30 plus a varint when they hold the overflow marker.
func (d *Decoder) readSize() (int, error) {
	sz := int(d.tag & 0x1f)
	if sz == 0x1f {
		n, err := readUvarint[uint32](d.r)
		if err != nil {
			return 0, err
		}
		sz = maxInlineSize + int(n)
	}

	return sz, nil
}

func (d *Decoder) decodeText() (types.TextValue, error) {
	sz, err := d.readSize()
	if err != nil {
		return "", err
	}

	units, err := d.readChars(sz)
	if err != nil {
		return "", err
	}

	return types.NewTextValue(string(utf16.Decode(units))), nil
}

// decodeSmallInt rebuilds a positive 32-bit value from the 4-bit nibble
// in the tag and, when the extension bit is set, a varint holding the
// remaining high bits.
func (d *Decoder) decodeSmallInt() (types.IntegerValue, error) {
	v := int32(d.tag & smallNumMask)
	if d.tag&smallNumExt != 0 {
		x, err := readUvarint[uint32](d.r)
		if err != nil {
			return 0, err
		}
		v = int32(x<<4) | v
	}

	return types.NewIntegerValue(v), nil
}

func (d *Decoder) decodeSmallLong() (types.BigintValue, error) {
	v := int64(d.tag & smallNumMask)
	if d.tag&smallNumExt != 0 {
		x, err := readUvarint[uint64](d.r)
		if err != nil {
			return 0, err
		}
		v = int64(x<<4) | v
	}

	return types.NewBigintValue(v), nil
}

func (d *Decoder) decodeArray() (types.ArrayValue, error) {
	sz, err := d.readSize()
	if err != nil {
		return nil, err
	}

	arr := make(types.ArrayValue, 0, min(sz, maxPrealloc))
	for i := 0; i < sz; i++ {
		v, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	return arr, nil
}

func (d *Decoder) decodePairs() ([]types.Pair, error) {
	sz, err := d.readSize()
	if err != nil {
		return nil, err
	}

	pairs := make([]types.Pair, 0, min(sz, maxPrealloc))
	for i := 0; i < sz; i++ {
		kv, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		key, ok := kv.(types.TextValue)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "association list key is %s, not text", kv.Type())
		}

		v, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, types.Pair{Key: string(key), Value: v})
	}

	return pairs, nil
}

// decodeMap reads a fixed map tag's payload: a plain varint count, then
// interleaved key/value pairs where keys may be of any type.
func (d *Decoder) decodeMap() (types.MapValue, error) {
	sz, err := readUvarint[uint32](d.r)
	if err != nil {
		return nil, err
	}

	m := make(types.MapValue, 0, min(int(sz), maxPrealloc))
	for i := uint32(0); i < sz; i++ {
		k, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		v, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		m = append(m, types.MapEntry{K: k, V: v})
	}

	return m, nil
}

func (d *Decoder) decodeByteArray() (types.BlobValue, error) {
	sz, err := readUvarint[uint32](d.r)
	if err != nil {
		return nil, err
	}

	// the declared size comes from the stream, so the buffer grows as
	// bytes actually arrive instead of being allocated up front
	buf, err := io.ReadAll(io.LimitReader(d.r, int64(sz)))
	if err != nil {
		return nil, err
	}
	if uint32(len(buf)) < sz {
		return nil, io.ErrUnexpectedEOF
	}

	return types.NewBlobValue(buf), nil
}

func (d *Decoder) decodeDocument() (types.DocumentValue, error) {
	v, err := d.DecodeValue()
	if err != nil {
		return nil, err
	}

	switch fields := v.(type) {
	case types.CompactAssocListValue:
		return types.DocumentValue(fields), nil
	case types.AssocListValue:
		return types.DocumentValue(fields), nil
	}

	return nil, errors.Wrapf(ErrMalformed, "document body is %s, not an association list", v.Type())
}

// decodeDocumentList consumes exactly two arrays: the 3-element
// metadata array (numFound, start, maxScore) and the array of
// documents. Anything else fails loudly rather than being coerced.
func (d *Decoder) decodeDocumentList() (*types.DocumentListValue, error) {
	meta, err := d.DecodeValue()
	if err != nil {
		return nil, err
	}
	metaArr, ok := meta.(types.ArrayValue)
	if !ok || len(metaArr) != 3 {
		return nil, errors.Wrapf(ErrMalformed, "document list metadata is not a 3-element array")
	}

	numFound, ok := metaArr[0].(types.BigintValue)
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "document list numFound is %s, not bigint", metaArr[0].Type())
	}
	start, ok := metaArr[1].(types.BigintValue)
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "document list start is %s, not bigint", metaArr[1].Type())
	}

	maxScore := float32(math.NaN())
	switch score := metaArr[2].(type) {
	case types.FloatValue:
		maxScore = float32(score)
	case types.NullValue:
	default:
		return nil, errors.Wrapf(ErrMalformed, "document list maxScore is %s, not float or null", metaArr[2].Type())
	}

	docsVal, err := d.DecodeValue()
	if err != nil {
		return nil, err
	}
	docsArr, ok := docsVal.(types.ArrayValue)
	if !ok {
		return nil, errors.Wrapf(ErrMalformed, "document list body is %s, not an array of documents", docsVal.Type())
	}

	docs := make([]types.DocumentValue, 0, len(docsArr))
	for _, v := range docsArr {
		doc, ok := v.(types.DocumentValue)
		if !ok {
			return nil, errors.Wrapf(ErrMalformed, "document list element is %s, not a document", v.Type())
		}
		docs = append(docs, doc)
	}

	return &types.DocumentListValue{
		NumFound: int64(numFound),
		Start:    int64(start),
		MaxScore: maxScore,
		Docs:     docs,
	}, nil
}

func (d *Decoder) readUint16() (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

func (d *Decoder) readUint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]), nil
}

func (d *Decoder) readUint64() (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(d.r, buf[:]); err != nil {
		return 0, err
	}
	return uint64(buf[0])<<56 | uint64(buf[1])<<48 | uint64(buf[2])<<40 | uint64(buf[3])<<32 |
		uint64(buf[4])<<24 | uint64(buf[5])<<16 | uint64(buf[6])<<8 | uint64(buf[7]), nil
}
