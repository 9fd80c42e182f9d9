package binlist

// Tags used to encode values on the wire. Each value starts with
// exactly one tag byte, of one of two families:
//
//   - fixed tags: the byte identifies the type on its own. Any size or
//     count that follows is a separate varint. Fixed tags all have
//     their top 3 bits clear.
//   - combined tags: the top 3 bits select the type class, the low 5
//     bits carry a size (or part of a small numeric value) inline.
//     Sizes 0 to 30 fit inline; 31 marks an overflow, and the actual
//     size is 30 plus a trailing varint.
//
// All fixed-width numerics that follow a tag are written big-endian.
const (
	TagNull         byte = 0
	TagBoolTrue     byte = 1
	TagBoolFalse    byte = 2
	TagByte         byte = 3
	TagShort        byte = 4
	TagDouble       byte = 5
	TagInt          byte = 6
	TagLong         byte = 7
	TagFloat        byte = 8
	TagDate         byte = 9
	TagMap          byte = 10
	TagDocument     byte = 11
	TagDocumentList byte = 12
	TagByteArray    byte = 13

	// Combined tag classes, shifted into the top 3 bits.
	TagStr          byte = 1 << 5
	TagSmallInt     byte = 2 << 5
	TagSmallLong    byte = 3 << 5
	TagArray        byte = 4 << 5
	TagCompactAssoc byte = 5 << 5
	TagAssoc        byte = 6 << 5
)

const (
	// Version is the single leading byte of every stream. Readers
	// accept it but do not branch on its value yet.
	Version byte = 1

	// maxInlineSize is the largest size a combined tag carries inline.
	// The low 5 bits hold maxInlineSize+1 to signal an overflow varint.
	maxInlineSize = 0x1f - 1

	// smallNumExt flags a combined small-int/small-long tag whose high
	// bits continue in a trailing varint.
	smallNumExt byte = 0x10

	// smallNumMask selects the low nibble of a small numeric tag.
	smallNumMask byte = 0x0f
)
