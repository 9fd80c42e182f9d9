package binlist

import (
	"bufio"

	"golang.org/x/exp/constraints"
)

// writeUvarint writes v with 7 payload bits per byte, least significant
// group first. The high bit of each byte marks continuation. Values
// below 128 cost a single byte, which covers almost every size written
// by the codec.
func writeUvarint[T constraints.Unsigned](w *bufio.Writer, v T) error {
	for v&^T(0x7f) != 0 {
		if err := w.WriteByte(byte(v&0x7f) | 0x80); err != nil {
			return err
		}
		v >>= 7
	}

	return w.WriteByte(byte(v))
}

// readUvarint is the counterpart of writeUvarint.
func readUvarint[T constraints.Unsigned](r *bufio.Reader) (T, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}

	v := T(b & 0x7f)
	for shift := 7; b&0x80 != 0; shift += 7 {
		b, err = r.ReadByte()
		if err != nil {
			return 0, err
		}
		v |= T(b&0x7f) << shift
	}

	return v, nil
}
