package binlist

// String payloads are sequences of UTF-16 code units, each mapped
// independently to a modified-UTF-8 byte sequence: 1 byte for ASCII
// (except code point 0, which always uses the 2-byte form), 2 bytes up
// to 0x7FF, 3 bytes otherwise. Surrogate halves are encoded as two
// independent 3-byte sequences, never as one 4-byte sequence, so this
// is not conformant UTF-8. Both directions must mirror each other
// exactly to guarantee code-unit round-trip fidelity.

func (e *Encoder) writeChars(units []uint16) error {
	for _, code := range units {
		var err error
		switch {
		case code >= 0x01 && code <= 0x7f:
			err = e.w.WriteByte(byte(code))
		case code <= 0x7ff:
			if err = e.w.WriteByte(0xc0 | byte(code>>6)); err != nil {
				return err
			}
			err = e.w.WriteByte(0x80 | byte(code&0x3f))
		default:
			if err = e.w.WriteByte(0xe0 | byte(code>>12)); err != nil {
				return err
			}
			if err = e.w.WriteByte(0x80 | byte((code>>6)&0x3f)); err != nil {
				return err
			}
			err = e.w.WriteByte(0x80 | byte(code&0x3f))
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// readChars decodes n code units into the decoder's scratch buffer. The
// returned slice is only valid until the next call.
func (d *Decoder) readChars(n int) ([]uint16, error) {
	if cap(d.charBuf) < n {
		d.charBuf = make([]uint16, 0, min(n, maxPrealloc))
	}
	buf := d.charBuf[:0]

	for i := 0; i < n; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return nil, err
		}

		var unit uint16
		switch {
		case b&0x80 == 0:
			unit = uint16(b)
		case b&0xe0 != 0xe0:
			b2, err := d.r.ReadByte()
			if err != nil {
				return nil, err
			}
			unit = uint16(b&0x1f)<<6 | uint16(b2&0x3f)
		default:
			b2, err := d.r.ReadByte()
			if err != nil {
				return nil, err
			}
			b3, err := d.r.ReadByte()
			if err != nil {
				return nil, err
			}
			unit = uint16(b&0x0f)<<12 | uint16(b2&0x3f)<<6 | uint16(b3&0x3f)
		}
		buf = append(buf, unit)
	}

	d.charBuf = buf
	return buf, nil
}
