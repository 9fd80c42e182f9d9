// Package binutil provides helpers shared by the binlist CLI commands:
// stream compression wrappers and value-tree rewrites applied before
// encoding.
package binutil

import (
	"bufio"
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the algorithm wrapping a stream on disk.
type Compression uint8

const (
	// CompressionAuto detects the algorithm from the stream's magic
	// bytes when reading. It is not a valid choice for writing.
	CompressionAuto Compression = iota
	CompressionNone
	CompressionZstd
	CompressionLZ4
)

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// ParseCompression parses a compression name as given on the command
// line.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "auto":
		return CompressionAuto, nil
	case "none":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "lz4":
		return CompressionLZ4, nil
	}

	return 0, errors.Errorf("unknown compression %q", name)
}

func (c Compression) String() string {
	switch c {
	case CompressionAuto:
		return "auto"
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	}

	return "unknown"
}

// NewReader wraps r so that reads yield the decompressed stream. With
// CompressionAuto the algorithm is detected from the first four bytes;
// a stream that starts with neither magic is read as-is.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	br := bufio.NewReader(r)

	if c == CompressionAuto {
		magic, err := br.Peek(4)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}

		switch {
		case bytes.HasPrefix(magic, zstdMagic):
			c = CompressionZstd
		case bytes.HasPrefix(magic, lz4Magic):
			c = CompressionLZ4
		default:
			c = CompressionNone
		}
	}

	switch c {
	case CompressionNone:
		return io.NopCloser(br), nil
	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(br)), nil
	}

	return nil, errors.Errorf("unsupported compression %s", c)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w so that writes are compressed with c. The returned
// writer must be closed to flush the compressor's final frame.
func NewWriter(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZstd:
		return zstd.NewWriter(w)
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	}

	return nil, errors.Errorf("unsupported compression %s", c)
}
