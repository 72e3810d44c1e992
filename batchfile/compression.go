package batchfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	lz4 "github.com/pierrec/lz4/v4"
)

// Compression selects the payload codec.
type Compression uint8

const (
	None Compression = iota
	Zstd
	LZ4
)

var compressionNames = [...]string{None: "none", Zstd: "zstd", LZ4: "lz4"}

func (c Compression) String() string {
	if c.valid() {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

func (c Compression) valid() bool { return int(c) < len(compressionNames) }

// ParseCompression maps "none", "zstd" or "lz4" to a Compression.
func ParseCompression(s string) (Compression, error) {
	for c, name := range compressionNames {
		if name == s {
			return Compression(c), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
}

func compress(c Compression, raw []byte) ([]byte, error) {
	switch c {
	case None:
		return raw, nil
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, make([]byte, 0, len(raw))), nil
	case LZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnknownCompression
	}
}

// maxSizeHint caps preallocation driven by an untrusted header.
const maxSizeHint = 64 << 20

func sizeHint(n uint64) int { return int(min(n, maxSizeHint)) }

// decompress decodes stored. rawSize sizes the output buffer and bounds both
// decoders; the caller checks the final length.
func decompress(c Compression, stored []byte, rawSize uint64) ([]byte, error) {
	switch c {
	case None:
		return stored, nil
	case Zstd:
		// Frames never declare a window below MinWindowSize.
		limit := max(rawSize, zstd.MinWindowSize)
		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderMaxMemory(limit))
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		raw, err := dec.DecodeAll(stored, make([]byte, 0, sizeHint(rawSize)))
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: payload decodes past %d bytes: %w", ErrChecksum, rawSize, err)
		}
		return raw, err
	case LZ4:
		r := lz4.NewReader(bytes.NewReader(stored))
		var buf bytes.Buffer
		buf.Grow(sizeHint(rawSize))
		if _, err := io.Copy(&buf, io.LimitReader(r, int64(rawSize)+1)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnknownCompression
	}
}
