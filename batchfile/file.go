// SPDX-License-Identifier: MIT
// Package batchfile: container encoding and decoding.

package batchfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/zeebo/xxh3"
)

// Version is the only container version this package reads and writes.
const Version uint16 = 1

// HeaderSize is the fixed size of the container header in bytes.
const HeaderSize = 40

const (
	blockValues = 9
	blockBytes  = blockValues * 4
)

var magic = [4]byte{'P', '3', 'B', 'F'}

// Header describes a stored batch.
type Header struct {
	Version     uint16
	Compression Compression
	Blocks      uint64
	RawSize     uint64
	StoredSize  uint64
	Checksum    uint64
}

func (h Header) marshal() [HeaderSize]byte {
	var b [HeaderSize]byte
	copy(b[0:4], magic[:])
	binary.LittleEndian.PutUint16(b[4:6], h.Version)
	b[6] = byte(h.Compression)
	binary.LittleEndian.PutUint64(b[8:16], h.Blocks)
	binary.LittleEndian.PutUint64(b[16:24], h.RawSize)
	binary.LittleEndian.PutUint64(b[24:32], h.StoredSize)
	binary.LittleEndian.PutUint64(b[32:40], h.Checksum)
	return b
}

// unmarshalHeader decodes and validates b.
func unmarshalHeader(b [HeaderSize]byte) (Header, error) {
	if [4]byte(b[0:4]) != magic {
		return Header{}, ErrBadMagic
	}
	h := Header{
		Version:     binary.LittleEndian.Uint16(b[4:6]),
		Compression: Compression(b[6]),
		Blocks:      binary.LittleEndian.Uint64(b[8:16]),
		RawSize:     binary.LittleEndian.Uint64(b[16:24]),
		StoredSize:  binary.LittleEndian.Uint64(b[24:32]),
		Checksum:    binary.LittleEndian.Uint64(b[32:40]),
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if !h.Compression.valid() {
		return Header{}, fmt.Errorf("%w: code %d", ErrUnknownCompression, b[6])
	}
	if h.Blocks > math.MaxUint64/blockBytes || h.RawSize != h.Blocks*blockBytes {
		return Header{}, fmt.Errorf("%w: %d blocks, %d bytes", ErrNotBlockAligned, h.Blocks, h.RawSize)
	}
	return h, nil
}

// Encode returns the raw little-endian payload of data.
func Encode(data []float32) []byte {
	raw := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[4*i:], math.Float32bits(v))
	}
	return raw
}

// Decode is the inverse of Encode. len(raw) must be a multiple of 4.
func Decode(raw []byte) []float32 {
	data := make([]float32, len(raw)/4)
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[4*i:]))
	}
	return data
}

// Write stores data in w using compression c. len(data) must be a multiple
// of 9 (ErrNotBlockAligned).
func Write(w io.Writer, data []float32, c Compression) error {
	if len(data)%blockValues != 0 {
		return fileErrorf(opWrite, ErrNotBlockAligned)
	}
	if !c.valid() {
		return fileErrorf(opWrite, ErrUnknownCompression)
	}

	raw := Encode(data)
	stored, err := compress(c, raw)
	if err != nil {
		return fileErrorf(opWrite, err)
	}

	h := Header{
		Version:     Version,
		Compression: c,
		Blocks:      uint64(len(data) / blockValues),
		RawSize:     uint64(len(raw)),
		StoredSize:  uint64(len(stored)),
		Checksum:    xxh3.Hash(raw),
	}
	hb := h.marshal()
	if _, err := w.Write(hb[:]); err != nil {
		return fileErrorf(opWrite, err)
	}
	if _, err := w.Write(stored); err != nil {
		return fileErrorf(opWrite, err)
	}
	return nil
}

// Read loads a batch written by Write and verifies its checksum.
func Read(r io.Reader) ([]float32, Header, error) {
	var hb [HeaderSize]byte
	if _, err := io.ReadFull(r, hb[:]); err != nil {
		return nil, Header{}, fileErrorf(opRead, truncated(err))
	}
	h, err := unmarshalHeader(hb)
	if err != nil {
		return nil, Header{}, fileErrorf(opRead, err)
	}

	stored, err := io.ReadAll(io.LimitReader(r, int64(min(h.StoredSize, math.MaxInt64))))
	if err != nil {
		return nil, h, fileErrorf(opRead, err)
	}
	if uint64(len(stored)) != h.StoredSize {
		return nil, h, fileErrorf(opRead, fmt.Errorf("%w: payload has %d of %d bytes", ErrTruncated, len(stored), h.StoredSize))
	}

	raw, err := decompress(h.Compression, stored, h.RawSize)
	if err != nil {
		return nil, h, fileErrorf(opRead, fmt.Errorf("%s: %w", h.Compression, err))
	}
	if uint64(len(raw)) != h.RawSize {
		return nil, h, fileErrorf(opRead, fmt.Errorf("%w: decoded %d bytes, want %d", ErrChecksum, len(raw), h.RawSize))
	}
	if sum := xxh3.Hash(raw); sum != h.Checksum {
		return nil, h, fileErrorf(opRead, fmt.Errorf("%w: got %016x, want %016x", ErrChecksum, sum, h.Checksum))
	}
	return Decode(raw), h, nil
}

// truncated maps short reads onto ErrTruncated.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

// WriteFile writes data to path, creating or truncating it.
func WriteFile(path string, data []float32, c Compression) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fileErrorf(opWriteFile, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileErrorf(opWriteFile, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Write(bw, data, c); err != nil {
		return fileErrorf(opWriteFile, err)
	}
	if err := bw.Flush(); err != nil {
		return fileErrorf(opWriteFile, err)
	}
	return nil
}

// ReadFile reads a batch from path.
func ReadFile(path string) ([]float32, Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, fileErrorf(opReadFile, err)
	}
	defer f.Close()

	data, h, err := Read(bufio.NewReader(f))
	if err != nil {
		return nil, h, fileErrorf(opReadFile, err)
	}
	return data, h, nil
}
