// SPDX-License-Identifier: MIT
// Package batchfile: sentinel errors.

package batchfile

import (
	"errors"
	"fmt"
)

var (
	// ErrBadMagic is returned when the input does not start with "P3BF".
	ErrBadMagic = errors.New("batchfile: bad magic")

	// ErrUnsupportedVersion is returned for any version other than Version.
	ErrUnsupportedVersion = errors.New("batchfile: unsupported version")

	// ErrUnknownCompression is returned for an unknown compression code or name.
	ErrUnknownCompression = errors.New("batchfile: unknown compression")

	// ErrChecksum is returned when the decoded payload does not match the
	// header's size or xxh3 checksum.
	ErrChecksum = errors.New("batchfile: checksum mismatch")

	// ErrTruncated is returned when the header or payload ends early.
	ErrTruncated = errors.New("batchfile: truncated input")

	// ErrNotBlockAligned is returned when a buffer or a declared payload size
	// is not a whole number of 3×3 blocks.
	ErrNotBlockAligned = errors.New("batchfile: payload is not a whole number of blocks")
)

const (
	opWrite     = "Write"
	opRead      = "Read"
	opWriteFile = "WriteFile"
	opReadFile  = "ReadFile"
)

func fileErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
