// SPDX-License-Identifier: MIT
// Package batch: sentinel errors and operation tags.

package batch

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "batch: ". Public entry points wrap these
// with their operation tag ("Solve: batch: ..."); match with errors.Is.
var (
	// ErrLengthMismatch is returned when u1, u2 and result differ in length.
	ErrLengthMismatch = errors.New("batch: buffer lengths differ")

	// ErrNotBlockAligned is returned when the common length is not a multiple
	// of BlockSize.
	ErrNotBlockAligned = errors.New("batch: length is not a multiple of 9")
)

// Operation tags used for error wrapping.
const (
	opSolve    = "Solve"
	opValidate = "Validate"
)

// batchErrorf wraps err with the operation tag.
func batchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
