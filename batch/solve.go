// SPDX-License-Identifier: MIT
// Package batch: the batch driver.

package batch

import (
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polar3/decomp"
	"github.com/katalvlaran/polar3/smallmat"
)

// BlockSize is the number of float32 values in one column-major 3×3 block.
const BlockSize = 9

// Validate reports whether u1, u2 and result form a well-shaped batch:
// equal lengths (ErrLengthMismatch) that are a multiple of BlockSize
// (ErrNotBlockAligned). An empty batch is valid.
func Validate(u1, u2, result []float32) error {
	if err := validate(u1, u2, result); err != nil {
		return batchErrorf(opValidate, err)
	}
	return nil
}

func validate(u1, u2, result []float32) error {
	if len(u1) != len(u2) || len(u1) != len(result) {
		return ErrLengthMismatch
	}
	if len(u1)%BlockSize != 0 {
		return ErrNotBlockAligned
	}
	return nil
}

// Solve writes into each block of result the proper rotation that best aligns
// the matching block of u1 onto the matching block of u2.
//
// Implementation:
//   - Stage 1: validate lengths; on failure return before touching result.
//   - Stage 2: pick the worker count (see WithWorkers, WithMinBlocksPerWorker).
//   - Stage 3: one worker ⇒ run inline; otherwise split [0, blocks) into
//     contiguous ranges (blockRanges) and run one errgroup goroutine per range.
//   - Stage 4: record metrics and a debug log line.
//
// Errors:
//   - ErrLengthMismatch, ErrNotBlockAligned, wrapped as "Solve: %w".
//
// Complexity: O(blocks) time, O(workers) extra space.
func Solve(u1, u2, result []float32, opts ...Option) error {
	o := gatherOptions(opts...)
	start := time.Now()

	// Stage 1.
	if err := validate(u1, u2, result); err != nil {
		o.metrics.reject()
		o.logger.Debug().Err(err).Int("u1", len(u1)).Int("u2", len(u2)).Int("result", len(result)).Msg("batch rejected")
		return batchErrorf(opSolve, err)
	}
	blocks := len(result) / BlockSize

	// Stage 2.
	workers := o.workersFor(blocks)

	// Stage 3.
	var reflections int
	if workers == 1 {
		reflections = solveRange(u1, u2, result, 0, blocks)
	} else {
		ranges := blockRanges(blocks, workers)
		counts := make([]int, len(ranges))

		var g errgroup.Group
		for i, r := range ranges {
			g.Go(func() error {
				counts[i] = solveRange(u1, u2, result, r.lo, r.hi)
				return nil
			})
		}
		_ = g.Wait() // join only: solveRange cannot fail
		for _, c := range counts {
			reflections += c
		}
	}

	// Stage 4.
	elapsed := time.Since(start)
	o.metrics.observe(blocks, reflections, elapsed)
	o.logger.Debug().
		Int("blocks", blocks).
		Int("workers", workers).
		Int("reflections", reflections).
		Dur("elapsed", elapsed).
		Msg("batch solved")

	return nil
}

// blockRange is the half-open block interval [lo, hi) of one worker.
type blockRange struct{ lo, hi int }

// blockRanges splits [0, blocks) into at most workers contiguous, non-empty
// ranges of ceil(blocks/workers) blocks; the last one may be shorter.
func blockRanges(blocks, workers int) []blockRange {
	chunk := (blocks + workers - 1) / workers
	ranges := make([]blockRange, 0, workers)
	for lo := 0; lo < blocks; lo += chunk {
		ranges = append(ranges, blockRange{lo, min(lo+chunk, blocks)})
	}
	return ranges
}

// solveRange projects blocks [lo, hi) and returns how many of them needed
// the reflection correction.
func solveRange(u1, u2, result []float32, lo, hi int) int {
	var reflections int
	for k := lo; k < hi; k++ {
		off := k * BlockSize
		r, flipped := decomp.Procrustes(smallmat.Load(u1[off:]), smallmat.Load(u2[off:]))
		r.Store(result[off:])
		if flipped {
			reflections++
		}
	}
	return reflections
}
