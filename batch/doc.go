// Package batch applies the closest-rotation projection to whole buffers of
// 3×3 matrix pairs.
//
// A batch is three []float32 buffers of equal length, each a sequence of
// column-major 3×3 blocks (BlockSize values per block). Solve writes
//
//	result[k] = decomp.ClosestRotation(u1[k], u2[k])
//
// for every block k. Preconditions are checked before any block is touched,
// so a rejected call leaves result unmodified.
//
// Concurrency:
//   - Blocks are independent. Solve splits the block range into contiguous,
//     disjoint ranges and runs them on an errgroup; the output buffer is only
//     ever written in disjoint ranges, so no locking is involved.
//   - Small batches (fewer than MinBlocksPerWorker blocks per worker) and
//     WithWorkers(1) run inline on the calling goroutine.
//
// Observability:
//   - WithLogger attaches a zerolog.Logger (default: disabled).
//   - WithMetrics attaches Prometheus collectors created by NewMetrics.
package batch
