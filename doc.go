// Package polar3 is a batched 3×3 closest-rotation engine: given pairs of
// small shapes, it finds the proper rotation that best maps one onto the
// other, for thousands of pairs at once.
//
// What is inside?
//
//	A float32, allocation-free pipeline of fixed-size kernels:
//		• Jacobi2 / Jacobi3: symmetric 2×2 and 3×3 eigensolvers (cyclic Jacobi, fixed budget)
//		• HouseholderQR: two-reflection QR for 3×3 matrices
//		• SortColumns: column ordering by Euclidean norm
//		• SVD: AᵗA eigendecomposition, sorting and QR composed into U·diag(D)·Vᵗ
//		• Procrustes / ClosestRotation: R = U·diag(1, 1, det U·det Vᵗ)·Vᵗ
//		• batch.Solve: the projection applied to whole []float32 buffers in parallel
//
// Accuracy is that of float32 with a fixed iteration budget: orthogonality
// holds to about 1e-5 and reconstruction to about 1e-3.
//
// Packages:
//
//	smallmat/   Vec2, Vec3, Mat2, Mat3, Perm3 value types (column-major)
//	decomp/     the kernels above
//	batch/      batch driver, options, Prometheus metrics
//	batchfile/  binary batch container (xxh3 checksum, zstd/lz4)
//	reference/  float64 gonum implementation for cross-checks
//	pcg/        seedable PCG32 generator for tests and synthetic data
//	config/     YAML configuration of the polar3 command
//	cmd/polar3/ gen, solve, check and svd commands
//
// Quick example:
//
//	r := decomp.ClosestRotation(rest, deformed) // r·rest ≈ deformed
//
//	go install github.com/katalvlaran/polar3/cmd/polar3@latest
package polar3
