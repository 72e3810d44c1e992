// Package decomp implements the 3×3 eigen and singular-value kernels behind
// closest-rotation projection.
//
// The kernels are hand-specialized for 2×2 and 3×3 float32 matrices:
//
//   - Jacobi2:        closed-form Jacobi rotation diagonalizing a symmetric 2×2 matrix.
//   - Jacobi3:        cyclic Jacobi eigensolver for symmetric 3×3 matrices, fixed budget.
//   - HouseholderQR:  two-reflection QR factorization of a 3×3 matrix.
//   - SortColumns:    permutation ordering columns by descending Euclidean norm.
//   - SVD:            U·diag(D)·Vᵗ composed from the kernels above.
//   - ClosestRotation: orthogonal Procrustes projection with reflection correction.
//
// Every kernel is a pure function over stack values; there are no errors to
// report. Numerical degeneracy (near-zero rotation radius, pivot or reflection
// vector) falls back to an identity transform at fixed thresholds.
//
// Accuracy:
//
//	Jacobi3 stops after MaxJacobiSteps pivot eliminations or once the selected
//	pivot drops below PivotTolerance, whichever comes first. Everything built on
//	it (SVD, ClosestRotation) inherits a reconstruction error around 1e-3 rather
//	than machine epsilon. Speed over precision is the intended trade-off.
package decomp
