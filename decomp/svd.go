// SPDX-License-Identifier: MIT
// Singular value decomposition of 3×3 matrices.

package decomp

import "github.com/katalvlaran/polar3/smallmat"

// SVD decomposes a as u·diag(d)·vt with u and vt orthogonal.
//
// Implementation:
//   - Stage 1: eigendecompose the symmetric AᵗA = P·W·Pᵗ with Jacobi3.
//   - Stage 2: B = A·P has mutually orthogonal columns whose norms are the
//     singular values.
//   - Stage 3: C = B·S with S from SortColumns, so column norms descend.
//   - Stage 4: C = Q·R with HouseholderQR; R comes out (nearly) diagonal
//     because the columns of C are already orthogonal.
//   - Stage 5: u = Q, d = diag(R), vt = (P·S)ᵗ, giving A = Q·R·(P·S)ᵗ.
//   - Stage 6: a skipped reflection in HouseholderQR can leave a negative
//     diagonal entry; its sign moves into the matching column of u.
//
// Behavior highlights:
//   - d[0] ≥ d[1] ≥ d[2] ≥ 0 up to the accuracy below.
//   - Rank-deficient inputs are fine: the trailing singular values go to ~0
//     and the degenerate-case fallbacks keep u and vt orthogonal.
//
// Accuracy:
//   - Reconstruction error is around 1e-3, bounded by Jacobi3's fixed budget.
//
// Complexity: O(1).
func SVD(a smallmat.Mat3) (u, vt smallmat.Mat3, d smallmat.Vec3) {
	// Stage 1.
	_, p := Jacobi3(a.T().Mul(a))

	// Stage 2, 3.
	s, c := SortColumns(a.Mul(p))

	// Stage 4.
	q, r := HouseholderQR(c)

	// Stage 5.
	u, vt, d = q, p.Permute(s).T(), r.Diagonal()

	// Stage 6.
	for i := range d {
		if d[i] < 0 {
			d[i] = -d[i]
			u[i] = u[i].Scale(-1)
		}
	}
	return u, vt, d
}
