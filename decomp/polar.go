// SPDX-License-Identifier: MIT
// Closest-rotation (orthogonal Procrustes) projection.

package decomp

import "github.com/katalvlaran/polar3/smallmat"

// Procrustes returns the rotation r minimizing ‖r·a − b‖ in the Frobenius norm,
// where a and b are paired 3×3 shape matrices (for example edge vectors of a
// rest and a deformed triangle as columns).
//
// Implementation:
//   - Stage 1: M = b·aᵗ, the cross-covariance of the correspondence.
//   - Stage 2: M = U·diag(D)·Vᵗ via SVD.
//   - Stage 3: E = diag(1, 1, det(U)·det(Vᵗ)); r = U·E·Vᵗ.
//
// The E correction turns the naive U·Vᵗ into a proper rotation whenever it
// would be a reflection, which happens for coplanar or mirrored inputs.
// flipped reports whether that correction was applied.
//
// Complexity: O(1).
func Procrustes(a, b smallmat.Mat3) (r smallmat.Mat3, flipped bool) {
	u, vt, _ := SVD(b.Mul(a.T()))

	sign := u.Det() * vt.Det()
	e := smallmat.Diag3(smallmat.Vec3{1, 1, sign})
	return u.Mul(e).Mul(vt), sign < 0
}

// ClosestRotation returns the proper rotation best aligning a onto b.
// See Procrustes.
func ClosestRotation(a, b smallmat.Mat3) smallmat.Mat3 {
	r, _ := Procrustes(a, b)
	return r
}
