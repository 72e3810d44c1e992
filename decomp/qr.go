// SPDX-License-Identifier: MIT
// Householder QR for 3×3 matrices.

package decomp

import "github.com/katalvlaran/polar3/smallmat"

// ReflectionTolerance is the magnitude below which sub-diagonal entries are
// treated as already eliminated, so the matching Householder step is skipped.
const ReflectionTolerance = 1e-7

// HouseholderQR factors a into an orthogonal q and an upper-triangular r with a = q·r.
//
// Implementation:
//   - Stage 1: R ← a, Qᵗ ← I.
//   - Stage 2 (column 0): unless both |R[0][1]| and |R[0][2]| are below
//     ReflectionTolerance, take h = normalize(R[0] − (‖R[0]‖, 0, 0)) and apply
//     H = I − 2·h·hᵗ from the left: R ← H·R, Qᵗ ← H·Qᵗ. H maps column 0 onto
//     (‖R[0]‖, 0, 0).
//   - Stage 3 (column 1, rows 1..2): unless |R[1][2]| is below
//     ReflectionTolerance, repeat with the 2-vector v = (R[1][1], R[1][2]) and
//     a reflection acting on rows 1 and 2 only.
//   - Stage 4: q = (Qᵗ)ᵗ.
//
// Behavior highlights:
//   - The skip tests avoid normalizing a near-zero reflection vector; a
//     skipped step contributes the identity.
//   - Diagonal entries produced by a reflection are non-negative. A skipped
//     step keeps whatever sign the pivot already had, and r[2][2] is never
//     reflected, so it may be negative.
//
// Complexity: O(1), two 3×3 products per reflection.
func HouseholderQR(a smallmat.Mat3) (q, r smallmat.Mat3) {
	qt := smallmat.Identity3()
	r = a

	// Stage 2: first column.
	if !(smallmat.Abs(r[0][1]) < ReflectionTolerance && smallmat.Abs(r[0][2]) < ReflectionTolerance) {
		l := r[0].Length()
		h := r[0].Sub(smallmat.Vec3{l, 0, 0}).Normalize()
		hh := smallmat.Identity3().Sub(smallmat.Outer(h, h).Scale(2)) // I − 2hhᵗ
		r = hh.Mul(r)
		qt = hh.Mul(qt)
	}

	// Stage 3: second column, trailing 2×2 block.
	if !(smallmat.Abs(r[1][2]) < ReflectionTolerance) {
		v := smallmat.Vec2{r[1][1], r[1][2]}
		l := v.Length()
		h := v.Sub(smallmat.Vec2{l, 0}).Normalize()
		hh := smallmat.NewMat3(
			1, 0, 0,
			0, 1-2*h[0]*h[0], -2*h[0]*h[1],
			0, -2*h[0]*h[1], 1-2*h[1]*h[1],
		)
		r = hh.Mul(r)
		qt = hh.Mul(qt)
	}

	return qt.T(), r
}
