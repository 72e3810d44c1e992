// SPDX-License-Identifier: MIT
// Jacobi rotations for symmetric 2×2 and 3×3 matrices.

package decomp

import "github.com/katalvlaran/polar3/smallmat"

const (
	// DegenerateRadius is the squared rotation radius below which Jacobi2
	// returns the identity rotation and leaves the diagonal untouched.
	DegenerateRadius = 1e-14

	// PivotTolerance stops Jacobi3 once the selected off-diagonal pivot is
	// smaller in magnitude.
	PivotTolerance = 1e-14

	// MaxJacobiSteps caps the number of pivot eliminations in Jacobi3.
	// It counts single rotations, not sweeps over all three entries.
	MaxJacobiSteps = 20
)

// jacobi2 diagonalizes [[a, b], [b, d]] with one plane rotation.
//
// Implementation:
//   - Stage 1: x = (a−d)/2, l = √(x²+b²) is half the eigenvalue gap.
//   - Stage 2: (p, q) = (x+l, b) points along the first eigenvector; when its
//     squared length is below DegenerateRadius the matrix is already diagonal
//     (or numerically so) and the identity rotation is returned.
//   - Stage 3: (co, si) = (p, q)/r and the rotated diagonal follows from
//     a' = a·co² + d·si² + 2b·co·si, d' = a·si² + d·co² − 2b·co·si.
//
// Complexity: O(1), two square roots.
func jacobi2(a, b, d float32) (aNext, dNext, co, si float32) {
	var (
		x  = 0.5 * (a - d) // half the diagonal gap
		y  = b             // off-diagonal
		l  = smallmat.Sqrt(x*x + y*y)
		p  = x + l
		q  = y
		r2 = p*p + q*q // squared radius of (p, q)
	)
	if r2 < DegenerateRadius {
		return a, d, 1, 0
	}
	r := smallmat.Sqrt(r2)
	co = p / r
	si = q / r
	co2 := p * p / r2
	si2 := q * q / r2
	cosi := p * q / r2
	aNext = a*co2 + d*si2 + 2*b*cosi
	dNext = a*si2 + d*co2 - 2*b*cosi
	return aNext, dNext, co, si
}

// Jacobi2 diagonalizes the symmetric 2×2 matrix m.
// The off-diagonal entry is read from m[1][0]; m[0][1] is ignored.
//
// It returns rot = (cos, sin) and the diagonal diag such that, with
// R = smallmat.Rotation2(rot), R·diag(diag)·Rᵗ = m and Rᵗ·m·R = diag(diag).
func Jacobi2(m smallmat.Mat2) (rot, diag smallmat.Vec2) {
	a, d, co, si := jacobi2(m[0][0], m[1][0], m[1][1])
	return smallmat.Vec2{co, si}, smallmat.Vec2{a, d}
}

// jacobiStep eliminates the pivot b of the 2×2 block [[a, b], [b, d]] inside a
// symmetric 3×3 matrix. e and f couple the two rotated axes to the third one;
// q0 and q1 are the matching eigenvector columns.
func jacobiStep(a, b, d, e, f *float32, q0, q1 *smallmat.Vec3) {
	var co, si float32
	*a, *d, co, si = jacobi2(*a, *b, *d)
	*b = 0

	e0, f0 := *e, *f
	*e = co*e0 + si*f0
	*f = -si*e0 + co*f0

	c0, c1 := *q0, *q1
	*q0 = c0.Scale(co).Add(c1.Scale(si))
	*q1 = c0.Scale(-si).Add(c1.Scale(co))
}

// Jacobi3 diagonalizes the symmetric 3×3 matrix m with the cyclic Jacobi method.
//
// It returns diag, whose diagonal holds the eigenvalues and whose off-diagonal
// entries are driven toward zero, and the orthogonal eigenvector matrix q with
// q·diag·qᵗ ≈ m. See JacobiSteps for the algorithm.
func Jacobi3(m smallmat.Mat3) (diag, q smallmat.Mat3) {
	diag, q, _ = JacobiSteps(m)
	return diag, q
}

// JacobiSteps is Jacobi3 that also reports how many rotations were applied.
//
// Implementation:
//   - Only six entries of the symmetric input are read and written:
//     00 01 / 11 12 / 20 22. Symmetry is assumed, never re-established
//     between steps.
//   - Stage 1 (per step): take |A01|, |A12|, |A20| and select the largest with
//     choosePivot (ties fall to A01, then A12).
//   - Stage 2: stop when the selected magnitude is below PivotTolerance. Only
//     the selected pivot is checked, so a smaller off-diagonal may remain.
//   - Stage 3: rotate the pivot's 2×2 block with rotatePivot and accumulate the
//     rotation into the two affected columns of Q (initially identity).
//   - Stage 4: after at most MaxJacobiSteps steps, mirror the three tracked
//     off-diagonals into their transposes so diag is a consistent value.
//
// Pivot wiring (a, b, d, e, f, q0, q1):
//
//	A01 → (A00, A01, A11, A20, A12, Q0, Q1)
//	A12 → (A11, A12, A22, A01, A20, Q1, Q2)
//	A20 → (A22, A20, A00, A12, A01, Q2, Q0)
//
// Complexity: O(MaxJacobiSteps), no allocation.
func JacobiSteps(m smallmat.Mat3) (diag, q smallmat.Mat3, steps int) {
	a := m
	q = smallmat.Identity3()

	for steps = 0; steps < MaxJacobiSteps; steps++ {
		p, mag := choosePivot(&a)
		if mag < PivotTolerance {
			break
		}
		rotatePivot(&a, &q, p)
	}

	a[1][0] = a[0][1]
	a[2][1] = a[1][2]
	a[0][2] = a[2][0]
	return a, q, steps
}

// pivot names the tracked off-diagonal entry a Jacobi step eliminates.
type pivot int

const (
	pivot01 pivot = iota
	pivot12
	pivot20
)

// choosePivot returns the off-diagonal with the largest magnitude and that
// magnitude. Ties go to A01, then A12.
func choosePivot(a *smallmat.Mat3) (pivot, float32) {
	a01 := smallmat.Abs(a[0][1])
	a12 := smallmat.Abs(a[1][2])
	a20 := smallmat.Abs(a[2][0])

	if a01 < a12 {
		if a12 < a20 {
			return pivot20, a20
		}
		return pivot12, a12
	}
	if a01 < a20 {
		return pivot20, a20
	}
	return pivot01, a01
}

// rotatePivot applies one Jacobi rotation that zeroes p.
func rotatePivot(a, q *smallmat.Mat3, p pivot) {
	switch p {
	case pivot01:
		jacobiStep(&a[0][0], &a[0][1], &a[1][1], &a[2][0], &a[1][2], &q[0], &q[1])
	case pivot12:
		jacobiStep(&a[1][1], &a[1][2], &a[2][2], &a[0][1], &a[2][0], &q[1], &q[2])
	case pivot20:
		jacobiStep(&a[2][2], &a[2][0], &a[0][0], &a[1][2], &a[0][1], &q[2], &q[0])
	}
}
