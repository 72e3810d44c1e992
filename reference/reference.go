// Package reference computes the same decompositions as decomp in float64
// with gonum. It is slower and allocates, and exists to cross-check the
// float32 kernels in tests and in the polar3 check command.
package reference

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polar3/smallmat"
)

// ErrFactorize is returned when gonum fails to factorize the input.
var ErrFactorize = errors.New("reference: SVD factorization failed")

// Dense converts a column-major Mat3 into a 3×3 gonum matrix.
func Dense(m smallmat.Mat3) *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			d.Set(r, c, float64(m[c][r]))
		}
	}
	return d
}

// Mat3 converts the top-left 3×3 block of d back to float32.
func Mat3(d mat.Matrix) smallmat.Mat3 {
	var m smallmat.Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			m[c][r] = float32(d.At(r, c))
		}
	}
	return m
}

// SVD factorizes m as u·diag(values)·vᵗ in float64. values are descending.
func SVD(m smallmat.Mat3) (u, v *mat.Dense, values []float64, err error) {
	return factorize(Dense(m))
}

func factorize(a mat.Matrix) (u, v *mat.Dense, values []float64, err error) {
	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDFull); !ok {
		return nil, nil, nil, ErrFactorize
	}
	u, v = new(mat.Dense), new(mat.Dense)
	svd.UTo(u)
	svd.VTo(v)
	return u, v, svd.Values(nil), nil
}

// SingularValues returns the singular values of m in descending order.
func SingularValues(m smallmat.Mat3) ([]float64, error) {
	_, _, values, err := SVD(m)
	return values, err
}

// ClosestRotation returns the proper rotation r minimizing ‖r·a − b‖ using a
// float64 SVD of b·aᵗ and the det(U)·det(V) sign correction.
func ClosestRotation(a, b smallmat.Mat3) (smallmat.Mat3, error) {
	var m mat.Dense
	m.Mul(Dense(b), Dense(a).T())

	u, v, _, err := factorize(&m)
	if err != nil {
		return smallmat.Mat3{}, err
	}

	e := mat.NewDiagDense(3, []float64{1, 1, mat.Det(u) * mat.Det(v)})
	var r mat.Dense
	r.Product(u, e, v.T())
	return Mat3(&r), nil
}
