package decomp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/polar3/decomp"
	"github.com/katalvlaran/polar3/smallmat"
)

// columnsWithNorms builds a matrix whose i'th column has Euclidean norm n[i].
func columnsWithNorms(n0, n1, n2 float32) smallmat.Mat3 {
	return smallmat.Mat3{{n0, 0, 0}, {0, n1, 0}, {0, 0, n2}}
}

// TestSortColumns_AllOrders covers each of the six strict orders.
func TestSortColumns_AllOrders(t *testing.T) {
	for _, tc := range []struct {
		norms [3]float32
		want  smallmat.Perm3
	}{
		{[3]float32{3, 2, 1}, smallmat.Perm3{0, 1, 2}},
		{[3]float32{3, 1, 2}, smallmat.Perm3{0, 2, 1}},
		{[3]float32{2, 3, 1}, smallmat.Perm3{1, 0, 2}},
		{[3]float32{1, 3, 2}, smallmat.Perm3{1, 2, 0}},
		{[3]float32{2, 1, 3}, smallmat.Perm3{2, 0, 1}},
		{[3]float32{1, 2, 3}, smallmat.Perm3{2, 1, 0}},
	} {
		t.Run(fmt.Sprint(tc.norms), func(t *testing.T) {
			b := columnsWithNorms(tc.norms[0], tc.norms[1], tc.norms[2])
			s, c := decomp.SortColumns(b)

			assert.Equal(t, tc.want, s)
			assert.True(t, s.Valid())
			assert.Equal(t, b.Permute(s), c)
			assert.Equal(t, b.Mul(s.Matrix()), c)
			assert.GreaterOrEqual(t, c[0].Length(), c[1].Length())
			assert.GreaterOrEqual(t, c[1].Length(), c[2].Length())
		})
	}
}

// TestSortColumns_Ties keeps the original relative order of equal norms.
func TestSortColumns_Ties(t *testing.T) {
	for _, tc := range []struct {
		norms [3]float32
		want  smallmat.Perm3
	}{
		{[3]float32{1, 1, 1}, smallmat.Perm3{0, 1, 2}},
		{[3]float32{2, 2, 1}, smallmat.Perm3{0, 1, 2}},
		{[3]float32{1, 2, 2}, smallmat.Perm3{1, 2, 0}},
		{[3]float32{2, 1, 2}, smallmat.Perm3{0, 2, 1}},
		{[3]float32{0, 0, 0}, smallmat.Perm3{0, 1, 2}},
	} {
		t.Run(fmt.Sprint(tc.norms), func(t *testing.T) {
			s, _ := decomp.SortColumns(columnsWithNorms(tc.norms[0], tc.norms[1], tc.norms[2]))
			assert.Equal(t, tc.want, s)
		})
	}
}

// TestSortColumns_UsesEuclideanNorm orders by full column length, not by the
// largest component. Column norms are 2, ≈2.12 and 1.9.
func TestSortColumns_UsesEuclideanNorm(t *testing.T) {
	b := smallmat.NewMat3(
		2, 0, 0,
		1.5, 1.5, 0,
		0, 0, -1.9)
	s, _ := decomp.SortColumns(b)
	assert.Equal(t, smallmat.Perm3{1, 0, 2}, s)
}
