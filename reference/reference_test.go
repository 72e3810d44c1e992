package reference_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polar3/decomp"
	"github.com/katalvlaran/polar3/pcg"
	"github.com/katalvlaran/polar3/reference"
	"github.com/katalvlaran/polar3/smallmat"
)

func TestDense_RoundTrip(t *testing.T) {
	m := smallmat.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	d := reference.Dense(m)

	assert.Equal(t, 4.0, d.At(0, 1), "row 0, column 1")
	assert.Equal(t, 3.0, d.At(2, 0), "row 2, column 0")
	assert.Equal(t, m, reference.Mat3(d))
}

func TestSingularValues(t *testing.T) {
	values, err := reference.SingularValues(smallmat.Diag3(smallmat.Vec3{-2, 5, 1}))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 2, 1}, values, 1e-12)
}

// TestClosestRotation_Reflection mirrors the smallest axis of a shape with
// distinct extents; the best proper rotation is the identity.
func TestClosestRotation_Reflection(t *testing.T) {
	a := smallmat.Diag3(smallmat.Vec3{3, 2, 1})
	r, err := reference.ClosestRotation(a, smallmat.Diag3(smallmat.Vec3{3, 2, -1}))
	require.NoError(t, err)
	assert.True(t, r.CloseTo(smallmat.Identity3(), 1e-6), "R = %v", r)
	assert.InDelta(t, 1, mat.Det(reference.Dense(r)), 1e-6)
}

// TestSVD_AgreesWithDecomp compares float32 singular values against gonum.
// The float32 reconstruction error bounds the gap.
func TestSVD_AgreesWithDecomp(t *testing.T) {
	rng := pcg.NewDefault()
	for i := 0; i < 256; i++ {
		a := rng.Mat3()
		want, err := reference.SingularValues(a)
		require.NoError(t, err)

		_, _, d := decomp.SVD(a)
		for k := range d {
			require.InDelta(t, want[k], float64(d[k]), 2e-3, "sample %d, value %d", i, k)
		}
	}
}

// TestClosestRotation_AgreesWithDecomp recovers known rotations with both
// implementations and compares the results.
func TestClosestRotation_AgreesWithDecomp(t *testing.T) {
	rng := pcg.New(7, 11)
	signed := func() smallmat.Mat3 {
		var m smallmat.Mat3
		for c := range m {
			for r := range m[c] {
				m[c][r] = rng.Range(-1, 1)
			}
		}
		return m
	}

	var worst float64
	for i := 0; i < 256; i++ {
		rt := decomp.ClosestRotation(smallmat.Identity3(), signed())
		a := signed()
		b := rt.Mul(a)

		want, err := reference.ClosestRotation(a, b)
		require.NoError(t, err)
		got := decomp.ClosestRotation(a, b)
		worst = math.Max(worst, float64(got.MaxAbsDiff(want)))
	}
	assert.Less(t, worst, 1e-3)
}
