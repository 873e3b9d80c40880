// File: lattice/vectors_test.go
package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kvantlab/tightbind/lattice"
)

func TestGenLatticeVectors_Cubic(t *testing.T) {
	v, err := lattice.GenLatticeVectors(1, 1, 1, 90, 90, 90)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(cubicVectors(), v, 1e-12))
}

func TestGenLatticeVectors_Hexagonal(t *testing.T) {
	const a = 2.46
	v, err := lattice.GenLatticeVectors(a, a, 10, 90, 90, 60)
	require.NoError(t, err)

	require.InDelta(t, a, v.At(0, 0), 1e-12)
	require.InDelta(t, 0, v.At(0, 1), 1e-12)
	require.InDelta(t, a/2, v.At(1, 0), 1e-12)
	require.InDelta(t, a*math.Sqrt(3)/2, v.At(1, 1), 1e-12)
	require.InDelta(t, 10, v.At(2, 2), 1e-9)
}

func TestGenLatticeVectors_RejectsBadParams(t *testing.T) {
	_, err := lattice.GenLatticeVectors(0, 1, 1, 90, 90, 90)
	require.ErrorIs(t, err, lattice.ErrCellParam)

	_, err = lattice.GenLatticeVectors(1, 1, 1, 90, 90, 180)
	require.ErrorIs(t, err, lattice.ErrCellParam)

	// Angle combination admitting no real c vector.
	_, err = lattice.GenLatticeVectors(1, 1, 1, 170, 10, 90)
	require.ErrorIs(t, err, lattice.ErrCellParam)
}

func TestFracCartRoundTrip(t *testing.T) {
	vectors, err := lattice.GenLatticeVectors(2.46, 2.46, 10, 90, 90, 60)
	require.NoError(t, err)

	frac := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		1.0 / 3.0, 1.0 / 3.0, 0.5,
	})
	cart, err := lattice.FracToCart(vectors, frac)
	require.NoError(t, err)
	back, err := lattice.CartToFrac(vectors, cart)
	require.NoError(t, err)
	require.True(t, mat.EqualApprox(frac, back, 1e-10))
}

func TestFracToCart_Validation(t *testing.T) {
	_, err := lattice.FracToCart(mat.NewDense(2, 2, nil), mat.NewDense(1, 3, nil))
	require.ErrorIs(t, err, lattice.ErrLatVecShape)

	_, err = lattice.FracToCart(cubicVectors(), mat.NewDense(1, 2, nil))
	require.ErrorIs(t, err, lattice.ErrCoordLen)
}

func TestCartToFrac_RejectsDegenerateVectors(t *testing.T) {
	degenerate := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		1, 0, 0,
		0, 0, 1,
	})
	_, err := lattice.CartToFrac(degenerate, mat.NewDense(1, 3, nil))
	require.ErrorIs(t, err, lattice.ErrDegenerateLattice)
}
