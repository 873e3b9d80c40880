// File: lattice/helpers_test.go
package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/kvantlab/tightbind/lattice"
)

const hopT = -2.7 // nearest-neighbor hopping used by the test cells, eV

// cubicVectors returns a unit simple-cubic lattice-vector matrix.
func cubicVectors() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// newTwoBandCell builds the minimal two-band lattice used across the
// transformation tests: two orbitals in a diamond-shaped graphene basis
// with three nearest-neighbor hoppings at hopT.
func newTwoBandCell(t *testing.T) *lattice.PrimitiveCell {
	t.Helper()
	vectors, err := lattice.GenLatticeVectors(2.46, 2.46, 10.0, 90, 90, 60)
	require.NoError(t, err)
	cell, err := lattice.New(vectors)
	require.NoError(t, err)

	_, err = cell.AddOrbital([]float64{0, 0}, 0)
	require.NoError(t, err)
	_, err = cell.AddOrbital([]float64{1.0 / 3.0, 1.0 / 3.0}, 0)
	require.NoError(t, err)

	require.NoError(t, cell.AddHopping([]int{0, 0}, 0, 1, complex(hopT, 0)))
	require.NoError(t, cell.AddHopping([]int{1, 0}, 1, 0, complex(hopT, 0)))
	require.NoError(t, cell.AddHopping([]int{0, 1}, 1, 0, complex(hopT, 0)))
	cell.Sync()
	return cell
}

// newCubicCell builds a cell on the unit cubic lattice with n orbitals
// spread along x and no hoppings.
func newCubicCell(t *testing.T, n int) *lattice.PrimitiveCell {
	t.Helper()
	cell, err := lattice.New(cubicVectors())
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		_, err = cell.AddOrbital([]float64{float64(i) / float64(n), 0, 0}, float64(i))
		require.NoError(t, err)
	}
	return cell
}
