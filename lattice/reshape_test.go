// File: lattice/reshape_test.go
package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/kvantlab/tightbind/lattice"
)

// ReshapeSuite exercises arbitrary-basis reshaping.
type ReshapeSuite struct {
	suite.Suite
}

func identityBasis() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// doubledBasis doubles the unit-cell area: the rectangular graphene
// basis expressed in the diamond cell's lattice vectors.
func doubledBasis() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		-1, 2, 0,
		0, 0, 1,
	})
}

// TestIdentity verifies that reshaping with the identity basis keeps
// orbital count, hopping count, lattice vectors and positions.
func (s *ReshapeSuite) TestIdentity() {
	cell := newTwoBandCell(s.T())
	res, rep, err := lattice.Reshape(cell, identityBasis())
	require.NoError(s.T(), err)

	require.Equal(s.T(), cell.NumOrbitals(), res.NumOrbitals())
	require.Equal(s.T(), cell.NumHoppings(), res.NumHoppings())
	require.Zero(s.T(), rep.DroppedHoppings)
	require.True(s.T(), mat.EqualApprox(cell.Vectors(), res.Vectors(), 1e-12))

	// Positions are restored after the boundary nudge is removed.
	var positions [][3]float64
	for _, orb := range res.Orbitals() {
		positions = append(positions, orb.Position)
	}
	for _, want := range [][3]float64{{0, 0, 0}, {1.0 / 3.0, 1.0 / 3.0, 0}} {
		found := false
		for _, got := range positions {
			if math.Abs(got[0]-want[0]) < 1e-9 &&
				math.Abs(got[1]-want[1]) < 1e-9 &&
				math.Abs(got[2]-want[2]) < 1e-9 {
				found = true
				break
			}
		}
		require.True(s.T(), found, "missing orbital near %v", want)
	}
}

// TestDoubledCell reshapes the diamond graphene cell into the
// rectangular basis: 4 orbitals, and the total hopping-energy magnitude
// doubles with the unit-cell area.
func (s *ReshapeSuite) TestDoubledCell() {
	cell := newTwoBandCell(s.T())
	res, rep, err := lattice.Reshape(cell, doubledBasis())
	require.NoError(s.T(), err)

	require.Equal(s.T(), 4, res.NumOrbitals())
	require.Zero(s.T(), rep.DroppedHoppings)
	require.Equal(s.T(), res.NumHoppings(), rep.KeptHoppings)

	var sum, orig float64
	for _, hop := range res.Hoppings() {
		sum += cmplxAbs(hop.Energy)
	}
	for _, hop := range cell.Hoppings() {
		orig += cmplxAbs(hop.Energy)
	}
	require.InDelta(s.T(), 2*orig, sum, 1e-9)
}

// TestDoubledCellVectors verifies the reshaped lattice vectors equal
// basisFrac · original vectors, which for graphene is the rectangular
// cell built from lengths √3·d and 3·d.
func (s *ReshapeSuite) TestDoubledCellVectors() {
	cell := newTwoBandCell(s.T())
	res, _, err := lattice.Reshape(cell, doubledBasis())
	require.NoError(s.T(), err)

	bond := math.Sqrt(3) / 3 * 2.46
	want, err := lattice.GenLatticeVectors(math.Sqrt(3)*bond, 3*bond, 10, 90, 90, 90)
	require.NoError(s.T(), err)
	require.True(s.T(), mat.EqualApprox(want, res.Vectors(), 1e-8))
}

// TestOriginShift verifies that a shifted origin keeps the orbital
// census intact for a periodic lattice.
func (s *ReshapeSuite) TestOriginShift() {
	cell := newTwoBandCell(s.T())
	res, rep, err := lattice.Reshape(cell, identityBasis(), lattice.WithOrigin(0.5, 0, 0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), cell.NumOrbitals(), res.NumOrbitals())
	require.Equal(s.T(), cell.NumHoppings(), res.NumHoppings())
	require.Zero(s.T(), rep.DroppedHoppings)
}

// TestTightTolerance verifies the silent-drop diagnostic: with an
// absurdly small search tolerance destinations stop matching and are
// counted, not errored.
func (s *ReshapeSuite) TestTightTolerance() {
	cell := newTwoBandCell(s.T())
	res, rep, err := lattice.Reshape(cell, identityBasis(), lattice.WithPosTol(1e-300))
	require.NoError(s.T(), err)
	require.Equal(s.T(), rep.KeptHoppings+rep.DroppedHoppings, cell.NumHoppings())
	require.Equal(s.T(), res.NumHoppings(), rep.KeptHoppings)
}

// TestValidation verifies the eager argument checks fire before any
// geometric work.
func (s *ReshapeSuite) TestValidation() {
	cell := newTwoBandCell(s.T())

	_, _, err := lattice.Reshape(nil, identityBasis())
	require.ErrorIs(s.T(), err, lattice.ErrNilCell)

	_, _, err = lattice.Reshape(cell, nil)
	require.ErrorIs(s.T(), err, lattice.ErrBasisShape)

	_, _, err = lattice.Reshape(cell, mat.NewDense(2, 2, nil))
	require.ErrorIs(s.T(), err, lattice.ErrBasisShape)

	singular := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		1, 0, 0,
		0, 0, 1,
	})
	_, _, err = lattice.Reshape(cell, singular)
	require.ErrorIs(s.T(), err, lattice.ErrBasisSingular)

	_, _, err = lattice.Reshape(cell, identityBasis(), lattice.WithOrigin(0.5, 0.5))
	require.ErrorIs(s.T(), err, lattice.ErrOriginLen)
}

// TestSourceUntouched verifies that reshaping never mutates its input.
func (s *ReshapeSuite) TestSourceUntouched() {
	cell := newTwoBandCell(s.T())
	_, _, err := lattice.Reshape(cell, doubledBasis())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, cell.NumOrbitals())
	require.Equal(s.T(), 3, cell.NumHoppings())
}

func TestReshapeSuite(t *testing.T) {
	suite.Run(t, new(ReshapeSuite))
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
