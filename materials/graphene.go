package materials

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/kvantlab/tightbind/lattice"
)

// Graphene constants: lattice parameter and nearest-neighbor hopping.
const (
	// GrapheneA is the graphene lattice constant in angstrom.
	GrapheneA = 2.46
	// GrapheneC is the vacuum spacing along the c axis in angstrom.
	GrapheneC = 10.0
	// GrapheneT is the nearest-neighbor hopping energy in eV.
	GrapheneT = -2.7
)

// GrapheneDiamond returns the two-orbital graphene primitive cell in
// the diamond-shaped basis: lattice vectors of length GrapheneA at 60°,
// orbitals at (0,0) and (1/3,1/3), and the three nearest-neighbor
// hoppings at GrapheneT.
func GrapheneDiamond() (*lattice.PrimitiveCell, error) {
	vectors, err := lattice.GenLatticeVectors(GrapheneA, GrapheneA, GrapheneC, 90, 90, 60)
	if err != nil {
		return nil, fmt.Errorf("materials: graphene diamond: %w", err)
	}
	cell, err := lattice.New(vectors)
	if err != nil {
		return nil, fmt.Errorf("materials: graphene diamond: %w", err)
	}
	if err := addGrapheneDiamondSites(cell); err != nil {
		return nil, err
	}
	cell.Sync()
	return cell, nil
}

func addGrapheneDiamondSites(cell *lattice.PrimitiveCell) error {
	for _, pos := range [][]float64{{0, 0}, {1.0 / 3.0, 1.0 / 3.0}} {
		if _, err := cell.AddOrbital(pos, 0); err != nil {
			return fmt.Errorf("materials: graphene diamond: %w", err)
		}
	}
	hops := []struct {
		offset []int
		i, j   int
	}{
		{[]int{0, 0}, 0, 1},
		{[]int{1, 0}, 1, 0},
		{[]int{0, 1}, 1, 0},
	}
	for _, h := range hops {
		if err := cell.AddHopping(h.offset, h.i, h.j, complex(GrapheneT, 0)); err != nil {
			return fmt.Errorf("materials: graphene diamond: %w", err)
		}
	}
	return nil
}

// GrapheneRect returns the four-orbital graphene primitive cell in the
// rectangular basis, built from scratch: an orthorhombic cell of
// dimensions √3·d × 3·d with d the carbon-carbon bond length.
func GrapheneRect() (*lattice.PrimitiveCell, error) {
	bond := math.Sqrt(3) / 3 * GrapheneA
	vectors, err := lattice.GenLatticeVectors(math.Sqrt(3)*bond, 3*bond, GrapheneC, 90, 90, 90)
	if err != nil {
		return nil, fmt.Errorf("materials: graphene rect: %w", err)
	}
	cell, err := lattice.New(vectors)
	if err != nil {
		return nil, fmt.Errorf("materials: graphene rect: %w", err)
	}

	positions := [][]float64{
		{0, 0},
		{0, 2.0 / 3.0},
		{1.0 / 2.0, 1.0 / 6.0},
		{1.0 / 2.0, 1.0 / 2.0},
	}
	for _, pos := range positions {
		if _, err := cell.AddOrbital(pos, 0); err != nil {
			return nil, fmt.Errorf("materials: graphene rect: %w", err)
		}
	}

	hops := []struct {
		offset []int
		i, j   int
	}{
		{[]int{0, 0}, 0, 2},
		{[]int{0, 0}, 2, 3},
		{[]int{0, 0}, 3, 1},
		{[]int{0, 1}, 1, 0},
		{[]int{1, 0}, 3, 1},
		{[]int{1, 0}, 2, 0},
	}
	for _, h := range hops {
		if err := cell.AddHopping(h.offset, h.i, h.j, complex(GrapheneT, 0)); err != nil {
			return nil, fmt.Errorf("materials: graphene rect: %w", err)
		}
	}
	cell.Sync()
	return cell, nil
}

// GrapheneRectReshaped derives the rectangular graphene cell by
// reshaping the diamond cell with the fractional basis
// [[1,0,0],[-1,2,0],[0,0,1]], doubling the unit-cell area. The returned
// report carries the reshaper's diagnostics; DroppedHoppings is zero
// for this basis.
func GrapheneRectReshaped() (*lattice.PrimitiveCell, lattice.Report, error) {
	diamond, err := GrapheneDiamond()
	if err != nil {
		return nil, lattice.Report{}, err
	}
	basis := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		-1, 2, 0,
		0, 0, 1,
	})
	cell, rep, err := lattice.Reshape(diamond, basis)
	if err != nil {
		return nil, rep, fmt.Errorf("materials: graphene rect reshaped: %w", err)
	}
	return cell, rep, nil
}
