// Package lattice: domain types for the primitive-cell model.
// This file declares Orbital, Hopping and PrimitiveCell together with the
// length-unit constants. Errors live in errors.go and functional options
// in options.go per the package conventions.
package lattice

import "gonum.org/v1/gonum/mat"

// Length units accepted by WithUnit. Lattice vectors are stored
// internally in angstrom; WithUnit(Nanometer) scales nanometer input
// accordingly at construction time.
const (
	// Angstrom is the internal length unit (scale factor 1).
	Angstrom = 1.0
	// Nanometer scales input lattice vectors by 10.
	Nanometer = 10.0
)

// Orbital is a labeled site of the cell: a fractional position in the
// lattice basis and an on-site energy in eV.
type Orbital struct {
	// Position holds fractional coordinates, each component typically in [0,1).
	Position [3]float64
	// Energy is the on-site energy in eV.
	Energy float64
}

// Hopping is a directed coupling from orbital I in the home cell to
// orbital J in the cell translated by Offset[0]·a + Offset[1]·b + Offset[2]·c.
// Multiple hoppings with identical (Offset, I, J) may coexist; the model
// never deduplicates.
type Hopping struct {
	// Offset identifies the periodic image holding the destination orbital.
	Offset [3]int
	// I and J index the source and destination orbitals.
	I, J int
	// Energy is the hopping integral in eV.
	Energy complex128
}

// PrimitiveCell is a periodic lattice model built incrementally from
// lattice vectors, orbitals and hopping terms.
//
// Structural edits (adding or removing orbitals or hoppings) invalidate
// the cached derived arrays; Sync rebuilds them and is cheap when the
// cell is unchanged. Accessors sync lazily, so callers never observe a
// stale cache. A PrimitiveCell is not safe for concurrent mutation.
type PrimitiveCell struct {
	// vectors is the 3×3 lattice-vector matrix in angstrom; row i is the
	// i-th lattice vector. Always invertible.
	vectors *mat.Dense

	orbitals []Orbital
	hoppings []Hopping

	// Extended tracks how many primitive cells this instance represents.
	// Extend multiplies it by the replication factor; it is informational
	// and never enters geometry.
	Extended int

	// dirty marks the caches below as stale after a structural edit.
	dirty  bool
	orbPos *mat.Dense
	orbEng []float64
	hopInd [][5]int
	hopEng []complex128
}

// Report summarizes a Reshape run for diagnostics and testing.
// DroppedHoppings counts destinations with no kept orbital within the
// position tolerance; nonzero values usually mean the searched
// translation range or the tolerance needs adjustment.
type Report struct {
	// KeptOrbitals is the number of orbitals placed in the reshaped cell.
	KeptOrbitals int
	// KeptHoppings is the number of hopping terms re-derived successfully.
	KeptHoppings int
	// DroppedHoppings counts silently discarded hopping destinations.
	DroppedHoppings int
}
