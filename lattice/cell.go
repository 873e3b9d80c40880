package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// New creates an empty PrimitiveCell from a 3×3 lattice-vector matrix;
// row i is the i-th lattice vector, in the unit selected by WithUnit
// (angstrom by default). The input matrix is copied and scaled, never
// retained.
//
// Returns ErrLatVecShape for a nil or non-3×3 matrix and
// ErrDegenerateLattice when the vectors do not span a volume
// (|det| ≤ DefaultDetTol after unit scaling).
//
// Complexity: O(1).
func New(vectors *mat.Dense, opts ...Option) (*PrimitiveCell, error) {
	if vectors == nil {
		return nil, ErrLatVecShape
	}
	if r, c := vectors.Dims(); r != 3 || c != 3 {
		return nil, fmt.Errorf("lattice: got %dx%d: %w", r, c, ErrLatVecShape)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	scaled := mat.NewDense(3, 3, nil)
	scaled.Scale(cfg.unit, vectors)
	if math.Abs(mat.Det(scaled)) <= DefaultDetTol {
		return nil, ErrDegenerateLattice
	}

	return &PrimitiveCell{
		vectors:  scaled,
		Extended: 1,
		dirty:    true,
	}, nil
}

// Vectors returns a copy of the 3×3 lattice-vector matrix in angstrom.
func (pc *PrimitiveCell) Vectors() *mat.Dense {
	return mat.DenseCopyOf(pc.vectors)
}

// NumOrbitals returns the number of orbitals in the cell.
func (pc *PrimitiveCell) NumOrbitals() int { return len(pc.orbitals) }

// NumHoppings returns the number of hopping terms in the cell.
func (pc *PrimitiveCell) NumHoppings() int { return len(pc.hoppings) }

// Orbitals returns a copy of the orbital list; index order is the
// identity used by hopping terms.
func (pc *PrimitiveCell) Orbitals() []Orbital {
	out := make([]Orbital, len(pc.orbitals))
	copy(out, pc.orbitals)
	return out
}

// Hoppings returns a copy of the hopping list.
func (pc *PrimitiveCell) Hoppings() []Hopping {
	out := make([]Hopping, len(pc.hoppings))
	copy(out, pc.hoppings)
	return out
}

// AddOrbital appends an orbital with the given fractional position
// (2 or 3 components; a missing third component defaults to 0) and
// on-site energy in eV, and returns its index.
//
// Returns ErrCoordLen when the position has neither 2 nor 3 components.
//
// Complexity: O(1) amortized.
func (pc *PrimitiveCell) AddOrbital(position []float64, energy float64) (int, error) {
	pos, err := completeCoord(position, 0)
	if err != nil {
		return 0, fmt.Errorf("lattice: AddOrbital: %w", err)
	}
	pc.orbitals = append(pc.orbitals, Orbital{Position: pos, Energy: energy})
	pc.dirty = true
	return len(pc.orbitals) - 1, nil
}

// AddHopping appends a hopping term from orbital i in the home cell to
// orbital j in the cell at the given integer offset (2 or 3 components;
// a missing third component defaults to 0). Duplicate (offset, i, j)
// entries are allowed and kept distinct.
//
// Returns ErrCoordLen for a malformed offset, ErrOrbIndex when i or j is
// not a valid orbital index, and ErrOnSiteHopping when i == j with a
// zero offset (that coupling is the orbital's on-site energy).
//
// Complexity: O(1) amortized.
func (pc *PrimitiveCell) AddHopping(offset []int, i, j int, energy complex128) error {
	off, err := completeOffset(offset, 0)
	if err != nil {
		return fmt.Errorf("lattice: AddHopping: %w", err)
	}
	if i < 0 || i >= len(pc.orbitals) {
		return fmt.Errorf("lattice: AddHopping: orbital %d of %d: %w", i, len(pc.orbitals), ErrOrbIndex)
	}
	if j < 0 || j >= len(pc.orbitals) {
		return fmt.Errorf("lattice: AddHopping: orbital %d of %d: %w", j, len(pc.orbitals), ErrOrbIndex)
	}
	if i == j && off == [3]int{} {
		return fmt.Errorf("lattice: AddHopping: orbital %d: %w", i, ErrOnSiteHopping)
	}
	pc.hoppings = append(pc.hoppings, Hopping{Offset: off, I: i, J: j, Energy: energy})
	pc.dirty = true
	return nil
}

// RemoveOrbital deletes orbital i together with every hopping touching
// it, then renumbers the remaining orbitals to a dense 0..N'-1 index
// space and remaps all surviving hoppings in one pass.
//
// Returns ErrOrbIndex when i is out of range.
//
// Complexity: O(N + H).
func (pc *PrimitiveCell) RemoveOrbital(i int) error {
	if i < 0 || i >= len(pc.orbitals) {
		return fmt.Errorf("lattice: RemoveOrbital: orbital %d of %d: %w", i, len(pc.orbitals), ErrOrbIndex)
	}
	drop := make([]bool, len(pc.orbitals))
	drop[i] = true
	pc.removeOrbitals(drop)
	return nil
}

// RemoveHopping deletes the first hopping term matching (offset, i, j).
// The offset follows the same 2-or-3 component rule as AddHopping.
//
// Returns ErrCoordLen for a malformed offset and ErrHopNotFound when no
// stored hopping matches.
//
// Complexity: O(H).
func (pc *PrimitiveCell) RemoveHopping(offset []int, i, j int) error {
	off, err := completeOffset(offset, 0)
	if err != nil {
		return fmt.Errorf("lattice: RemoveHopping: %w", err)
	}
	for k, hop := range pc.hoppings {
		if hop.Offset == off && hop.I == i && hop.J == j {
			pc.hoppings = append(pc.hoppings[:k], pc.hoppings[k+1:]...)
			pc.dirty = true
			return nil
		}
	}
	return fmt.Errorf("lattice: RemoveHopping (%v, %d, %d): %w", off, i, j, ErrHopNotFound)
}

// removeOrbitals deletes every orbital flagged in drop, all hoppings
// touching a dropped orbital, and renumbers the survivors through one
// explicit old→new index map applied in a single pass. Never
// remove-and-shift iteratively: that pattern reuses stale indices.
func (pc *PrimitiveCell) removeOrbitals(drop []bool) {
	remap := make([]int, len(pc.orbitals))
	next := 0
	for i := range pc.orbitals {
		if drop[i] {
			remap[i] = -1
			continue
		}
		remap[i] = next
		next++
	}

	orbs := pc.orbitals[:0]
	for i, orb := range pc.orbitals {
		if !drop[i] {
			orbs = append(orbs, orb)
		}
	}
	pc.orbitals = orbs

	hops := pc.hoppings[:0]
	for _, hop := range pc.hoppings {
		if remap[hop.I] < 0 || remap[hop.J] < 0 {
			continue
		}
		hop.I, hop.J = remap[hop.I], remap[hop.J]
		hops = append(hops, hop)
	}
	pc.hoppings = hops
	pc.dirty = true
}

// Sync rebuilds the cached derived arrays (positions matrix, on-site
// energy vector, hopping index and energy arrays) from the orbital and
// hopping lists. It is a no-op when no structural edit occurred since
// the last call. Use ForceSync to rebuild unconditionally.
//
// Complexity: O(N + H) when dirty, O(1) otherwise.
func (pc *PrimitiveCell) Sync() {
	if !pc.dirty {
		return
	}

	n := len(pc.orbitals)
	if n == 0 {
		pc.orbPos = &mat.Dense{}
	} else {
		pc.orbPos = mat.NewDense(n, 3, nil)
	}
	pc.orbEng = make([]float64, n)
	for i, orb := range pc.orbitals {
		pc.orbPos.SetRow(i, orb.Position[:])
		pc.orbEng[i] = orb.Energy
	}

	pc.hopInd = make([][5]int, len(pc.hoppings))
	pc.hopEng = make([]complex128, len(pc.hoppings))
	for k, hop := range pc.hoppings {
		pc.hopInd[k] = [5]int{hop.Offset[0], hop.Offset[1], hop.Offset[2], hop.I, hop.J}
		pc.hopEng[k] = hop.Energy
	}

	pc.dirty = false
}

// ForceSync rebuilds the cached arrays even when the cell is clean.
func (pc *PrimitiveCell) ForceSync() {
	pc.dirty = true
	pc.Sync()
}

// Positions returns the N×3 fractional-position matrix, one row per
// orbital. The returned matrix is a live cache view: treat it as
// read-only, valid until the next structural edit.
func (pc *PrimitiveCell) Positions() *mat.Dense {
	pc.Sync()
	return pc.orbPos
}

// Energies returns the on-site energy vector in orbital index order.
// Live cache view; treat as read-only.
func (pc *PrimitiveCell) Energies() []float64 {
	pc.Sync()
	return pc.orbEng
}

// HoppingIndices returns one [na, nb, nc, i, j] row per hopping term.
// Live cache view; treat as read-only.
func (pc *PrimitiveCell) HoppingIndices() [][5]int {
	pc.Sync()
	return pc.hopInd
}

// HoppingEnergies returns the hopping energies in hopping list order.
// Live cache view; treat as read-only.
func (pc *PrimitiveCell) HoppingEnergies() []complex128 {
	pc.Sync()
	return pc.hopEng
}
