// SPDX-License-Identifier: MIT
// Package lattice: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// return these sentinels (optionally wrapped with context via
// fmt.Errorf("ctx: %w", ErrX)) and tests match them with errors.Is.
// No operation panics on user-triggered conditions; panics are reserved
// for programmer errors in option constructors.

package lattice

import "errors"

var (
	// ErrNilCell indicates a nil *PrimitiveCell was passed to a transformation.
	ErrNilCell = errors.New("lattice: cell is nil")

	// ErrLatVecShape indicates the lattice-vector matrix is not 3×3.
	ErrLatVecShape = errors.New("lattice: lattice vectors must form a 3x3 matrix")

	// ErrDegenerateLattice indicates the lattice-vector matrix is singular,
	// i.e. the three vectors do not span a volume.
	ErrDegenerateLattice = errors.New("lattice: lattice vectors are degenerate")

	// ErrCellParam indicates invalid lengths or angles passed to
	// GenLatticeVectors (lengths must be positive, angles in (0,180)
	// degrees and mutually consistent).
	ErrCellParam = errors.New("lattice: invalid cell lengths or angles")

	// ErrCoordLen indicates a coordinate, offset or dimension tuple does not
	// have 2 or 3 components (2-component input is completed to 3).
	ErrCoordLen = errors.New("lattice: coordinate must have 2 or 3 components")

	// ErrOrbIndex indicates an orbital index referenced by a hopping term or
	// a removal is out of range.
	ErrOrbIndex = errors.New("lattice: orbital index out of range")

	// ErrOnSiteHopping indicates a hopping from an orbital to itself within
	// the home cell; that coupling is an on-site energy, not a hopping.
	ErrOnSiteHopping = errors.New("lattice: hopping to the same orbital in the home cell")

	// ErrHopNotFound indicates RemoveHopping matched no stored hopping term.
	ErrHopNotFound = errors.New("lattice: hopping term not found")

	// ErrDimValue indicates a supercell dimension component below 1.
	ErrDimValue = errors.New("lattice: supercell dimension must be at least 1")

	// ErrPBCLen indicates the periodic-flag vector is not 3 components long.
	ErrPBCLen = errors.New("lattice: periodic flags must have 3 components")

	// ErrOriginLen indicates the reshape origin is not 3 components long.
	ErrOriginLen = errors.New("lattice: origin must have 3 components")

	// ErrBasisShape indicates the fractional basis matrix is not 3×3.
	ErrBasisShape = errors.New("lattice: fractional basis must be a 3x3 matrix")

	// ErrBasisSingular indicates the fractional basis matrix is not invertible.
	ErrBasisSingular = errors.New("lattice: fractional basis is singular")
)
