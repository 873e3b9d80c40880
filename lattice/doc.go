// Package lattice models a periodic primitive cell and the geometric
// transformations used to turn it into larger or reshaped lattices.
//
// What:
//
//   - PrimitiveCell holds 3×3 lattice vectors, an ordered orbital list
//     (fractional position + on-site energy) and a hopping list (integer
//     cell-offset triple, two orbital indices, complex energy).
//   - Extend replicates a cell into an (na,nb,nc) supercell, re-deriving
//     hoppings with exact periodic wraparound.
//   - Reshape re-expresses a cell in an arbitrary fractional basis,
//     collecting the orbitals that land in the new unit cube and matching
//     hopping destinations within a position tolerance.
//   - Trim removes orbitals with at most one hopping endpoint and
//     renumbers the survivors densely.
//   - ApplyPBC opens selected axes by dropping hoppings with nonzero
//     offsets along them.
//
// Why:
//
//   - Tight-binding studies: build graphene, TMD or model lattices once,
//     then derive supercells, ribbons and rotated cells from them.
//   - Exact periodicity: all translation bookkeeping is integer; floats
//     appear only in positions, with explicit tolerances.
//   - Composability: each transformation is independent; chain them in
//     any order (reshape, then trim, then apply boundaries).
//
// Complexity (N orbitals, H hoppings, S = na·nb·nc):
//
//   - Extend:   O(S·(N + H)), Memory O(S·(N + H)).
//   - Reshape:  O(V·N) candidate scan + O(kept·H) matching, with V the
//     searched translation-range volume.
//   - Trim:     O(N + H), Memory O(N).
//   - ApplyPBC: O(H), Memory O(1) extra.
//
// Derived arrays (positions matrix, energy vector, hopping index and
// energy arrays) are cached behind a dirty flag: every structural edit
// invalidates them, Sync rebuilds them and is a no-op when nothing
// changed, and all accessors sync lazily, so stale reads are impossible.
//
// Errors:
//
//   - ErrLatVecShape, ErrDegenerateLattice: bad lattice-vector matrix.
//   - ErrCoordLen: a coordinate or offset is not 2 or 3 components long.
//   - ErrOrbIndex, ErrOnSiteHopping, ErrHopNotFound: bad hopping edits.
//   - ErrDimValue: supercell dimension component below 1.
//   - ErrPBCLen, ErrOriginLen, ErrBasisShape, ErrBasisSingular: bad
//     transformation arguments, raised before any geometric work.
//
// All operations are single-threaded and deterministic; do not mutate
// one PrimitiveCell from multiple goroutines.
package lattice
