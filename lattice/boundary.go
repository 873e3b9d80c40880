package lattice

import "fmt"

// ApplyPBC applies boundary conditions by removing every hopping term
// whose cell offset is nonzero along a non-periodic axis. Periodic axes
// are unconstrained. The cell is mutated in place and its caches are
// resynchronized; the operation only removes hoppings and is idempotent
// for a fixed periodic vector.
//
// Returns ErrNilCell for a nil cell and ErrPBCLen when periodic does
// not have exactly 3 components.
//
// Complexity: O(H), Memory O(1) extra.
func ApplyPBC(pc *PrimitiveCell, periodic []bool) error {
	if pc == nil {
		return ErrNilCell
	}
	if len(periodic) != 3 {
		return fmt.Errorf("lattice: ApplyPBC: got %d flags: %w", len(periodic), ErrPBCLen)
	}

	kept := pc.hoppings[:0]
	for _, hop := range pc.hoppings {
		keep := true
		for ax := 0; ax < 3; ax++ {
			if !periodic[ax] && hop.Offset[ax] != 0 {
				keep = false
				break
			}
		}
		if keep {
			kept = append(kept, hop)
		}
	}
	pc.hoppings = kept
	pc.dirty = true
	pc.Sync()
	return nil
}
