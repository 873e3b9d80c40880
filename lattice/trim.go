package lattice

// Trim removes every dangling orbital — one participating in at most
// one hopping endpoint, summed over both endpoint roles across all
// hoppings — together with the hoppings touching it, then renumbers the
// survivors densely. Degrees are counted once, up front, so a removal
// never cascades within a single call; running Trim again on a cell
// with no orbital of degree ≤ 1 is a no-op.
//
// The cell is mutated in place and its caches are resynchronized.
//
// Returns ErrNilCell for a nil cell.
//
// Complexity: O(N + H), Memory O(N).
func Trim(pc *PrimitiveCell) error {
	if pc == nil {
		return ErrNilCell
	}

	degree := make([]int, len(pc.orbitals))
	for _, hop := range pc.hoppings {
		degree[hop.I]++
		degree[hop.J]++
	}

	drop := make([]bool, len(pc.orbitals))
	dangling := false
	for i, d := range degree {
		if d <= 1 {
			drop[i] = true
			dangling = true
		}
	}
	if !dangling {
		return nil
	}

	pc.removeOrbitals(drop)
	pc.Sync()
	return nil
}
