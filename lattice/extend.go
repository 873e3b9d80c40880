package lattice

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// cellKey identifies one replica of an original orbital: the grid cell
// (A, B, C) it sits in and the original orbital index O. Extend and
// Reshape keep an explicit bijection between cellKeys and dense new
// indices so hopping reconstruction can run both lookups.
type cellKey struct {
	A, B, C int
	O       int
}

// Extend replicates a cell into an (na, nb, nc) supercell: lattice
// vectors scaled per axis, one replica of every orbital per grid cell
// at fractional position (pos + cell) / dim, and hoppings re-derived so
// that periodicity of the supercell is exact — a destination crossing
// the supercell boundary wraps back inside and the crossing count
// becomes the new cell offset. The returned cell's Extended factor is
// the input's multiplied by na·nb·nc; the input is not modified.
//
// dim takes 2 or 3 components; a missing third component defaults to 1.
//
// Returns ErrNilCell for a nil cell, ErrCoordLen for a malformed dim
// and ErrDimValue when any component is below 1.
//
// Complexity: O(S·(N + H)) with S = na·nb·nc, Memory O(S·(N + H)).
func Extend(pc *PrimitiveCell, dim ...int) (*PrimitiveCell, error) {
	if pc == nil {
		return nil, ErrNilCell
	}
	d, err := completeOffset(dim, 1)
	if err != nil {
		return nil, fmt.Errorf("lattice: Extend: %w", err)
	}
	for ax, n := range d {
		if n < 1 {
			return nil, fmt.Errorf("lattice: Extend: dimension %d along axis %d: %w", n, ax, ErrDimValue)
		}
	}

	scaled := mat.NewDense(3, 3, nil)
	for ax := 0; ax < 3; ax++ {
		for col := 0; col < 3; col++ {
			scaled.Set(ax, col, pc.vectors.At(ax, col)*float64(d[ax]))
		}
	}
	ext, err := New(scaled)
	if err != nil {
		return nil, fmt.Errorf("lattice: Extend: %w", err)
	}
	ext.Extended = pc.Extended * d[0] * d[1] * d[2]

	// Replicate orbitals in grid order (a fastest-varying last), keeping
	// both directions of the (grid cell, orbital) ↔ dense index bijection.
	size := d[0] * d[1] * d[2] * len(pc.orbitals)
	fwd := make(map[cellKey]int, size)
	rev := make([]cellKey, 0, size)
	for ia := 0; ia < d[0]; ia++ {
		for ib := 0; ib < d[1]; ib++ {
			for ic := 0; ic < d[2]; ic++ {
				for io, orb := range pc.orbitals {
					key := cellKey{ia, ib, ic, io}
					fwd[key] = len(rev)
					rev = append(rev, key)
					pos := []float64{
						(orb.Position[0] + float64(ia)) / float64(d[0]),
						(orb.Position[1] + float64(ib)) / float64(d[1]),
						(orb.Position[2] + float64(ic)) / float64(d[2]),
					}
					if _, err := ext.AddOrbital(pos, orb.Energy); err != nil {
						return nil, fmt.Errorf("lattice: Extend: %w", err)
					}
				}
			}
		}
	}

	// Re-derive hoppings: the destination grid cell wraps modulo dim and
	// the wrap count becomes the supercell offset.
	for si, key := range rev {
		for _, hop := range pc.hoppings {
			if hop.I != key.O {
				continue
			}
			ja, na := wrapCell(key.A+hop.Offset[0], d[0])
			jb, nb := wrapCell(key.B+hop.Offset[1], d[1])
			jc, nc := wrapCell(key.C+hop.Offset[2], d[2])
			sj := fwd[cellKey{ja, jb, jc, hop.J}]
			if err := ext.AddHopping([]int{na, nb, nc}, si, sj, hop.Energy); err != nil {
				return nil, fmt.Errorf("lattice: Extend: %w", err)
			}
		}
	}

	ext.Sync()
	return ext, nil
}

// wrapCell folds a raw grid coordinate into [0, n) with floor semantics
// and reports how many whole supercells the fold crossed.
func wrapCell(raw, n int) (wrapped, crossings int) {
	wrapped = raw % n
	if wrapped < 0 {
		wrapped += n
	}
	return wrapped, (raw - wrapped) / n
}
