package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Reshape re-expresses a cell in a new lattice basis. basisFrac is a
// 3×3 matrix whose row i gives the i-th new lattice vector as a
// fractional combination of the original lattice vectors (integer
// entries are not required). The reshaped cell's lattice vectors are
// basisFrac · vectors, and it contains exactly the orbitals of the
// original lattice — across all integer translations in a bounded
// search range — that fall, after translating by -origin, inside the
// half-open unit cube [0,1)³ of the new basis. Hoppings are re-derived
// by transforming each destination, wrapping it back into the unit cube
// and matching it against the kept orbitals within the position
// tolerance; unmatched destinations are dropped silently and counted in
// Report.DroppedHoppings. The input cell is not modified.
//
// The boundary nudge delta (WithDelta) breaks ties for orbitals landing
// exactly on a unit-cell face; it is subtracted from all positions
// before returning, so the reported positions honor the requested
// origin. The search range is derived from the extremal corners of
// basisFrac, padded by one cell per side — a conservative heuristic,
// not a proven bound; a nonzero DroppedHoppings count is the signal
// that it, or the tolerance, needs adjustment.
//
// Returns ErrNilCell for a nil cell, ErrBasisShape / ErrBasisSingular
// for a malformed or non-invertible basis and ErrOriginLen for a
// malformed origin, all before any geometric work.
//
// Complexity: O(V·N) candidate scan + O(kept·H·N) matching, with V the
// searched translation-range volume.
func Reshape(pc *PrimitiveCell, basisFrac *mat.Dense, opts ...ReshapeOption) (*PrimitiveCell, Report, error) {
	var rep Report
	if pc == nil {
		return nil, rep, ErrNilCell
	}
	if basisFrac == nil {
		return nil, rep, ErrBasisShape
	}
	if r, c := basisFrac.Dims(); r != 3 || c != 3 {
		return nil, rep, fmt.Errorf("lattice: Reshape: got %dx%d: %w", r, c, ErrBasisShape)
	}

	cfg := defaultReshapeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.origin) != 3 {
		return nil, rep, fmt.Errorf("lattice: Reshape: got %d components: %w", len(cfg.origin), ErrOriginLen)
	}

	// Conversion matrix from original-basis to new-basis fractional
	// coordinates (row vectors): xNew = xOrig · basisFrac⁻¹.
	var conv mat.Dense
	if err := conv.Inverse(basisFrac); err != nil {
		return nil, rep, fmt.Errorf("lattice: Reshape: %w", ErrBasisSingular)
	}

	var vecs mat.Dense
	vecs.Mul(basisFrac, pc.vectors)
	res, err := New(&vecs)
	if err != nil {
		return nil, rep, fmt.Errorf("lattice: Reshape: %w", err)
	}

	lo, hi := searchRange(basisFrac)

	// Candidate scan: keep every (translation, orbital) whose image lands
	// in the nudged unit cube, recording the bijection to dense indices.
	fwd := make(map[cellKey]int)
	rev := make([]cellKey, 0, len(pc.orbitals))
	for ia := lo[0]; ia <= hi[0]; ia++ {
		for ib := lo[1]; ib <= hi[1]; ib++ {
			for ic := lo[2]; ic <= hi[2]; ic++ {
				for io, orb := range pc.orbitals {
					p := convertPoint(&conv, cfg, [3]float64{
						float64(ia) + orb.Position[0],
						float64(ib) + orb.Position[1],
						float64(ic) + orb.Position[2],
					})
					if math.Floor(p[0]) != 0 || math.Floor(p[1]) != 0 || math.Floor(p[2]) != 0 {
						continue
					}
					key := cellKey{ia, ib, ic, io}
					fwd[key] = len(rev)
					rev = append(rev, key)
					if _, err := res.AddOrbital(p[:], orb.Energy); err != nil {
						return nil, rep, fmt.Errorf("lattice: Reshape: %w", err)
					}
				}
			}
		}
	}
	rep.KeptOrbitals = len(rev)
	res.Sync()

	// Hopping reconstruction: transform each destination, wrap it back
	// into the unit cube and match among kept replicas of the destination
	// orbital. The first match in kept order wins; with a sane tolerance
	// at most one orbital lies within posTol.
	for si, key := range rev {
		for _, hop := range pc.hoppings {
			if hop.I != key.O {
				continue
			}
			dst := pc.orbitals[hop.J].Position
			q := convertPoint(&conv, cfg, [3]float64{
				float64(key.A+hop.Offset[0]) + dst[0],
				float64(key.B+hop.Offset[1]) + dst[1],
				float64(key.C+hop.Offset[2]) + dst[2],
			})
			var rn [3]int
			for k := 0; k < 3; k++ {
				rn[k] = int(math.Floor(q[k]))
				q[k] -= float64(rn[k])
			}

			matched := false
			for sj, kj := range rev {
				if kj.O != hop.J {
					continue
				}
				kp := res.orbitals[sj].Position
				dx := kp[0] - q[0]
				dy := kp[1] - q[1]
				dz := kp[2] - q[2]
				if math.Sqrt(dx*dx+dy*dy+dz*dz) <= cfg.posTol {
					if err := res.AddHopping(rn[:], si, sj, hop.Energy); err != nil {
						return nil, rep, fmt.Errorf("lattice: Reshape: %w", err)
					}
					rep.KeptHoppings++
					matched = true
					break
				}
			}
			if !matched {
				rep.DroppedHoppings++
			}
		}
	}

	// Remove the nudge so positions correspond to the requested origin.
	for i := range res.orbitals {
		for k := 0; k < 3; k++ {
			res.orbitals[i].Position[k] -= cfg.delta
		}
	}
	res.dirty = true
	res.Sync()
	return res, rep, nil
}

// searchRange bounds the integer translations that can place an orbital
// inside the new unit cell, from the extremal corners of the fractional
// basis (sum of rows minus each row, floored/ceiled) padded by one cell
// per side.
func searchRange(basisFrac *mat.Dense) (lo, hi [3]int) {
	for ax := 0; ax < 3; ax++ {
		for j := 0; j < 3; j++ {
			sum := 0.0
			for i := 0; i < 3; i++ {
				if i != ax {
					sum += basisFrac.At(i, j)
				}
			}
			if f := int(math.Floor(sum)); f < lo[j] {
				lo[j] = f
			}
			if c := int(math.Ceil(sum)); c > hi[j] {
				hi[j] = c
			}
		}
	}
	for j := 0; j < 3; j++ {
		lo[j]--
		hi[j]++
	}
	return lo, hi
}

// convertPoint maps an original-basis fractional point (row vector)
// through the conversion matrix, shifts by -origin and applies the
// boundary nudge.
func convertPoint(conv *mat.Dense, cfg reshapeConfig, p [3]float64) [3]float64 {
	var out [3]float64
	for j := 0; j < 3; j++ {
		s := 0.0
		for k := 0; k < 3; k++ {
			s += p[k] * conv.At(k, j)
		}
		out[j] = s - cfg.origin[j] + cfg.delta
	}
	return out
}
