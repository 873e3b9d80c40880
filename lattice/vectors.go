package lattice

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const degToRad = math.Pi / 180.0

// GenLatticeVectors builds a 3×3 lattice-vector matrix from cell
// lengths a, b, c (angstrom) and angles alpha, beta, gamma (degrees):
// alpha between b and c, beta between a and c, gamma between a and b.
// The a vector lies along x and the b vector in the xy plane.
//
// Returns ErrCellParam when a length is not positive, an angle is
// outside (0,180), or the angle combination admits no real c vector.
//
// Complexity: O(1).
func GenLatticeVectors(a, b, c, alpha, beta, gamma float64) (*mat.Dense, error) {
	if a <= 0 || b <= 0 || c <= 0 {
		return nil, fmt.Errorf("lattice: lengths (%g, %g, %g): %w", a, b, c, ErrCellParam)
	}
	for _, ang := range [3]float64{alpha, beta, gamma} {
		if ang <= 0 || ang >= 180 {
			return nil, fmt.Errorf("lattice: angle %g: %w", ang, ErrCellParam)
		}
	}

	ar := alpha * degToRad
	br := beta * degToRad
	gr := gamma * degToRad

	bx := b * math.Cos(gr)
	by := b * math.Sin(gr)
	cx := c * math.Cos(br)
	cy := c * (math.Cos(ar) - math.Cos(br)*math.Cos(gr)) / math.Sin(gr)
	cz2 := c*c - cx*cx - cy*cy
	if cz2 <= 0 {
		return nil, fmt.Errorf("lattice: angles (%g, %g, %g) leave no volume: %w", alpha, beta, gamma, ErrCellParam)
	}

	return mat.NewDense(3, 3, []float64{
		a, 0, 0,
		bx, by, 0,
		cx, cy, math.Sqrt(cz2),
	}), nil
}

// FracToCart converts an N×3 matrix of fractional coordinates to
// cartesian coordinates through the given 3×3 lattice-vector matrix
// (rows are lattice vectors): cart = frac · vectors.
//
// Returns ErrLatVecShape for a non-3×3 vectors matrix and ErrCoordLen
// when frac does not have 3 columns.
//
// Complexity: O(N).
func FracToCart(vectors, frac *mat.Dense) (*mat.Dense, error) {
	if err := validateVecShape(vectors); err != nil {
		return nil, err
	}
	n, c := frac.Dims()
	if c != 3 {
		return nil, fmt.Errorf("lattice: FracToCart: %d columns: %w", c, ErrCoordLen)
	}
	out := mat.NewDense(n, 3, nil)
	out.Mul(frac, vectors)
	return out, nil
}

// CartToFrac converts an N×3 matrix of cartesian coordinates to
// fractional coordinates: frac = cart · vectors⁻¹.
//
// Returns ErrLatVecShape for a non-3×3 vectors matrix,
// ErrDegenerateLattice when it cannot be inverted, and ErrCoordLen when
// cart does not have 3 columns.
//
// Complexity: O(N).
func CartToFrac(vectors, cart *mat.Dense) (*mat.Dense, error) {
	if err := validateVecShape(vectors); err != nil {
		return nil, err
	}
	n, c := cart.Dims()
	if c != 3 {
		return nil, fmt.Errorf("lattice: CartToFrac: %d columns: %w", c, ErrCoordLen)
	}
	var inv mat.Dense
	if err := inv.Inverse(vectors); err != nil {
		return nil, fmt.Errorf("lattice: CartToFrac: %w", ErrDegenerateLattice)
	}
	out := mat.NewDense(n, 3, nil)
	out.Mul(cart, &inv)
	return out, nil
}

// validateVecShape rejects nil or non-3×3 lattice-vector matrices.
func validateVecShape(vectors *mat.Dense) error {
	if vectors == nil {
		return ErrLatVecShape
	}
	if r, c := vectors.Dims(); r != 3 || c != 3 {
		return fmt.Errorf("lattice: got %dx%d: %w", r, c, ErrLatVecShape)
	}
	return nil
}

// completeCoord validates a 2- or 3-component coordinate and completes a
// missing third component with fill.
func completeCoord(coord []float64, fill float64) ([3]float64, error) {
	switch len(coord) {
	case 2:
		return [3]float64{coord[0], coord[1], fill}, nil
	case 3:
		return [3]float64{coord[0], coord[1], coord[2]}, nil
	default:
		return [3]float64{}, fmt.Errorf("got %d components: %w", len(coord), ErrCoordLen)
	}
}

// completeOffset is completeCoord for integer tuples (cell offsets and
// supercell dimensions).
func completeOffset(offset []int, fill int) ([3]int, error) {
	switch len(offset) {
	case 2:
		return [3]int{offset[0], offset[1], fill}, nil
	case 3:
		return [3]int{offset[0], offset[1], offset[2]}, nil
	default:
		return [3]int{}, fmt.Errorf("got %d components: %w", len(offset), ErrCoordLen)
	}
}
