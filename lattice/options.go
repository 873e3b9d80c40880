// SPDX-License-Identifier: MIT
// Package lattice: functional configuration for cell construction and
// reshaping. This file defines:
//   - Option (construction) and ReshapeOption (reshaping) functional options,
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error);
//     argument errors reachable from user data are returned by the
//     operations themselves as sentinels.

package lattice

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDetTol is the determinant magnitude below which a 3×3 matrix
	// is treated as singular (degenerate lattice or basis).
	DefaultDetTol = 1e-9

	// DefaultDelta is the boundary nudge added during Reshape so orbitals
	// sitting exactly on a unit-cell face are kept deterministically. It is
	// subtracted from all positions afterwards and must stay smaller than
	// any physically meaningful position tolerance gap.
	DefaultDelta = 1e-2

	// DefaultPosTol is the Euclidean fractional-coordinate tolerance used
	// by Reshape to identify equivalent orbitals when re-deriving hoppings.
	DefaultPosTol = 1e-5
)

// Option configures PrimitiveCell construction.
type Option func(*config)

type config struct {
	unit float64
}

func defaultConfig() config {
	return config{unit: Angstrom}
}

// WithUnit sets the length unit of the input lattice vectors (Angstrom or
// Nanometer, or any positive scale factor relative to angstrom).
// Panics if unit is not positive.
func WithUnit(unit float64) Option {
	if unit <= 0 {
		panic("lattice: WithUnit requires a positive unit")
	}
	return func(c *config) { c.unit = unit }
}

// ReshapeOption configures a Reshape run.
type ReshapeOption func(*reshapeConfig)

type reshapeConfig struct {
	origin []float64
	delta  float64
	posTol float64
}

func defaultReshapeConfig() reshapeConfig {
	return reshapeConfig{
		origin: []float64{0, 0, 0},
		delta:  DefaultDelta,
		posTol: DefaultPosTol,
	}
}

// WithOrigin sets the fractional origin of the reshaped cell, expressed
// in the new basis. Reshape validates the component count and returns
// ErrOriginLen when it is not 3.
func WithOrigin(origin ...float64) ReshapeOption {
	return func(c *reshapeConfig) { c.origin = origin }
}

// WithDelta overrides the boundary nudge. Panics if delta is not positive.
func WithDelta(delta float64) ReshapeOption {
	if delta <= 0 {
		panic("lattice: WithDelta requires a positive delta")
	}
	return func(c *reshapeConfig) { c.delta = delta }
}

// WithPosTol overrides the orbital-matching tolerance.
// Panics if tol is not positive.
func WithPosTol(tol float64) ReshapeOption {
	if tol <= 0 {
		panic("lattice: WithPosTol requires a positive tolerance")
	}
	return func(c *reshapeConfig) { c.posTol = tol }
}
