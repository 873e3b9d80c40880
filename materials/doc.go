// Package materials provides prefab primitive cells for common
// lattices, ready to feed into the lattice transformations.
//
// What:
//
//   - GrapheneDiamond: the minimal two-orbital graphene cell in the
//     diamond-shaped (rhombic) primitive basis.
//   - GrapheneRect: the four-orbital rectangular graphene cell, built
//     from scratch.
//   - GrapheneRectReshaped: the same rectangular cell derived by
//     reshaping the diamond cell, exercising the reshaper end to end.
//
// Why:
//
//   - Experiments: a known-good starting cell for supercell and ribbon
//     construction.
//   - Testing: analytic orbital and hopping counts make these cells
//     convenient fixtures for the transformation contracts.
//
// All constructors return fresh, synchronized cells; errors from the
// underlying model are wrapped and surfaced unmodified.
package materials
