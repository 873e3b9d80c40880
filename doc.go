// Package tightbind is your in-memory workbench for building and
// transforming periodic lattice models — the primitive cells that
// tight-binding electronic-structure codes consume.
//
// 🚀 What is tightbind?
//
//	A small, deterministic library that brings together:
//		• PrimitiveCell: lattice vectors, orbitals & hopping terms, built incrementally
//		• Supercell extension: integer replication with exact periodic wraparound
//		• Cell reshaping: re-express a cell in an arbitrary fractional basis
//		• Trimming: drop dangling orbitals and renumber survivors densely
//		• Boundary conditions: open selected axes by filtering cell offsets
//		• Prefab materials: ready-made graphene cells for experiments & tests
//
// ✨ Why choose tightbind?
//
//   - Exact periodicity – every hopping carries an integer cell-offset triple
//   - Explicit tolerances – boundary nudge and position matching are tunable, never hidden
//   - Pure computation – no I/O, no goroutines, no global state
//   - Honest diagnostics – reshaping reports dropped hoppings instead of guessing
//
// Everything is organized under two subpackages:
//
//	lattice/   — PrimitiveCell model plus Extend, Reshape, Trim and ApplyPBC
//	materials/ — prefab primitive cells (graphene, diamond and rectangular shapes)
//
// Quick ASCII example (two-orbital graphene cell, a and b lattice vectors):
//
//	      ●───────○
//	     / \     /
//	    b   \   /      ● orbital 0   ○ orbital 1
//	     \   \ /       ╲ hopping, energy −2.7 eV
//	      ●───○──a─▶
//
// See the lattice and materials package docs for contracts, complexity
// and error semantics.
package tightbind
